package harness

import "math"

// Series accumulates per-window throughput samples. Mean and variance
// are tracked with Welford's online update.
type Series struct {
	values []float64
	min    float64
	max    float64
	mean   float64
	m2     float64
}

// Add appends a sample.
func (s *Series) Add(v float64) {
	if len(s.values) == 0 || v < s.min {
		s.min = v
	}
	if len(s.values) == 0 || v > s.max {
		s.max = v
	}

	s.values = append(s.values, v)

	delta := v - s.mean
	s.mean += delta / float64(len(s.values))
	s.m2 += delta * (v - s.mean)
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Values returns a copy of the samples in insertion order.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Stats returns min, avg and max, all zero for an empty series.
func (s *Series) Stats() (minV, avg, maxV float64) {
	if len(s.values) == 0 {
		return 0, 0, 0
	}

	// Rounding in the running mean must not escape [min, max].
	return s.min, min(max(s.mean, s.min), s.max), s.max
}

// StdDev returns the sample standard deviation, zero for fewer than two
// samples.
func (s *Series) StdDev() float64 {
	if len(s.values) < 2 {
		return 0
	}

	return math.Sqrt(s.m2 / float64(len(s.values)-1))
}
