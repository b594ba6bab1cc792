// Package harness runs a workload under a time budget, sampling its
// throughput once per window.
package harness

import "time"

// Field is one piece of workload metadata shown alongside a result.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Result holds the statistics of one benchmark run.
type Result struct {
	Workload   string        `json:"workload"`
	Unit       string        `json:"unit"`
	Iterations uint64        `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Avg        float64       `json:"avg"`
	Min        float64       `json:"min"`
	Max        float64       `json:"max"`
	Overall    float64       `json:"overall"`
	StdDev     float64       `json:"stddev"`
	Samples    []float64     `json:"samples"`
	Metadata   []Field       `json:"metadata,omitempty"`
}
