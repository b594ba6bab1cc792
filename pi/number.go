// Package pi computes decimal digits of π with Machin's formula over
// scaled integers.
package pi

// Number is an integer holding a real value multiplied by a power-of-ten
// scale. Values returned by a Backend are immutable: every operation
// returns a new Number. Numbers from different backends must not be mixed.
type Number interface {
	Add(y Number) Number
	Sub(y Number) Number
	MulInt(n uint64) Number
	// QuoInt divides by n, truncating toward zero.
	QuoInt(n uint64) Number
	// Quo divides by y, truncating toward zero.
	Quo(y Number) Number
	IsZero() bool
	// String returns the decimal representation.
	String() string
}

// Backend creates Numbers of one concrete big-integer representation.
type Backend interface {
	Name() string
	New(v uint64) Number
	// MaxDigits returns the largest digit count the backend can compute
	// π to, or 0 when it is unbounded.
	MaxDigits() int
}

// Backends returns the available backends keyed by name.
func Backends() map[string]Backend {
	return map[string]Backend{
		Big.Name():      Big,
		Fixed256.Name(): Fixed256,
	}
}
