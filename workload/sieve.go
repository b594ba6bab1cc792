package workload

import (
	"strconv"

	"github.com/weiihann/gensuite/harness"
	"github.com/weiihann/gensuite/sieve"
)

// DefaultSieveLimit is the upper bound of every sieve pass.
const DefaultSieveLimit = 2_000_000

// Sieve counts the primes up to a fixed limit per step.
type Sieve struct {
	limit  int
	primes int
}

// NewSieve returns a sieve workload over 2..limit.
func NewSieve(limit int) *Sieve {
	return &Sieve{limit: limit}
}

func (w *Sieve) Name() string { return "sieve" }

func (w *Sieve) Unit() string { return "Sieves/sec" }

func (w *Sieve) OpsPerStep() float64 { return 1 }

func (w *Sieve) Step() {
	w.primes = sieve.CountBelow(w.limit)
}

// Metadata reports the limit and the prime count of the last pass.
func (w *Sieve) Metadata() []harness.Field {
	return []harness.Field{
		{Key: "Limit", Value: strconv.Itoa(w.limit)},
		{Key: "Primes", Value: strconv.Itoa(w.primes)},
	}
}
