// Package workload provides the CPU micro-benchmark workloads driven by
// the harness: dense matrix multiply, big-integer and 256-bit
// multiply-accumulate, and prime sieving.
package workload

import (
	"errors"
	"fmt"
	"sort"

	"github.com/weiihann/gensuite/harness"
)

// ErrUnknown is returned by New for an unregistered workload name.
var ErrUnknown = errors.New("unknown workload")

// Workload is the unit of work the harness samples.
type Workload = harness.Workload

var registry = map[string]func() Workload{
	"matmul": func() Workload { return NewMatMul(DefaultMatrixSize) },
	"bigint": func() Workload { return NewBigInt(DefaultOperandDigits) },
	"sieve":  func() Workload { return NewSieve(DefaultSieveLimit) },
	"u256":   func() Workload { return NewU256() },
}

// Names returns the registered workload names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// New builds the named workload with its default parameters. Any setup
// work, such as building operands, happens here and not in Step.
func New(name string) (Workload, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", name, Names(), ErrUnknown)
	}

	return ctor(), nil
}
