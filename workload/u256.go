package workload

import (
	"github.com/holiman/uint256"
	"github.com/weiihann/gensuite/harness"
)

// U256 is the fixed-width counterpart of BigInt: a wrapping 256-bit
// multiply-accumulate per step.
type U256 struct {
	a, b uint256.Int
	acc  uint256.Int
	prod uint256.Int
}

// NewU256 builds operands the same way as NewBigInt, wrapping at 2^256.
func NewU256() *U256 {
	w := &U256{}
	w.a.SetOne()
	w.b.SetOne()
	w.acc.SetOne()

	ten := uint256.NewInt(10)
	seven := uint256.NewInt(7)
	three := uint256.NewInt(3)

	for i := 0; i < 77; i++ {
		w.a.Mul(&w.a, ten).Add(&w.a, seven)
		w.b.Mul(&w.b, ten).Add(&w.b, three)
	}

	return w
}

func (w *U256) Name() string { return "u256" }

func (w *U256) Unit() string { return "Multiplies/sec" }

func (w *U256) OpsPerStep() float64 { return 1 }

func (w *U256) Step() {
	w.prod.Mul(&w.a, &w.b)
	w.acc.Add(&w.acc, &w.prod)
}

// Metadata reports the word width and the accumulator, which changes
// with the iteration count.
func (w *U256) Metadata() []harness.Field {
	return []harness.Field{
		{Key: "Bits", Value: "256"},
		{Key: "Checksum", Value: w.acc.Hex()},
	}
}
