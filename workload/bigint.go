package workload

import (
	"math/big"
	"strconv"

	"github.com/weiihann/gensuite/harness"
)

// DefaultOperandDigits is the decimal length of the bigint operands.
const DefaultOperandDigits = 4096

// BigInt multiplies two fixed arbitrary-precision operands per step and
// adds the product to a running accumulator.
type BigInt struct {
	a, b *big.Int
	acc  *big.Int
	prod *big.Int
}

// NewBigInt builds operands of digits+1 decimal digits: 1 followed by
// digits sevens, and 1 followed by digits threes.
func NewBigInt(digits int) *BigInt {
	a := big.NewInt(1)
	b := big.NewInt(1)
	ten := big.NewInt(10)
	seven := big.NewInt(7)
	three := big.NewInt(3)

	for i := 0; i < digits; i++ {
		a.Mul(a, ten).Add(a, seven)
		b.Mul(b, ten).Add(b, three)
	}

	return &BigInt{
		a:    a,
		b:    b,
		acc:  big.NewInt(1),
		prod: new(big.Int),
	}
}

func (w *BigInt) Name() string { return "bigint" }

func (w *BigInt) Unit() string { return "Multiplies/sec" }

func (w *BigInt) OpsPerStep() float64 { return 1 }

func (w *BigInt) Step() {
	w.prod.Mul(w.a, w.b)
	w.acc.Add(w.acc, w.prod)
}

// Metadata reports the decimal length of the accumulator.
func (w *BigInt) Metadata() []harness.Field {
	return []harness.Field{
		{Key: "Digits", Value: strconv.Itoa(len(w.acc.String()))},
	}
}
