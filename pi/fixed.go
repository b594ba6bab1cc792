package pi

import "github.com/holiman/uint256"

// Fixed256 is a fixed-width backend built on 256-bit unsigned words.
// Every intermediate value of the Machin computation is non-negative,
// and the largest one, 16·10^(digits+GuardDigits), fits in 256 bits
// for up to 70 digits.
var Fixed256 Backend = fixedBackend{}

const fixedMaxDigits = 70

type fixedBackend struct{}

func (fixedBackend) Name() string { return "u256" }

func (fixedBackend) New(v uint64) Number {
	return fixedNumber{v: *uint256.NewInt(v)}
}

func (fixedBackend) MaxDigits() int { return fixedMaxDigits }

type fixedNumber struct {
	v uint256.Int
}

func (x fixedNumber) Add(y Number) Number {
	yv := y.(fixedNumber).v

	var z uint256.Int
	z.Add(&x.v, &yv)

	return fixedNumber{v: z}
}

func (x fixedNumber) Sub(y Number) Number {
	yv := y.(fixedNumber).v

	var z uint256.Int
	z.Sub(&x.v, &yv)

	return fixedNumber{v: z}
}

func (x fixedNumber) MulInt(n uint64) Number {
	var z uint256.Int
	z.Mul(&x.v, uint256.NewInt(n))

	return fixedNumber{v: z}
}

func (x fixedNumber) QuoInt(n uint64) Number {
	var z uint256.Int
	z.Div(&x.v, uint256.NewInt(n))

	return fixedNumber{v: z}
}

func (x fixedNumber) Quo(y Number) Number {
	yv := y.(fixedNumber).v

	var z uint256.Int
	z.Div(&x.v, &yv)

	return fixedNumber{v: z}
}

func (x fixedNumber) IsZero() bool { return x.v.IsZero() }

func (x fixedNumber) String() string { return x.v.Dec() }
