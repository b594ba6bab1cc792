package pi

import "math/big"

// Big is the unbounded backend built on math/big.
var Big Backend = bigBackend{}

type bigBackend struct{}

func (bigBackend) Name() string { return "big" }

func (bigBackend) New(v uint64) Number {
	return bigNumber{v: new(big.Int).SetUint64(v)}
}

func (bigBackend) MaxDigits() int { return 0 }

type bigNumber struct {
	v *big.Int
}

func (x bigNumber) Add(y Number) Number {
	return bigNumber{v: new(big.Int).Add(x.v, y.(bigNumber).v)}
}

func (x bigNumber) Sub(y Number) Number {
	return bigNumber{v: new(big.Int).Sub(x.v, y.(bigNumber).v)}
}

func (x bigNumber) MulInt(n uint64) Number {
	return bigNumber{v: new(big.Int).Mul(x.v, new(big.Int).SetUint64(n))}
}

func (x bigNumber) QuoInt(n uint64) Number {
	return bigNumber{v: new(big.Int).Quo(x.v, new(big.Int).SetUint64(n))}
}

func (x bigNumber) Quo(y Number) Number {
	return bigNumber{v: new(big.Int).Quo(x.v, y.(bigNumber).v)}
}

func (x bigNumber) IsZero() bool { return x.v.Sign() == 0 }

func (x bigNumber) String() string { return x.v.String() }
