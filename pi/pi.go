package pi

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// GuardDigits is the number of extra decimal digits carried through the
// series to absorb truncation error before the final rounding.
const GuardDigits = 5

var (
	// ErrPrecision is returned when a backend cannot hold the requested
	// number of digits.
	ErrPrecision = errors.New("precision exceeds backend capacity")

	// ErrDiverged is returned when an arctangent series does not reach a
	// zero term within its iteration budget.
	ErrDiverged = errors.New("arctangent series did not converge")
)

// Compute returns π rounded to digits fractional digits, formatted as
// "3.<digits>". Compute(0) returns "3.".
func Compute(digits uint32) string {
	s, err := ComputeWith(Big, digits)
	if err != nil {
		// Big is unbounded and the series for 1/5 and 1/239 always end.
		panic("pi: " + err.Error())
	}

	return s
}

// ComputeWith is like Compute but runs on the given backend.
func ComputeWith(b Backend, digits uint32) (string, error) {
	if limit := b.MaxDigits(); limit > 0 && int(digits) > limit {
		return "", fmt.Errorf("%s backend: %d digits (max %d): %w",
			b.Name(), digits, limit, ErrPrecision)
	}

	precision := int(digits) + GuardDigits
	scale := pow10(b, precision)

	// Machin: π = 16·arctan(1/5) − 4·arctan(1/239).
	atan5, err := arctanInv(5, scale, precision)
	if err != nil {
		return "", fmt.Errorf("arctan(1/5): %w", err)
	}

	atan239, err := arctanInv(239, scale, precision)
	if err != nil {
		return "", fmt.Errorf("arctan(1/239): %w", err)
	}

	scaled := atan5.MulInt(16).Sub(atan239.MulInt(4))

	half := pow10(b, GuardDigits-1).MulInt(5)
	rounded := scaled.Add(half).Quo(pow10(b, GuardDigits))

	return format(rounded.String(), int(digits)), nil
}

// arctanInv returns scale·arctan(1/x), where scale is 10^precision, by
// summing the alternating series Σ (−1)^k / ((2k+1)·x^(2k+1)) until a
// term truncates to zero.
func arctanInv(x uint64, scale Number, precision int) (Number, error) {
	if x < 2 || x > math.MaxUint32 {
		return nil, fmt.Errorf("x = %d out of range [2, %d]", x, uint64(math.MaxUint32))
	}

	x2 := x * x
	term := scale.QuoInt(x)
	sum := term

	// Each term shrinks by at least x² >= 4, so a zero term is reached
	// within log_4(10)·precision ≈ 1.67·precision steps.
	maxTerms := uint64(2*precision + 16)

	for k := uint64(1); k <= maxTerms; k++ {
		term = term.QuoInt(x2)

		add := term.QuoInt(2*k + 1)
		if add.IsZero() {
			return sum, nil
		}

		if k%2 == 1 {
			sum = sum.Sub(add)
		} else {
			sum = sum.Add(add)
		}
	}

	return nil, fmt.Errorf("x = %d after %d terms: %w", x, maxTerms, ErrDiverged)
}

func pow10(b Backend, n int) Number {
	v := b.New(1)
	for i := 0; i < n; i++ {
		v = v.MulInt(10)
	}

	return v
}

// format left-pads s to digits+1 characters and inserts the decimal point
// after the first one.
func format(s string, digits int) string {
	if width := digits + 1; len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}

	return s[:1] + "." + s[1:]
}
