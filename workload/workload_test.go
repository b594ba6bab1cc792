package workload

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/gensuite/harness"
)

func TestNames(t *testing.T) {
	want := []string{"bigint", "matmul", "sieve", "u256"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			w, err := New(name)
			require.NoError(t, err)

			assert.Equal(t, name, w.Name())
			assert.NotEmpty(t, w.Unit())
			assert.Positive(t, w.OpsPerStep())
			assert.NotEmpty(t, w.Metadata())
		})
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("fft")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("err = %v, want ErrUnknown", err)
	}
}

func TestMatMulStep(t *testing.T) {
	m := NewMatMul(2)
	m.Step()

	// Each entry of C is 1.001·0.999 summed over k = 0, 1.
	want := 2 * 1.001 * 0.999
	for i, v := range m.c {
		assert.InDeltaf(t, want, v, 1e-12, "c[%d]", i)
	}

	assert.InDelta(t, want/3.14159, m.a[0], 1e-12)
	assert.InDelta(t, 1.001, m.a[1], 1e-12)
}

func TestMatMulOps(t *testing.T) {
	m := NewMatMul(DefaultMatrixSize)

	assert.InDelta(t, 0.004194304, m.OpsPerStep(), 1e-15)
	assert.Equal(t, "GFLOP/s", m.Unit())
	assert.Equal(t, []harness.Field{{Key: "Size", Value: "128x128"}}, m.Metadata())
}

func TestBigIntOperands(t *testing.T) {
	w := NewBigInt(4)

	assert.Equal(t, "17777", w.a.String())
	assert.Equal(t, "13333", w.b.String())
	assert.Equal(t, []harness.Field{{Key: "Digits", Value: "1"}}, w.Metadata())

	w.Step()

	assert.Equal(t, "237020742", w.acc.String())
	assert.Equal(t, []harness.Field{{Key: "Digits", Value: "9"}}, w.Metadata())
}

func TestBigIntDefaultDigits(t *testing.T) {
	w := NewBigInt(DefaultOperandDigits)

	assert.Len(t, w.a.String(), DefaultOperandDigits+1)
	assert.Len(t, w.b.String(), DefaultOperandDigits+1)
}

func TestSieveStep(t *testing.T) {
	w := NewSieve(100)

	assert.Equal(t, "0", w.Metadata()[1].Value)

	w.Step()

	want := []harness.Field{
		{Key: "Limit", Value: "100"},
		{Key: "Primes", Value: "25"},
	}
	assert.Equal(t, want, w.Metadata())
}

func TestU256Deterministic(t *testing.T) {
	w1, w2 := NewU256(), NewU256()
	before := w1.Metadata()[1].Value

	for i := 0; i < 10; i++ {
		w1.Step()
		w2.Step()
	}

	assert.Equal(t, w1.Metadata(), w2.Metadata())
	assert.NotEqual(t, before, w1.Metadata()[1].Value)
	assert.Equal(t, "256", w1.Metadata()[0].Value)
}
