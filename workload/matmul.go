package workload

import (
	"fmt"

	"github.com/weiihann/gensuite/harness"
)

// DefaultMatrixSize is the side of the square matrices multiplied by the
// matmul workload.
const DefaultMatrixSize = 128

// MatMul multiplies two dense float64 matrices per step, accumulating
// into a third.
type MatMul struct {
	n       int
	a, b, c []float64
}

// NewMatMul allocates n×n operands.
func NewMatMul(n int) *MatMul {
	m := &MatMul{
		n: n,
		a: make([]float64, n*n),
		b: make([]float64, n*n),
		c: make([]float64, n*n),
	}

	for i := range m.a {
		m.a[i] = 1.001
		m.b[i] = 0.999
	}

	return m
}

func (m *MatMul) Name() string { return "matmul" }

func (m *MatMul) Unit() string { return "GFLOP/s" }

// OpsPerStep is 2n³ floating-point operations, in GFLOP.
func (m *MatMul) OpsPerStep() float64 {
	n := float64(m.n)

	return 2 * n * n * n / 1e9
}

// Step computes C += A·B in ikj order, then feeds C back into A so the
// product cannot be optimized away.
func (m *MatMul) Step() {
	n := m.n
	for i := 0; i < n; i++ {
		row := m.c[i*n : i*n+n]
		for k := 0; k < n; k++ {
			aik := m.a[i*n+k]
			col := m.b[k*n : k*n+n]
			for j := range row {
				row[j] += aik * col[j]
			}
		}
	}

	m.a[0] = m.c[0] / 3.14159
}

func (m *MatMul) Metadata() []harness.Field {
	return []harness.Field{
		{Key: "Size", Value: fmt.Sprintf("%dx%d", m.n, m.n)},
	}
}
