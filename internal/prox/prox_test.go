package prox_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/piano-ml/piano/internal/prox"
)

func TestIdentity(t *testing.T) {
	op := prox.Identity{}
	v := mat.NewDense(1, 2, []float64{1, -2})

	assert.Equal(t, 0.0, op.Value(v))

	out := op.Prox(v, 0.7)
	require.NotSame(t, v, out)
	assert.True(t, mat.Equal(v, out))
}

func TestL1_Value(t *testing.T) {
	op := prox.L1{Lambda: 0.5}
	x := mat.NewDense(2, 2, []float64{1, -2, 3, -4})
	assert.InDelta(t, 0.5*10, op.Value(x), 1e-15)
}

func TestL1_ProxSoftThresholds(t *testing.T) {
	op := prox.L1{Lambda: 2}
	v := mat.NewDense(1, 5, []float64{3, 1, 0, -0.5, -2.5})

	// Threshold is Lambda*alpha = 1.
	out := op.Prox(v, 0.5)

	want := []float64{2, 0, 0, 0, -1.5}
	for j, w := range want {
		assert.InDelta(t, w, out.At(0, j), 1e-15, "column %d", j)
	}
}

func TestSquaredL2_Prox(t *testing.T) {
	op := prox.SquaredL2{Lambda: 3}
	v := mat.NewDense(2, 1, []float64{4, -8})

	// Shrinkage factor 1/(1 + Lambda*alpha) = 1/4.
	out := op.Prox(v, 1)
	assert.InDelta(t, 1, out.At(0, 0), 1e-15)
	assert.InDelta(t, -2, out.At(1, 0), 1e-15)

	assert.InDelta(t, 0.5*3*(4*4+8*8), op.Value(v), 1e-12)
}

func TestBox(t *testing.T) {
	op := prox.Box{Lo: -1, Hi: 1}

	inside := mat.NewDense(1, 2, []float64{0.5, -1})
	assert.Equal(t, 0.0, op.Value(inside))

	outside := mat.NewDense(1, 2, []float64{0.5, 1.5})
	assert.True(t, math.IsInf(op.Value(outside), 1))

	out := op.Prox(mat.NewDense(1, 3, []float64{-2, 0.25, 7}), 0.1)
	assert.Equal(t, -1.0, out.At(0, 0))
	assert.Equal(t, 0.25, out.At(0, 1))
	assert.Equal(t, 1.0, out.At(0, 2))
}

func TestNonNegative(t *testing.T) {
	op := prox.NonNegative()

	out := op.Prox(mat.NewDense(2, 1, []float64{-3, 42}), 1)
	assert.Equal(t, 0.0, out.At(0, 0))
	assert.Equal(t, 42.0, out.At(1, 0))

	assert.Equal(t, 0.0, op.Value(mat.NewDense(1, 1, []float64{5})))
	assert.True(t, math.IsInf(op.Value(mat.NewDense(1, 1, []float64{-5})), 1))
}
