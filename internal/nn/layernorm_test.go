package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

func TestLayerNorm(t *testing.T) {
	x := []float64{1, 2, 3}
	got, err := LayerNorm(x, 0)
	require.NoError(t, err)

	// mean 2, population variance 2/3.
	s := math.Sqrt(2.0 / 3.0)
	assert.InDeltaSlice(t, []float64{-1 / s, 0, 1 / s}, got, 1e-12)
	assert.InDelta(t, 0.0, floats.Sum(got), 1e-12)
	assert.Equal(t, []float64{1, 2, 3}, x, "input must not be modified")
}

func TestLayerNorm_UnitVariance(t *testing.T) {
	out, err := LayerNorm([]float64{1, 2, 3, 4}, 0)
	require.NoError(t, err)

	mean, variance := stat.PopMeanVariance(out, nil)
	assert.InDelta(t, 0, mean, 1e-12)
	assert.InDelta(t, 1, variance, 1e-12)
}

func TestLayerNorm_ConstantVector(t *testing.T) {
	got, err := LayerNorm([]float64{0.96}, 1e-5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, got)

	got, err = LayerNorm([]float64{4, 4, 4, 4}, 1e-5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, got)
}

func TestLayerNorm_Empty(t *testing.T) {
	_, err := LayerNorm(nil, 1e-5)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
