package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

func TestPerceptron_DefaultExample(t *testing.T) {
	p := Perceptron{
		Inputs:  []float64{0.5, 0.3, 0.8},
		Weights: []float64{0.4, -0.6, 0.9},
		Bias:    -0.2,
	}

	res, err := p.Compute()
	require.NoError(t, err)
	assert.InDelta(t, 0.54, res.Sum, 1e-12)
	assert.Equal(t, 1.0, res.Output)
	assert.True(t, res.Activated())

	contrib, err := p.Contributions()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, -0.18, 0.72}, contrib, 1e-12)
}

func TestPerceptron_BoundaryIsNotActivated(t *testing.T) {
	p := Perceptron{
		Inputs:  []float64{1, 0},
		Weights: []float64{0.5, 0.7},
		Bias:    -0.5,
	}

	res, err := p.Compute()
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Sum)
	assert.Equal(t, 0.0, res.Output)
	assert.False(t, res.Activated())
}

func TestPerceptron_OutputIsBinary(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) //nolint:gosec // Deterministic seed for reproducibility
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(8)
		p := Perceptron{
			Inputs:  make([]float64, n),
			Weights: make([]float64, n),
			Bias:    rng.Float64()*4 - 2,
		}
		for i := 0; i < n; i++ {
			p.Inputs[i] = rng.Float64()*10 - 5
			p.Weights[i] = rng.Float64()*10 - 5
		}

		res, err := p.Compute()
		require.NoError(t, err)
		assert.Contains(t, []float64{0, 1}, res.Output)
		assert.Equal(t, res.Sum > 0, res.Output == 1)
	}
}

func TestPerceptron_LengthMismatch(t *testing.T) {
	p := Perceptron{Inputs: []float64{1, 2, 3}, Weights: []float64{1, 2}}

	_, err := p.Compute()
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = p.Contributions()
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestWeightedSum_Empty(t *testing.T) {
	sum, err := WeightedSum(nil, nil, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, sum)
}
