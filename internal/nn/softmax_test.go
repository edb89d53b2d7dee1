package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

func TestSoftmax_SumsToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec // Deterministic seed for reproducibility
	for trial := 0; trial < 200; trial++ {
		row := make([]float64, 1+rng.Intn(8))
		for i := range row {
			row[i] = rng.NormFloat64() * 20
		}

		p, err := Softmax(row)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, floats.Sum(p), 1e-6)
		for _, v := range p {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestSoftmax_StrictlyPositive(t *testing.T) {
	p, err := Softmax([]float64{0.34, -0.1, 0.55, 1.2})
	require.NoError(t, err)
	for i, v := range p {
		assert.Greater(t, v, 0.0, "entry %d", i)
	}
}

func TestSoftmax_SingleElement(t *testing.T) {
	p, err := Softmax([]float64{-123.4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, p)
}

func TestSoftmax_ShiftInvariant(t *testing.T) {
	row := []float64{0.34, -0.1, 0.55}
	base, err := Softmax(row)
	require.NoError(t, err)

	for _, c := range []float64{-1000, -3.5, 0.25, 7, 1000} {
		shifted := make([]float64, len(row))
		copy(shifted, row)
		floats.AddConst(c, shifted)

		p, err := Softmax(shifted)
		require.NoError(t, err)
		assert.InDeltaSlice(t, base, p, 1e-9, "shift %v", c)
	}
}

func TestSoftmax_LargeValuesDoNotOverflow(t *testing.T) {
	p, err := Softmax([]float64{1000, 1000, 999})
	require.NoError(t, err)
	for _, v := range p {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
	assert.InDelta(t, p[0], p[1], 1e-15)
}

func TestSoftmax_Errors(t *testing.T) {
	_, err := Softmax(nil)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Softmax([]float64{math.Inf(-1), math.Inf(-1)})
	assert.ErrorIs(t, err, tensor.ErrDomain)
}

func TestSoftmax_MaskedEntriesAreZero(t *testing.T) {
	p, err := Softmax([]float64{0.5, math.Inf(-1)})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, p)
}

func TestRowSoftmax(t *testing.T) {
	m := tensor.MustFromRows([][]float64{
		{1, 2, 3},
		{0, 0, 0},
	})

	w, err := RowSoftmax(m)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		assert.InDelta(t, 1.0, floats.Sum(tensor.Row(w, i)), 1e-12)
	}
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, tensor.Row(w, 1), 1e-12)
	assert.Less(t, w.At(0, 0), w.At(0, 2))
}
