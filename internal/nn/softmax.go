package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

// Softmax returns the probability vector exp(x_i) / Σ exp(x_j).
//
// The row maximum is subtracted before exponentiating so large scores cannot
// overflow. The result sums to 1 and a single-element row yields [1].
// Entries equal to -Inf (masked positions) get probability 0; a row in which
// every entry is -Inf is rejected with tensor.ErrDomain.
//
// Returns a ShapeError for an empty row.
func Softmax(row []float64) ([]float64, error) {
	if len(row) == 0 {
		return nil, tensor.NewShapeError("Softmax", "row length", tensor.Shape{0}, tensor.Shape{1})
	}

	maxVal := floats.Max(row)
	if math.IsInf(maxVal, -1) {
		return nil, tensor.DomainError("Softmax", "every entry is -Inf")
	}

	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = math.Exp(v - maxVal)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out, nil
}

// RowSoftmax applies Softmax to every row of m.
func RowSoftmax(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		p, err := Softmax(tensor.Row(m, i))
		if err != nil {
			return nil, err
		}
		out.SetRow(i, p)
	}
	return out, nil
}
