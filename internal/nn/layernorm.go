package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

// LayerNorm normalizes a feature vector to zero mean and unit variance.
//
// Formula: y = (x - mean(x)) / sqrt(var(x) + eps)
//
// The variance is the population variance (divided by len(x)), as in
// transformer layer normalization. Gamma and beta are fixed at 1 and 0.
//
// This is the operation FeedForwardResidual's Normed stage stands in for.
// Applied to a single scalar it always yields 0, which is why the toy
// pipeline uses fixed constants instead.
//
// Returns a ShapeError for an empty vector.
func LayerNorm(x []float64, eps float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, tensor.NewShapeError("LayerNorm", "feature count", tensor.Shape{0}, tensor.Shape{1})
	}

	mean, variance := stat.PopMeanVariance(x, nil)
	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(-mean, out)
	floats.Scale(1/math.Sqrt(variance+eps), out)
	return out, nil
}
