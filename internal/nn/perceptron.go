package nn

import (
	"gonum.org/v1/gonum/floats"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

// WeightedSum computes Σ inputs[i]*weights[i] + bias.
//
// Returns a ShapeError (wrapping tensor.ErrShapeMismatch) when inputs and
// weights have different lengths. Empty vectors are allowed and yield bias.
func WeightedSum(inputs, weights []float64, bias float64) (float64, error) {
	if len(inputs) != len(weights) {
		return 0, tensor.NewShapeError("WeightedSum", "weights",
			tensor.Shape{len(weights)}, tensor.Shape{len(inputs)})
	}
	return floats.Dot(inputs, weights) + bias, nil
}

// Perceptron is a single unit with a step activation.
//
//	sum    = Σ Inputs[i]*Weights[i] + Bias
//	output = Step(sum)
//
// Example:
//
//	p := nn.Perceptron{
//	    Inputs:  []float64{0.5, 0.3, 0.8},
//	    Weights: []float64{0.4, -0.6, 0.9},
//	    Bias:    -0.2,
//	}
//	res, _ := p.Compute() // res.Sum == 0.54, res.Output == 1
type Perceptron struct {
	Inputs  []float64
	Weights []float64
	Bias    float64
}

// PerceptronResult holds the quantities derived from a Perceptron.
type PerceptronResult struct {
	Sum    float64
	Output float64 // Always 0 or 1
}

// Activated reports whether the unit fired.
func (r PerceptronResult) Activated() bool {
	return r.Output == 1
}

// Compute returns the weighted sum and the step output.
func (p Perceptron) Compute() (PerceptronResult, error) {
	sum, err := WeightedSum(p.Inputs, p.Weights, p.Bias)
	if err != nil {
		return PerceptronResult{}, err
	}
	return PerceptronResult{Sum: sum, Output: Step(sum)}, nil
}

// Contributions returns the per-input products Inputs[i]*Weights[i].
func (p Perceptron) Contributions() ([]float64, error) {
	if len(p.Inputs) != len(p.Weights) {
		return nil, tensor.NewShapeError("Contributions", "weights",
			tensor.Shape{len(p.Weights)}, tensor.Shape{len(p.Inputs)})
	}
	out := make([]float64, len(p.Inputs))
	floats.MulTo(out, p.Inputs, p.Weights)
	return out, nil
}
