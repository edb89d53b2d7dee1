// Package nn provides the numeric kernels behind the visualizations:
// activations, the perceptron, softmax, scaled dot-product attention,
// sinusoidal positional encoding and the toy feed-forward pipeline.
//
// Every function here is pure: it reads its arguments and returns new values.
package nn

// Step is the Heaviside step activation used by the perceptron.
//
//	Step(x) = 1 if x > 0
//	Step(x) = 0 otherwise
//
// The boundary is strict: Step(0) == 0.
func Step(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// ReLU applies the Rectified Linear Unit: f(x) = max(0, x).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}
