// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/neuroviz/neuroviz/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// Activations

// Step returns 1 when x > 0 and 0 otherwise. Step(0) is 0.
func Step(x float64) float64 {
	return nn.Step(x)
}

// ReLU returns max(0, x).
func ReLU(x float64) float64 {
	return nn.ReLU(x)
}

// Perceptron

// Perceptron is a single neuron with a step activation.
//
// Example:
//
//	p := nn.Perceptron{Inputs: []float64{0.5, 0.8}, Weights: []float64{0.6, -0.4}, Bias: 0.1}
//	res, err := p.Compute() // res.Sum == 0.08, res.Output == 1
type Perceptron = nn.Perceptron

// PerceptronResult holds the weighted sum and activated output.
type PerceptronResult = nn.PerceptronResult

// WeightedSum returns sum(inputs[i] * weights[i]) + bias.
func WeightedSum(inputs, weights []float64, bias float64) (float64, error) {
	return nn.WeightedSum(inputs, weights, bias)
}

// Normalization

// Softmax returns the numerically stable softmax of row.
func Softmax(row []float64) ([]float64, error) {
	return nn.Softmax(row)
}

// RowSoftmax applies Softmax to every row of m.
func RowSoftmax(m mat.Matrix) (*mat.Dense, error) {
	return nn.RowSoftmax(m)
}

// LayerNorm normalizes x to zero mean and unit variance.
func LayerNorm(x []float64, eps float64) ([]float64, error) {
	return nn.LayerNorm(x, eps)
}
