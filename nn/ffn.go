// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import "github.com/neuroviz/neuroviz/internal/nn"

// FFNResult holds every intermediate value of the scalar feed-forward walkthrough.
type FFNResult = nn.FFNResult

// FeedForwardResidual runs x through Linear, ReLU, Linear, the residual add
// and the illustrative normalization.
//
// Example:
//
//	res := nn.FeedForwardResidual(0.5)
//	// res.ReLU == 0.45, res.Residual == 0.96
func FeedForwardResidual(x float64) FFNResult {
	return nn.FeedForwardResidual(x)
}
