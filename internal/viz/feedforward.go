package viz

import (
	"github.com/neuroviz/neuroviz/internal/config"
	"github.com/neuroviz/neuroviz/internal/nn"
)

// FeedForwardRange is the span of the FFN input slider.
var FeedForwardRange = Range{Min: -1, Max: 1, Step: 0.01}

// FeedForward is the controller of the FFN + residual widget.
type FeedForward struct {
	initial float64
	result  nn.FFNResult
}

// NewFeedForward creates the widget with slider value x.
func NewFeedForward(x float64) *FeedForward {
	return &FeedForward{initial: x, result: nn.FeedForwardResidual(x)}
}

// NewFeedForwardFromFixtures creates the widget at the fixture's input.
func NewFeedForwardFromFixtures(f *config.Fixtures) *FeedForward {
	return NewFeedForward(f.FeedForward.Input)
}

// SetInput moves the slider to x.
func (f *FeedForward) SetInput(x float64) nn.FFNResult {
	f.result = nn.FeedForwardResidual(x)
	return f.result
}

// View returns every stage of the pipeline for the current input.
func (f *FeedForward) View() nn.FFNResult {
	return f.result
}

// Reset restores the initial slider value.
func (f *FeedForward) Reset() nn.FFNResult {
	return f.SetInput(f.initial)
}
