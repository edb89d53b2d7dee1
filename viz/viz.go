// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz provides the widget controllers of the visualizations.
//
// A controller owns a widget's state, validates every change and returns a
// view: the derived values a presentation layer draws. Controllers never
// render anything themselves.
//
// Widgets:
//   - Perceptron: inputs, weights and bias sliders feeding a step neuron
//   - Embedding: token embeddings plus sinusoidal positions
//   - Attention: scores, weights and output for a selected token
//   - MultiHead: illustrative per-head attention patterns
//   - FeedForward: the scalar FFN + residual walkthrough
//   - ForwardPass: the step-by-step narration of a full forward pass
//   - Architecture: the encoder-decoder diagram with hover details
//   - Transformer: the tabbed explainer combining the widgets above
//
// Example:
//
//	tr, err := viz.NewTransformer(config.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tr.SelectTab("attention")
//	view, err := tr.Attention.SelectToken(1)
package viz

import (
	"github.com/neuroviz/neuroviz/internal/config"
	"github.com/neuroviz/neuroviz/internal/viz"
)

// Errors returned by controllers.
var (
	// ErrIndexOutOfRange is returned when a selection index is out of range.
	ErrIndexOutOfRange = viz.ErrIndexOutOfRange
	// ErrUnknownID is returned for an unknown tab or block id.
	ErrUnknownID = viz.ErrUnknownID
)

// Selection

// Selector is a bounded index over a fixed number of items.
type Selector = viz.Selector

// NewSelector creates a selector over count items. Panics if count <= 0.
func NewSelector(count int) *Selector {
	return viz.NewSelector(count)
}

// Perceptron

// Range is the span and granularity of a slider.
type Range = viz.Range

// Slider ranges.
var (
	InputRange       = viz.InputRange
	WeightRange      = viz.WeightRange
	BiasRange        = viz.BiasRange
	FeedForwardRange = viz.FeedForwardRange
)

// Perceptron is the perceptron widget controller.
type Perceptron = viz.Perceptron

// PerceptronView is the perceptron widget's derived state.
type PerceptronView = viz.PerceptronView

// Connection is the derived state of one input edge.
type Connection = viz.Connection

// NewPerceptron creates a perceptron widget.
func NewPerceptron(inputs, weights []float64, bias float64) (*Perceptron, error) {
	return viz.NewPerceptron(inputs, weights, bias)
}

// NewPerceptronFromFixtures creates a perceptron widget from fixtures.
func NewPerceptronFromFixtures(f *config.Fixtures) (*Perceptron, error) {
	return viz.NewPerceptronFromFixtures(f)
}

// Embedding

// Embedding is the embedding + positional encoding widget.
type Embedding = viz.Embedding

// EmbeddingView is the embedding widget's derived state.
type EmbeddingView = viz.EmbeddingView

// NewEmbedding creates an embedding widget.
func NewEmbedding(tokens []string, vectors [][]float64, dim int) (*Embedding, error) {
	return viz.NewEmbedding(tokens, vectors, dim)
}

// Attention

// Attention is the self-attention widget controller.
type Attention = viz.Attention

// AttentionConfig holds the inputs of an attention widget.
type AttentionConfig = viz.AttentionConfig

// AttentionView is the attention widget's derived state.
type AttentionView = viz.AttentionView

// NewAttention creates an attention widget.
func NewAttention(cfg AttentionConfig) (*Attention, error) {
	return viz.NewAttention(cfg)
}

// HeatIntensity maps an attention weight to a heat-map opacity in [0.1, 0.9].
func HeatIntensity(w, maxW float64) float64 {
	return viz.HeatIntensity(w, maxW)
}

// Multi-head, feed-forward, forward pass and architecture

// MultiHead is the multi-head demo controller.
type MultiHead = viz.MultiHead

// HeadView is the multi-head widget's derived state.
type HeadView = viz.HeadView

// FeedForward is the feed-forward widget controller.
type FeedForward = viz.FeedForward

// NewFeedForward creates a feed-forward widget with input x.
func NewFeedForward(x float64) *FeedForward {
	return viz.NewFeedForward(x)
}

// ForwardPass is the forward-pass narrator.
type ForwardPass = viz.ForwardPass

// StepView is the narrator's derived state.
type StepView = viz.StepView

// StepStatus is the display status of a narration step.
type StepStatus = viz.StepStatus

// Step statuses.
const (
	StepPending = viz.StepPending
	StepCurrent = viz.StepCurrent
	StepDone    = viz.StepDone
)

// Architecture is the architecture diagram controller.
type Architecture = viz.Architecture

// Transformer

// Transformer is the tabbed Transformer explainer.
type Transformer = viz.Transformer

// Tab identifies a Transformer explainer tab.
type Tab = viz.Tab

// Tabs.
const (
	TabOverview    = viz.TabOverview
	TabEmbedding   = viz.TabEmbedding
	TabAttention   = viz.TabAttention
	TabMultiHead   = viz.TabMultiHead
	TabFeedForward = viz.TabFeedForward
	TabForwardPass = viz.TabForwardPass
)

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return viz.Tabs()
}

// ParseTab returns the tab with the given id.
func ParseTab(id string) (Tab, error) {
	return viz.ParseTab(id)
}

// NewTransformer builds the tabbed explainer from fixtures.
func NewTransformer(f *config.Fixtures) (*Transformer, error) {
	return viz.NewTransformer(f)
}
