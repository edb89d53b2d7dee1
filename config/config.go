// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config provides the example data the widgets run on.
//
// Example:
//
//	f, err := config.Load("fixtures.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tr, err := viz.NewTransformer(f)
package config

import "github.com/neuroviz/neuroviz/internal/config"

// Fixtures is the complete set of widget example data.
type Fixtures = config.Fixtures

// Fixture sections.
type (
	Perceptron  = config.Perceptron
	Embedding   = config.Embedding
	Attention   = config.Attention
	Head        = config.Head
	FeedForward = config.FeedForward
	Step        = config.Step
	Block       = config.Block
)

// ErrInvalidFixture is returned when fixture data is inconsistent.
var ErrInvalidFixture = config.ErrInvalidFixture

// Default returns the built-in fixtures ("I love AI").
func Default() *Fixtures {
	return config.Default()
}

// Load reads and validates fixtures from a YAML file.
func Load(path string) (*Fixtures, error) {
	return config.Load(path)
}

// Parse decodes and validates fixtures from YAML.
func Parse(data []byte) (*Fixtures, error) {
	return config.Parse(data)
}
