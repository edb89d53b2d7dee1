// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package catalog lists the visualizations offered by NeuroViz.
//
// Example:
//
//	c := catalog.Default()
//	for _, v := range c.ByCategory(catalog.CategoryAttention) {
//	    fmt.Println(v.Slug, v.Difficulty)
//	}
package catalog

import "github.com/neuroviz/neuroviz/internal/catalog"

// Catalog is an ordered, slug-indexed set of visualizations.
type Catalog = catalog.Catalog

// Visualization describes one catalog entry.
type Visualization = catalog.Visualization

// Category groups visualizations by topic.
type Category = catalog.Category

// Difficulty is the audience level of a visualization.
type Difficulty = catalog.Difficulty

// Categories.
const (
	CategoryBasics     = catalog.CategoryBasics
	CategoryCNN        = catalog.CategoryCNN
	CategoryRNN        = catalog.CategoryRNN
	CategoryAttention  = catalog.CategoryAttention
	CategoryGenerative = catalog.CategoryGenerative
)

// Difficulties.
const (
	Beginner     = catalog.Beginner
	Intermediate = catalog.Intermediate
	Advanced     = catalog.Advanced
)

// Errors.
var (
	ErrNotFound = catalog.ErrNotFound
	ErrInvalid  = catalog.ErrInvalid
)

// Default returns the built-in catalog.
func Default() *Catalog {
	return catalog.Default()
}

// Parse decodes and validates a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	return catalog.Parse(data)
}

// New validates entries and builds a catalog.
func New(entries []Visualization) (*Catalog, error) {
	return catalog.New(entries)
}
