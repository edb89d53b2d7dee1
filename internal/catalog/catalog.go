// Package catalog holds the static list of visualizations offered by the site.
//
// The catalog is content metadata for routing and listing pages. The numeric
// widgets never read it; the Widget field only names which controller, if
// any, renders a slug.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Common errors.
var (
	ErrNotFound = errors.New("visualization not found")
	ErrInvalid  = errors.New("invalid catalog")
)

// Category groups visualizations by topic.
type Category string

// Categories.
const (
	CategoryBasics     Category = "basics"
	CategoryCNN        Category = "cnn"
	CategoryRNN        Category = "rnn"
	CategoryAttention  Category = "attention"
	CategoryGenerative Category = "generative"
)

// Difficulty is the audience tier of a visualization.
type Difficulty string

// Difficulty tiers.
const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Visualization describes one catalog entry.
type Visualization struct {
	Slug        string     `yaml:"slug"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Category    Category   `yaml:"category"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Premium     bool       `yaml:"premium"`
	Widget      string     `yaml:"widget,omitempty"` // Interactive controller name; empty means "coming soon"
}

// Interactive reports whether a widget renders this entry.
func (v Visualization) Interactive() bool {
	return v.Widget != ""
}

// Catalog is an ordered, immutable list of visualizations.
type Catalog struct {
	entries []Visualization
	bySlug  map[string]int
}

//go:embed visualizations.yaml
var visualizationsYAML []byte

// Default returns the built-in catalog.
//
// Panics if the embedded file is invalid, which is a build defect.
func Default() *Catalog {
	c, err := Parse(visualizationsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded visualizations: %v", err))
	}
	return c
}

// Parse decodes a YAML list of visualizations and validates it.
func Parse(data []byte) (*Catalog, error) {
	var entries []Visualization
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(entries)
}

// New builds a catalog from entries, preserving their order.
//
// Slugs must be unique and non-empty; category and difficulty must be one of
// the known values.
func New(entries []Visualization) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Visualization, len(entries)),
		bySlug:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, v := range c.entries {
		if v.Slug == "" {
			return nil, fmt.Errorf("%w: entry %d has no slug", ErrInvalid, i)
		}
		if _, dup := c.bySlug[v.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalid, v.Slug)
		}
		if !v.Category.valid() {
			return nil, fmt.Errorf("%w: %q: unknown category %q", ErrInvalid, v.Slug, v.Category)
		}
		if !v.Difficulty.valid() {
			return nil, fmt.Errorf("%w: %q: unknown difficulty %q", ErrInvalid, v.Slug, v.Difficulty)
		}
		c.bySlug[v.Slug] = i
	}
	return c, nil
}

// All returns every entry in catalog order.
func (c *Catalog) All() []Visualization {
	out := make([]Visualization, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry for slug.
func (c *Catalog) Lookup(slug string) (Visualization, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Visualization{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return c.entries[i], nil
}

// ByCategory returns the entries in category, in catalog order.
func (c *Catalog) ByCategory(category Category) []Visualization {
	return c.filter(func(v Visualization) bool { return v.Category == category })
}

// Free returns the entries available without a premium plan.
func (c *Catalog) Free() []Visualization {
	return c.filter(func(v Visualization) bool { return !v.Premium })
}

func (c *Catalog) filter(keep func(Visualization) bool) []Visualization {
	var out []Visualization
	for _, v := range c.entries {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c Category) valid() bool {
	switch c {
	case CategoryBasics, CategoryCNN, CategoryRNN, CategoryAttention, CategoryGenerative:
		return true
	}
	return false
}

func (d Difficulty) valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}
