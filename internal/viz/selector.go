// Package viz implements the controllers behind the interactive widgets.
//
// Each controller owns its widget's state exclusively. Mutating methods
// recompute the derived quantities synchronously and return the new view, so
// a caller never observes a view that lags the state. Controllers are not
// safe for concurrent use; a widget lives on one UI event loop.
package viz

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownID       = errors.New("unknown id")
)

func indexError(op string, i, n int) error {
	return fmt.Errorf("%s: %w: %d not in [0, %d)", op, ErrIndexOutOfRange, i, n)
}

// Selector is a bounded index over a fixed number of items.
//
// Set rejects indices outside [0, count). Next and Prev move one step and
// stop at the ends instead of wrapping.
type Selector struct {
	index int
	count int
}

// NewSelector creates a selector over count items, starting at 0.
//
// Panics if count <= 0.
func NewSelector(count int) *Selector {
	if count <= 0 {
		panic(fmt.Sprintf("Selector: count must be positive, got %d", count))
	}
	return &Selector{count: count}
}

// Index returns the current index.
func (s *Selector) Index() int { return s.index }

// Count returns the number of items.
func (s *Selector) Count() int { return s.count }

// Set moves to index i.
func (s *Selector) Set(i int) error {
	if i < 0 || i >= s.count {
		return indexError("Selector.Set", i, s.count)
	}
	s.index = i
	return nil
}

// Next advances one item; it is a no-op on the last item.
func (s *Selector) Next() int {
	if s.index < s.count-1 {
		s.index++
	}
	return s.index
}

// Prev goes back one item; it is a no-op on the first item.
func (s *Selector) Prev() int {
	if s.index > 0 {
		s.index--
	}
	return s.index
}

// AtFirst reports whether the first item is selected.
func (s *Selector) AtFirst() bool { return s.index == 0 }

// AtLast reports whether the last item is selected.
func (s *Selector) AtLast() bool { return s.index == s.count-1 }

// Reset returns to the first item.
func (s *Selector) Reset() { s.index = 0 }
