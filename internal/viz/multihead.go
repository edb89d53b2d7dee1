package viz

import (
	"fmt"

	"github.com/neuroviz/neuroviz/internal/config"
)

// HeadView is the active head of the multi-head widget.
type HeadView struct {
	Index    int
	Count    int
	Name     string
	Focus    string
	Example  string
	Tokens   []string
	Weights  []float64
	Percents []float64 // Weights * 100, for the bar widths
}

// MultiHead is the controller of the multi-head widget.
//
// The head table is illustrative data; selecting a head is a lookup.
type MultiHead struct {
	tokens   []string
	heads    []config.Head
	selected *Selector
}

// NewMultiHead creates the widget over heads, each with one weight in [0, 1]
// per token.
func NewMultiHead(tokens []string, heads []config.Head) (*MultiHead, error) {
	if len(heads) == 0 {
		return nil, fmt.Errorf("NewMultiHead: %w: no heads", config.ErrInvalidFixture)
	}
	table := make([]config.Head, len(heads))
	for i, h := range heads {
		if len(h.Weights) != len(tokens) {
			return nil, fmt.Errorf("NewMultiHead: head %d has %d weights for %d tokens: %w",
				i, len(h.Weights), len(tokens), config.ErrInvalidFixture)
		}
		for j, w := range h.Weights {
			if !(w >= 0 && w <= 1) {
				return nil, fmt.Errorf("NewMultiHead: head %d weight %d is %g, want [0, 1]: %w",
					i, j, w, config.ErrInvalidFixture)
			}
		}
		h.Weights = cloneFloats(h.Weights)
		table[i] = h
	}
	return &MultiHead{
		tokens:   append([]string(nil), tokens...),
		heads:    table,
		selected: NewSelector(len(table)),
	}, nil
}

// NewMultiHeadFromFixtures creates the widget over the fixture head table.
func NewMultiHeadFromFixtures(f *config.Fixtures) (*MultiHead, error) {
	return NewMultiHead(f.Tokens, f.Heads)
}

// SelectHead activates head i.
func (m *MultiHead) SelectHead(i int) (HeadView, error) {
	if err := m.selected.Set(i); err != nil {
		return m.View(), fmt.Errorf("MultiHead.SelectHead: %w", err)
	}
	return m.View(), nil
}

// Active returns the active head index.
func (m *MultiHead) Active() int {
	return m.selected.Index()
}

// Names returns the head names in order.
func (m *MultiHead) Names() []string {
	names := make([]string, len(m.heads))
	for i, h := range m.heads {
		names[i] = h.Name
	}
	return names
}

// View returns the active head.
func (m *MultiHead) View() HeadView {
	i := m.selected.Index()
	h := m.heads[i]
	percents := make([]float64, len(h.Weights))
	for j, w := range h.Weights {
		percents[j] = w * 100
	}
	return HeadView{
		Index:    i,
		Count:    len(m.heads),
		Name:     h.Name,
		Focus:    h.Focus,
		Example:  h.Example,
		Tokens:   append([]string(nil), m.tokens...),
		Weights:  cloneFloats(h.Weights),
		Percents: percents,
	}
}

// Reset activates the first head again.
func (m *MultiHead) Reset() HeadView {
	m.selected.Reset()
	return m.View()
}
