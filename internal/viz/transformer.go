package viz

import (
	"fmt"

	"github.com/neuroviz/neuroviz/internal/config"
)

// Tab identifies one panel of the Transformer explainer.
type Tab int

// Tabs, in display order.
const (
	TabOverview Tab = iota
	TabEmbedding
	TabAttention
	TabMultiHead
	TabFeedForward
	TabForwardPass
	numTabs
)

var tabInfo = [numTabs]struct {
	id    string
	label string
}{
	TabOverview:    {"overview", "1. Architecture"},
	TabEmbedding:   {"embedding", "2. Embedding"},
	TabAttention:   {"attention", "3. Self-Attention"},
	TabMultiHead:   {"multihead", "4. Multi-Head"},
	TabFeedForward: {"ffn", "5. FFN + Residual"},
	TabForwardPass: {"forward", "6. Full Pass"},
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	tabs := make([]Tab, numTabs)
	for i := range tabs {
		tabs[i] = Tab(i)
	}
	return tabs
}

// ParseTab returns the tab with the given id.
func ParseTab(id string) (Tab, error) {
	for i, info := range tabInfo {
		if info.id == id {
			return Tab(i), nil
		}
	}
	return TabOverview, fmt.Errorf("ParseTab: %w: %q", ErrUnknownID, id)
}

// ID returns the tab's stable identifier.
func (t Tab) ID() string {
	if t < 0 || t >= numTabs {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabInfo[t].id
}

// Label returns the tab's display label.
func (t Tab) Label() string {
	if t < 0 || t >= numTabs {
		return t.ID()
	}
	return tabInfo[t].label
}

// String implements fmt.Stringer.
func (t Tab) String() string {
	return t.ID()
}

// Transformer is the controller of the multi-tab Transformer explainer.
//
// Each tab owns an independent widget. Only the active tab is mounted: when a
// tab is (re)selected its widget is reset to its defaults, so state does not
// carry over from an earlier visit.
type Transformer struct {
	Architecture *Architecture
	Embedding    *Embedding
	Attention    *Attention
	MultiHead    *MultiHead
	FeedForward  *FeedForward
	ForwardPass  *ForwardPass

	active Tab
}

// NewTransformer builds every tab's widget from fixtures, starting on the
// overview tab.
func NewTransformer(f *config.Fixtures) (*Transformer, error) {
	arch, err := NewArchitectureFromFixtures(f)
	if err != nil {
		return nil, err
	}
	emb, err := NewEmbeddingFromFixtures(f)
	if err != nil {
		return nil, err
	}
	attn, err := NewAttentionFromFixtures(f)
	if err != nil {
		return nil, err
	}
	heads, err := NewMultiHeadFromFixtures(f)
	if err != nil {
		return nil, err
	}
	steps, err := NewForwardPassFromFixtures(f)
	if err != nil {
		return nil, err
	}

	return &Transformer{
		Architecture: arch,
		Embedding:    emb,
		Attention:    attn,
		MultiHead:    heads,
		FeedForward:  NewFeedForwardFromFixtures(f),
		ForwardPass:  steps,
		active:       TabOverview,
	}, nil
}

// Active returns the active tab.
func (t *Transformer) Active() Tab {
	return t.active
}

// SelectTab activates the tab with the given id. An unknown id shows the
// overview tab.
func (t *Transformer) SelectTab(id string) Tab {
	tab, err := ParseTab(id)
	if err != nil {
		tab = TabOverview
	}
	t.Select(tab)
	return tab
}

// Select activates tab and remounts its widget. Out-of-range values show the
// overview tab.
func (t *Transformer) Select(tab Tab) {
	if tab < 0 || tab >= numTabs {
		tab = TabOverview
	}
	t.active = tab

	switch tab {
	case TabOverview:
		t.Architecture.Reset()
	case TabAttention:
		t.Attention.Reset()
	case TabMultiHead:
		t.MultiHead.Reset()
	case TabFeedForward:
		t.FeedForward.Reset()
	case TabForwardPass:
		t.ForwardPass.Reset()
	case TabEmbedding:
		// Stateless.
	}
}
