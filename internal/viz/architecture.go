package viz

import (
	"fmt"

	"github.com/neuroviz/neuroviz/internal/config"
)

// Architecture is the controller of the encoder/decoder diagram.
//
// At most one block is hovered at a time; its description is shown in the
// side panel.
type Architecture struct {
	blocks  []config.Block
	byID    map[string]int
	hovered int // -1 when nothing is hovered
}

// NewArchitecture creates the diagram over blocks. Block ids must be unique.
func NewArchitecture(blocks []config.Block) (*Architecture, error) {
	a := &Architecture{
		blocks:  append([]config.Block(nil), blocks...),
		byID:    make(map[string]int, len(blocks)),
		hovered: -1,
	}
	for i, b := range a.blocks {
		if _, dup := a.byID[b.ID]; dup {
			return nil, fmt.Errorf("NewArchitecture: %w: duplicate block id %q", config.ErrInvalidFixture, b.ID)
		}
		a.byID[b.ID] = i
	}
	return a, nil
}

// NewArchitectureFromFixtures creates the diagram over the fixture blocks.
func NewArchitectureFromFixtures(f *config.Fixtures) (*Architecture, error) {
	return NewArchitecture(f.Architecture)
}

// Hover highlights block id.
func (a *Architecture) Hover(id string) (config.Block, error) {
	i, ok := a.byID[id]
	if !ok {
		return config.Block{}, fmt.Errorf("Architecture.Hover: %w: %q", ErrUnknownID, id)
	}
	a.hovered = i
	return a.blocks[i], nil
}

// Leave clears the highlight.
func (a *Architecture) Leave() {
	a.hovered = -1
}

// Hovered returns the highlighted block, if any.
func (a *Architecture) Hovered() (config.Block, bool) {
	if a.hovered < 0 {
		return config.Block{}, false
	}
	return a.blocks[a.hovered], true
}

// Blocks returns every block in diagram order.
func (a *Architecture) Blocks() []config.Block {
	return append([]config.Block(nil), a.blocks...)
}

// Reset clears the highlight.
func (a *Architecture) Reset() {
	a.Leave()
}
