package viz

import (
	"fmt"

	"github.com/neuroviz/neuroviz/internal/config"
)

// StepStatus is the progress state of one forward-pass step.
type StepStatus int

// Step statuses.
const (
	StepPending StepStatus = iota
	StepCurrent
	StepDone
)

// String returns the status name.
func (s StepStatus) String() string {
	switch s {
	case StepPending:
		return "pending"
	case StepCurrent:
		return "current"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("StepStatus(%d)", int(s))
	}
}

// StepView is the current step of the forward-pass walkthrough.
type StepView struct {
	Index       int
	Count       int
	Title       string
	Description string
	Visual      string
	Progress    string       // "Step 3 of 9"
	Statuses    []StepStatus // One per step, for the progress bar
	CanPrev     bool
	CanNext     bool
}

// ForwardPass is the controller of the step-by-step forward-pass narration.
type ForwardPass struct {
	steps    []config.Step
	selected *Selector
}

// NewForwardPass creates the narrator over steps.
func NewForwardPass(steps []config.Step) (*ForwardPass, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("NewForwardPass: %w: no steps", config.ErrInvalidFixture)
	}
	return &ForwardPass{
		steps:    append([]config.Step(nil), steps...),
		selected: NewSelector(len(steps)),
	}, nil
}

// NewForwardPassFromFixtures creates the narrator over the fixture steps.
func NewForwardPassFromFixtures(f *config.Fixtures) (*ForwardPass, error) {
	return NewForwardPass(f.ForwardPass)
}

// SetStep jumps to step i.
func (f *ForwardPass) SetStep(i int) (StepView, error) {
	if err := f.selected.Set(i); err != nil {
		return f.View(), fmt.Errorf("ForwardPass.SetStep: %w", err)
	}
	return f.View(), nil
}

// Next advances one step; on the last step it does nothing.
func (f *ForwardPass) Next() StepView {
	f.selected.Next()
	return f.View()
}

// Prev goes back one step; on the first step it does nothing.
func (f *ForwardPass) Prev() StepView {
	f.selected.Prev()
	return f.View()
}

// Step returns the current step index.
func (f *ForwardPass) Step() int {
	return f.selected.Index()
}

// Titles returns every step title in order.
func (f *ForwardPass) Titles() []string {
	titles := make([]string, len(f.steps))
	for i, s := range f.steps {
		titles[i] = s.Title
	}
	return titles
}

// View returns the current step.
func (f *ForwardPass) View() StepView {
	i := f.selected.Index()
	s := f.steps[i]

	statuses := make([]StepStatus, len(f.steps))
	for j := range statuses {
		switch {
		case j < i:
			statuses[j] = StepDone
		case j == i:
			statuses[j] = StepCurrent
		default:
			statuses[j] = StepPending
		}
	}

	return StepView{
		Index:       i,
		Count:       len(f.steps),
		Title:       s.Title,
		Description: s.Description,
		Visual:      s.Visual,
		Progress:    fmt.Sprintf("Step %d of %d", i+1, len(f.steps)),
		Statuses:    statuses,
		CanPrev:     !f.selected.AtFirst(),
		CanNext:     !f.selected.AtLast(),
	}
}

// Reset returns to the first step.
func (f *ForwardPass) Reset() StepView {
	f.selected.Reset()
	return f.View()
}
