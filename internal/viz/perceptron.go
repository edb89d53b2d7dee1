package viz

import (
	"fmt"
	"math"

	"github.com/neuroviz/neuroviz/internal/config"
	"github.com/neuroviz/neuroviz/internal/nn"
)

// Range is the span and granularity of a slider.
type Range struct {
	Min, Max, Step float64
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Slider ranges of the perceptron widget. Controllers do not clamp; the
// ranges are for the presentation layer.
var (
	InputRange  = Range{Min: 0, Max: 1, Step: 0.01}
	WeightRange = Range{Min: -1, Max: 1, Step: 0.01}
	BiasRange   = Range{Min: -1, Max: 1, Step: 0.01}
)

// Connection is the derived state of one input → sum edge.
type Connection struct {
	Input        float64
	Weight       float64
	Contribution float64 // Input * Weight
	Excitatory   bool    // Weight >= 0
}

// PerceptronView is everything the perceptron widget renders.
type PerceptronView struct {
	Inputs      []float64
	Weights     []float64
	Bias        float64
	Sum         float64
	Output      float64
	Activated   bool
	Connections []Connection
}

// Perceptron is the controller of the perceptron widget.
type Perceptron struct {
	defaults nn.Perceptron
	state    nn.Perceptron
	view     PerceptronView
}

// NewPerceptron creates a controller with the given initial state.
//
// Returns a ShapeError if inputs and weights differ in length.
func NewPerceptron(inputs, weights []float64, bias float64) (*Perceptron, error) {
	defaults := nn.Perceptron{
		Inputs:  cloneFloats(inputs),
		Weights: cloneFloats(weights),
		Bias:    bias,
	}
	p := &Perceptron{defaults: defaults}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPerceptronFromFixtures creates a controller from the perceptron fixture.
func NewPerceptronFromFixtures(f *config.Fixtures) (*Perceptron, error) {
	return NewPerceptron(f.Perceptron.Inputs, f.Perceptron.Weights, f.Perceptron.Bias)
}

// SetInput replaces inputs[i].
func (p *Perceptron) SetInput(i int, v float64) (PerceptronView, error) {
	if i < 0 || i >= len(p.state.Inputs) {
		return p.View(), indexError("Perceptron.SetInput", i, len(p.state.Inputs))
	}
	p.state.Inputs[i] = v
	return p.recompute()
}

// SetWeight replaces weights[i].
func (p *Perceptron) SetWeight(i int, v float64) (PerceptronView, error) {
	if i < 0 || i >= len(p.state.Weights) {
		return p.View(), indexError("Perceptron.SetWeight", i, len(p.state.Weights))
	}
	p.state.Weights[i] = v
	return p.recompute()
}

// SetBias replaces the bias.
func (p *Perceptron) SetBias(v float64) PerceptronView {
	p.state.Bias = v
	return p.mustRecompute()
}

// Compute returns the current weighted sum and output.
func (p *Perceptron) Compute() nn.PerceptronResult {
	return nn.PerceptronResult{Sum: p.view.Sum, Output: p.view.Output}
}

// View returns a copy of the current derived state.
func (p *Perceptron) View() PerceptronView {
	v := p.view
	v.Inputs = cloneFloats(v.Inputs)
	v.Weights = cloneFloats(v.Weights)
	v.Connections = append([]Connection(nil), v.Connections...)
	return v
}

// Reset restores the construction-time state.
func (p *Perceptron) Reset() PerceptronView {
	if err := p.reset(); err != nil {
		panic(fmt.Sprintf("Perceptron: defaults accepted by NewPerceptron no longer compute: %v", err))
	}
	return p.View()
}

func (p *Perceptron) reset() error {
	p.state = nn.Perceptron{
		Inputs:  cloneFloats(p.defaults.Inputs),
		Weights: cloneFloats(p.defaults.Weights),
		Bias:    p.defaults.Bias,
	}
	_, err := p.recompute()
	return err
}

// mustRecompute is recompute for callers that cannot change the input or
// weight count. NewPerceptron rejected unequal lengths, so an error here is a
// broken invariant.
func (p *Perceptron) mustRecompute() PerceptronView {
	view, err := p.recompute()
	if err != nil {
		panic(fmt.Sprintf("Perceptron: %d inputs and %d weights after construction: %v",
			len(p.state.Inputs), len(p.state.Weights), err))
	}
	return view
}

func (p *Perceptron) recompute() (PerceptronView, error) {
	res, err := p.state.Compute()
	if err != nil {
		return PerceptronView{}, err
	}
	contrib, err := p.state.Contributions()
	if err != nil {
		return PerceptronView{}, err
	}

	conns := make([]Connection, len(contrib))
	for i := range conns {
		conns[i] = Connection{
			Input:        p.state.Inputs[i],
			Weight:       p.state.Weights[i],
			Contribution: contrib[i],
			Excitatory:   p.state.Weights[i] >= 0,
		}
	}

	p.view = PerceptronView{
		Inputs:      cloneFloats(p.state.Inputs),
		Weights:     cloneFloats(p.state.Weights),
		Bias:        p.state.Bias,
		Sum:         res.Sum,
		Output:      res.Output,
		Activated:   res.Activated(),
		Connections: conns,
	}
	return p.View(), nil
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
