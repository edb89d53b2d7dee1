package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/neuroviz/neuroviz/internal/catalog"
	"github.com/neuroviz/neuroviz/internal/config"
	"github.com/neuroviz/neuroviz/internal/tokenizer"
	"github.com/neuroviz/neuroviz/internal/viz"
)

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// fixturesFlag registers -fixtures on fs and returns a loader for it.
func fixturesFlag(fs *flag.FlagSet) func() (*config.Fixtures, error) {
	path := fs.String("fixtures", "", "YAML fixtures file (default: built-in)")
	return func() (*config.Fixtures, error) {
		if *path == "" {
			return config.Default(), nil
		}
		return config.Load(*path)
	}
}

func runPerceptron(args []string, out io.Writer) error {
	fs := newFlagSet("perceptron", out)
	load := fixturesFlag(fs)
	inputs := fs.String("inputs", "", "comma-separated input values")
	weights := fs.String("weights", "", "comma-separated weights")
	bias := fs.String("bias", "", "bias")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := load()
	if err != nil {
		return err
	}
	p := f.Perceptron
	if *inputs != "" {
		if p.Inputs, err = parseFloats(*inputs); err != nil {
			return fmt.Errorf("-inputs: %w", err)
		}
	}
	if *weights != "" {
		if p.Weights, err = parseFloats(*weights); err != nil {
			return fmt.Errorf("-weights: %w", err)
		}
	}
	if *bias != "" {
		if p.Bias, err = strconv.ParseFloat(*bias, 64); err != nil {
			return fmt.Errorf("-bias: %w", err)
		}
	}

	w, err := viz.NewPerceptron(p.Inputs, p.Weights, p.Bias)
	if err != nil {
		return err
	}
	v := w.View()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "input\tweight\tcontribution\tedge")
	for _, c := range v.Connections {
		edge := "inhibitory"
		if c.Excitatory {
			edge = "excitatory"
		}
		fmt.Fprintf(tw, "%.3f\t%.3f\t%.3f\t%s\n", c.Input, c.Weight, c.Contribution, edge)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "bias %.3f  sum %.3f  output %.0f  activated %t\n", v.Bias, v.Sum, v.Output, v.Activated)
	return err
}

func runAttention(args []string, out io.Writer) error {
	fs := newFlagSet("attention", out)
	load := fixturesFlag(fs)
	token := fs.Int("token", 0, "index of the selected token")
	causal := fs.Bool("causal", false, "mask attention to later tokens")
	text := fs.String("text", "", "relabel the tokens with the words of this text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := load()
	if err != nil {
		return err
	}
	if *text != "" {
		labels, err := tokenizer.Labels(tokenizer.NewWordTokenizerFromText(*text), *text)
		if err != nil {
			return err
		}
		if f, err = f.WithTokens(labels); err != nil {
			return err
		}
	}

	cfg := viz.AttentionConfigFromFixtures(f)
	cfg.Causal = *causal
	a, err := viz.NewAttention(cfg)
	if err != nil {
		return err
	}
	v, err := a.SelectToken(*token)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Query token: %q\n\n", v.Token)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "key\tscore\tweight\theat")
	for j, key := range v.Tokens {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.2f\n", key, v.Scores[v.Selected][j], v.Weights[j], v.Heat[j])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\noutput = %s\n       = %s\n", v.Formula, formatFloats(v.Output))
	return err
}

func runEmbedding(args []string, out io.Writer) error {
	fs := newFlagSet("embedding", out)
	load := fixturesFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := load()
	if err != nil {
		return err
	}
	e, err := viz.NewEmbeddingFromFixtures(f)
	if err != nil {
		return err
	}
	v := e.View()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "pos\ttoken\tembedding\tpositional\tfinal")
	for i, tok := range v.Tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, tok,
			formatFloats(v.Embeddings[i]), formatFloats(v.Positional[i]), formatFloats(v.Final[i]))
	}
	return tw.Flush()
}

func runFeedForward(args []string, out io.Writer) error {
	fs := newFlagSet("ffn", out)
	load := fixturesFlag(fs)
	x := fs.String("x", "", "input value (default: fixture)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := load()
	if err != nil {
		return err
	}
	ff := viz.NewFeedForwardFromFixtures(f)
	if *x != "" {
		v, err := strconv.ParseFloat(*x, 64)
		if err != nil {
			return fmt.Errorf("-x: %w", err)
		}
		ff.SetInput(v)
	}
	r := ff.View()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := []struct {
		stage string
		value float64
	}{
		{"input", r.Input},
		{"linear1", r.Linear1},
		{"relu", r.ReLU},
		{"linear2", r.Linear2},
		{"residual", r.Residual},
		{"normed", r.Normed},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%.4f\n", row.stage, row.value)
	}
	return tw.Flush()
}

func runMultiHead(args []string, out io.Writer) error {
	fs := newFlagSet("multihead", out)
	load := fixturesFlag(fs)
	head := fs.Int("head", 0, "index of the active head")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := load()
	if err != nil {
		return err
	}
	m, err := viz.NewMultiHeadFromFixtures(f)
	if err != nil {
		return err
	}
	v, err := m.SelectHead(*head)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%d of %d): %s, e.g. %s\n\n", v.Name, v.Index+1, v.Count, v.Focus, v.Example)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, tok := range v.Tokens {
		fmt.Fprintf(tw, "%s\t%.0f%%\t%s\n", tok, v.Percents[i], strings.Repeat("#", max(0, int(v.Percents[i]/5))))
	}
	return tw.Flush()
}

func runForward(args []string, out io.Writer) error {
	fs := newFlagSet("forward", out)
	load := fixturesFlag(fs)
	step := fs.Int("step", 0, "index of the current step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := load()
	if err != nil {
		return err
	}
	fp, err := viz.NewForwardPassFromFixtures(f)
	if err != nil {
		return err
	}
	v, err := fp.SetStep(*step)
	if err != nil {
		return err
	}

	for i, title := range fp.Titles() {
		marker := " "
		switch v.Statuses[i] {
		case viz.StepDone:
			marker = "x"
		case viz.StepCurrent:
			marker = ">"
		}
		fmt.Fprintf(out, "[%s] %s\n", marker, title)
	}
	_, err = fmt.Fprintf(out, "\n%s: %s\n%s\n%s\n", v.Progress, v.Title, v.Description, v.Visual)
	return err
}

func runCatalog(args []string, out io.Writer) error {
	fs := newFlagSet("catalog", out)
	category := fs.String("category", "", "only list this category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c := catalog.Default()
	entries := c.All()
	if *category != "" {
		entries = c.ByCategory(catalog.Category(*category))
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "slug\ttitle\tcategory\tdifficulty\tplan\tstatus")
	for _, e := range entries {
		plan := "free"
		if e.Premium {
			plan = "premium"
		}
		status := "coming soon"
		if e.Interactive() {
			status = "interactive"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Slug, e.Title, e.Category, e.Difficulty, plan, status)
	}
	return tw.Flush()
}

func runTokenize(args []string, out io.Writer) error {
	fs := newFlagSet("tokenize", out)
	encoding := fs.String("encoding", "word", "word, or a tiktoken encoding such as cl100k_base")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	if text == "" {
		return errors.New("missing text")
	}

	var tok tokenizer.Tokenizer
	if *encoding == "word" {
		tok = tokenizer.NewWordTokenizerFromText(text)
	} else {
		tt, err := tokenizer.NewTikToken(*encoding)
		if err != nil {
			return err
		}
		tok = tt
	}

	seq, err := tokenizer.Sequence(tok, text)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "pos\tid\ttoken")
	for i, t := range seq {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", i, t.ID, t.Label)
	}
	return tw.Flush()
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', 3, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
