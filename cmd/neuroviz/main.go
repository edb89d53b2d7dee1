// Package main provides the NeuroViz CLI.
//
// Each subcommand drives one widget controller and prints its view as text.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
)

const version = "v0.1.0"

type command struct {
	usage string
	run   func(args []string, out io.Writer) error
}

var commands = map[string]command{
	"version":    {usage: "Show version", run: runVersion},
	"perceptron": {usage: "Perceptron sum and activation [-inputs a,b,c -weights a,b,c -bias v]", run: runPerceptron},
	"attention":  {usage: "Self-attention for one token [-token i -causal -text \"a b c\"]", run: runAttention},
	"embedding":  {usage: "Token embeddings plus positional encodings", run: runEmbedding},
	"ffn":        {usage: "Feed-forward + residual walkthrough [-x v]", run: runFeedForward},
	"multihead":  {usage: "Illustrative attention head [-head i]", run: runMultiHead},
	"forward":    {usage: "Forward-pass narration [-step i]", run: runForward},
	"catalog":    {usage: "List visualizations [-category c]", run: runCatalog},
	"tokenize":   {usage: "Split text into tokens [-encoding word|cl100k_base|p50k_base] text", run: runTokenize},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("neuroviz: ")

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(2)
	}

	if err := cmd.run(os.Args[2:], os.Stdout); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "NeuroViz %s - interactive neural network visualizations\n\n", version)
	fmt.Fprintln(w, "Usage: neuroviz <command> [flags]")
	fmt.Fprintln(w, "\nCommands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-11s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(w, "\nEvery command except version, catalog and tokenize accepts -fixtures path.")
}

func runVersion(_ []string, out io.Writer) error {
	_, err := fmt.Fprintf(out, "NeuroViz %s\n", version)
	return err
}
