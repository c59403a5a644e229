package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordmorph/wordmorph/pkg/dict"
	"github.com/wordmorph/wordmorph/pkg/metric"
	"github.com/wordmorph/wordmorph/pkg/render"
	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	length      int      // word length to export
	maxDistance int      // edge distance bound
	format      string   // dot, svg, or png
	output      string   // output file path (stdout for dot if empty)
	highlight   []string // words to emphasize
	showWeights bool     // label edges with weights
}

// newGraphCmd creates the graph export command.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{length: 3, maxDistance: 1, format: "dot"}

	cmd := &cobra.Command{
		Use:   "graph <dictionary.dic>",
		Short: "Export a word graph as DOT, SVG, or PNG",
		Long: `Graph builds the word graph for one word length and writes it in the
requested format. DOT output goes to stdout unless --output is set; SVG and
PNG always require --output.

Examples:
  wordmorph graph words.dic --length 3
  wordmorph graph words.dic --length 4 --max-distance 2 --format svg -o graph.svg
  wordmorph graph words.dic --highlight cat,dog --show-weights`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", opts.length, "word length to export")
	cmd.Flags().IntVarP(&opts.maxDistance, "max-distance", "d", opts.maxDistance, "maximum substitution distance for edges")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, or png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "words to emphasize (comma-separated)")
	cmd.Flags().BoolVar(&opts.showWeights, "show-weights", false, "label edges with weights")

	return cmd
}

func runGraph(cmd *cobra.Command, dictPath string, opts graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format := strings.ToLower(opts.format)
	switch format {
	case "dot", "svg", "png":
	default:
		return fmt.Errorf("unsupported format %q (want dot, svg, or png)", opts.format)
	}
	if format != "dot" && opts.output == "" {
		return fmt.Errorf("%s output requires --output", format)
	}

	words, err := dict.LoadWords(dictPath)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	g, err := buildLengthGraph(words, opts.length, opts.maxDistance)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("dictionary has no words of length %d", opts.length)
	}
	p.done(fmt.Sprintf("Built graph with %d words and %d edges", g.Len(), g.EdgeCount()))

	dot := render.ToDOT(g, render.Options{
		Highlight:   opts.highlight,
		ShowWeights: opts.showWeights,
	})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(ctx, dot)
	case "png":
		data, err = render.RenderPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if opts.output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printSuccess("Exported %s graph", format)
	printFile(opts.output)
	return nil
}

// buildLengthGraph constructs the graph over words of one length.
// Returns nil when the dictionary has no words of that length.
func buildLengthGraph(words []string, length, maxDistance int) (*wordgraph.Graph, error) {
	var group []string
	for _, w := range words {
		if len(w) == length {
			group = append(group, w)
		}
	}
	if len(group) == 0 {
		return nil, nil
	}
	return wordgraph.Build(group, maxDistance, metric.Hamming)
}
