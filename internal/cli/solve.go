package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordmorph/wordmorph/pkg/dict"
	apperrors "github.com/wordmorph/wordmorph/pkg/errors"
	"github.com/wordmorph/wordmorph/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	output  string // output file path (stdout if empty)
	workers int    // solve concurrency (0 = from config or auto)
	refresh bool   // bypass the path-result cache
	noCache bool   // disable the cache entirely
}

// newSolveCmd creates the solve command.
//
// The dictionary file lists one word per line. The pairs file lists one
// query per line: source word, destination word, and a distance bound.
func newSolveCmd(configPath *string) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <dictionary.dic> <pairs.pal>",
		Short: "Answer word-transformation queries from a pairs file",
		Long: `Solve reads a dictionary and a query file, builds one graph per word
length that the queries need, and writes the cheapest transformation path for
every query.

Each output block starts with the source word and the total cost (-1 when no
path exists), followed by the remaining words on the path.

Examples:
  wordmorph solve words.dic queries.pal
  wordmorph solve words.dic queries.pal -o answers.path
  wordmorph solve words.dic queries.pal --workers 4 --refresh`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], args[1], *configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "solve concurrency (0 = auto)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached answers")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the answer cache")

	return cmd
}

func runSolve(cmd *cobra.Command, dictPath, pairsPath, configPath string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if opts.noCache {
		cfg.Cache.Disabled = true
	}
	workers := opts.workers
	if workers == 0 {
		workers = cfg.workers()
	}

	c, err := cfg.openCache(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	spinner := newSpinnerWithContext(ctx, "Solving queries...")
	spinner.Start()

	runner := pipeline.NewRunner(c, nil, logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		DictPath:  dictPath,
		PairsPath: pairsPath,
		Workers:   workers,
		Refresh:   opts.refresh,
		Logger:    logger,
	})
	if err != nil {
		spinner.StopWithError(apperrors.UserMessage(err))
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Solved %d queries", len(res.Answers)))
	printStats(len(res.Answers), res.Stats.CacheHits)

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := dict.WriteAnswers(out, res.Answers); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}
	if opts.output != "" {
		printFile(opts.output)
	}

	logger.Debug("pipeline timings",
		"scan", res.Stats.ScanTime,
		"build", res.Stats.BuildTime,
		"solve", res.Stats.SolveTime)
	return nil
}
