package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wordmorph/wordmorph/pkg/buildinfo"
)

// Execute runs the wordmorph CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (solve, graph,
// serve, cache), configures logging based on the --verbose flag, and executes
// the command tree. The logger is attached to the context and accessible to
// all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "wordmorph",
		Short:        "Wordmorph finds cheapest transformation paths between words",
		Long:         `Wordmorph builds graphs over equal-length dictionary words, connects words within a letter-substitution distance bound, and answers shortest-path queries where each substitution costs the square of the distance.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")

	root.AddCommand(newSolveCmd(&configPath))
	root.AddCommand(newGraphCmd())
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newCacheCmd(&configPath))

	return root.ExecuteContext(ctx)
}
