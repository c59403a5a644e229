package cli

import (
	"github.com/spf13/cobra"

	"github.com/wordmorph/wordmorph/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string // listen address
	maxDistance int    // edge distance bound for all graphs
}

// newServeCmd creates the serve command.
func newServeCmd(configPath *string) *cobra.Command {
	opts := serveOpts{addr: ":8080", maxDistance: 1}

	cmd := &cobra.Command{
		Use:   "serve <dictionary.dic>",
		Short: "Serve path queries over HTTP",
		Long: `Serve loads the dictionary and answers queries at
GET /api/path?from=<word>&to=<word>. Graphs are built on first use per word
length, all with the same --max-distance bound.

The server runs until interrupted and shuts down gracefully.

Examples:
  wordmorph serve words.dic
  wordmorph serve words.dic --addr :9000 --max-distance 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args[0], *configPath, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().IntVarP(&opts.maxDistance, "max-distance", "d", opts.maxDistance, "maximum substitution distance for edges")

	return cmd
}

func runServe(cmd *cobra.Command, dictPath, configPath string, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	c, err := cfg.openCache(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	srv, err := server.New(server.Options{
		Addr:        opts.addr,
		DictPath:    dictPath,
		MaxDistance: opts.maxDistance,
		Cache:       c,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
