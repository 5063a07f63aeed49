package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yanqian/notes-assistant/internal/infra/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "notes-assistant",
		Short:        "Summarize meeting notes and turn lecture notes into study notes with a generative model",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), config.Path(configPath))
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (defaults to $CONFIG_PATH, then configs/config.yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), config.Path(configPath))
			},
		},
		newSummarizeCmd(&configPath),
		newGenerateNotesCmd(&configPath),
	)
	return root
}

func serve(ctx context.Context, path config.Path) error {
	app, err := initializeApp(path)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
