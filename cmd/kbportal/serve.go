package main

import (
	"context"
	"os/signal"
	"syscall"

	"kbportal/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := app.NewServer(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.Start(ctx)
}
