package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kbportal/internal/content"

	"github.com/spf13/cobra"
)

var seedOverwrite bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the seed documents into the redis content store",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedOverwrite, "overwrite", false, "Replace documents that already exist")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if cfg.ContentSource != "redis" {
		return errors.New("seed needs CONTENT_SOURCE=redis")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src := content.NewRedisSource(cfg.RedisAddr, content.RedisPrefix)
	defer src.Close()

	n, err := src.Seed(ctx, content.SeedContent(), seedOverwrite)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d documents\n", n)
	return err
}
