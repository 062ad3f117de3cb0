package main

import (
	"fmt"
	"os"

	"kbportal/internal/config"
	"kbportal/internal/observability"

	"github.com/spf13/cobra"
)

var (
	configPath string

	cfg    *config.Config
	logger *observability.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kbportal",
	Short: "Knowledge-base portal: documents, comparison, search and chat",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			cfg = config.Load()
		} else {
			var err error
			cfg, err = config.LoadFile(configPath)
			if err != nil {
				return err
			}
		}

		logger = observability.NewLogger(cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (env vars still override)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
