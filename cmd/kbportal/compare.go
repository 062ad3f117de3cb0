package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"kbportal/internal/compare"
	"kbportal/internal/comparison"
	"kbportal/internal/content"
	"kbportal/internal/termview"

	"github.com/spf13/cobra"
)

var (
	compareMode  string
	comparePatch bool
	compareFiles bool
	compareWidth int
)

var compareCmd = &cobra.Command{
	Use:   "compare <left> <right>",
	Short: "Compare two documents line by line",
	Long: `Compare two documents by id from the configured content source, or two
local files with --files. --patch prints a unified patch instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareMode, "mode", "m", string(compare.SideBySide), "side-by-side or unified")
	compareCmd.Flags().BoolVar(&comparePatch, "patch", false, "Print a unified patch")
	compareCmd.Flags().BoolVar(&compareFiles, "files", false, "Treat arguments as file paths")
	compareCmd.Flags().IntVar(&compareWidth, "width", 120, "Terminal width")
}

func runCompare(cmd *cobra.Command, args []string) error {
	mode, err := compare.ParseMode(compareMode)
	if err != nil {
		return err
	}

	leftName, rightName := args[0], args[1]

	var left, right string
	if compareFiles {
		if left, err = readFile(leftName); err != nil {
			return err
		}
		if right, err = readFile(rightName); err != nil {
			return err
		}
		leftName, rightName = filepath.Base(leftName), filepath.Base(rightName)
	} else {
		src, err := content.NewSource(cfg, logger)
		if err != nil {
			return err
		}

		docs, err := comparison.NewService(src, logger).Load(context.Background(), leftName, rightName)
		if err != nil {
			return err
		}
		left, right = docs.Left, docs.Right
	}

	out := cmd.OutOrStdout()
	if comparePatch {
		_, err = fmt.Fprint(out, compare.Patch(leftName, rightName, left, right))
		return err
	}

	res := compare.Compare(left, right)
	_, err = fmt.Fprint(out, termview.Comparison(leftName, rightName, res, mode, compareWidth))
	return err
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
