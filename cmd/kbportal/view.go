package main

import (
	"context"
	"fmt"

	"kbportal/internal/content"
	"kbportal/internal/termview"

	"github.com/spf13/cobra"
)

var viewStyle string

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Render a catalog document in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewStyle, "style", "", "glamour style (dark, light, notty); default detects the terminal")
}

func runView(cmd *cobra.Command, args []string) error {
	id := args[0]

	doc, ok := content.NewCatalog(content.SeedDocuments()).Get(id)
	if !ok {
		return fmt.Errorf("document %s not found", id)
	}

	src, err := content.NewSource(cfg, logger)
	if err != nil {
		return err
	}

	c, err := src.Fetch(context.Background(), id)
	if err != nil {
		return err
	}

	out, err := termview.Document(doc, c.Content, viewStyle, 100)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
