package main

import (
	"fmt"
	"strings"

	"lull-backoffice/internal/service"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:       "list <page>",
	Short:     "Print a page's view as JSON",
	Long:      "Print a page's view as JSON. Pages: " + strings.Join(service.Pages, ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: service.Pages,
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	b, err := resolveBackoffice(cmd)
	if err != nil {
		return err
	}

	view, err := b.View(cmd.Context(), args[0], query())
	if err != nil {
		return fmt.Errorf("list %s: %w", args[0], err)
	}
	return printJSON(cmd.OutOrStdout(), view)
}
