package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dashboard KPI cards",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output in JSON format")
}

func runSummary(cmd *cobra.Command, args []string) error {
	b, err := resolveBackoffice(cmd)
	if err != nil {
		return err
	}
	cards, err := b.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	if summaryJSON {
		return printJSON(cmd.OutOrStdout(), cards)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KPI\tVALUE\tNOTE\tLINK")
	for _, c := range cards {
		note := "-"
		if c.Chip != nil {
			note = c.Chip.Label
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Title, c.Value, note, c.Href)
	}
	return w.Flush()
}
