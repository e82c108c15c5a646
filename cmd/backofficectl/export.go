package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lull-backoffice/internal/export"
	"lull-backoffice/internal/service"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:       "export <page>",
	Short:     "Write a page's rows as CSV or XLSX",
	Long:      "Write a page's rows as CSV or XLSX. Pages: " + strings.Join(service.ExportPages, ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: service.ExportPages,
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default <page>.<format>, - for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	page := args[0]
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	b, err := resolveBackoffice(cmd)
	if err != nil {
		return err
	}
	table, err := b.Table(cmd.Context(), page, query())
	if err != nil {
		return fmt.Errorf("export %s: %w", page, err)
	}

	output := exportOutput
	if output == "" {
		output = format.FileName(page)
	}

	if output == "-" {
		return export.Write(cmd.OutOrStdout(), format, table)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := writeAndClose(f, format, table); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", len(table.Rows), output)
	return nil
}

// writeAndClose writes table to w and reports a failed close as a failed write.
func writeAndClose(w io.WriteCloser, format export.Format, table export.Table) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return export.Write(w, format, table)
}
