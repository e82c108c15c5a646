// Package export writes tabular page data as CSV or XLSX.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnknownFormat = errors.New("unknown export format")

// utf8BOM lets spreadsheet software detect UTF-8 in CSV files.
const utf8BOM = "\ufeff"

// Table is a header row plus string cells, already formatted for display.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

// ParseFormat accepts csv or xlsx, case-insensitively. Empty means csv.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName is base with the format's extension.
func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

func Write(w io.Writer, format Format, t Table) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatXLSX:
		return WriteXLSX(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func WriteCSV(w io.Writer, t Table) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// WriteXLSX writes the table to a single-sheet workbook with a bold,
// frozen header row.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := setRow(f, sheet, 1, t.Headers); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if len(t.Headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("failed to create header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header range: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to set row %d: %w", row, err)
	}
	return nil
}
