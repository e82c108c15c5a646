package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lull-backoffice/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// execute runs backofficectl with captured output against the seed data.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("DB_DSN", "")

	// Cobra parses into package-level variables; reset them between runs.
	for _, v := range filterValues {
		*v = ""
	}
	exportFormat = "csv"
	exportOutput = ""
	summaryJSON = false

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(append(args, "--reference-date", "2025-05-01"))

	err = rootCmd.Execute()

	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
	return outBuf.String(), errBuf.String(), err
}

func TestListBilling(t *testing.T) {
	out, _, err := execute(t, "list", "billing", "--approval", "draft,pending")
	require.NoError(t, err)

	var view struct {
		Rows    []struct{ ID string } `json:"rows"`
		Summary struct {
			TotalAmountLabel string `json:"totalAmountLabel"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Len(t, view.Rows, 2)
	assert.Equal(t, "￥6,300,000", view.Summary.TotalAmountLabel)
}

func TestListUnknownPage(t *testing.T) {
	_, _, err := execute(t, "list", "payroll")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown page")
}

func TestExportCSVToStdout(t *testing.T) {
	out, _, err := execute(t, "export", "contracts", "--planned", "future", "--output", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4, "header plus three contracts still running")
}

func TestExportXLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.xlsx")
	_, stderr, err := execute(t, "export", "customers", "--format", "xlsx", "--output", path, "--department", "管理事業部")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote 2 rows")

	_, err = os.Stat(path)
	require.NoError(t, err)
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("顧客")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "export", "billing", "--format", "pdf", "--output", "-")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	out, _, err := execute(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "差戻し 1件")
	assert.Contains(t, out, "総額 630万円")
	assert.Contains(t, out, "/billing?approval=draft,pending")
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error { return f.closeErr }

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	table := export.Table{Sheet: "請求", Headers: []string{"請求ID"}, Rows: [][]string{{"BL-2409-0012"}}}

	w := &failingCloser{closeErr: errors.New("disk full")}
	err := writeAndClose(w, export.FormatCSV, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	ok := &failingCloser{}
	require.NoError(t, writeAndClose(ok, export.FormatCSV, table))
	assert.Contains(t, ok.String(), "BL-2409-0012")
}

func TestExportMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "billing.csv")
	_, stderr, err := execute(t, "export", "billing", "-o", path)
	require.Error(t, err)
	assert.NotContains(t, stderr, "wrote")
}
