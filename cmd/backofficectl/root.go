package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"lull-backoffice/internal/database"
	"lull-backoffice/internal/logging"
	"lull-backoffice/internal/seed"
	"lull-backoffice/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var settings = viper.New()

// filterFlags maps CLI flags onto the query parameters the pages read.
var filterFlags = []struct {
	flag  string
	param string
	usage string
}{
	{"approval", "approval", "approval statuses, comma separated"},
	{"status", "status", "status filter (comma separated where the page allows)"},
	{"project", "project", "attendance project id"},
	{"alert", "alert", "attendance alert type: absent or work_error"},
	{"pto-status", "pto_status", "PTO request statuses, comma separated or all"},
	{"ot-status", "ot_status", "OT request statuses, comma separated or all"},
	{"planned", "planned", "contracts: future hides ended contracts"},
	{"q", "q", "customers: substring of name or id"},
	{"industry", "industry", "customers industry"},
	{"department", "department", "customers department"},
	{"category", "category", "master category key"},
}

var filterValues = map[string]*string{}

var rootCmd = &cobra.Command{
	Use:           "backofficectl",
	Short:         "Query the LULL back-office datasets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("dsn", "", "Postgres DSN (default $DB_DSN, empty serves seed data)")
	flags.String("reference-date", "", "fixed today as YYYY-MM-DD (default $REFERENCE_DATE)")
	flags.String("log-level", "warn", "log level")
	_ = settings.BindPFlag("DB_DSN", flags.Lookup("dsn"))
	_ = settings.BindPFlag("REFERENCE_DATE", flags.Lookup("reference-date"))
	_ = settings.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))
	settings.AutomaticEnv()

	for _, f := range filterFlags {
		filterValues[f.param] = flags.String(f.flag, "", f.usage)
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
}

// query collects the non-empty filter flags.
func query() url.Values {
	q := url.Values{}
	for param, v := range filterValues {
		if *v != "" {
			q.Set(param, *v)
		}
	}
	return q
}

func resolveBackoffice(cmd *cobra.Command) (*service.Backoffice, error) {
	logger, err := logging.New("backofficectl", logging.Config{
		Level:  settings.GetString("LOG_LEVEL"),
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	now := time.Now
	if raw := settings.GetString("REFERENCE_DATE"); raw != "" {
		ref, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid reference date %q: %w", raw, err)
		}
		now = func() time.Time { return ref }
	}

	data, err := seed.Default()
	if err != nil {
		return nil, err
	}

	var store database.Store
	if dsn := settings.GetString("DB_DSN"); dsn != "" {
		store, err = database.Open(dsn, data, logger)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Debug("no DSN, reading seed data")
		store = database.NewMemoryStore(data)
	}
	logger.Debug("store ready", zap.String("command", cmd.Name()))

	return service.New(store, now), nil
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
