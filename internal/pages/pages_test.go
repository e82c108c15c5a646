package pages

import (
	"testing"
	"time"

	"lull-backoffice/internal/seed"

	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func loadSeed(t *testing.T) *seed.Dataset {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return ds
}

func ids[T any](rows []T, id func(T) string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r))
	}
	return out
}
