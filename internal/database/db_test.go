package database

import (
	"context"
	"os"
	"testing"

	"lull-backoffice/internal/models"
	"lull-backoffice/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Runs against a disposable Postgres database, e.g.
// TEST_DB_DSN="host=localhost user=lull dbname=lull_test sslmode=disable".
func TestGormStore(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ds, err := seed.Default()
	require.NoError(t, err)

	s, err := Open(dsn, ds, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	billing, err := s.BillingRecords(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(billing), len(ds.Billing))
	for i, want := range ds.Billing {
		assert.Equal(t, want.ID, billing[i].ID)
	}

	attendance, err := s.AttendanceRecords(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, attendance)
	assert.Equal(t, "AR-2409-0001", attendance[0].ID)
	assert.NotEmpty(t, attendance[0].ValidationIssues)

	rec, err := s.InsertCustomer(ctx, func(existing []models.CustomerRecord) models.CustomerRecord {
		return models.CustomerRecord{ID: "CUST-T" + string(rune('A'+len(existing)%26)), Name: "テスト", Status: models.CustomerProspect}
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.db.Delete(&models.CustomerRecord{}, "id = ?", rec.ID) })

	_, err = s.FindUserByUsername(ctx, "missing@lull.local")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNumberedKeepsSourceOrder(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	rows := numbered(ds.Billing, func(r *models.BillingRecord) *int { return &r.Seq })
	require.Len(t, *rows, len(ds.Billing))
	for i, r := range *rows {
		assert.Equal(t, ds.Billing[i].ID, r.ID)
		assert.Equal(t, i+1, r.Seq)
	}
	assert.Zero(t, ds.Billing[0].Seq)
}
