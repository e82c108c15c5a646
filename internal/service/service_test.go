package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"lull-backoffice/internal/database"
	"lull-backoffice/internal/pages"
	"lull-backoffice/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackoffice(t *testing.T) *Backoffice {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	ref := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	return New(database.NewMemoryStore(ds), func() time.Time { return ref })
}

func TestViewEveryPage(t *testing.T) {
	b := newBackoffice(t)
	for _, page := range Pages {
		t.Run(page, func(t *testing.T) {
			v, err := b.View(context.Background(), page, url.Values{})
			require.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}

func TestViewUnknownPage(t *testing.T) {
	_, err := newBackoffice(t).View(context.Background(), "payroll", url.Values{})
	assert.ErrorIs(t, err, ErrUnknownPage)

	_, err = newBackoffice(t).Table(context.Background(), PageUploads, url.Values{})
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestTableAppliesPageFilters(t *testing.T) {
	b := newBackoffice(t)
	tbl, err := b.Table(context.Background(), PageBilling, url.Values{"approval": {"draft,pending"}})
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)

	tbl, err = b.Table(context.Background(), PageContracts, url.Values{"planned": {"future"}})
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 3)
}

func TestCreateCustomerAllocatesSequentialIDs(t *testing.T) {
	b := newBackoffice(t)
	ctx := context.Background()

	first, err := b.CreateCustomer(ctx, pages.CustomerDraft{Name: "株式会社ノード"})
	require.NoError(t, err)
	assert.Equal(t, "CUST-1005", first.ID)
	assert.Equal(t, "2025-05-01", first.LastActivity)

	second, err := b.CreateCustomer(ctx, pages.CustomerDraft{})
	require.NoError(t, err)
	assert.Equal(t, "CUST-1006", second.ID)
	assert.Equal(t, pages.UnnamedCustomer, second.Name)

	view, err := b.Customers(ctx, url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 6, view.Summary.Total)
	assert.Equal(t, "CUST-1007", view.NextID)
}

func TestSummary(t *testing.T) {
	cards, err := newBackoffice(t).Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 4)
	assert.Equal(t, "contracts", cards[0].Key)
}
