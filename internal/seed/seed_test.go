package seed

import (
	"testing"

	"lull-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Len(t, ds.Attendance, 3)
	assert.Len(t, ds.Alerts, 5)
	assert.Len(t, ds.PTORequests, 2)
	assert.Len(t, ds.OTRequests, 2)
	assert.Len(t, ds.Billing, 4)
	assert.Len(t, ds.Contracts, 4)
	assert.Len(t, ds.Customers, 4)
	assert.Len(t, ds.Uploads, 3)
	assert.Len(t, ds.Master, 3)

	first := ds.Attendance[0]
	assert.Equal(t, "2025-09", first.WorkPeriod)
	assert.Equal(t, models.ApprovalPending, first.ApprovalStatus)
	assert.Equal(t, "941600", first.ExpectedBillingAmount.String())
	require.Len(t, first.ValidationIssues, 1)
	assert.Equal(t, models.SeverityWarning, first.ValidationIssues[0].Severity)

	assert.Equal(t, "3500000", ds.Contracts[1].MonthlyAmount.String())
	assert.Equal(t, "4350000", ds.Dashboard.DivisionRevenue[6].Values["techFlag"].String())
	assert.Equal(t, "58800000", ds.Dashboard.HalfYear.SecondHalfFcst.String())
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	a.Customers[0].Name = "changed"
	assert.NotEqual(t, a.Customers[0].Name, b.Customers[0].Name)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("attendance: [: bad"))
	assert.Error(t, err)
}
