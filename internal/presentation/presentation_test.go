package presentation

import (
	"testing"

	"lull-backoffice/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTableLookup(t *testing.T) {
	tests := []struct {
		name      string
		status    models.AttendanceApprovalStatus
		wantLabel string
		wantColor string
	}{
		{"approved", models.ApprovalApproved, "承認済み", ColorSuccess},
		{"rejected", models.ApprovalRejected, "差戻し", ColorError},
		{"draft", models.ApprovalDraft, "下書き", ColorDefault},
		{"unknown falls back to pending", "archived", "承認待ち", ColorDefault},
		{"empty falls back to pending", "", "承認待ち", ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLabel, AttendanceApproval.Lookup(tt.status).Label)
			assert.Equal(t, tt.wantColor, AttendanceApproval.Lookup(tt.status).Color)
		})
	}
}

func TestUnknownValuesUseDocumentedDefaults(t *testing.T) {
	assert.Equal(t, AttendanceMatching.Lookup(models.MatchingUnverified), AttendanceMatching.Lookup("bogus"))
	assert.Equal(t, BillingApproval.Lookup(models.BillingDraft), BillingApproval.Lookup("bogus"))
	assert.Equal(t, PaymentStatus.Lookup(models.PaymentUnpaid), PaymentStatus.Lookup("bogus"))
	assert.Equal(t, ContractStatus.Lookup(models.ContractActive), ContractStatus.Lookup("bogus"))
	assert.Equal(t, CustomerStatus.Lookup(models.CustomerProspect), CustomerStatus.Lookup("bogus"))
	assert.Equal(t, UploadStatus.Lookup(models.UploadProcessing), UploadStatus.Lookup("bogus"))
	assert.Equal(t, AlertMeta.Lookup(models.AlertAbsent), AlertMeta.Lookup("bogus"))

	assert.Equal(t, "差戻し", PTOStatus.Lookup("cancelled").Label)
	assert.Equal(t, ColorError, OTStatus.Lookup("cancelled").Color)
}

func TestRequestStatusColorsDifferPerList(t *testing.T) {
	assert.Equal(t, ColorPrimary, PTOStatus.Lookup(models.RequestPending).Color)
	assert.Equal(t, ColorSecondary, OTStatus.Lookup(models.RequestPending).Color)
}

func TestTableKnown(t *testing.T) {
	assert.True(t, ContractStatus.Known(models.ContractExpiring))
	assert.False(t, ContractStatus.Known("terminated"))
	assert.Equal(t, models.ContractActive, ContractStatus.Fallback())
}

func TestFormatYen(t *testing.T) {
	d := func(v int64) *decimal.Decimal {
		x := decimal.NewFromInt(v)
		return &x
	}

	assert.Equal(t, "-", FormatYen(nil))
	assert.Equal(t, "￥0", FormatYen(d(0)))
	assert.Equal(t, "￥999", FormatYen(d(999)))
	assert.Equal(t, "￥1,000", FormatYen(d(1000)))
	assert.Equal(t, "￥941,600", FormatYen(d(941600)))
	assert.Equal(t, "￥1,088,000", FormatYen(d(1088000)))
	assert.Equal(t, "-￥2,500", FormatYen(d(-2500)))

	frac := decimal.RequireFromString("1234.6")
	assert.Equal(t, "￥1,235", FormatYen(&frac))
}

func TestFormatHours(t *testing.T) {
	v := 152.0
	assert.Equal(t, "152.0", FormatHours(&v))
	assert.Equal(t, "-", FormatHours(nil))
}

func TestFormatWorkPeriod(t *testing.T) {
	assert.Equal(t, "2025年09月", FormatWorkPeriod("2025-09"))
	assert.Equal(t, "-", FormatWorkPeriod(""))
}

func TestFormatSignedPercent(t *testing.T) {
	assert.Equal(t, "+3.2%", FormatSignedPercent(decimal.RequireFromString("3.157")))
	assert.Equal(t, "+0.0%", FormatSignedPercent(decimal.Zero))
	assert.Equal(t, "-4.3%", FormatSignedPercent(decimal.RequireFromString("-4.347")))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "3件", FormatCount(3))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ac***@lull.local", MaskEmail("accounting@lull.local"))
	assert.Equal(t, "ab***@x.jp", MaskEmail("ab@x.jp"))
	assert.Equal(t, "***", MaskEmail("no-at-sign"))
	assert.Equal(t, "***", MaskEmail("@lull.local"))
	assert.Equal(t, "田中***@lull.local", MaskEmail("田中太郎@lull.local"))
}
