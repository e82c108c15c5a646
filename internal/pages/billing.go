package pages

import (
	"net/url"

	"lull-backoffice/internal/filter"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/presentation"

	"github.com/shopspring/decimal"
)

var billingStatuses = []models.BillingApprovalStatus{
	models.BillingDraft, models.BillingPending, models.BillingIssued, models.BillingSent, models.BillingPaid,
}

var paymentStatuses = []models.PaymentStatus{models.PaymentUnpaid, models.PaymentPaid, models.PaymentOverdue}

type BillingQuery struct {
	Approvals []models.BillingApprovalStatus `json:"approval,omitempty"`
}

func ParseBillingQuery(q url.Values) BillingQuery {
	return BillingQuery{Approvals: list[models.BillingApprovalStatus](q, "approval")}
}

type BillingRow struct {
	models.BillingRecord
	AmountLabel string            `json:"amountLabel"`
	Approval    presentation.Chip `json:"approvalChip"`
	Payment     presentation.Chip `json:"paymentChip"`
}

type BillingSummary struct {
	Count            int                                  `json:"count"`
	TotalAmount      decimal.Decimal                      `json:"totalAmount"`
	TotalAmountLabel string                               `json:"totalAmountLabel"`
	PendingCount     int                                  `json:"pendingCount"`
	OverdueCount     int                                  `json:"overdueCount"`
	ByApproval       map[models.BillingApprovalStatus]int `json:"byApproval"`
	ByPayment        map[models.PaymentStatus]int         `json:"byPayment"`
}

type BillingView struct {
	Query   BillingQuery   `json:"query"`
	Rows    []BillingRow   `json:"rows"`
	Summary BillingSummary `json:"summary"`
	// OverdueWarning asks the user to follow up on late payments.
	OverdueWarning bool `json:"overdueWarning"`
}

func FilterBilling(records []models.BillingRecord, q BillingQuery) []models.BillingRecord {
	return filter.Apply(records,
		filter.In(func(r models.BillingRecord) models.BillingApprovalStatus { return r.ApprovalStatus }, q.Approvals),
	)
}

func BuildBilling(records []models.BillingRecord, q BillingQuery) BillingView {
	rows := FilterBilling(records, q)

	total := filter.Sum(rows, func(r models.BillingRecord) decimal.Decimal { return r.Amount })
	byApproval := filter.CountBy(rows, func(r models.BillingRecord) models.BillingApprovalStatus { return r.ApprovalStatus }, billingStatuses...)
	byPayment := filter.CountBy(rows, func(r models.BillingRecord) models.PaymentStatus { return r.PaymentStatus }, paymentStatuses...)

	view := BillingView{
		Query: q,
		Rows:  make([]BillingRow, 0, len(rows)),
		Summary: BillingSummary{
			Count:            len(rows),
			TotalAmount:      total,
			TotalAmountLabel: presentation.FormatYen(&total),
			PendingCount:     byApproval[models.BillingPending],
			OverdueCount:     byPayment[models.PaymentOverdue],
			ByApproval:       byApproval,
			ByPayment:        byPayment,
		},
		OverdueWarning: byPayment[models.PaymentOverdue] > 0,
	}
	for _, r := range rows {
		amount := r.Amount
		view.Rows = append(view.Rows, BillingRow{
			BillingRecord: r,
			AmountLabel:   presentation.FormatYen(&amount),
			Approval:      presentation.BillingApproval.Lookup(r.ApprovalStatus),
			Payment:       presentation.PaymentStatus.Lookup(r.PaymentStatus),
		})
	}
	return view
}
