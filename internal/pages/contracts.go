package pages

import (
	"net/url"
	"time"

	"lull-backoffice/internal/filter"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/presentation"

	"github.com/shopspring/decimal"
)

// PlannedFuture is the planned= value that hides contracts already ended.
const PlannedFuture = "future"

type ContractQuery struct {
	Statuses []models.ContractStatus `json:"status,omitempty"`
	Planned  string                  `json:"planned,omitempty"`
}

func ParseContractQuery(q url.Values) ContractQuery {
	return ContractQuery{
		Statuses: list[models.ContractStatus](q, "status"),
		Planned:  q.Get("planned"),
	}
}

type ContractRow struct {
	models.ContractRecord
	MonthlyAmountLabel string            `json:"monthlyAmountLabel"`
	Status             presentation.Chip `json:"statusChip"`
}

type ContractSummary struct {
	Count              int                           `json:"count"`
	ByStatus           map[models.ContractStatus]int `json:"byStatus"`
	ActiveMonthlyTotal decimal.Decimal               `json:"activeMonthlyTotal"`
	ActiveMonthlyLabel string                        `json:"activeMonthlyTotalLabel"`
}

type ContractView struct {
	Query   ContractQuery   `json:"query"`
	Rows    []ContractRow   `json:"rows"`
	Summary ContractSummary `json:"summary"`
}

// FilterContracts applies the status list and, for planned=future, keeps
// contracts whose end date is today or later.
func FilterContracts(records []models.ContractRecord, q ContractQuery, now time.Time) []models.ContractRecord {
	preds := []filter.Predicate[models.ContractRecord]{
		filter.In(func(r models.ContractRecord) models.ContractStatus { return r.Status }, q.Statuses),
	}
	if q.Planned == PlannedFuture {
		today := day(now)
		preds = append(preds, func(r models.ContractRecord) bool { return r.EndDate >= today })
	}
	return filter.Apply(records, preds...)
}

func BuildContracts(records []models.ContractRecord, q ContractQuery, now time.Time) ContractView {
	rows := FilterContracts(records, q, now)

	active := filter.Apply(rows, filter.Equals(func(r models.ContractRecord) models.ContractStatus { return r.Status }, models.ContractActive))
	activeTotal := filter.Sum(active, func(r models.ContractRecord) decimal.Decimal { return r.MonthlyAmount })

	view := ContractView{
		Query: q,
		Rows:  make([]ContractRow, 0, len(rows)),
		Summary: ContractSummary{
			Count:              len(rows),
			ByStatus:           filter.CountBy(rows, func(r models.ContractRecord) models.ContractStatus { return r.Status }, models.ContractStatuses...),
			ActiveMonthlyTotal: activeTotal,
			ActiveMonthlyLabel: presentation.FormatYen(&activeTotal),
		},
	}
	for _, r := range rows {
		amount := r.MonthlyAmount
		view.Rows = append(view.Rows, ContractRow{
			ContractRecord:     r,
			MonthlyAmountLabel: presentation.FormatYen(&amount),
			Status:             presentation.ContractStatus.Lookup(r.Status),
		})
	}
	return view
}
