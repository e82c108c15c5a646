package pages

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"lull-backoffice/internal/filter"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/presentation"

	"github.com/shopspring/decimal"
)

// Defaults applied to blank fields of a new customer.
const (
	UnnamedCustomer = "未命名顧客"
	Unset           = "未設定"
	Unassigned      = "未割当"
)

type CustomerQuery struct {
	Text       string `json:"q"`
	Status     string `json:"status"`
	Industry   string `json:"industry"`
	Department string `json:"department"`
}

func ParseCustomerQuery(q url.Values) CustomerQuery {
	return CustomerQuery{
		Text:       q.Get("q"),
		Status:     selection(q, "status"),
		Industry:   selection(q, "industry"),
		Department: selection(q, "department"),
	}
}

type CustomerRow struct {
	models.CustomerRecord
	MRRLabel string            `json:"mrrLabel"`
	Status   presentation.Chip `json:"statusChip"`
}

// CustomerSummary counts the whole customer base, not the filtered rows.
type CustomerSummary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Prospect int `json:"prospect"`
	AtRisk   int `json:"atRisk"`
}

type CustomerView struct {
	Query             CustomerQuery   `json:"query"`
	Rows              []CustomerRow   `json:"rows"`
	Summary           CustomerSummary `json:"summary"`
	IndustryOptions   []Option        `json:"industryOptions"`
	DepartmentOptions []Option        `json:"departmentOptions"`
	NextID            string          `json:"nextId"`
}

func FilterCustomers(records []models.CustomerRecord, q CustomerQuery) []models.CustomerRecord {
	return filter.Apply(records,
		filter.Contains(q.Text,
			func(c models.CustomerRecord) string { return c.Name },
			func(c models.CustomerRecord) string { return c.ID },
		),
		filter.Equals(func(c models.CustomerRecord) string { return string(c.Status) }, q.Status),
		filter.Equals(func(c models.CustomerRecord) string { return c.Industry }, q.Industry),
		filter.Equals(func(c models.CustomerRecord) string { return c.Department }, q.Department),
	)
}

func SummarizeCustomers(records []models.CustomerRecord) CustomerSummary {
	counts := filter.CountBy(records, func(c models.CustomerRecord) models.CustomerStatus { return c.Status })
	return CustomerSummary{
		Total:    len(records),
		Active:   counts[models.CustomerActive],
		Prospect: counts[models.CustomerProspect],
		AtRisk:   counts[models.CustomerInactive],
	}
}

func BuildCustomers(records []models.CustomerRecord, q CustomerQuery) CustomerView {
	rows := FilterCustomers(records, q)

	view := CustomerView{
		Query:             q,
		Rows:              make([]CustomerRow, 0, len(rows)),
		Summary:           SummarizeCustomers(records),
		IndustryOptions:   stringOptions(filter.Unique(records, func(c models.CustomerRecord) string { return c.Industry })),
		DepartmentOptions: stringOptions(filter.Unique(records, func(c models.CustomerRecord) string { return c.Department })),
		NextID:            NextCustomerID(records),
	}
	for _, r := range rows {
		mrr := r.MRR
		view.Rows = append(view.Rows, CustomerRow{
			CustomerRecord: r,
			MRRLabel:       presentation.FormatYen(&mrr),
			Status:         presentation.CustomerStatus.Lookup(r.Status),
		})
	}
	return view
}

// NextCustomerID allocates CUST-NNNN from the largest numeric part of the
// existing ids. Ids without digits are ignored.
func NextCustomerID(records []models.CustomerRecord) string {
	max := 0
	for _, c := range records {
		digits := strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return r
			}
			return -1
		}, c.ID)
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("CUST-%04d", max+1)
}

// CustomerDraft is the registration form of a new customer.
type CustomerDraft struct {
	Name         string                `json:"name" form:"name"`
	Industry     string                `json:"industry" form:"industry"`
	Department   string                `json:"department" form:"department"`
	Segment      models.Segment        `json:"segment" form:"segment"`
	Status       models.CustomerStatus `json:"status" form:"status"`
	Owner        string                `json:"owner" form:"owner"`
	Projects     int                   `json:"projects" form:"projects"`
	MRR          decimal.Decimal       `json:"mrr" form:"mrr"`
	LastActivity string                `json:"lastActivity" form:"lastActivity"`
}

// NewCustomer turns a draft into a record with the next id, filling blank
// fields with their placeholders.
func NewCustomer(d CustomerDraft, existing []models.CustomerRecord, now time.Time) models.CustomerRecord {
	segment := d.Segment
	switch segment {
	case models.SegmentEnterprise, models.SegmentMid, models.SegmentSMB:
	default:
		segment = models.SegmentSMB
	}
	status := d.Status
	if !presentation.CustomerStatus.Known(status) {
		status = presentation.CustomerStatus.Fallback()
	}
	projects := d.Projects
	if projects < 0 {
		projects = 0
	}
	mrr := d.MRR
	if mrr.IsNegative() {
		mrr = decimal.Zero
	}
	lastActivity := strings.TrimSpace(d.LastActivity)
	if lastActivity == "" {
		lastActivity = day(now)
	}

	return models.CustomerRecord{
		ID:           NextCustomerID(existing),
		Name:         orDefault(d.Name, UnnamedCustomer),
		Industry:     orDefault(d.Industry, Unset),
		Department:   orDefault(d.Department, Unset),
		Segment:      segment,
		Status:       status,
		Owner:        orDefault(d.Owner, Unassigned),
		Projects:     projects,
		MRR:          mrr,
		LastActivity: lastActivity,
	}
}

func orDefault(s, def string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return def
}
