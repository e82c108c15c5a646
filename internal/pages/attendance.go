package pages

import (
	"net/url"
	"time"

	"lull-backoffice/internal/filter"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/presentation"
)

// Attendance tabs.
const (
	TabRecords = "records"
	TabPTO     = "pto"
	TabOT      = "ot"
)

// AttendanceQuery holds the attendance page filters.
type AttendanceQuery struct {
	Approvals   []models.AttendanceApprovalStatus `json:"approval,omitempty"`
	Project     string                            `json:"project"`
	AlertType   string                            `json:"alert"`
	PTOStatuses []models.RequestStatus            `json:"ptoStatus,omitempty"`
	OTStatuses  []models.RequestStatus            `json:"otStatus,omitempty"`
}

// ParseAttendanceQuery reads approval, project, alert, pto_status and
// ot_status. Only absent and work_error narrow the record grid by alert;
// any other alert value means all.
func ParseAttendanceQuery(q url.Values) AttendanceQuery {
	alert := selection(q, "alert")
	switch models.AlertType(alert) {
	case models.AlertAbsent, models.AlertWorkError:
	default:
		alert = filter.All
	}
	return AttendanceQuery{
		Approvals:   list[models.AttendanceApprovalStatus](q, "approval"),
		Project:     selection(q, "project"),
		AlertType:   alert,
		PTOStatuses: filter.ExpandAll(list[models.RequestStatus](q, "pto_status"), models.RequestStatuses),
		OTStatuses:  filter.ExpandAll(list[models.RequestStatus](q, "ot_status"), models.RequestStatuses),
	}
}

// AttendanceInput is the base data of the attendance page.
type AttendanceInput struct {
	Records     []models.AttendanceRecord
	Alerts      []models.AlertItem
	PTORequests []models.PTORequest
	OTRequests  []models.OTRequest
}

type AttendanceRow struct {
	models.AttendanceRecord
	WorkPeriodLabel     string            `json:"workPeriodLabel"`
	TotalWorkHoursLabel string            `json:"totalWorkHoursLabel"`
	ExpectedAmountLabel string            `json:"expectedBillingAmountLabel"`
	AmountFlagged       bool              `json:"expectedBillingAmountFlagged"`
	Approval            presentation.Chip `json:"approvalChip"`
	Matching            presentation.Chip `json:"matchingChip"`
}

// AlertSummary is one clickable summary chip above the grid.
type AlertSummary struct {
	Type  models.AlertType  `json:"type"`
	Count int               `json:"count"`
	Label string            `json:"label"`
	Chip  presentation.Chip `json:"chip"`
	Tab   string            `json:"tab"`
	Href  string            `json:"href"`
}

type AlertRow struct {
	models.AlertItem
	Chip presentation.Chip `json:"chip"`
}

type PTORow struct {
	models.PTORequest
	Chip presentation.Chip `json:"chip"`
}

type OTRow struct {
	models.OTRequest
	HoursLabel string            `json:"hoursLabel"`
	Chip       presentation.Chip `json:"chip"`
}

type AttendanceView struct {
	Query          AttendanceQuery          `json:"query"`
	CurrentMonth   string                   `json:"currentMonth"`
	Rows           []AttendanceRow          `json:"rows"`
	ProjectOptions []Option                 `json:"projectOptions"`
	AlertCounts    map[models.AlertType]int `json:"alertCounts"`
	AlertSummary   []AlertSummary           `json:"alertSummary"`
	Alerts         []AlertRow               `json:"alerts"`
	PTORequests    []PTORow                 `json:"ptoRequests"`
	OTRequests     []OTRow                  `json:"otRequests"`
}

func attendanceApproval(r models.AttendanceRecord) models.AttendanceApprovalStatus {
	return r.ApprovalStatus
}

// ScopeAttendance applies the approval query parameter to the base records.
func ScopeAttendance(records []models.AttendanceRecord, approvals []models.AttendanceApprovalStatus) []models.AttendanceRecord {
	return filter.Apply(records, filter.In(attendanceApproval, approvals))
}

// AlertsInScope keeps alerts dated in month for employees present in rows.
func AlertsInScope(alerts []models.AlertItem, rows []models.AttendanceRecord, month string) []models.AlertItem {
	names := filter.Set(rows, func(r models.AttendanceRecord) string { return r.EmployeeName })
	return filter.Apply(alerts,
		filter.HasPrefix(func(a models.AlertItem) string { return a.Date }, month),
		filter.Member(func(a models.AlertItem) string { return a.Name }, names),
	)
}

// CountAlerts tallies alerts per type, with every type present.
func CountAlerts(alerts []models.AlertItem) map[models.AlertType]int {
	return filter.CountBy(alerts, func(a models.AlertItem) models.AlertType { return a.Type }, models.AlertTypes...)
}

// BuildAttendance derives the attendance page. now supplies the current
// month when no record is in scope.
func BuildAttendance(in AttendanceInput, q AttendanceQuery, now time.Time) AttendanceView {
	rows := ScopeAttendance(in.Records, q.Approvals)

	current := month(now)
	if len(rows) > 0 {
		current = rows[0].WorkPeriod
	}

	projects := filter.Unique(rows, func(r models.AttendanceRecord) string { return r.ProjectID })
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		if _, ok := names[r.ProjectID]; !ok {
			names[r.ProjectID] = r.ProjectName
		}
	}
	options := make([]Option, 0, len(projects))
	for _, id := range projects {
		options = append(options, Option{Value: id, Label: id + " / " + names[id]})
	}

	scoped := AlertsInScope(in.Alerts, rows, current)

	preds := []filter.Predicate[models.AttendanceRecord]{
		filter.Equals(func(r models.AttendanceRecord) string { return r.ProjectID }, q.Project),
	}
	if q.AlertType != filter.All {
		flagged := filter.Set(
			filter.Apply(scoped, filter.Equals(func(a models.AlertItem) string { return string(a.Type) }, q.AlertType)),
			func(a models.AlertItem) string { return a.Name },
		)
		preds = append(preds, filter.Member(func(r models.AttendanceRecord) string { return r.EmployeeName }, flagged))
	}
	filtered := filter.Apply(rows, preds...)

	counts := CountAlerts(scoped)

	pto := filter.Apply(in.PTORequests,
		filter.HasPrefix(func(r models.PTORequest) string { return r.Date }, current),
		filter.In(func(r models.PTORequest) models.RequestStatus { return r.Status }, q.PTOStatuses),
	)
	ot := filter.Apply(in.OTRequests,
		filter.HasPrefix(func(r models.OTRequest) string { return r.Date }, current),
		filter.In(func(r models.OTRequest) models.RequestStatus { return r.Status }, q.OTStatuses),
	)

	view := AttendanceView{
		Query:          q,
		CurrentMonth:   current,
		Rows:           make([]AttendanceRow, 0, len(filtered)),
		ProjectOptions: options,
		AlertCounts:    counts,
		AlertSummary:   make([]AlertSummary, 0, len(models.AlertTypes)),
		Alerts:         make([]AlertRow, 0, len(scoped)),
		PTORequests:    make([]PTORow, 0, len(pto)),
		OTRequests:     make([]OTRow, 0, len(ot)),
	}
	for _, r := range filtered {
		view.Rows = append(view.Rows, attendanceRow(r))
	}
	for _, t := range models.AlertTypes {
		view.AlertSummary = append(view.AlertSummary, alertSummary(t, counts[t]))
	}
	for _, a := range scoped {
		view.Alerts = append(view.Alerts, AlertRow{AlertItem: a, Chip: presentation.AlertMeta.Lookup(a.Type)})
	}
	for _, r := range pto {
		view.PTORequests = append(view.PTORequests, PTORow{PTORequest: r, Chip: presentation.PTOStatus.Lookup(r.Status)})
	}
	for _, r := range ot {
		hours := r.Hours
		view.OTRequests = append(view.OTRequests, OTRow{
			OTRequest:  r,
			HoursLabel: presentation.FormatHours(&hours),
			Chip:       presentation.OTStatus.Lookup(r.Status),
		})
	}
	return view
}

func attendanceRow(r models.AttendanceRecord) AttendanceRow {
	hours := r.TotalWorkHours
	amount := r.ExpectedBillingAmount
	return AttendanceRow{
		AttendanceRecord:    r,
		WorkPeriodLabel:     presentation.FormatWorkPeriod(r.WorkPeriod),
		TotalWorkHoursLabel: presentation.FormatHours(&hours),
		ExpectedAmountLabel: presentation.FormatYen(&amount),
		AmountFlagged:       r.HasIssueOn("expectedBillingAmount"),
		Approval:            presentation.AttendanceApproval.Lookup(r.ApprovalStatus),
		Matching:            presentation.AttendanceMatching.Lookup(r.MatchingStatus),
	}
}

// alertSummary links each chip to the tab and preset filter it opens.
func alertSummary(t models.AlertType, count int) AlertSummary {
	chip := presentation.AlertMeta.Lookup(t)
	s := AlertSummary{
		Type:  t,
		Count: count,
		Label: chip.Label + " " + presentation.FormatCount(count),
		Chip:  chip,
	}
	switch t {
	case models.AlertPTOPending:
		s.Tab, s.Href = TabPTO, "/attendance?pto_status=pending"
	case models.AlertOTPending:
		s.Tab, s.Href = TabOT, "/attendance?ot_status=pending"
	default:
		s.Tab, s.Href = TabRecords, "/attendance?alert="+string(t)
	}
	return s
}
