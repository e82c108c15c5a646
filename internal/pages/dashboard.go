package pages

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"lull-backoffice/internal/filter"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/presentation"

	"github.com/shopspring/decimal"
)

// Chart viewBox geometry: points span x 0..100 and y 90 (zero) up to 10 (max).
const (
	chartBaseline = 90
	chartHeight   = 80
	firstHalfLen  = 6
)

var (
	hundred     = decimal.NewFromInt(100)
	tenThousand = decimal.NewFromInt(10000)
)

// DashboardInput is the data the dashboard aggregates.
type DashboardInput struct {
	Attendance []models.AttendanceRecord
	Billing    []models.BillingRecord
	Contracts  []models.ContractRecord
	Data       models.DashboardData
}

type KPICard struct {
	Key   string             `json:"key"`
	Title string             `json:"title"`
	Value string             `json:"value"`
	Chip  *presentation.Chip `json:"chip,omitempty"`
	Href  string             `json:"href"`
}

type RevenueTrend struct {
	Latest      decimal.Decimal `json:"latest"`
	LatestLabel string          `json:"latestLabel"`
	Growth      decimal.Decimal `json:"growth"`
	GrowthLabel string          `json:"growthLabel"`
	Points      string          `json:"points"`
	Area        string          `json:"area"`
	Months      []string        `json:"months"`
}

type DivisionTrend struct {
	models.Division
	Latest      decimal.Decimal `json:"latest"`
	LatestLabel string          `json:"latestLabel"`
	Points      string          `json:"points"`
}

type HalfYearResult struct {
	Label         string            `json:"label"`
	Period        presentation.Chip `json:"period"`
	Actual        decimal.Decimal   `json:"actual"`
	Target        decimal.Decimal   `json:"target"`
	Progress      decimal.Decimal   `json:"progress"`
	Diff          decimal.Decimal   `json:"diff"`
	Achieved      bool              `json:"achieved"`
	DiffLabel     string            `json:"diffLabel"`
	ActualLabel   string            `json:"actualLabel"`
	TargetLabel   string            `json:"targetLabel"`
	ProgressLabel string            `json:"progressLabel"`
}

type MilestoneRow struct {
	models.Milestone
	Chip presentation.Chip `json:"chip"`
}

type DashboardView struct {
	KPIs               []KPICard                   `json:"kpis"`
	Revenue            RevenueTrend                `json:"revenue"`
	Divisions          []DivisionTrend             `json:"divisions"`
	FirstHalfTotal     decimal.Decimal             `json:"firstHalfTotal"`
	HalfYear           []HalfYearResult            `json:"halfYear"`
	Pipeline           []models.PipelineStage      `json:"pipeline"`
	ApprovalsQueue     []models.ApprovalQueueItem  `json:"approvalsQueue"`
	RiskAlerts         []models.RiskAlert          `json:"riskAlerts"`
	DepartmentProgress []models.DepartmentProgress `json:"departmentProgress"`
	Milestones         []MilestoneRow              `json:"milestones"`
}

func BuildDashboard(in DashboardInput, now time.Time) DashboardView {
	d := in.Data
	firstHalf := FirstHalfTotal(d.DivisionRevenue, d.Divisions)

	view := DashboardView{
		KPIs:               DashboardKPIs(in, now),
		Revenue:            BuildRevenueTrend(d.MonthlyRevenue),
		Divisions:          BuildDivisionTrends(d.DivisionRevenue, d.Divisions),
		FirstHalfTotal:     firstHalf,
		Pipeline:           d.Pipeline,
		ApprovalsQueue:     d.ApprovalsQueue,
		RiskAlerts:         d.RiskAlerts,
		DepartmentProgress: d.DepartmentProgress,
		Milestones:         make([]MilestoneRow, 0, len(d.Milestones)),
		HalfYear: []HalfYearResult{
			HalfYearPerformance(d.HalfYear.FirstHalfLabel, presentation.PeriodActual, firstHalf, d.HalfYear.FirstHalfTarget),
			HalfYearPerformance(d.HalfYear.SecondHalfLabel, presentation.PeriodForecast, d.HalfYear.SecondHalfFcst, d.HalfYear.SecondHalfTarget),
		},
	}
	for _, m := range d.Milestones {
		chip := presentation.MilestoneStatus.Lookup(presentation.MilestoneState(m.Status))
		chip.Label = m.Status
		view.Milestones = append(view.Milestones, MilestoneRow{Milestone: m, Chip: chip})
	}
	return view
}

// Dashboard card links. Each card counts the rows its link lists.
const (
	ContractsPreset  = "/contracts?status=active,expiring,draft&planned=future"
	ExpiringPreset   = "/contracts?status=expiring"
	AttendancePreset = "/attendance?approval=pending,rejected"
	BillingPreset    = "/billing?approval=draft,pending"
)

// PresetQuery returns the query values of a card link.
func PresetQuery(href string) url.Values {
	_, raw, _ := strings.Cut(href, "?")
	q, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return q
}

// DashboardKPIs derives the headline cards from the live record sets by
// running each card's link through the page filter it opens.
func DashboardKPIs(in DashboardInput, now time.Time) []KPICard {
	inFlight := FilterContracts(in.Contracts, ParseContractQuery(PresetQuery(ContractsPreset)), now)
	expiring := FilterContracts(in.Contracts, ParseContractQuery(PresetQuery(ExpiringPreset)), now)

	attendance := ScopeAttendance(in.Attendance, ParseAttendanceQuery(PresetQuery(AttendancePreset)).Approvals)
	rejected := filter.Count(attendance, filter.Equals(attendanceApproval, models.ApprovalRejected))

	unbilled := FilterBilling(in.Billing, ParseBillingQuery(PresetQuery(BillingPreset)))
	unbilledTotal := filter.Sum(unbilled, func(r models.BillingRecord) decimal.Decimal { return r.Amount })

	return []KPICard{
		{
			Key:   "contracts",
			Title: "稼働中・更新予定の契約",
			Value: presentation.FormatCount(len(inFlight)),
			Chip:  &presentation.Chip{Label: "安定稼働", Color: presentation.ColorSuccess},
			Href:  ContractsPreset,
		},
		{
			Key:   "expiring",
			Title: "更新期限が近い契約",
			Value: presentation.FormatCount(len(expiring)),
			Chip:  &presentation.Chip{Label: "要確認", Color: presentation.ColorWarning},
			Href:  ExpiringPreset,
		},
		{
			Key:   "attendance",
			Title: "未承認・差戻しの勤怠",
			Value: presentation.FormatCount(len(attendance)),
			Chip:  &presentation.Chip{Label: fmt.Sprintf("差戻し %d件", rejected), Color: presentation.ColorDefault},
			Href:  AttendancePreset,
		},
		{
			Key:   "billing",
			Title: "未発行の請求",
			Value: presentation.FormatCount(len(unbilled)),
			Chip: &presentation.Chip{
				Label: "総額 " + unbilledTotal.Div(tenThousand).Round(0).String() + "万円",
				Color: presentation.ColorSecondary,
			},
			Href: BillingPreset,
		},
	}
}

// BuildRevenueTrend reports the latest month, its growth over the previous
// month and the chart geometry of the whole series.
func BuildRevenueTrend(points []models.RevenuePoint) RevenueTrend {
	values := make([]decimal.Decimal, 0, len(points))
	months := make([]string, 0, len(points))
	for _, p := range points {
		values = append(values, p.Amount)
		months = append(months, p.Month)
	}

	trend := RevenueTrend{Months: months}
	if len(values) == 0 {
		trend.LatestLabel = presentation.Placeholder
		trend.GrowthLabel = presentation.Placeholder
		return trend
	}
	trend.Latest = values[len(values)-1]
	trend.LatestLabel = presentation.FormatYen(&trend.Latest)
	trend.Growth = GrowthRate(values)
	trend.GrowthLabel = presentation.FormatSignedPercent(trend.Growth)
	trend.Points = Polyline(values, decimal.Max(values[0], values[1:]...))
	trend.Area = AreaPath(trend.Points)
	return trend
}

// BuildDivisionTrends scales every division against the largest value
// across all divisions so the lines share one axis.
func BuildDivisionTrends(points []models.DivisionRevenuePoint, divisions []models.Division) []DivisionTrend {
	max := decimal.Zero
	for _, p := range points {
		for _, v := range p.Values {
			if v.GreaterThan(max) {
				max = v
			}
		}
	}

	out := make([]DivisionTrend, 0, len(divisions))
	for _, div := range divisions {
		values := make([]decimal.Decimal, 0, len(points))
		for _, p := range points {
			values = append(values, p.Values[div.Key])
		}
		trend := DivisionTrend{Division: div, LatestLabel: presentation.Placeholder}
		if len(values) > 0 {
			trend.Latest = values[len(values)-1]
			trend.LatestLabel = presentation.FormatYen(&trend.Latest)
		}
		trend.Points = Polyline(values, max)
		out = append(out, trend)
	}
	return out
}

// GrowthRate is the month-over-month change of the last value in percent.
// It is zero when there is no previous month or the previous month is zero.
func GrowthRate(values []decimal.Decimal) decimal.Decimal {
	if len(values) < 2 {
		return decimal.Zero
	}
	latest, prev := values[len(values)-1], values[len(values)-2]
	if prev.IsZero() {
		return decimal.Zero
	}
	return latest.Sub(prev).Div(prev).Mul(hundred)
}

// Polyline renders SVG polyline points "x,y x,y ..." with two decimals.
func Polyline(values []decimal.Decimal, max decimal.Decimal) string {
	n := len(values)
	points := make([]string, 0, n)
	for i, v := range values {
		x := decimal.Zero
		if n > 1 {
			x = decimal.NewFromInt(int64(i)).Mul(hundred).Div(decimal.NewFromInt(int64(n - 1)))
		}
		y := decimal.NewFromInt(chartBaseline)
		if !max.IsZero() {
			y = y.Sub(v.Div(max).Mul(decimal.NewFromInt(chartHeight)))
		}
		points = append(points, x.StringFixed(2)+","+y.StringFixed(2))
	}
	return strings.Join(points, " ")
}

// AreaPath closes a polyline down to the baseline.
func AreaPath(points string) string {
	if points == "" {
		return ""
	}
	return fmt.Sprintf("0,%d %s 100,%d", chartBaseline, points, chartBaseline)
}

// FirstHalfTotal sums the first six months across the configured divisions.
func FirstHalfTotal(points []models.DivisionRevenuePoint, divisions []models.Division) decimal.Decimal {
	total := decimal.Zero
	for i, p := range points {
		if i == firstHalfLen {
			break
		}
		for _, div := range divisions {
			total = total.Add(p.Values[div.Key])
		}
	}
	return total
}

// HalfYearPerformance compares an actual or forecast figure with its target.
func HalfYearPerformance(label string, kind presentation.PeriodKind, actual, target decimal.Decimal) HalfYearResult {
	progress := decimal.Zero
	if target.IsPositive() {
		progress = decimal.Min(hundred, actual.Div(target).Mul(hundred))
	}
	diff := actual.Sub(target)
	achieved := !diff.IsNegative()

	abs := diff.Abs()
	diffLabel := "目標差 " + presentation.FormatYen(&abs)
	if achieved {
		diffLabel = "達成超過 " + presentation.FormatYen(&abs)
	}

	return HalfYearResult{
		Label:         label,
		Period:        presentation.HalfYearPeriod.Lookup(kind),
		Actual:        actual,
		Target:        target,
		Progress:      progress,
		Diff:          diff,
		Achieved:      achieved,
		DiffLabel:     diffLabel,
		ActualLabel:   presentation.FormatYen(&actual),
		TargetLabel:   presentation.FormatYen(&target),
		ProgressLabel: progress.StringFixed(1) + "%",
	}
}
