package models

import "github.com/shopspring/decimal"

// RevenuePoint is one month of the company-wide revenue trend.
type RevenuePoint struct {
	Month  string          `json:"month" yaml:"month"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// DivisionRevenuePoint holds one month of revenue keyed by division key.
type DivisionRevenuePoint struct {
	Month  string                     `json:"month" yaml:"month"`
	Values map[string]decimal.Decimal `json:"values" yaml:"values"`
}

type Division struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

type PipelineStage struct {
	Stage  string `json:"stage" yaml:"stage"`
	Ratio  int    `json:"ratio" yaml:"ratio"`
	Helper string `json:"helper" yaml:"helper"`
}

type ApprovalQueueItem struct {
	Project  string `json:"project" yaml:"project"`
	Member   string `json:"member" yaml:"member"`
	Deadline string `json:"deadline" yaml:"deadline"`
	Status   string `json:"status" yaml:"status"`
}

type RiskAlert struct {
	Title     string `json:"title" yaml:"title"`
	Detail    string `json:"detail" yaml:"detail"`
	Severity  string `json:"severity" yaml:"severity"` // high / medium
	Href      string `json:"href" yaml:"href"`
	LinkLabel string `json:"linkLabel" yaml:"linkLabel"`
}

type DepartmentProgress struct {
	Department string `json:"department" yaml:"department"`
	Completion int    `json:"completion" yaml:"completion"`
}

type Milestone struct {
	Project  string `json:"project" yaml:"project"`
	Progress int    `json:"progress" yaml:"progress"`
	Status   string `json:"status" yaml:"status"`
}

// HalfYearPlan carries the targets the half-year summary is measured against.
type HalfYearPlan struct {
	FirstHalfLabel   string          `json:"firstHalfLabel" yaml:"firstHalfLabel"`
	FirstHalfTarget  decimal.Decimal `json:"firstHalfTarget" yaml:"firstHalfTarget"`
	SecondHalfLabel  string          `json:"secondHalfLabel" yaml:"secondHalfLabel"`
	SecondHalfTarget decimal.Decimal `json:"secondHalfTarget" yaml:"secondHalfTarget"`
	SecondHalfFcst   decimal.Decimal `json:"secondHalfForecast" yaml:"secondHalfForecast"`
}

// DashboardData groups the static dashboard datasets.
type DashboardData struct {
	MonthlyRevenue     []RevenuePoint         `json:"monthlyRevenue" yaml:"monthlyRevenue"`
	DivisionRevenue    []DivisionRevenuePoint `json:"divisionRevenue" yaml:"divisionRevenue"`
	Divisions          []Division             `json:"divisions" yaml:"divisions"`
	Pipeline           []PipelineStage        `json:"pipeline" yaml:"pipeline"`
	ApprovalsQueue     []ApprovalQueueItem    `json:"approvalsQueue" yaml:"approvalsQueue"`
	RiskAlerts         []RiskAlert            `json:"riskAlerts" yaml:"riskAlerts"`
	DepartmentProgress []DepartmentProgress   `json:"departmentProgress" yaml:"departmentProgress"`
	Milestones         []Milestone            `json:"milestones" yaml:"milestones"`
	HalfYear           HalfYearPlan           `json:"halfYear" yaml:"halfYear"`
}
