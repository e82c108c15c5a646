package models

import "github.com/shopspring/decimal"

type AttendanceApprovalStatus string
type AttendanceMatchingStatus string

const (
	ApprovalDraft    AttendanceApprovalStatus = "draft"
	ApprovalPending  AttendanceApprovalStatus = "pending"
	ApprovalApproved AttendanceApprovalStatus = "approved"
	ApprovalRejected AttendanceApprovalStatus = "rejected"

	MatchingUnverified AttendanceMatchingStatus = "unverified"
	MatchingMatched    AttendanceMatchingStatus = "matched"
	MatchingMismatch   AttendanceMatchingStatus = "mismatch"
)

type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// ValidationIssue flags a single field of an attendance record.
type ValidationIssue struct {
	Field    string        `json:"field" yaml:"field"`
	Severity IssueSeverity `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`
}

// AttendanceRecord is one employee's monthly timesheet on a project.
// Hours and the expected billing amount are entered independently.
type AttendanceRecord struct {
	ID           string `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	ProjectID    string `gorm:"size:32;index" json:"projectId" yaml:"projectId"`
	ProjectName  string `gorm:"size:255" json:"projectName" yaml:"projectName"`
	EmployeeID   string `gorm:"size:32" json:"employeeId" yaml:"employeeId"`
	EmployeeName string `gorm:"size:255" json:"employeeName" yaml:"employeeName"`
	Department   string `gorm:"size:255" json:"department,omitempty" yaml:"department"`
	WorkPeriod   string `gorm:"size:7" json:"workPeriod" yaml:"workPeriod"` // YYYY-MM

	TotalWorkHours float64 `json:"totalWorkHours" yaml:"totalWorkHours"`
	OvertimeHours  float64 `json:"overtimeHours" yaml:"overtimeHours"`
	MidnightHours  float64 `json:"midnightHours" yaml:"midnightHours"`
	HolidayHours   float64 `json:"holidayHours" yaml:"holidayHours"`

	ApprovalStatus AttendanceApprovalStatus `gorm:"type:varchar(20);not null" json:"approvalStatus" yaml:"approvalStatus"`
	MatchingStatus AttendanceMatchingStatus `gorm:"type:varchar(20);not null" json:"matchingStatus" yaml:"matchingStatus"`

	BillingUnitPrice      decimal.Decimal `gorm:"type:numeric(14,0)" json:"billingUnitPrice" yaml:"billingUnitPrice"`
	ExpectedBillingAmount decimal.Decimal `gorm:"type:numeric(14,0)" json:"expectedBillingAmount" yaml:"expectedBillingAmount"`

	ReconciliationNotes string            `gorm:"type:text" json:"reconciliationNotes,omitempty" yaml:"reconciliationNotes"`
	EvidenceFileName    string            `gorm:"size:255" json:"evidenceFileName,omitempty" yaml:"evidenceFileName"`
	UploadedAt          string            `gorm:"size:32" json:"uploadedAt,omitempty" yaml:"uploadedAt"`
	ValidationIssues    []ValidationIssue `gorm:"serializer:json" json:"validationIssues,omitempty" yaml:"validationIssues"`

	// Seq keeps listings in the order the records were added.
	Seq int `gorm:"index" json:"-" yaml:"-"`
}

// HasIssueOn reports whether a validation issue targets the given field.
func (r AttendanceRecord) HasIssueOn(field string) bool {
	for _, issue := range r.ValidationIssues {
		if issue.Field == field {
			return true
		}
	}
	return false
}

type AlertType string

const (
	AlertAbsent     AlertType = "absent"
	AlertWorkError  AlertType = "work_error"
	AlertPTOPending AlertType = "pto_pending"
	AlertOTPending  AlertType = "ot_pending"
)

// AlertTypes lists alert types in display order.
var AlertTypes = []AlertType{AlertAbsent, AlertWorkError, AlertPTOPending, AlertOTPending}

type AlertItem struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	Type       AlertType `gorm:"type:varchar(20);not null" json:"type" yaml:"type"`
	Name       string    `gorm:"size:255" json:"name" yaml:"name"`
	Department string    `gorm:"size:255" json:"department" yaml:"department"`
	Date       string    `gorm:"size:10" json:"date" yaml:"date"`
	Detail     string    `gorm:"size:255" json:"detail,omitempty" yaml:"detail"`

	// Seq keeps listings in the order the records were added.
	Seq int `gorm:"index" json:"-" yaml:"-"`
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RequestStatuses is the full selection behind the "all" option.
var RequestStatuses = []RequestStatus{RequestPending, RequestApproved, RequestRejected}

type PTORequest struct {
	ID         string        `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	Name       string        `gorm:"size:255" json:"name" yaml:"name"`
	Department string        `gorm:"size:255" json:"department" yaml:"department"`
	Date       string        `gorm:"size:10" json:"date" yaml:"date"`
	Kind       string        `gorm:"size:16" json:"kind" yaml:"kind"` // 終日 / 午前 / 午後
	Status     RequestStatus `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`

	// Seq keeps listings in the order the records were added.
	Seq int `gorm:"index" json:"-" yaml:"-"`
}

func (PTORequest) TableName() string { return "pto_requests" }

type OTRequest struct {
	ID         string        `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	Name       string        `gorm:"size:255" json:"name" yaml:"name"`
	Department string        `gorm:"size:255" json:"department" yaml:"department"`
	Date       string        `gorm:"size:10" json:"date" yaml:"date"`
	Hours      float64       `json:"hours" yaml:"hours"`
	Reason     string        `gorm:"size:255" json:"reason" yaml:"reason"`
	Status     RequestStatus `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`

	// Seq keeps listings in the order the records were added.
	Seq int `gorm:"index" json:"-" yaml:"-"`
}

func (OTRequest) TableName() string { return "ot_requests" }
