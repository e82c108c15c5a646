package models

import "github.com/shopspring/decimal"

type BillingApprovalStatus string
type PaymentStatus string

const (
	BillingDraft   BillingApprovalStatus = "draft"
	BillingPending BillingApprovalStatus = "pending"
	BillingIssued  BillingApprovalStatus = "issued"
	BillingSent    BillingApprovalStatus = "sent"
	BillingPaid    BillingApprovalStatus = "paid"

	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

type BillingRecord struct {
	ID             string                `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	ProjectName    string                `gorm:"size:255" json:"projectName" yaml:"projectName"`
	ClientName     string                `gorm:"size:255" json:"clientName" yaml:"clientName"`
	BillingPeriod  string                `gorm:"size:32" json:"billingPeriod" yaml:"billingPeriod"`
	Amount         decimal.Decimal       `gorm:"type:numeric(14,0)" json:"amount" yaml:"amount"`
	ApprovalStatus BillingApprovalStatus `gorm:"type:varchar(20);not null" json:"approvalStatus" yaml:"approvalStatus"`
	PaymentDueDate string                `gorm:"size:10" json:"paymentDueDate" yaml:"paymentDueDate"`
	PaymentStatus  PaymentStatus         `gorm:"type:varchar(20);not null" json:"paymentStatus" yaml:"paymentStatus"`
	LastAction     string                `gorm:"size:255" json:"lastAction" yaml:"lastAction"`

	// Seq keeps listings in the order the records were added.
	Seq int `gorm:"index" json:"-" yaml:"-"`
}
