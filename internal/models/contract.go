package models

import "github.com/shopspring/decimal"

type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractExpiring ContractStatus = "expiring"
	ContractDraft    ContractStatus = "draft"
)

// ContractStatuses lists contract statuses in display order.
var ContractStatuses = []ContractStatus{ContractActive, ContractExpiring, ContractDraft}

type ContractRecord struct {
	ID            string          `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	ClientName    string          `gorm:"size:255" json:"clientName" yaml:"clientName"`
	ProjectName   string          `gorm:"size:255" json:"projectName" yaml:"projectName"`
	ContractType  string          `gorm:"size:16" json:"contractType" yaml:"contractType"` // 準委任 / 常駐 / 受託
	StartDate     string          `gorm:"size:10" json:"startDate" yaml:"startDate"`
	EndDate       string          `gorm:"size:10" json:"endDate" yaml:"endDate"`
	MonthlyAmount decimal.Decimal `gorm:"type:numeric(14,0)" json:"monthlyAmount" yaml:"monthlyAmount"`
	Status        ContractStatus  `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`
	Manager       string          `gorm:"size:255" json:"manager" yaml:"manager"`

	// Seq keeps listings in the order the records were added.
	Seq int `gorm:"index" json:"-" yaml:"-"`
}
