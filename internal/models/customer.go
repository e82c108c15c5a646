package models

import "github.com/shopspring/decimal"

type CustomerStatus string

const (
	CustomerProspect CustomerStatus = "prospect"
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

type Segment string

const (
	SegmentEnterprise Segment = "Enterprise"
	SegmentMid        Segment = "Mid"
	SegmentSMB        Segment = "SMB"
)

type CustomerRecord struct {
	ID           string          `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	Name         string          `gorm:"size:255;not null" json:"name" yaml:"name"`
	Industry     string          `gorm:"size:100" json:"industry" yaml:"industry"`
	Department   string          `gorm:"size:255" json:"department" yaml:"department"`
	Segment      Segment         `gorm:"type:varchar(20)" json:"segment" yaml:"segment"`
	Status       CustomerStatus  `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`
	Owner        string          `gorm:"size:255" json:"owner" yaml:"owner"`
	Projects     int             `json:"projects" yaml:"projects"`
	MRR          decimal.Decimal `gorm:"type:numeric(14,0)" json:"mrr" yaml:"mrr"`
	LastActivity string          `gorm:"size:10" json:"lastActivity" yaml:"lastActivity"` // YYYY-MM-DD

	// Seq keeps listings in the order the records were added.
	Seq int `gorm:"index" json:"-" yaml:"-"`
}
