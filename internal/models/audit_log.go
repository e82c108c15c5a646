package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Entity   string `gorm:"size:50;not null" json:"entity"` // "customer", "billing", "attendance"
	EntityID string `gorm:"size:64" json:"entityId"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "export"
	Details  string `gorm:"type:text" json:"details"`
}
