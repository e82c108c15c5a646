package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSales      UserRole = "sales"
	RoleAccounting UserRole = "accounting"
	RoleViewer     UserRole = "viewer"
)

// MaxUsernameLen matches the username column size.
const MaxUsernameLen = 50

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
}
