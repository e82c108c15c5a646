package database

import (
	"context"
	"errors"

	"lull-backoffice/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CustomerBuilder derives the record to insert from the customers that
// already exist, so id allocation and insert happen as one step.
type CustomerBuilder func(existing []models.CustomerRecord) models.CustomerRecord

// Store is the data source behind every console page.
type Store interface {
	AttendanceRecords(ctx context.Context) ([]models.AttendanceRecord, error)
	Alerts(ctx context.Context) ([]models.AlertItem, error)
	PTORequests(ctx context.Context) ([]models.PTORequest, error)
	OTRequests(ctx context.Context) ([]models.OTRequest, error)
	BillingRecords(ctx context.Context) ([]models.BillingRecord, error)
	Contracts(ctx context.Context) ([]models.ContractRecord, error)
	Customers(ctx context.Context) ([]models.CustomerRecord, error)
	InsertCustomer(ctx context.Context, build CustomerBuilder) (models.CustomerRecord, error)
	Uploads(ctx context.Context) ([]models.UploadHistoryItem, error)
	MasterCategories(ctx context.Context) ([]models.MasterCategory, error)
	Dashboard(ctx context.Context) (models.DashboardData, error)

	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id uint) (models.User, error)
	CountUsersByRole(ctx context.Context, role models.UserRole) (int64, error)
	CreateUser(ctx context.Context, user *models.User) error

	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	AuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error)
}
