package database

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"lull-backoffice/internal/models"
	"lull-backoffice/internal/seed"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormStore keeps the record tables in Postgres. Master data and the
// dashboard datasets are reference content and stay in memory.
type GormStore struct {
	db        *gorm.DB
	reference *seed.Dataset
}

const maxConnectAttempts = 10

// Open connects to Postgres, retrying while the database comes up, then
// migrates the schema and seeds empty tables from data.
func Open(dsn string, data *seed.Dataset, logger *zap.Logger) (*GormStore, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 1; i <= maxConnectAttempts; i++ {
		logger.Info("connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", maxConnectAttempts))

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logger.Info("connected to database")
			break
		}

		logger.Warn("failed to connect to database", zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db after %d attempts: %w", maxConnectAttempts, err)
	}

	return NewGormStore(db, data, logger)
}

// NewGormStore wraps an open connection, migrating and seeding it.
func NewGormStore(db *gorm.DB, data *seed.Dataset, logger *zap.Logger) (*GormStore, error) {
	// migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.AuditLog{},
		&models.AttendanceRecord{},
		&models.AlertItem{},
		&models.PTORequest{},
		&models.OTRequest{},
		&models.BillingRecord{},
		&models.ContractRecord{},
		&models.CustomerRecord{},
		&models.UploadHistoryItem{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	s := &GormStore{db: db, reference: data}
	if err := s.seedTables(logger); err != nil {
		return nil, err
	}
	return s, nil
}

// seedTables fills each empty table from the demo dataset.
func (s *GormStore) seedTables(logger *zap.Logger) error {
	ref := s.reference
	steps := []struct {
		name  string
		model any
		rows  any
		n     int
	}{
		{"attendance", &models.AttendanceRecord{}, numbered(ref.Attendance, func(r *models.AttendanceRecord) *int { return &r.Seq }), len(ref.Attendance)},
		{"alerts", &models.AlertItem{}, numbered(ref.Alerts, func(r *models.AlertItem) *int { return &r.Seq }), len(ref.Alerts)},
		{"pto_requests", &models.PTORequest{}, numbered(ref.PTORequests, func(r *models.PTORequest) *int { return &r.Seq }), len(ref.PTORequests)},
		{"ot_requests", &models.OTRequest{}, numbered(ref.OTRequests, func(r *models.OTRequest) *int { return &r.Seq }), len(ref.OTRequests)},
		{"billing", &models.BillingRecord{}, numbered(ref.Billing, func(r *models.BillingRecord) *int { return &r.Seq }), len(ref.Billing)},
		{"contracts", &models.ContractRecord{}, numbered(ref.Contracts, func(r *models.ContractRecord) *int { return &r.Seq }), len(ref.Contracts)},
		{"customers", &models.CustomerRecord{}, numbered(ref.Customers, func(r *models.CustomerRecord) *int { return &r.Seq }), len(ref.Customers)},
		{"uploads", &models.UploadHistoryItem{}, &ref.Uploads, len(ref.Uploads)},
	}

	for _, step := range steps {
		if step.n == 0 {
			continue
		}
		var count int64
		if err := s.db.Model(step.model).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", step.name, err)
		}
		if count > 0 {
			// already seeded
			continue
		}
		if err := s.db.Create(step.rows).Error; err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
		logger.Info("seeded table", zap.String("table", step.name), zap.Int("rows", step.n))
	}
	return nil
}

// numbered copies rows with Seq set to their 1-based position.
func numbered[T any](rows []T, seq func(*T) *int) *[]T {
	out := slices.Clone(rows)
	for i := range out {
		*seq(&out[i]) = i + 1
	}
	return &out
}

// listOrder lists rows in the order they were added, as MemoryStore does.
// Rows written before the seq column existed fall back to id order.
const listOrder = "seq asc, id asc"

func (s *GormStore) AttendanceRecords(ctx context.Context) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	err := s.db.WithContext(ctx).Order(listOrder).Find(&out).Error
	return out, wrap("attendance", err)
}

func (s *GormStore) Alerts(ctx context.Context) ([]models.AlertItem, error) {
	var out []models.AlertItem
	err := s.db.WithContext(ctx).Order(listOrder).Find(&out).Error
	return out, wrap("alerts", err)
}

func (s *GormStore) PTORequests(ctx context.Context) ([]models.PTORequest, error) {
	var out []models.PTORequest
	err := s.db.WithContext(ctx).Order(listOrder).Find(&out).Error
	return out, wrap("pto requests", err)
}

func (s *GormStore) OTRequests(ctx context.Context) ([]models.OTRequest, error) {
	var out []models.OTRequest
	err := s.db.WithContext(ctx).Order(listOrder).Find(&out).Error
	return out, wrap("ot requests", err)
}

func (s *GormStore) BillingRecords(ctx context.Context) ([]models.BillingRecord, error) {
	var out []models.BillingRecord
	err := s.db.WithContext(ctx).Order(listOrder).Find(&out).Error
	return out, wrap("billing", err)
}

func (s *GormStore) Contracts(ctx context.Context) ([]models.ContractRecord, error) {
	var out []models.ContractRecord
	err := s.db.WithContext(ctx).Order(listOrder).Find(&out).Error
	return out, wrap("contracts", err)
}

func (s *GormStore) Customers(ctx context.Context) ([]models.CustomerRecord, error) {
	var out []models.CustomerRecord
	err := s.db.WithContext(ctx).Order(listOrder).Find(&out).Error
	return out, wrap("customers", err)
}

func (s *GormStore) InsertCustomer(ctx context.Context, build CustomerBuilder) (models.CustomerRecord, error) {
	var rec models.CustomerRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// serialize id allocation
		if err := tx.Exec("LOCK TABLE customer_records IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}
		var existing []models.CustomerRecord
		if err := tx.Order(listOrder).Find(&existing).Error; err != nil {
			return err
		}
		rec = build(existing)
		for _, e := range existing {
			rec.Seq = max(rec.Seq, e.Seq)
		}
		rec.Seq++
		return tx.Create(&rec).Error
	})
	return rec, wrap("insert customer", err)
}

func (s *GormStore) Uploads(ctx context.Context) ([]models.UploadHistoryItem, error) {
	var out []models.UploadHistoryItem
	err := s.db.WithContext(ctx).Order("uploaded_at desc").Find(&out).Error
	return out, wrap("uploads", err)
}

func (s *GormStore) MasterCategories(ctx context.Context) ([]models.MasterCategory, error) {
	return s.reference.Master, nil
}

func (s *GormStore) Dashboard(ctx context.Context) (models.DashboardData, error) {
	return s.reference.Dashboard, nil
}

func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, wrap("find user", err)
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	return user, wrap("find user", err)
}

func (s *GormStore) CountUsersByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, wrap("count users", err)
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", user.Username).
		Count(&count).Error; err != nil {
		return wrap("check user", err)
	}
	if count > 0 {
		return ErrDuplicate
	}
	return wrap("create user", s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return wrap("create audit log", s.db.WithContext(ctx).Create(entry).Error)
}

func (s *GormStore) AuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, wrap("audit logs", err)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
