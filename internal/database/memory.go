package database

import (
	"context"
	"slices"
	"sync"
	"time"

	"lull-backoffice/internal/models"
	"lull-backoffice/internal/seed"
)

// MemoryStore serves the seeded datasets from memory. It is the default
// store when no database DSN is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data *seed.Dataset

	users       []models.User
	nextUserID  uint
	audit       []models.AuditLog
	nextAuditID uint
}

func NewMemoryStore(data *seed.Dataset) *MemoryStore {
	return &MemoryStore{
		data:        data,
		nextUserID:  1,
		nextAuditID: 1,
	}
}

func (s *MemoryStore) AttendanceRecords(ctx context.Context) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Attendance), nil
}

func (s *MemoryStore) Alerts(ctx context.Context) ([]models.AlertItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Alerts), nil
}

func (s *MemoryStore) PTORequests(ctx context.Context) ([]models.PTORequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.PTORequests), nil
}

func (s *MemoryStore) OTRequests(ctx context.Context) ([]models.OTRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.OTRequests), nil
}

func (s *MemoryStore) BillingRecords(ctx context.Context) ([]models.BillingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Billing), nil
}

func (s *MemoryStore) Contracts(ctx context.Context) ([]models.ContractRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Contracts), nil
}

func (s *MemoryStore) Customers(ctx context.Context) ([]models.CustomerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Customers), nil
}

func (s *MemoryStore) InsertCustomer(ctx context.Context, build CustomerBuilder) (models.CustomerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := build(slices.Clone(s.data.Customers))
	s.data.Customers = append(s.data.Customers, rec)
	return rec, nil
}

func (s *MemoryStore) Uploads(ctx context.Context) ([]models.UploadHistoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Uploads), nil
}

func (s *MemoryStore) MasterCategories(ctx context.Context) ([]models.MasterCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Master), nil
}

func (s *MemoryStore) Dashboard(ctx context.Context) (models.DashboardData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Dashboard, nil
}

func (s *MemoryStore) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) FindUserByID(ctx context.Context, id uint) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) CountUsersByRole(ctx context.Context, role models.UserRole) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	now := time.Now()
	user.ID = s.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.nextUserID++
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextAuditID
	entry.CreatedAt = time.Now()
	s.nextAuditID++
	s.audit = append(s.audit, *entry)
	return nil
}

// AuditLogs returns the newest entries first.
func (s *MemoryStore) AuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.audit)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		if u, ok := s.userByIDLocked(out[i].UserID); ok {
			out[i].User = u
		}
	}
	return out, nil
}

func (s *MemoryStore) userByIDLocked(id uint) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
