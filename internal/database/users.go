package database

import (
	"context"
	"errors"
	"fmt"

	"lull-backoffice/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedUser is a demo account created at startup when missing.
type SeedUser struct {
	Username string
	Password string
	Role     models.UserRole
}

// DefaultSeedUsers are the demo accounts besides the admin.
var DefaultSeedUsers = []SeedUser{
	{Username: "sales@lull.local", Password: "Sales123!", Role: models.RoleSales},
	{Username: "accounting@lull.local", Password: "Acct123!", Role: models.RoleAccounting},
	{Username: "viewer@lull.local", Password: "Viewer123!", Role: models.RoleViewer},
}

// EnsureAdmin creates the admin account unless an admin already exists.
func EnsureAdmin(ctx context.Context, s Store, logger *zap.Logger, username, password string) error {
	count, err := s.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := CreateUserWithPassword(ctx, s, username, password, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	logger.Info("created default admin user", zap.String("username", username))
	return nil
}

// EnsureUsers creates every missing seed account. Individual failures are
// logged and skipped.
func EnsureUsers(ctx context.Context, s Store, logger *zap.Logger, users []SeedUser) {
	for _, u := range users {
		_, err := s.FindUserByUsername(ctx, u.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("failed to check seed user", zap.String("username", u.Username), zap.Error(err))
			continue
		}

		if err := CreateUserWithPassword(ctx, s, u.Username, u.Password, u.Role); err != nil {
			logger.Warn("failed to create seed user", zap.String("username", u.Username), zap.Error(err))
			continue
		}
		logger.Info("created seed user", zap.String("username", u.Username), zap.String("role", string(u.Role)))
	}
}

// CreateUserWithPassword hashes password and stores a new account.
func CreateUserWithPassword(ctx context.Context, s Store, username, password string, role models.UserRole) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	return s.CreateUser(ctx, &user)
}

// Authenticate returns the user when password matches.
func Authenticate(ctx context.Context, s Store, username, password string) (models.User, error) {
	user, err := s.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
