package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/config"
	auditrepo "github.com/tahfiz/listening/internal/database/audit"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	"github.com/tahfiz/listening/internal/entities"
)

var ErrUserNotFound = errors.New("user not found")

// auditEntityAuth marks audit entries produced by login attempts, as opposed
// to entity mutations.
const (
	auditEntityAuth     = "Authentication"
	auditEntityPassword = "Password"
)

// Service verifies credentials and manages passwords.
type Service struct {
	users  *userrepo.Repository
	audit  *auditrepo.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users *userrepo.Repository, audit *auditrepo.Repository, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		audit:  audit,
		config: cfg,
	}
}

// Authenticate verifies a username/password pair. It returns the user on
// success and nil on any authentication failure.
//
// Audit coverage is asymmetric on purpose, matching observed system
// behaviour: an unknown username leaves no trace, while an inactive account
// or a wrong password for an existing user is recorded.
func (s *Service) Authenticate(username, password string, ipAddress *string) (*entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		s.logAuthAttempt(user.ID, "Failed login attempt - inactive account", ipAddress)
		return nil, nil
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		s.logAuthAttempt(user.ID, "Failed login attempt - invalid password", ipAddress)
		return nil, nil
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to record last login: %w", err)
	}

	s.logAuthAttempt(user.ID, "Successful login", ipAddress)

	return user, nil
}

// ChangePassword verifies the current password and replaces it. Returns
// false without error when the user is unknown or the current password does
// not match.
func (s *Service) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) (bool, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := CheckPassword(currentPassword, user.PasswordHash); err != nil {
		return false, nil
	}

	hash, err := HashPassword(newPassword, s.config.BcryptCost)
	if err != nil {
		return false, err
	}
	user.PasswordHash = hash
	if err := s.users.Update(user); err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}

	desc := "Password changed"
	s.appendAudit(&entities.AuditLog{
		UserID:     userID,
		Action:     entities.AuditActionUpdated,
		EntityType: auditEntityPassword,
		EntityID:   userID,
		NewValues:  &desc,
	})

	return true, nil
}

// ResetPassword sets a new password for a user without knowing the current
// one. Intended for admins; the actor is recorded in the audit entry.
func (s *Service) ResetPassword(userID uuid.UUID, newPassword string, resetByUserID uuid.UUID) (bool, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	hash, err := HashPassword(newPassword, s.config.BcryptCost)
	if err != nil {
		return false, err
	}
	user.PasswordHash = hash
	if err := s.users.Update(user); err != nil {
		return false, fmt.Errorf("failed to reset password: %w", err)
	}

	desc := fmt.Sprintf("Password reset for user %s", user.Username)
	s.appendAudit(&entities.AuditLog{
		UserID:     resetByUserID,
		Action:     entities.AuditActionUpdated,
		EntityType: auditEntityPassword,
		EntityID:   userID,
		NewValues:  &desc,
	})

	return true, nil
}

// GetUserByID retrieves a user, translating the repository not-found error.
func (s *Service) GetUserByID(id uuid.UUID) (*entities.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) logAuthAttempt(userID uuid.UUID, description string, ipAddress *string) {
	s.appendAudit(&entities.AuditLog{
		UserID:     userID,
		Action:     entities.AuditActionViewed,
		EntityType: auditEntityAuth,
		EntityID:   userID,
		NewValues:  &description,
		IPAddress:  ipAddress,
	})
}

// appendAudit records an audit entry. Audit writes are uncoordinated with
// the primary mutation; a failure here does not fail the login.
func (s *Service) appendAudit(entry *entities.AuditLog) {
	if err := s.audit.Append(entry); err != nil {
		log.Printf("Failed to append auth audit entry: %v", err)
	}
}
