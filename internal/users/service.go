// Package users implements user management: CRUD with uniqueness
// enforcement, pledge acceptance, and role statistics. Every successful
// mutation appends exactly one audit log entry.
package users

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/config"
	auditrepo "github.com/tahfiz/listening/internal/database/audit"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	"github.com/tahfiz/listening/internal/entities"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrIDNumberExists = errors.New("national ID number already exists")
	ErrNotStudent     = errors.New("user is not a student")
)

var validate = validator.New()

// auditEntityUser is the entity type recorded for user mutations.
const auditEntityUser = "User"

// CreateUserInput carries the fields needed to create a user.
type CreateUserInput struct {
	Username       string            `validate:"required,min=3,max=50"`
	Password       string            `validate:"required,min=8"`
	FullNameArabic string            `validate:"required,max=200"`
	Role           entities.UserRole `validate:"required,oneof=admin teacher student"`
	IDNumber       *string           `validate:"omitempty,max=20"`
	PhoneNumber    *string           `validate:"omitempty,max=20"`
	Email          *string           `validate:"omitempty,email"`
	GradeLevel     *string           `validate:"omitempty,max=50"`
}

// UpdateUserInput carries the mutable fields of an existing user.
type UpdateUserInput struct {
	Username       string            `validate:"required,min=3,max=50"`
	FullNameArabic string            `validate:"required,max=200"`
	Role           entities.UserRole `validate:"required,oneof=admin teacher student"`
	IDNumber       *string           `validate:"omitempty,max=20"`
	PhoneNumber    *string           `validate:"omitempty,max=20"`
	Email          *string           `validate:"omitempty,email"`
	GradeLevel     *string           `validate:"omitempty,max=50"`
	IsActive       bool
}

// Service orchestrates user operations over the repository layer.
type Service struct {
	users  *userrepo.Repository
	audit  *auditrepo.Repository
	config config.Auth
}

// NewService creates a new user service.
func NewService(users *userrepo.Repository, audit *auditrepo.Repository, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		audit:  audit,
		config: cfg,
	}
}

// GetByID retrieves a user by ID.
func (s *Service) GetByID(id uuid.UUID) (*entities.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByUsername retrieves a user by username.
func (s *Service) GetByUsername(username string) (*entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetAll lists every user.
func (s *Service) GetAll() ([]entities.User, error) {
	return s.users.GetAll()
}

// GetTeachers lists all teachers.
func (s *Service) GetTeachers() ([]entities.User, error) {
	return s.users.GetByRole(entities.UserRoleTeacher)
}

// GetStudents lists all students.
func (s *Service) GetStudents() ([]entities.User, error) {
	return s.users.GetByRole(entities.UserRoleStudent)
}

// GetActive lists all active users.
func (s *Service) GetActive() ([]entities.User, error) {
	return s.users.GetActive()
}

// Create validates uniqueness of username and national ID, hashes the
// password and persists the user. The audit entry records the creating
// admin as the actor.
func (s *Service) Create(input CreateUserInput, createdByUserID uuid.UUID) (*entities.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	exists, err := s.users.UsernameExists(input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrUsernameExists, input.Username)
	}

	if input.IDNumber != nil && *input.IDNumber != "" {
		exists, err := s.users.IDNumberExists(*input.IDNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %q", ErrIDNumberExists, *input.IDNumber)
		}
	}

	hash, err := auth.HashPassword(input.Password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:        input.Username,
		PasswordHash:    hash,
		FullNameArabic:  input.FullNameArabic,
		IDNumber:        input.IDNumber,
		PhoneNumber:     input.PhoneNumber,
		Email:           input.Email,
		Role:            input.Role,
		GradeLevel:      input.GradeLevel,
		IsActive:        true,
		CreatedByUserID: &createdByUserID,
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	newValues := fmt.Sprintf("Username: %s, Role: %s", user.Username, user.Role)
	s.appendAudit(&entities.AuditLog{
		UserID:     createdByUserID,
		Action:     entities.AuditActionCreated,
		EntityType: auditEntityUser,
		EntityID:   user.ID,
		NewValues:  &newValues,
	})

	return user, nil
}

// Update applies the input to an existing user. Changing the username
// re-checks uniqueness.
func (s *Service) Update(id uuid.UUID, input UpdateUserInput, modifiedByUserID uuid.UUID) (*entities.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if existing.Username != input.Username {
		exists, err := s.users.UsernameExists(input.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %q", ErrUsernameExists, input.Username)
		}
	}

	oldValues := fmt.Sprintf("Username: %s", existing.Username)

	now := time.Now()
	existing.Username = input.Username
	existing.FullNameArabic = input.FullNameArabic
	existing.Role = input.Role
	existing.IDNumber = input.IDNumber
	existing.PhoneNumber = input.PhoneNumber
	existing.Email = input.Email
	existing.GradeLevel = input.GradeLevel
	existing.IsActive = input.IsActive
	existing.UpdatedAt = &now

	if err := s.users.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	newValues := fmt.Sprintf("Username: %s", existing.Username)
	s.appendAudit(&entities.AuditLog{
		UserID:     modifiedByUserID,
		Action:     entities.AuditActionUpdated,
		EntityType: auditEntityUser,
		EntityID:   existing.ID,
		OldValues:  &oldValues,
		NewValues:  &newValues,
	})

	return existing, nil
}

// Delete removes a user and records who deleted it.
func (s *Service) Delete(id uuid.UUID, deletedByUserID uuid.UUID) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	oldValues := fmt.Sprintf("Username: %s, Role: %s", user.Username, user.Role)
	s.appendAudit(&entities.AuditLog{
		UserID:     deletedByUserID,
		Action:     entities.AuditActionDeleted,
		EntityType: auditEntityUser,
		EntityID:   id,
		OldValues:  &oldValues,
	})

	return nil
}

// AcceptPledge marks a student as having accepted the pledge. Only students
// carry a pledge; other roles are rejected.
func (s *Service) AcceptPledge(userID uuid.UUID) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Role != entities.UserRoleStudent {
		return ErrNotStudent
	}

	now := time.Now()
	user.PledgeAcceptedAt = &now
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to record pledge acceptance: %w", err)
	}

	newValues := fmt.Sprintf("Pledge accepted at %s", now.Format("2006-01-02 15:04:05"))
	s.appendAudit(&entities.AuditLog{
		UserID:     userID,
		Action:     entities.AuditActionUpdated,
		EntityType: auditEntityUser,
		EntityID:   userID,
		NewValues:  &newValues,
	})

	return nil
}

// HasAcceptedPledge reports whether the user has accepted the pledge.
func (s *Service) HasAcceptedPledge(userID uuid.UUID) (bool, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return user.PledgeAcceptedAt != nil, nil
}

// CountsByRole returns the user count for each role.
func (s *Service) CountsByRole() (map[entities.UserRole]int64, error) {
	counts := make(map[entities.UserRole]int64, 3)
	for _, role := range []entities.UserRole{entities.UserRoleAdmin, entities.UserRoleTeacher, entities.UserRoleStudent} {
		count, err := s.users.CountByRole(role)
		if err != nil {
			return nil, err
		}
		counts[role] = count
	}
	return counts, nil
}

// appendAudit records an audit entry for a completed mutation. The write is
// uncoordinated with the mutation itself; a failure is logged, not
// propagated.
func (s *Service) appendAudit(entry *entities.AuditLog) {
	if err := s.audit.Append(entry); err != nil {
		log.Printf("Failed to append user audit entry: %v", err)
	}
}
