// Package listening implements the listening session workflow: recording,
// correcting and removing sessions, with referential checks against the
// user roster and the surah reference table.
package listening

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditrepo "github.com/tahfiz/listening/internal/database/audit"
	sessionrepo "github.com/tahfiz/listening/internal/database/listening"
	surahrepo "github.com/tahfiz/listening/internal/database/surahs"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	"github.com/tahfiz/listening/internal/entities"
)

var (
	ErrSessionNotFound = errors.New("listening session not found")
	ErrInvalidStudent  = errors.New("student user not found or not a student")
	ErrInvalidTeacher  = errors.New("teacher user not found or not a teacher")
	ErrUnknownSurah    = errors.New("surah number is out of range")
)

var validate = validator.New()

const auditEntitySession = "ListeningSession"

// SessionInput carries the fields of a listening session mutation.
type SessionInput struct {
	StudentUserID uuid.UUID `validate:"required"`
	TeacherUserID uuid.UUID `validate:"required"`
	SessionDate   time.Time
	SurahNumber   int `validate:"required,min=1,max=114"`
	FromAyah      int `validate:"required,min=1"`
	ToAyah        int `validate:"required,min=1"`
	MajorErrors   int `validate:"min=0"`
	MinorErrors   int `validate:"min=0"`
	IsCompleted   bool
	Grade         *float64 `validate:"omitempty,min=0,max=100"`
	Notes         *string  `validate:"omitempty,max=2000"`
}

// Statistics summarizes the session table.
type Statistics struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

// Service orchestrates listening session operations.
type Service struct {
	sessions *sessionrepo.Repository
	users    *userrepo.Repository
	surahs   *surahrepo.Repository
	audit    *auditrepo.Repository
}

// NewService creates a new listening session service.
func NewService(sessions *sessionrepo.Repository, users *userrepo.Repository, surahs *surahrepo.Repository, audit *auditrepo.Repository) *Service {
	return &Service{
		sessions: sessions,
		users:    users,
		surahs:   surahs,
		audit:    audit,
	}
}

// GetByID retrieves a session with its student and teacher preloaded.
func (s *Service) GetByID(id uuid.UUID) (*entities.ListeningSession, error) {
	session, err := s.sessions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// GetAll lists every session, newest first.
func (s *Service) GetAll() ([]entities.ListeningSession, error) {
	return s.sessions.GetAll()
}

// GetByStudent lists the sessions of one student.
func (s *Service) GetByStudent(studentID uuid.UUID) ([]entities.ListeningSession, error) {
	return s.sessions.GetByStudent(studentID)
}

// GetByTeacher lists the sessions run by one teacher.
func (s *Service) GetByTeacher(teacherID uuid.UUID) ([]entities.ListeningSession, error) {
	return s.sessions.GetByTeacher(teacherID)
}

// GetRecent returns the most recently dated sessions.
func (s *Service) GetRecent(count int) ([]entities.ListeningSession, error) {
	return s.sessions.GetRecent(count)
}

// Create records a new listening session. The student and teacher must
// exist with the matching role, and the surah number must be present in the
// reference table. An ending ayah before the starting ayah is stored as
// given.
func (s *Service) Create(input SessionInput, createdByUserID uuid.UUID) (*entities.ListeningSession, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkParties(input); err != nil {
		return nil, err
	}

	session := &entities.ListeningSession{
		StudentUserID: input.StudentUserID,
		TeacherUserID: input.TeacherUserID,
		SessionDate:   input.SessionDate,
		SurahNumber:   input.SurahNumber,
		FromAyah:      input.FromAyah,
		ToAyah:        input.ToAyah,
		MajorErrors:   input.MajorErrors,
		MinorErrors:   input.MinorErrors,
		IsCompleted:   input.IsCompleted,
		Grade:         input.Grade,
		Notes:         input.Notes,
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create listening session: %w", err)
	}

	// Reload so the audit entry can name both parties.
	created, err := s.sessions.GetByID(session.ID)
	if err != nil {
		return nil, err
	}

	newValues := fmt.Sprintf("Student: %s, Teacher: %s, Date: %s",
		created.Student.FullNameArabic,
		created.Teacher.FullNameArabic,
		created.SessionDate.Format("2006-01-02"))
	s.appendAudit(&entities.AuditLog{
		UserID:     createdByUserID,
		Action:     entities.AuditActionCreated,
		EntityType: auditEntitySession,
		EntityID:   created.ID,
		NewValues:  &newValues,
	})

	return created, nil
}

// Update rewrites an existing session with the given input.
func (s *Service) Update(id uuid.UUID, input SessionInput, modifiedByUserID uuid.UUID) (*entities.ListeningSession, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.sessions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if err := s.checkParties(input); err != nil {
		return nil, err
	}

	existing.StudentUserID = input.StudentUserID
	existing.TeacherUserID = input.TeacherUserID
	existing.SessionDate = input.SessionDate
	existing.SurahNumber = input.SurahNumber
	existing.FromAyah = input.FromAyah
	existing.ToAyah = input.ToAyah
	existing.MajorErrors = input.MajorErrors
	existing.MinorErrors = input.MinorErrors
	existing.IsCompleted = input.IsCompleted
	existing.Grade = input.Grade
	existing.Notes = input.Notes

	if err := s.sessions.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update listening session: %w", err)
	}

	newValues := fmt.Sprintf("Session updated - IsCompleted: %t", existing.IsCompleted)
	s.appendAudit(&entities.AuditLog{
		UserID:     modifiedByUserID,
		Action:     entities.AuditActionUpdated,
		EntityType: auditEntitySession,
		EntityID:   existing.ID,
		NewValues:  &newValues,
	})

	return existing, nil
}

// Delete removes a session and records which student it belonged to.
func (s *Service) Delete(id uuid.UUID, deletedByUserID uuid.UUID) error {
	session, err := s.sessions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	if err := s.sessions.Delete(id); err != nil {
		return fmt.Errorf("failed to delete listening session: %w", err)
	}

	oldValues := fmt.Sprintf("Session for student ID: %s", session.StudentUserID)
	s.appendAudit(&entities.AuditLog{
		UserID:     deletedByUserID,
		Action:     entities.AuditActionDeleted,
		EntityType: auditEntitySession,
		EntityID:   id,
		OldValues:  &oldValues,
	})

	return nil
}

// GetStatistics returns total, completed and pending session counts.
func (s *Service) GetStatistics() (*Statistics, error) {
	total, err := s.sessions.CountTotal()
	if err != nil {
		return nil, err
	}
	completed, err := s.sessions.CountCompleted()
	if err != nil {
		return nil, err
	}
	return &Statistics{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}, nil
}

// checkParties verifies the student, the teacher and the surah reference,
// in that order.
func (s *Service) checkParties(input SessionInput) error {
	student, err := s.users.GetByID(input.StudentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidStudent
		}
		return err
	}
	if student.Role != entities.UserRoleStudent {
		return ErrInvalidStudent
	}

	teacher, err := s.users.GetByID(input.TeacherUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidTeacher
		}
		return err
	}
	if teacher.Role != entities.UserRoleTeacher {
		return ErrInvalidTeacher
	}

	exists, err := s.surahs.Exists(input.SurahNumber)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %d", ErrUnknownSurah, input.SurahNumber)
	}

	return nil
}

func (s *Service) appendAudit(entry *entities.AuditLog) {
	if err := s.audit.Append(entry); err != nil {
		log.Printf("Failed to append session audit entry: %v", err)
	}
}
