// Package listening provides database operations for listening sessions.
//
// # Usage
//
//	repo := listening.NewRepository(db)
//	sessions, err := repo.GetByStudentInRange(studentID, from, to)
package listening

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/entities"
)

// Repository handles all listening session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new listening sessions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// withParties preloads the student and teacher rows every read path needs.
func (r *Repository) withParties() *gorm.DB {
	return r.db.Preload("Student").Preload("Teacher")
}

// Create persists a new session.
func (r *Repository) Create(session *entities.ListeningSession) error {
	return r.db.Create(session).Error
}

// Update saves changes to an existing session.
func (r *Repository) Update(session *entities.ListeningSession) error {
	return r.db.Save(session).Error
}

// Delete removes a session by ID.
func (r *Repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entities.ListeningSession{}, "id = ?", id).Error
}

// GetByID retrieves a session with its student and teacher.
func (r *Repository) GetByID(id uuid.UUID) (*entities.ListeningSession, error) {
	var session entities.ListeningSession
	err := r.withParties().First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAll retrieves every session, most recent first.
func (r *Repository) GetAll() ([]entities.ListeningSession, error) {
	var sessions []entities.ListeningSession
	err := r.withParties().Order("session_date DESC").Find(&sessions).Error
	return sessions, err
}

// GetByStudent retrieves a student's sessions, most recent first.
func (r *Repository) GetByStudent(studentID uuid.UUID) ([]entities.ListeningSession, error) {
	var sessions []entities.ListeningSession
	err := r.withParties().
		Where("student_user_id = ?", studentID).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

// GetByTeacher retrieves a teacher's sessions, most recent first.
func (r *Repository) GetByTeacher(teacherID uuid.UUID) ([]entities.ListeningSession, error) {
	var sessions []entities.ListeningSession
	err := r.withParties().
		Where("teacher_user_id = ?", teacherID).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

// GetByStudentInRange retrieves a student's sessions within [from, to],
// inclusive on both endpoints.
func (r *Repository) GetByStudentInRange(studentID uuid.UUID, from, to time.Time) ([]entities.ListeningSession, error) {
	var sessions []entities.ListeningSession
	err := r.withParties().
		Where("student_user_id = ? AND session_date >= ? AND session_date <= ?", studentID, from, to).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

// GetByTeacherInRange retrieves a teacher's sessions within [from, to],
// inclusive on both endpoints.
func (r *Repository) GetByTeacherInRange(teacherID uuid.UUID, from, to time.Time) ([]entities.ListeningSession, error) {
	var sessions []entities.ListeningSession
	err := r.withParties().
		Where("teacher_user_id = ? AND session_date >= ? AND session_date <= ?", teacherID, from, to).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

// GetInRange retrieves all sessions within [from, to], inclusive on both
// endpoints.
func (r *Repository) GetInRange(from, to time.Time) ([]entities.ListeningSession, error) {
	var sessions []entities.ListeningSession
	err := r.withParties().
		Where("session_date >= ? AND session_date <= ?", from, to).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

// GetRecent retrieves the most recent sessions, newest first.
func (r *Repository) GetRecent(count int) ([]entities.ListeningSession, error) {
	var sessions []entities.ListeningSession
	err := r.withParties().
		Order("session_date DESC").
		Limit(count).
		Find(&sessions).Error
	return sessions, err
}

// CountTotal counts all sessions.
func (r *Repository) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&entities.ListeningSession{}).Count(&count).Error
	return count, err
}

// CountCompleted counts sessions marked completed.
func (r *Repository) CountCompleted() (int64, error) {
	var count int64
	err := r.db.Model(&entities.ListeningSession{}).Where("is_completed = ?", true).Count(&count).Error
	return count, err
}

// CountByStudent counts a student's sessions.
func (r *Repository) CountByStudent(studentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entities.ListeningSession{}).Where("student_user_id = ?", studentID).Count(&count).Error
	return count, err
}

// CountByTeacher counts a teacher's sessions.
func (r *Repository) CountByTeacher(teacherID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entities.ListeningSession{}).Where("teacher_user_id = ?", teacherID).Count(&count).Error
	return count, err
}
