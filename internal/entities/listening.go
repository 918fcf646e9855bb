package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListeningSession records one examination of a student's recitation by a
// teacher, scoped to a single surah and ayah range.
type ListeningSession struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StudentUserID uuid.UUID `gorm:"type:uuid;index" json:"student_user_id"`
	Student       User      `gorm:"foreignKey:StudentUserID;constraint:OnDelete:RESTRICT" json:"student,omitempty"`
	TeacherUserID uuid.UUID `gorm:"type:uuid;index" json:"teacher_user_id"`
	Teacher       User      `gorm:"foreignKey:TeacherUserID;constraint:OnDelete:RESTRICT" json:"teacher,omitempty"`

	SessionDate time.Time `gorm:"index" json:"session_date"`
	SurahNumber int       `json:"surah_number"` // 1-114, validated against surah_references
	FromAyah    int       `json:"from_ayah"`
	ToAyah      int       `json:"to_ayah"`

	MajorErrors int      `json:"major_errors"` // خطأ جلي
	MinorErrors int      `json:"minor_errors"` // خطأ خفي
	IsCompleted bool     `json:"is_completed"`
	Grade       *float64 `json:"grade,omitempty"` // 0-100, two decimals
	Notes       *string  `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (ListeningSession) TableName() string {
	return "listening_sessions"
}

func (s *ListeningSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SessionDate.IsZero() {
		s.SessionDate = time.Now()
	}
	return nil
}
