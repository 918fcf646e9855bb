package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleTeacher UserRole = "teacher"
	UserRoleStudent UserRole = "student"
)

// User covers all three roles in a single table. Role-specific fields
// (GradeLevel for students, IDNumber for teachers/students) stay nullable
// for the other roles.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash   string    `gorm:"size:100" json:"-"`
	FullNameArabic string    `gorm:"size:200" json:"full_name_arabic"`
	IDNumber       *string   `gorm:"size:20" json:"id_number,omitempty"` // national ID, unique when present
	PhoneNumber    *string   `gorm:"size:20" json:"phone_number,omitempty"`
	Email          *string   `gorm:"size:100" json:"email,omitempty"`
	Role           UserRole  `gorm:"index;size:20" json:"role"`
	GradeLevel     *string   `gorm:"size:50" json:"grade_level,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`

	CreatedByUserID *uuid.UUID `gorm:"type:uuid;index" json:"created_by_user_id,omitempty"`
	CreatedByUser   *User      `gorm:"foreignKey:CreatedByUserID" json:"-"`

	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	PledgeAcceptedAt *time.Time `json:"pledge_accepted_at,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
