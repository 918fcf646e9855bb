package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSchoolName is used when the settings row is created lazily.
const DefaultSchoolName = "مدرسة تحفيظ القرآن الكريم"

// SchoolSettings is a single-row table (ID is always 1) holding school-wide
// configuration. Created lazily with defaults on first read.
type SchoolSettings struct {
	ID               int        `gorm:"primaryKey" json:"id"`
	SchoolNameArabic string     `gorm:"size:200" json:"school_name_arabic"`
	SchoolLogoPath   *string    `gorm:"size:500" json:"school_logo_path,omitempty"`
	PledgeText       *string    `gorm:"type:text" json:"pledge_text,omitempty"`
	ModifiedAt       *time.Time `json:"modified_at,omitempty"`
	ModifiedByUserID *uuid.UUID `gorm:"type:uuid" json:"modified_by_user_id,omitempty"`
}

func (SchoolSettings) TableName() string {
	return "school_settings"
}
