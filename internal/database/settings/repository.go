// Package settings provides database operations for the school settings
// singleton row.
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/entities"
)

// settingsRowID is the fixed primary key of the single settings row.
const settingsRowID = 1

// Repository handles the single-row school settings table.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves the settings row, creating it with defaults on first read.
func (r *Repository) Get() (*entities.SchoolSettings, error) {
	var settings entities.SchoolSettings
	err := r.db.First(&settings, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = entities.SchoolSettings{
			ID:               settingsRowID,
			SchoolNameArabic: entities.DefaultSchoolName,
		}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update saves the settings row.
func (r *Repository) Update(settings *entities.SchoolSettings) error {
	settings.ID = settingsRowID
	return r.db.Save(settings).Error
}
