// Package surahs provides read access to the surah reference lookup table.
package surahs

import (
	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/entities"
)

// Repository handles surah reference lookups. The table is seeded once and
// read-only afterwards.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new surah reference repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves all 114 surahs in order.
func (r *Repository) GetAll() ([]entities.SurahReference, error) {
	var surahs []entities.SurahReference
	err := r.db.Order("surah_number").Find(&surahs).Error
	return surahs, err
}

// GetByNumber retrieves a single surah.
func (r *Repository) GetByNumber(number int) (*entities.SurahReference, error) {
	var surah entities.SurahReference
	err := r.db.First(&surah, "surah_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &surah, nil
}

// Exists reports whether the surah number is present in the lookup table.
func (r *Repository) Exists(number int) (bool, error) {
	var count int64
	err := r.db.Model(&entities.SurahReference{}).Where("surah_number = ?", number).Count(&count).Error
	return count > 0, err
}

// ArabicNames returns a number-to-Arabic-name map for report rendering.
func (r *Repository) ArabicNames() (map[int]string, error) {
	surahs, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(surahs))
	for _, s := range surahs {
		names[s.SurahNumber] = s.SurahNameArabic
	}
	return names, nil
}
