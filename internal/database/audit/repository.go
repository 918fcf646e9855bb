package audit

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/entities"
)

// Repository handles the append-only audit log. Entries are created and
// read, never updated or deleted.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append saves an audit log entry.
func (r *Repository) Append(entry *entities.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetEntries retrieves paginated audit entries, most recent first.
func (r *Repository) GetEntries(limit, offset int) ([]entities.AuditLog, int64, error) {
	var entries []entities.AuditLog
	var total int64

	if err := r.db.Model(&entities.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := r.db.Order("timestamp DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// GetByEntity retrieves the audit trail for one entity, most recent first.
func (r *Repository) GetByEntity(entityType string, entityID uuid.UUID) ([]entities.AuditLog, error) {
	var entries []entities.AuditLog
	err := r.db.
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

// GetByUser retrieves entries recorded for actions by one user, most recent
// first.
func (r *Repository) GetByUser(userID uuid.UUID, limit int) ([]entities.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []entities.AuditLog
	err := r.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// CountByEntity counts audit entries for one entity.
func (r *Repository) CountByEntity(entityType string, entityID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entities.AuditLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Count(&count).Error
	return count, err
}
