// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByUsername("admin")
package users

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new user.
func (r *Repository) Create(user *entities.User) error {
	return r.db.Create(user).Error
}

// Update saves changes to an existing user.
func (r *Repository) Update(user *entities.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user by ID.
func (r *Repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entities.User{}, "id = ?", id).Error
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(id uuid.UUID) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves every user ordered by creation date.
func (r *Repository) GetAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.Order("created_at").Find(&users).Error
	return users, err
}

// GetByRole retrieves users holding the given role.
func (r *Repository) GetByRole(role entities.UserRole) ([]entities.User, error) {
	var users []entities.User
	err := r.db.Where("role = ?", role).Order("full_name_arabic").Find(&users).Error
	return users, err
}

// GetActive retrieves all active users.
func (r *Repository) GetActive() ([]entities.User, error) {
	var users []entities.User
	err := r.db.Where("is_active = ?", true).Order("full_name_arabic").Find(&users).Error
	return users, err
}

// UsernameExists reports whether any user holds the given username.
func (r *Repository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// IDNumberExists reports whether any user holds the given national ID.
func (r *Repository) IDNumberExists(idNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Where("id_number = ?", idNumber).Count(&count).Error
	return count > 0, err
}

// CountByRole counts users holding the given role.
func (r *Repository) CountByRole(role entities.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
