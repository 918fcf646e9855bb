package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tahfiz/listening/internal/entities"
)

// Bootstrap admin account, created on first run if absent.
var (
	DefaultAdminID       = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "Admin@123"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.User{},
		&entities.SurahReference{},
		&entities.ListeningSession{},
		&entities.AuditLog{},
		&entities.SchoolSettings{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// National ID must be unique only when present; sqlite partial index,
	// which AutoMigrate cannot express.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_id_number
		ON users(id_number) WHERE id_number IS NOT NULL`).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create id_number index: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedSurahs(); err != nil {
		return nil, fmt.Errorf("failed to seed surah references: %w", err)
	}
	if err := database.seedDefaultAdmin(); err != nil {
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedSurahs loads the 114-chapter lookup table once.
func (d *Database) seedSurahs() error {
	var count int64
	if err := d.DB.Model(&entities.SurahReference{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	surahs := SurahSeed()
	if err := d.DB.Create(&surahs).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d surah references", len(surahs))
	return nil
}

// seedDefaultAdmin creates the bootstrap admin account if no user with the
// default username exists yet.
func (d *Database) seedDefaultAdmin() error {
	var existing entities.User
	err := d.DB.Where("username = ?", DefaultAdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	email := "admin@tahfiz.local"
	admin := entities.User{
		ID:              DefaultAdminID,
		Username:        DefaultAdminUsername,
		PasswordHash:    string(hash),
		FullNameArabic:  "المسؤول",
		Email:           &email,
		Role:            entities.UserRoleAdmin,
		IsActive:        true,
		CreatedByUserID: &DefaultAdminID, // self-created
	}

	if err := d.DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Created default admin user (username: %s)", DefaultAdminUsername)
	return nil
}
