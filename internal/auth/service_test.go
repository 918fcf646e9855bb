package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tahfiz/listening/internal/config"
	auditrepo "github.com/tahfiz/listening/internal/database/audit"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	"github.com/tahfiz/listening/internal/entities"
)

func setupTestService(t *testing.T) (*Service, *userrepo.Repository, *auditrepo.Repository, func()) {
	dbPath := "./test_auth_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.AuditLog{})
	require.NoError(t, err)

	users := userrepo.NewRepository(db)
	audit := auditrepo.NewRepository(db)
	// Low bcrypt cost keeps the tests fast
	service := NewService(users, audit, config.Auth{BcryptCost: 4})

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return service, users, audit, cleanup
}

func createAccount(t *testing.T, users *userrepo.Repository, username, password string, active bool) *entities.User {
	hash, err := HashPassword(password, 4)
	require.NoError(t, err)

	user := &entities.User{
		Username:       username,
		PasswordHash:   hash,
		FullNameArabic: "مستخدم",
		Role:           entities.UserRoleTeacher,
		IsActive:       active,
	}
	require.NoError(t, users.Create(user))
	return user
}

func TestAuthenticate_Success(t *testing.T) {
	service, users, audit, cleanup := setupTestService(t)
	defer cleanup()

	created := createAccount(t, users, "teacher", "correct-horse", true)

	user, err := service.Authenticate("teacher", "correct-horse", nil)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
	assert.NotNil(t, user.LastLoginAt)

	entries, err := audit.GetByEntity("Authentication", created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].NewValues)
	assert.Equal(t, "Successful login", *entries[0].NewValues)
}

func TestAuthenticate_UnknownUserLeavesNoTrace(t *testing.T) {
	service, _, audit, cleanup := setupTestService(t)
	defer cleanup()

	user, err := service.Authenticate("nobody", "whatever", nil)
	require.NoError(t, err)
	assert.Nil(t, user)

	_, total, err := audit.GetEntries(10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestAuthenticate_WrongPasswordIsRecorded(t *testing.T) {
	service, users, audit, cleanup := setupTestService(t)
	defer cleanup()

	created := createAccount(t, users, "teacher", "correct-horse", true)

	ip := "192.0.2.1"
	user, err := service.Authenticate("teacher", "wrong", &ip)
	require.NoError(t, err)
	assert.Nil(t, user)

	entries, err := audit.GetByEntity("Authentication", created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].NewValues)
	assert.Equal(t, "Failed login attempt - invalid password", *entries[0].NewValues)
	require.NotNil(t, entries[0].IPAddress)
	assert.Equal(t, ip, *entries[0].IPAddress)
}

func TestAuthenticate_InactiveAccountIsRecorded(t *testing.T) {
	service, users, audit, cleanup := setupTestService(t)
	defer cleanup()

	created := createAccount(t, users, "dormant", "correct-horse", false)

	user, err := service.Authenticate("dormant", "correct-horse", nil)
	require.NoError(t, err)
	assert.Nil(t, user)

	entries, err := audit.GetByEntity("Authentication", created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].NewValues)
	assert.Equal(t, "Failed login attempt - inactive account", *entries[0].NewValues)
}

func TestChangePassword(t *testing.T) {
	service, users, _, cleanup := setupTestService(t)
	defer cleanup()

	created := createAccount(t, users, "teacher", "old-password", true)

	// Wrong current password
	ok, err := service.ChangePassword(created.ID, "not-it", "new-password")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = service.ChangePassword(created.ID, "old-password", "new-password")
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := service.Authenticate("teacher", "new-password", nil)
	require.NoError(t, err)
	assert.NotNil(t, user)

	user, err = service.Authenticate("teacher", "old-password", nil)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestChangePassword_RejectsShortPassword(t *testing.T) {
	service, users, _, cleanup := setupTestService(t)
	defer cleanup()

	created := createAccount(t, users, "teacher", "old-password", true)

	_, err := service.ChangePassword(created.ID, "old-password", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestResetPassword(t *testing.T) {
	service, users, audit, cleanup := setupTestService(t)
	defer cleanup()

	admin := createAccount(t, users, "admin", "admin-password", true)
	target := createAccount(t, users, "teacher", "forgotten", true)

	ok, err := service.ResetPassword(target.ID, "fresh-password", admin.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := service.Authenticate("teacher", "fresh-password", nil)
	require.NoError(t, err)
	assert.NotNil(t, user)

	entries, err := audit.GetByEntity("Password", target.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, admin.ID, entries[0].UserID)
}

func TestResetPassword_UnknownUser(t *testing.T) {
	service, _, _, cleanup := setupTestService(t)
	defer cleanup()

	ok, err := service.ResetPassword(uuid.New(), "fresh-password", uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
