package users

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

func setupTestService(t *testing.T) (*Service, *auditrepo.Repository, func()) {
	dbPath := "./test_userservice_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.AuditLog{})
	require.NoError(t, err)

	users := userrepo.NewRepository(db)
	audit := auditrepo.NewRepository(db)
	service := NewService(users, audit, config.Auth{BcryptCost: 4})

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return service, audit, cleanup
}

func validInput(username string, role entities.UserRole) CreateUserInput {
	return CreateUserInput{
		Username:       username,
		Password:       "Secret@123",
		FullNameArabic: "مستخدم تجريبي",
		Role:           role,
	}
}

func TestCreate_PersistsAndAudits(t *testing.T) {
	service, audit, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	user, err := service.Create(validInput("teacher1", entities.UserRoleTeacher), admin)
	require.NoError(t, err)

	assert.Equal(t, "teacher1", user.Username)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.CreatedByUserID)
	assert.Equal(t, admin, *user.CreatedByUserID)
	assert.NotEqual(t, "Secret@123", user.PasswordHash)

	entries, err := audit.GetByEntity("User", user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entities.AuditActionCreated, entries[0].Action)
	assert.Equal(t, admin, entries[0].UserID)
	require.NotNil(t, entries[0].NewValues)
	assert.Equal(t, "Username: teacher1, Role: teacher", *entries[0].NewValues)
}

func TestCreate_RejectsDuplicateUsername(t *testing.T) {
	service, audit, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	_, err := service.Create(validInput("dup", entities.UserRoleStudent), admin)
	require.NoError(t, err)

	_, err = service.Create(validInput("dup", entities.UserRoleStudent), admin)
	assert.ErrorIs(t, err, ErrUsernameExists)

	// The rejected attempt leaves no trace
	_, total, err := audit.GetEntries(10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCreate_RejectsDuplicateIDNumber(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	idNumber := "1234567890"

	first := validInput("student1", entities.UserRoleStudent)
	first.IDNumber = &idNumber
	_, err := service.Create(first, admin)
	require.NoError(t, err)

	second := validInput("student2", entities.UserRoleStudent)
	second.IDNumber = &idNumber
	_, err = service.Create(second, admin)
	assert.ErrorIs(t, err, ErrIDNumberExists)
}

func TestCreate_ValidatesInput(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	input := validInput("badrole", "headmaster")
	_, err := service.Create(input, uuid.New())
	assert.Error(t, err)

	short := validInput("shortpw", entities.UserRoleStudent)
	short.Password = "short"
	_, err = service.Create(short, uuid.New())
	assert.Error(t, err)
}

func TestUpdate_ChecksUsernameOnChange(t *testing.T) {
	service, audit, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	_, err := service.Create(validInput("taken", entities.UserRoleStudent), admin)
	require.NoError(t, err)

	user, err := service.Create(validInput("original", entities.UserRoleStudent), admin)
	require.NoError(t, err)

	_, err = service.Update(user.ID, UpdateUserInput{
		Username:       "taken",
		FullNameArabic: user.FullNameArabic,
		Role:           user.Role,
		IsActive:       true,
	}, admin)
	assert.ErrorIs(t, err, ErrUsernameExists)

	updated, err := service.Update(user.ID, UpdateUserInput{
		Username:       "renamed",
		FullNameArabic: user.FullNameArabic,
		Role:           user.Role,
		IsActive:       false,
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.False(t, updated.IsActive)
	assert.NotNil(t, updated.UpdatedAt)

	entries, err := audit.GetByEntity("User", user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // create + update
}

func TestDelete_RecordsOldValues(t *testing.T) {
	service, audit, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	user, err := service.Create(validInput("leaving", entities.UserRoleStudent), admin)
	require.NoError(t, err)

	require.NoError(t, service.Delete(user.ID, admin))

	_, err = service.GetByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	entries, err := audit.GetByEntity("User", user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	deleted := entries[0]
	if deleted.Action != entities.AuditActionDeleted {
		deleted = entries[1]
	}
	require.NotNil(t, deleted.OldValues)
	assert.Equal(t, "Username: leaving, Role: student", *deleted.OldValues)
}

func TestDelete_UnknownUser(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	err := service.Delete(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAcceptPledge(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	student, err := service.Create(validInput("student", entities.UserRoleStudent), admin)
	require.NoError(t, err)
	teacher, err := service.Create(validInput("teacher", entities.UserRoleTeacher), admin)
	require.NoError(t, err)

	accepted, err := service.HasAcceptedPledge(student.ID)
	require.NoError(t, err)
	assert.False(t, accepted)

	require.NoError(t, service.AcceptPledge(student.ID))

	accepted, err = service.HasAcceptedPledge(student.ID)
	require.NoError(t, err)
	assert.True(t, accepted)

	err = service.AcceptPledge(teacher.ID)
	assert.ErrorIs(t, err, ErrNotStudent)
}

func TestCountsByRole(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	_, err := service.Create(validInput("teacher1", entities.UserRoleTeacher), admin)
	require.NoError(t, err)
	_, err = service.Create(validInput("student1", entities.UserRoleStudent), admin)
	require.NoError(t, err)
	_, err = service.Create(validInput("student2", entities.UserRoleStudent), admin)
	require.NoError(t, err)

	counts, err := service.CountsByRole()
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts[entities.UserRoleAdmin])
	assert.Equal(t, int64(1), counts[entities.UserRoleTeacher])
	assert.Equal(t, int64(2), counts[entities.UserRoleStudent])
}
