package settings

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	settingsrepo "github.com/tahfiz/listening/internal/database/settings"
	"github.com/tahfiz/listening/internal/entities"
)

func setupTestService(t *testing.T) (*Service, func()) {
	dbPath := "./test_settings_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.SchoolSettings{})
	require.NoError(t, err)

	service := NewService(settingsrepo.NewRepository(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return service, cleanup
}

func TestGetSchoolName_DefaultsOnFirstRead(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	name, err := service.GetSchoolName()
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSchoolName, name)
}

func TestGetPledgeText_FallsBackToDefault(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	// No pledge stored yet
	text, err := service.GetPledgeText()
	require.NoError(t, err)
	assert.Equal(t, DefaultPledgeText, text)

	// An explicitly emptied pledge also falls back
	require.NoError(t, service.UpdatePledgeText("", uuid.New()))
	text, err = service.GetPledgeText()
	require.NoError(t, err)
	assert.Equal(t, DefaultPledgeText, text)
}

func TestUpdatePledgeText(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	require.NoError(t, service.UpdatePledgeText("ميثاق مخصص", uuid.New()))

	text, err := service.GetPledgeText()
	require.NoError(t, err)
	assert.Equal(t, "ميثاق مخصص", text)
}

func TestUpdateSchoolName_RecordsModifier(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	admin := uuid.New()
	require.NoError(t, service.UpdateSchoolName("مدرسة النور لتحفيظ القرآن", admin))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "مدرسة النور لتحفيظ القرآن", settings.SchoolNameArabic)
	require.NotNil(t, settings.ModifiedByUserID)
	assert.Equal(t, admin, *settings.ModifiedByUserID)
	require.NotNil(t, settings.ModifiedAt)
}

func TestUpdateLogoPath_SetAndClear(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	logo := "/uploads/logo.png"
	require.NoError(t, service.UpdateLogoPath(&logo, uuid.New()))

	stored, err := service.GetLogoPath()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "/uploads/logo.png", *stored)

	require.NoError(t, service.UpdateLogoPath(nil, uuid.New()))
	stored, err = service.GetLogoPath()
	require.NoError(t, err)
	assert.Nil(t, stored)
}
