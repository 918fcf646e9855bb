package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahfiz/listening/internal/entities"
)

func TestSurahLabel_FallsBackToNumber(t *testing.T) {
	names := map[int]string{1: "الفاتحة"}

	assert.Equal(t, "الفاتحة", surahLabel(names, 1))
	assert.Equal(t, "سورة 73", surahLabel(names, 73))
}

func TestPartyName_DefaultsWhenUnnamed(t *testing.T) {
	named := entities.User{FullNameArabic: "أحمد"}
	assert.Equal(t, "أحمد", partyName(named))
	assert.Equal(t, "غير محدد", partyName(entities.User{}))
}

func TestCompletedLabel(t *testing.T) {
	assert.Equal(t, "نعم", completedLabel(true))
	assert.Equal(t, "لا", completedLabel(false))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", formatPercent(50))
	assert.Equal(t, "66.7%", formatPercent(200.0/3))
}

func TestStudentProgressExcel_ProducesWorkbook(t *testing.T) {
	service, users, sessions, cleanup := setupTestService(t)
	defer cleanup()

	teacher := testUser("teacher", entities.UserRoleTeacher)
	student := testUser("student", entities.UserRoleStudent)
	require.NoError(t, users.Create(&teacher))
	require.NoError(t, users.Create(&student))

	session := testSession(student, teacher, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), true, 1, 2)
	session.Student, session.Teacher = entities.User{}, entities.User{}
	require.NoError(t, sessions.Create(&session))

	data, err := service.StudentProgressExcel(student.ID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// xlsx files are zip archives
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestSystemSummaryExcel_EmptyRangeStillRenders(t *testing.T) {
	service, _, _, cleanup := setupTestService(t)
	defer cleanup()

	data, err := service.SystemSummaryExcel(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
