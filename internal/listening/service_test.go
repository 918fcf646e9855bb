package listening

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tahfiz/listening/internal/database"
	auditrepo "github.com/tahfiz/listening/internal/database/audit"
	sessionrepo "github.com/tahfiz/listening/internal/database/listening"
	surahrepo "github.com/tahfiz/listening/internal/database/surahs"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	"github.com/tahfiz/listening/internal/entities"
)

type testEnv struct {
	service *Service
	users   *userrepo.Repository
	audit   *auditrepo.Repository
	student *entities.User
	teacher *entities.User
}

func setupTestService(t *testing.T) (*testEnv, func()) {
	dbPath := "./test_listening_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.SurahReference{},
		&entities.ListeningSession{},
		&entities.AuditLog{},
	)
	require.NoError(t, err)

	seed := database.SurahSeed()
	require.NoError(t, db.Create(&seed).Error)

	users := userrepo.NewRepository(db)
	sessions := sessionrepo.NewRepository(db)
	surahs := surahrepo.NewRepository(db)
	audit := auditrepo.NewRepository(db)
	service := NewService(sessions, users, surahs, audit)

	student := &entities.User{
		Username:       "student",
		PasswordHash:   "hash",
		FullNameArabic: "أحمد الطالب",
		Role:           entities.UserRoleStudent,
		IsActive:       true,
	}
	require.NoError(t, users.Create(student))

	teacher := &entities.User{
		Username:       "teacher",
		PasswordHash:   "hash",
		FullNameArabic: "خالد المعلم",
		Role:           entities.UserRoleTeacher,
		IsActive:       true,
	}
	require.NoError(t, users.Create(teacher))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return &testEnv{
		service: service,
		users:   users,
		audit:   audit,
		student: student,
		teacher: teacher,
	}, cleanup
}

func validSession(env *testEnv) SessionInput {
	return SessionInput{
		StudentUserID: env.student.ID,
		TeacherUserID: env.teacher.ID,
		SessionDate:   time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		SurahNumber:   2,
		FromAyah:      1,
		ToAyah:        20,
		MajorErrors:   1,
		MinorErrors:   3,
		IsCompleted:   true,
	}
}

func TestCreate_PersistsAndAudits(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	actor := uuid.New()
	session, err := env.service.Create(validSession(env), actor)
	require.NoError(t, err)

	assert.Equal(t, env.student.ID, session.StudentUserID)
	assert.Equal(t, "أحمد الطالب", session.Student.FullNameArabic)
	assert.Equal(t, "خالد المعلم", session.Teacher.FullNameArabic)

	entries, err := env.audit.GetByEntity("ListeningSession", session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].NewValues)
	assert.Equal(t, "Student: أحمد الطالب, Teacher: خالد المعلم, Date: 2026-05-10", *entries[0].NewValues)
}

func TestCreate_RejectsWrongRoles(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	// Swap the parties: the teacher in the student slot and vice versa
	input := validSession(env)
	input.StudentUserID = env.teacher.ID
	_, err := env.service.Create(input, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidStudent)

	input = validSession(env)
	input.TeacherUserID = env.student.ID
	_, err = env.service.Create(input, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidTeacher)

	// Nothing was written
	stats, err := env.service.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
}

func TestCreate_RejectsUnknownParties(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	input := validSession(env)
	input.StudentUserID = uuid.New()
	_, err := env.service.Create(input, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidStudent)
}

func TestCreate_ValidatesSurahNumber(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	input := validSession(env)
	input.SurahNumber = 115
	_, err := env.service.Create(input, uuid.New())
	assert.Error(t, err)
}

func TestCreate_AllowsReversedAyahRange(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	// An ending ayah before the starting ayah is stored untouched
	input := validSession(env)
	input.FromAyah = 50
	input.ToAyah = 3
	session, err := env.service.Create(input, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 50, session.FromAyah)
	assert.Equal(t, 3, session.ToAyah)
}

func TestCreate_ValidatesGradeBounds(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	over := 101.0
	input := validSession(env)
	input.Grade = &over
	_, err := env.service.Create(input, uuid.New())
	assert.Error(t, err)

	valid := 95.5
	input = validSession(env)
	input.Grade = &valid
	session, err := env.service.Create(input, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, session.Grade)
	assert.Equal(t, 95.5, *session.Grade)
}

func TestUpdate_AuditsCompletionState(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	actor := uuid.New()
	session, err := env.service.Create(validSession(env), actor)
	require.NoError(t, err)

	input := validSession(env)
	input.IsCompleted = false
	input.MajorErrors = 5
	updated, err := env.service.Update(session.ID, input, actor)
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)
	assert.Equal(t, 5, updated.MajorErrors)

	entries, err := env.audit.GetByEntity("ListeningSession", session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var updateEntry *entities.AuditLog
	for i := range entries {
		if entries[i].Action == entities.AuditActionUpdated {
			updateEntry = &entries[i]
		}
	}
	require.NotNil(t, updateEntry)
	require.NotNil(t, updateEntry.NewValues)
	assert.Equal(t, "Session updated - IsCompleted: false", *updateEntry.NewValues)
}

func TestDelete_AuditsStudentID(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	actor := uuid.New()
	session, err := env.service.Create(validSession(env), actor)
	require.NoError(t, err)

	require.NoError(t, env.service.Delete(session.ID, actor))

	_, err = env.service.GetByID(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	entries, err := env.audit.GetByEntity("ListeningSession", session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var deleteEntry *entities.AuditLog
	for i := range entries {
		if entries[i].Action == entities.AuditActionDeleted {
			deleteEntry = &entries[i]
		}
	}
	require.NotNil(t, deleteEntry)
	require.NotNil(t, deleteEntry.OldValues)
	assert.Equal(t, "Session for student ID: "+env.student.ID.String(), *deleteEntry.OldValues)
}

func TestGetStatistics(t *testing.T) {
	env, cleanup := setupTestService(t)
	defer cleanup()

	actor := uuid.New()
	completed := validSession(env)
	_, err := env.service.Create(completed, actor)
	require.NoError(t, err)

	pending := validSession(env)
	pending.IsCompleted = false
	_, err = env.service.Create(pending, actor)
	require.NoError(t, err)

	stats, err := env.service.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Pending)
}
