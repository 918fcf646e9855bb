package reports

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

	"github.com/tahfiz/listening/internal/config"
	"github.com/tahfiz/listening/internal/database"
	sessionrepo "github.com/tahfiz/listening/internal/database/listening"
	surahrepo "github.com/tahfiz/listening/internal/database/surahs"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	"github.com/tahfiz/listening/internal/entities"
)

func testUser(name string, role entities.UserRole) entities.User {
	return entities.User{
		ID:             uuid.New(),
		Username:       name,
		FullNameArabic: name,
		Role:           role,
		IsActive:       true,
	}
}

func testSession(student, teacher entities.User, date time.Time, completed bool, major, minor int) entities.ListeningSession {
	return entities.ListeningSession{
		ID:            uuid.New(),
		StudentUserID: student.ID,
		Student:       student,
		TeacherUserID: teacher.ID,
		Teacher:       teacher,
		SessionDate:   date,
		SurahNumber:   1,
		FromAyah:      1,
		ToAyah:        7,
		MajorErrors:   major,
		MinorErrors:   minor,
		IsCompleted:   completed,
	}
}

func TestSummarizeStudentProgress(t *testing.T) {
	teacher := testUser("teacher", entities.UserRoleTeacher)
	student := testUser("student", entities.UserRoleStudent)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	summary := summarizeStudentProgress([]entities.ListeningSession{
		testSession(student, teacher, day, true, 2, 1),
		testSession(student, teacher, day.AddDate(0, 0, 1), false, 0, 3),
	})

	assert.Equal(t, 2, summary.TotalSessions)
	assert.Equal(t, 1, summary.CompletedSessions)
	assert.Equal(t, 1, summary.IncompleteSessions)
	assert.Equal(t, 2, summary.TotalMajorErrors)
	assert.Equal(t, 4, summary.TotalMinorErrors)
	assert.Equal(t, 50.0, summary.CompletionRate())
	assert.Equal(t, 1.0, summary.AverageMajorErrors())
	assert.Equal(t, 2.0, summary.AverageMinorErrors())

	require.Len(t, summary.SessionsByTeacher, 1)
	assert.Equal(t, teacher.ID, summary.SessionsByTeacher[0].Teacher.ID)
	assert.Equal(t, 2, summary.SessionsByTeacher[0].SessionCount)
	assert.Equal(t, 1, summary.SessionsByTeacher[0].CompletedCount)
}

func TestSummarizeStudentProgress_Empty(t *testing.T) {
	summary := summarizeStudentProgress(nil)

	assert.Equal(t, 0, summary.TotalSessions)
	assert.Equal(t, 0.0, summary.CompletionRate())
	assert.Equal(t, 0.0, summary.AverageMajorErrors())
	assert.Empty(t, summary.SessionsByTeacher)
}

func TestSummarizeStudentProgress_OrdersTeachersBySessionCount(t *testing.T) {
	student := testUser("student", entities.UserRoleStudent)
	first := testUser("first", entities.UserRoleTeacher)
	busy := testUser("busy", entities.UserRoleTeacher)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	summary := summarizeStudentProgress([]entities.ListeningSession{
		testSession(student, first, day, true, 0, 0),
		testSession(student, busy, day, true, 0, 0),
		testSession(student, busy, day, true, 0, 0),
	})

	require.Len(t, summary.SessionsByTeacher, 2)
	assert.Equal(t, busy.ID, summary.SessionsByTeacher[0].Teacher.ID)
	assert.Equal(t, first.ID, summary.SessionsByTeacher[1].Teacher.ID)
}

func TestSummarizeTeacherActivity(t *testing.T) {
	teacher := testUser("teacher", entities.UserRoleTeacher)
	ahmad := testUser("ahmad", entities.UserRoleStudent)
	omar := testUser("omar", entities.UserRoleStudent)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	summary := summarizeTeacherActivity([]entities.ListeningSession{
		testSession(ahmad, teacher, day, true, 1, 0),
		testSession(ahmad, teacher, day.AddDate(0, 0, 5), false, 0, 2),
		testSession(omar, teacher, day, true, 0, 0),
	})

	assert.Equal(t, 3, summary.TotalSessions)
	assert.Equal(t, 2, summary.CompletedSessions)
	assert.Equal(t, 1, summary.IncompleteSessions)
	assert.Equal(t, 2, summary.UniqueStudents)

	require.Len(t, summary.SessionsByStudent, 2)
	assert.Equal(t, ahmad.ID, summary.SessionsByStudent[0].Student.ID)
	assert.Equal(t, day.AddDate(0, 0, 5), summary.SessionsByStudent[0].LastSessionDate)
	assert.Equal(t, day, summary.SessionsByStudent[1].LastSessionDate)
}

func TestSummarizeSystem_CountsActiveParties(t *testing.T) {
	active := testUser("active-teacher", entities.UserRoleTeacher)
	idle := testUser("idle-teacher", entities.UserRoleTeacher)
	student := testUser("student", entities.UserRoleStudent)
	absent := testUser("absent-student", entities.UserRoleStudent)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	summary := summarizeSystem(
		[]entities.User{active, idle},
		[]entities.User{student, absent},
		[]entities.ListeningSession{
			testSession(student, active, day, true, 1, 2),
		},
	)

	assert.Equal(t, 2, summary.TotalTeachers)
	assert.Equal(t, 1, summary.ActiveTeachers)
	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.ActiveStudents)
	assert.Equal(t, 1, summary.TotalSessions)
	assert.Equal(t, 1, summary.CompletedSessions)
	assert.Equal(t, 100.0, summary.CompletionRate())
}

func TestSummarizeTeachers_CountsUniqueStudents(t *testing.T) {
	teacher := testUser("teacher", entities.UserRoleTeacher)
	ahmad := testUser("ahmad", entities.UserRoleStudent)
	omar := testUser("omar", entities.UserRoleStudent)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := summarizeTeachers([]entities.ListeningSession{
		testSession(ahmad, teacher, day, true, 0, 0),
		testSession(ahmad, teacher, day, false, 0, 0),
		testSession(omar, teacher, day, true, 0, 0),
	})

	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].SessionsCount)
	assert.Equal(t, 2, result[0].StudentsCount)
	assert.Equal(t, 2, result[0].CompletedSessions)
}

func TestRankTopStudents_BreaksTiesOnSessionCount(t *testing.T) {
	teacher := testUser("teacher", entities.UserRoleTeacher)
	steady := testUser("steady", entities.UserRoleStudent)
	newcomer := testUser("newcomer", entities.UserRoleStudent)
	behind := testUser("behind", entities.UserRoleStudent)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// steady and newcomer are both at 100%, steady with more sessions
	result := rankTopStudents([]entities.ListeningSession{
		testSession(behind, teacher, day, false, 3, 1),
		testSession(newcomer, teacher, day, true, 0, 0),
		testSession(steady, teacher, day, true, 0, 0),
		testSession(steady, teacher, day, true, 0, 0),
	}, 10)

	require.Len(t, result, 3)
	assert.Equal(t, steady.ID, result[0].Student.ID)
	assert.Equal(t, newcomer.ID, result[1].Student.ID)
	assert.Equal(t, behind.ID, result[2].Student.ID)
}

func TestRankTopStudents_TruncatesToLimit(t *testing.T) {
	teacher := testUser("teacher", entities.UserRoleTeacher)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var sessions []entities.ListeningSession
	for i := 0; i < 12; i++ {
		student := testUser("student", entities.UserRoleStudent)
		sessions = append(sessions, testSession(student, teacher, day, true, 0, 0))
	}

	result := rankTopStudents(sessions, 10)
	assert.Len(t, result, 10)
}

func setupTestService(t *testing.T) (*Service, *userrepo.Repository, *sessionrepo.Repository, func()) {
	dbPath := "./test_reports_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.SurahReference{},
		&entities.ListeningSession{},
	)
	require.NoError(t, err)

	seed := database.SurahSeed()
	require.NoError(t, db.Create(&seed).Error)

	users := userrepo.NewRepository(db)
	sessions := sessionrepo.NewRepository(db)
	surahs := surahrepo.NewRepository(db)
	service := NewService(users, sessions, surahs, config.Reports{})

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return service, users, sessions, cleanup
}

func TestStudentProgress_RejectsNonStudent(t *testing.T) {
	service, users, _, cleanup := setupTestService(t)
	defer cleanup()

	teacher := testUser("teacher", entities.UserRoleTeacher)
	require.NoError(t, users.Create(&teacher))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	_, err := service.StudentProgress(teacher.ID, from, to)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = service.StudentProgress(uuid.New(), from, to)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestTeacherActivity_RejectsNonTeacher(t *testing.T) {
	service, users, _, cleanup := setupTestService(t)
	defer cleanup()

	student := testUser("student", entities.UserRoleStudent)
	require.NoError(t, users.Create(&student))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	_, err := service.TeacherActivity(student.ID, from, to)
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestStudentProgress_FiltersByDateRange(t *testing.T) {
	service, users, sessions, cleanup := setupTestService(t)
	defer cleanup()

	teacher := testUser("teacher", entities.UserRoleTeacher)
	student := testUser("student", entities.UserRoleStudent)
	require.NoError(t, users.Create(&teacher))
	require.NoError(t, users.Create(&student))

	inside := testSession(student, teacher, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), true, 0, 0)
	outside := testSession(student, teacher, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), true, 0, 0)
	inside.Student, inside.Teacher = entities.User{}, entities.User{}
	outside.Student, outside.Teacher = entities.User{}, entities.User{}
	require.NoError(t, sessions.Create(&inside))
	require.NoError(t, sessions.Create(&outside))

	report, err := service.StudentProgress(student.ID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, report.Sessions, 1)
	assert.Equal(t, inside.ID, report.Sessions[0].ID)
	assert.Equal(t, 1, report.Summary.TotalSessions)
}

func TestSystemSummary_CapsRecentSessions(t *testing.T) {
	service, users, sessions, cleanup := setupTestService(t)
	defer cleanup()

	teacher := testUser("teacher", entities.UserRoleTeacher)
	student := testUser("student", entities.UserRoleStudent)
	require.NoError(t, users.Create(&teacher))
	require.NoError(t, users.Create(&student))

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		session := testSession(student, teacher, base.AddDate(0, 0, i), true, 0, 0)
		session.Student, session.Teacher = entities.User{}, entities.User{}
		require.NoError(t, sessions.Create(&session))
	}

	report, err := service.SystemSummary(base, base.AddDate(0, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, 25, report.Summary.TotalSessions)
	require.Len(t, report.RecentSessions, 20)
	// Newest first
	assert.Equal(t, base.AddDate(0, 0, 24).Unix(), report.RecentSessions[0].SessionDate.Unix())

	require.Len(t, report.Teachers, 1)
	assert.Equal(t, 25, report.Teachers[0].SessionsCount)
	require.Len(t, report.TopStudents, 1)
	assert.Equal(t, 100.0, report.TopStudents[0].CompletionRate())
}
