// Package reports builds student, teacher and system reports from the
// session history, and renders them as JSON-friendly structs, Excel
// workbooks and PDF documents. All aggregation happens in memory over the
// sessions of the requested date range.
package reports

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahfiz/listening/internal/config"
	sessionrepo "github.com/tahfiz/listening/internal/database/listening"
	surahrepo "github.com/tahfiz/listening/internal/database/surahs"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	"github.com/tahfiz/listening/internal/entities"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
)

const (
	topStudentsCount    = 10
	recentSessionsCount = 20
)

// Service assembles reports from the repositories.
type Service struct {
	users    *userrepo.Repository
	sessions *sessionrepo.Repository
	surahs   *surahrepo.Repository
	config   config.Reports
}

// NewService creates a new report service.
func NewService(users *userrepo.Repository, sessions *sessionrepo.Repository, surahs *surahrepo.Repository, cfg config.Reports) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		surahs:   surahs,
		config:   cfg,
	}
}

// StudentProgress builds the progress report of one student over an
// inclusive date range.
func (s *Service) StudentProgress(studentID uuid.UUID, from, to time.Time) (*StudentProgressReport, error) {
	student, err := s.users.GetByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if student.Role != entities.UserRoleStudent {
		return nil, ErrStudentNotFound
	}

	sessions, err := s.sessions.GetByStudentInRange(studentID, from, to)
	if err != nil {
		return nil, err
	}

	return &StudentProgressReport{
		Student:  student,
		FromDate: from,
		ToDate:   to,
		Sessions: sessions,
		Summary:  summarizeStudentProgress(sessions),
	}, nil
}

// TeacherActivity builds the activity report of one teacher over an
// inclusive date range.
func (s *Service) TeacherActivity(teacherID uuid.UUID, from, to time.Time) (*TeacherActivityReport, error) {
	teacher, err := s.users.GetByID(teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	if teacher.Role != entities.UserRoleTeacher {
		return nil, ErrTeacherNotFound
	}

	sessions, err := s.sessions.GetByTeacherInRange(teacherID, from, to)
	if err != nil {
		return nil, err
	}

	return &TeacherActivityReport{
		Teacher:  teacher,
		FromDate: from,
		ToDate:   to,
		Sessions: sessions,
		Summary:  summarizeTeacherActivity(sessions),
	}, nil
}

// SystemSummary builds the school-wide report over an inclusive date range.
func (s *Service) SystemSummary(from, to time.Time) (*SystemSummaryReport, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.GetInRange(from, to)
	if err != nil {
		return nil, err
	}

	var teachers, students []entities.User
	for _, u := range users {
		switch u.Role {
		case entities.UserRoleTeacher:
			teachers = append(teachers, u)
		case entities.UserRoleStudent:
			students = append(students, u)
		}
	}

	recent := sessions
	if len(recent) > recentSessionsCount {
		recent = recent[:recentSessionsCount]
	}

	return &SystemSummaryReport{
		FromDate:       from,
		ToDate:         to,
		Summary:        summarizeSystem(teachers, students, sessions),
		Teachers:       summarizeTeachers(sessions),
		TopStudents:    rankTopStudents(sessions, topStudentsCount),
		RecentSessions: recent,
	}, nil
}

func summarizeStudentProgress(sessions []entities.ListeningSession) StudentProgressSummary {
	summary := StudentProgressSummary{TotalSessions: len(sessions)}

	groups := make(map[uuid.UUID]*TeacherSessionSummary)
	var order []uuid.UUID
	for _, session := range sessions {
		if session.IsCompleted {
			summary.CompletedSessions++
		} else {
			summary.IncompleteSessions++
		}
		summary.TotalMajorErrors += session.MajorErrors
		summary.TotalMinorErrors += session.MinorErrors

		group, ok := groups[session.TeacherUserID]
		if !ok {
			group = &TeacherSessionSummary{Teacher: session.Teacher}
			groups[session.TeacherUserID] = group
			order = append(order, session.TeacherUserID)
		}
		group.SessionCount++
		if session.IsCompleted {
			group.CompletedCount++
		}
		group.MajorErrors += session.MajorErrors
		group.MinorErrors += session.MinorErrors
	}

	summary.SessionsByTeacher = make([]TeacherSessionSummary, 0, len(order))
	for _, id := range order {
		summary.SessionsByTeacher = append(summary.SessionsByTeacher, *groups[id])
	}
	sort.SliceStable(summary.SessionsByTeacher, func(i, j int) bool {
		return summary.SessionsByTeacher[i].SessionCount > summary.SessionsByTeacher[j].SessionCount
	})

	return summary
}

func summarizeTeacherActivity(sessions []entities.ListeningSession) TeacherActivitySummary {
	summary := TeacherActivitySummary{TotalSessions: len(sessions)}

	groups := make(map[uuid.UUID]*StudentSessionSummary)
	var order []uuid.UUID
	for _, session := range sessions {
		if session.IsCompleted {
			summary.CompletedSessions++
		} else {
			summary.IncompleteSessions++
		}
		summary.TotalMajorErrors += session.MajorErrors
		summary.TotalMinorErrors += session.MinorErrors

		group, ok := groups[session.StudentUserID]
		if !ok {
			group = &StudentSessionSummary{Student: session.Student}
			groups[session.StudentUserID] = group
			order = append(order, session.StudentUserID)
		}
		group.SessionCount++
		if session.IsCompleted {
			group.CompletedCount++
		}
		group.MajorErrors += session.MajorErrors
		group.MinorErrors += session.MinorErrors
		if session.SessionDate.After(group.LastSessionDate) {
			group.LastSessionDate = session.SessionDate
		}
	}

	summary.UniqueStudents = len(groups)
	summary.SessionsByStudent = make([]StudentSessionSummary, 0, len(order))
	for _, id := range order {
		summary.SessionsByStudent = append(summary.SessionsByStudent, *groups[id])
	}
	sort.SliceStable(summary.SessionsByStudent, func(i, j int) bool {
		return summary.SessionsByStudent[i].SessionCount > summary.SessionsByStudent[j].SessionCount
	})

	return summary
}

func summarizeSystem(teachers, students []entities.User, sessions []entities.ListeningSession) SystemSummary {
	activeTeachers := make(map[uuid.UUID]struct{})
	activeStudents := make(map[uuid.UUID]struct{})

	summary := SystemSummary{
		TotalTeachers: len(teachers),
		TotalStudents: len(students),
		TotalSessions: len(sessions),
	}
	for _, session := range sessions {
		activeTeachers[session.TeacherUserID] = struct{}{}
		activeStudents[session.StudentUserID] = struct{}{}
		if session.IsCompleted {
			summary.CompletedSessions++
		}
		summary.TotalMajorErrors += session.MajorErrors
		summary.TotalMinorErrors += session.MinorErrors
	}
	for _, t := range teachers {
		if _, ok := activeTeachers[t.ID]; ok {
			summary.ActiveTeachers++
		}
	}
	for _, s := range students {
		if _, ok := activeStudents[s.ID]; ok {
			summary.ActiveStudents++
		}
	}
	return summary
}

// summarizeTeachers ranks every teacher that ran at least one session,
// busiest first.
func summarizeTeachers(sessions []entities.ListeningSession) []TeacherSummary {
	groups := make(map[uuid.UUID]*TeacherSummary)
	students := make(map[uuid.UUID]map[uuid.UUID]struct{})
	var order []uuid.UUID
	for _, session := range sessions {
		group, ok := groups[session.TeacherUserID]
		if !ok {
			group = &TeacherSummary{Teacher: session.Teacher}
			groups[session.TeacherUserID] = group
			students[session.TeacherUserID] = make(map[uuid.UUID]struct{})
			order = append(order, session.TeacherUserID)
		}
		group.SessionsCount++
		if session.IsCompleted {
			group.CompletedSessions++
		}
		group.MajorErrors += session.MajorErrors
		group.MinorErrors += session.MinorErrors
		students[session.TeacherUserID][session.StudentUserID] = struct{}{}
	}

	result := make([]TeacherSummary, 0, len(order))
	for _, id := range order {
		group := groups[id]
		group.StudentsCount = len(students[id])
		result = append(result, *group)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SessionsCount > result[j].SessionsCount
	})
	return result
}

// rankTopStudents orders students by completion rate, breaking ties on
// session count, and keeps the top limit entries.
func rankTopStudents(sessions []entities.ListeningSession, limit int) []StudentSummary {
	groups := make(map[uuid.UUID]*StudentSummary)
	var order []uuid.UUID
	for _, session := range sessions {
		group, ok := groups[session.StudentUserID]
		if !ok {
			group = &StudentSummary{Student: session.Student}
			groups[session.StudentUserID] = group
			order = append(order, session.StudentUserID)
		}
		group.SessionsCount++
		if session.IsCompleted {
			group.CompletedSessions++
		}
		group.MajorErrors += session.MajorErrors
		group.MinorErrors += session.MinorErrors
		if session.SessionDate.After(group.LastSessionDate) {
			group.LastSessionDate = session.SessionDate
		}
	}

	result := make([]StudentSummary, 0, len(order))
	for _, id := range order {
		result = append(result, *groups[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		ri, rj := result[i].CompletionRate(), result[j].CompletionRate()
		if ri != rj {
			return ri > rj
		}
		return result[i].SessionsCount > result[j].SessionsCount
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
