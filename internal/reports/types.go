package reports

import (
	"time"

	"github.com/tahfiz/listening/internal/entities"
)

// StudentProgressReport describes one student's sessions over a date range.
type StudentProgressReport struct {
	Student  *entities.User              `json:"student"`
	FromDate time.Time                   `json:"from_date"`
	ToDate   time.Time                   `json:"to_date"`
	Sessions []entities.ListeningSession `json:"sessions"`
	Summary  StudentProgressSummary      `json:"summary"`
}

// StudentProgressSummary aggregates a student's sessions.
type StudentProgressSummary struct {
	TotalSessions      int                     `json:"total_sessions"`
	CompletedSessions  int                     `json:"completed_sessions"`
	IncompleteSessions int                     `json:"incomplete_sessions"`
	TotalMajorErrors   int                     `json:"total_major_errors"`
	TotalMinorErrors   int                     `json:"total_minor_errors"`
	SessionsByTeacher  []TeacherSessionSummary `json:"sessions_by_teacher"`
}

// CompletionRate returns the completed share as a percentage, 0 when there
// are no sessions.
func (s StudentProgressSummary) CompletionRate() float64 {
	return completionRate(s.CompletedSessions, s.TotalSessions)
}

// AverageMajorErrors returns the mean major error count per session.
func (s StudentProgressSummary) AverageMajorErrors() float64 {
	return average(s.TotalMajorErrors, s.TotalSessions)
}

// AverageMinorErrors returns the mean minor error count per session.
func (s StudentProgressSummary) AverageMinorErrors() float64 {
	return average(s.TotalMinorErrors, s.TotalSessions)
}

// TeacherSessionSummary groups a student's sessions under one teacher.
type TeacherSessionSummary struct {
	Teacher        entities.User `json:"teacher"`
	SessionCount   int           `json:"session_count"`
	CompletedCount int           `json:"completed_count"`
	MajorErrors    int           `json:"major_errors"`
	MinorErrors    int           `json:"minor_errors"`
}

// TeacherActivityReport describes one teacher's sessions over a date range.
type TeacherActivityReport struct {
	Teacher  *entities.User              `json:"teacher"`
	FromDate time.Time                   `json:"from_date"`
	ToDate   time.Time                   `json:"to_date"`
	Sessions []entities.ListeningSession `json:"sessions"`
	Summary  TeacherActivitySummary      `json:"summary"`
}

// TeacherActivitySummary aggregates a teacher's sessions.
type TeacherActivitySummary struct {
	TotalSessions      int                     `json:"total_sessions"`
	CompletedSessions  int                     `json:"completed_sessions"`
	IncompleteSessions int                     `json:"incomplete_sessions"`
	UniqueStudents     int                     `json:"unique_students"`
	TotalMajorErrors   int                     `json:"total_major_errors"`
	TotalMinorErrors   int                     `json:"total_minor_errors"`
	SessionsByStudent  []StudentSessionSummary `json:"sessions_by_student"`
}

// CompletionRate returns the completed share as a percentage, 0 when there
// are no sessions.
func (s TeacherActivitySummary) CompletionRate() float64 {
	return completionRate(s.CompletedSessions, s.TotalSessions)
}

// StudentSessionSummary groups a teacher's sessions under one student.
type StudentSessionSummary struct {
	Student         entities.User `json:"student"`
	SessionCount    int           `json:"session_count"`
	CompletedCount  int           `json:"completed_count"`
	MajorErrors     int           `json:"major_errors"`
	MinorErrors     int           `json:"minor_errors"`
	LastSessionDate time.Time     `json:"last_session_date"`
}

// SystemSummaryReport describes activity across the whole school over a
// date range.
type SystemSummaryReport struct {
	FromDate       time.Time                   `json:"from_date"`
	ToDate         time.Time                   `json:"to_date"`
	Summary        SystemSummary               `json:"summary"`
	Teachers       []TeacherSummary            `json:"teachers"`
	TopStudents    []StudentSummary            `json:"top_students"`
	RecentSessions []entities.ListeningSession `json:"recent_sessions"`
}

// SystemSummary carries the school-wide totals. A teacher or student is
// active when they appear on at least one session in the range.
type SystemSummary struct {
	TotalTeachers     int `json:"total_teachers"`
	ActiveTeachers    int `json:"active_teachers"`
	TotalStudents     int `json:"total_students"`
	ActiveStudents    int `json:"active_students"`
	TotalSessions     int `json:"total_sessions"`
	CompletedSessions int `json:"completed_sessions"`
	TotalMajorErrors  int `json:"total_major_errors"`
	TotalMinorErrors  int `json:"total_minor_errors"`
}

// CompletionRate returns the completed share as a percentage, 0 when there
// are no sessions.
func (s SystemSummary) CompletionRate() float64 {
	return completionRate(s.CompletedSessions, s.TotalSessions)
}

// TeacherSummary ranks one teacher within the system report.
type TeacherSummary struct {
	Teacher           entities.User `json:"teacher"`
	SessionsCount     int           `json:"sessions_count"`
	StudentsCount     int           `json:"students_count"`
	CompletedSessions int           `json:"completed_sessions"`
	MajorErrors       int           `json:"major_errors"`
	MinorErrors       int           `json:"minor_errors"`
}

// CompletionRate returns the completed share as a percentage, 0 when there
// are no sessions.
func (s TeacherSummary) CompletionRate() float64 {
	return completionRate(s.CompletedSessions, s.SessionsCount)
}

// StudentSummary ranks one student within the system report.
type StudentSummary struct {
	Student           entities.User `json:"student"`
	SessionsCount     int           `json:"sessions_count"`
	CompletedSessions int           `json:"completed_sessions"`
	MajorErrors       int           `json:"major_errors"`
	MinorErrors       int           `json:"minor_errors"`
	LastSessionDate   time.Time     `json:"last_session_date"`
}

// CompletionRate returns the completed share as a percentage, 0 when there
// are no sessions.
func (s StudentSummary) CompletionRate() float64 {
	return completionRate(s.CompletedSessions, s.SessionsCount)
}

func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

func average(sum, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}
