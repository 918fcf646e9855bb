package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/entities"
	"github.com/tahfiz/listening/internal/listening"
)

const defaultRecentSessions = 10

// SessionsController handles listening session endpoints.
type SessionsController struct {
	sessions *listening.Service
}

// NewSessionsController creates a new SessionsController.
func NewSessionsController(sessions *listening.Service) *SessionsController {
	return &SessionsController{sessions: sessions}
}

// GetAllSessions lists sessions, optionally filtered to one student or
// teacher. Staff see everyone; a student is always scoped to their own
// sessions regardless of filters.
func (sc *SessionsController) GetAllSessions(c *gin.Context) {
	if auth.GetUserRole(c) == entities.UserRoleStudent {
		own := auth.GetUserID(c)
		if studentID := c.Query("student_id"); studentID != "" && studentID != own.String() {
			c.IndentedJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		sc.respondSessions(c, func() (any, error) { return sc.sessions.GetByStudent(own) })
		return
	}
	if studentID := c.Query("student_id"); studentID != "" {
		id, err := uuid.Parse(studentID)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid student_id"})
			return
		}
		sc.respondSessions(c, func() (any, error) { return sc.sessions.GetByStudent(id) })
		return
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		id, err := uuid.Parse(teacherID)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid teacher_id"})
			return
		}
		sc.respondSessions(c, func() (any, error) { return sc.sessions.GetByTeacher(id) })
		return
	}
	sc.respondSessions(c, func() (any, error) { return sc.sessions.GetAll() })
}

func (sc *SessionsController) respondSessions(c *gin.Context, fetch func() (any, error)) {
	sessions, err := fetch()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (sc *SessionsController) GetSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	session, err := sc.sessions.GetByID(id)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	if auth.GetUserRole(c) == entities.UserRoleStudent && session.StudentUserID != auth.GetUserID(c) {
		c.IndentedJSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
	c.IndentedJSON(http.StatusOK, session)
}

func (sc *SessionsController) GetRecentSessions(c *gin.Context) {
	count := defaultRecentSessions
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = parsed
	}

	sessions, err := sc.sessions.GetRecent(count)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (sc *SessionsController) GetStatistics(c *gin.Context) {
	stats, err := sc.sessions.GetStatistics()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, stats)
}

func (sc *SessionsController) CreateSession(c *gin.Context) {
	var input listening.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := sc.sessions.Create(input, auth.GetUserID(c))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, session)
}

func (sc *SessionsController) UpdateSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input listening.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := sc.sessions.Update(id, input, auth.GetUserID(c))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, session)
}

func (sc *SessionsController) DeleteSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := sc.sessions.Delete(id, auth.GetUserID(c)); err != nil {
		respondSessionError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "session deleted"})
}

func respondSessionError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, listening.ErrSessionNotFound):
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, listening.ErrInvalidStudent),
		errors.Is(err, listening.ErrInvalidTeacher),
		errors.Is(err, listening.ErrUnknownSurah):
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validationErrs):
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
