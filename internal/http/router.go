package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/entities"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	adminOnly := cfg.AuthMiddleware.RequireRole(entities.UserRoleAdmin)
	staffOnly := cfg.AuthMiddleware.RequireRole(entities.UserRoleAdmin, entities.UserRoleTeacher)

	health := NewHealthController(cfg.Database, cfg.Version)
	login := NewLoginController(cfg.AuthService, cfg.SessionManager)
	usersController := NewUsersController(cfg.Users, cfg.AuthService, cfg.Settings)
	sessionsController := NewSessionsController(cfg.Sessions)
	surahsController := NewSurahsController(cfg.Surahs)
	settingsController := NewSettingsController(cfg.Settings)
	auditController := NewAuditController(cfg.Audit)
	reportsController := NewReportsController(cfg.Reports)

	// Health endpoints
	router.GET("/health", health.Status)

	// Authentication endpoints
	router.POST("/login", login.Login)
	router.POST("/logout", login.Logout)
	router.GET("/api/profile", login.Profile)
	router.POST("/api/profile/password", usersController.ChangePassword)

	// User management endpoints
	router.GET("/api/users", staffOnly, usersController.GetAllUsers)
	router.GET("/api/users/:id", staffOnly, usersController.GetUser)
	router.POST("/api/users", adminOnly, usersController.CreateUser)
	router.PUT("/api/users/:id", adminOnly, usersController.UpdateUser)
	router.DELETE("/api/users/:id", adminOnly, usersController.DeleteUser)
	router.POST("/api/users/:id/reset-password", adminOnly, usersController.ResetPassword)
	router.GET("/api/users/stats", adminOnly, usersController.GetUserStats)
	router.GET("/api/teachers", staffOnly, usersController.GetTeachers)
	router.GET("/api/students", staffOnly, usersController.GetStudents)

	// Pledge endpoints
	router.GET("/api/pledge", usersController.GetPledge)
	router.POST("/api/pledge/accept", usersController.AcceptPledge)

	// Listening session endpoints
	router.GET("/api/sessions", sessionsController.GetAllSessions)
	router.GET("/api/sessions/recent", staffOnly, sessionsController.GetRecentSessions)
	router.GET("/api/sessions/stats", staffOnly, sessionsController.GetStatistics)
	router.GET("/api/sessions/:id", sessionsController.GetSession)
	router.POST("/api/sessions", staffOnly, sessionsController.CreateSession)
	router.PUT("/api/sessions/:id", staffOnly, sessionsController.UpdateSession)
	router.DELETE("/api/sessions/:id", staffOnly, sessionsController.DeleteSession)

	// Surah reference endpoints
	router.GET("/api/surahs", surahsController.GetAllSurahs)
	router.GET("/api/surahs/:number", surahsController.GetSurah)

	// Settings endpoints
	router.GET("/api/settings", settingsController.GetSettings)
	router.PUT("/api/settings/school-name", adminOnly, settingsController.UpdateSchoolName)
	router.PUT("/api/settings/logo-path", adminOnly, settingsController.UpdateLogoPath)
	router.PUT("/api/settings/pledge-text", adminOnly, settingsController.UpdatePledgeText)

	// Audit log endpoints
	router.GET("/api/audit", adminOnly, auditController.GetEntries)
	router.GET("/api/audit/entity/:type/:id", adminOnly, auditController.GetByEntity)

	// Report endpoints
	router.GET("/api/reports/students/:id", reportsController.StudentProgress)
	router.GET("/api/reports/students/:id/excel", reportsController.StudentProgressExcel)
	router.GET("/api/reports/students/:id/pdf", reportsController.StudentProgressPDF)
	router.GET("/api/reports/teachers/:id", staffOnly, reportsController.TeacherActivity)
	router.GET("/api/reports/teachers/:id/excel", staffOnly, reportsController.TeacherActivityExcel)
	router.GET("/api/reports/teachers/:id/pdf", staffOnly, reportsController.TeacherActivityPDF)
	router.GET("/api/reports/system", adminOnly, reportsController.SystemSummary)
	router.GET("/api/reports/system/excel", adminOnly, reportsController.SystemSummaryExcel)
	router.GET("/api/reports/system/pdf", adminOnly, reportsController.SystemSummaryPDF)

	return router
}
