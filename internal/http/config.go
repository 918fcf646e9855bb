package http

import (
	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/database"
	auditrepo "github.com/tahfiz/listening/internal/database/audit"
	surahrepo "github.com/tahfiz/listening/internal/database/surahs"
	"github.com/tahfiz/listening/internal/listening"
	"github.com/tahfiz/listening/internal/reports"
	"github.com/tahfiz/listening/internal/settings"
	"github.com/tahfiz/listening/internal/users"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Users    *users.Service
	Sessions *listening.Service
	Settings *settings.Service
	Reports  *reports.Service
	Surahs   *surahrepo.Repository
	Audit    *auditrepo.Repository

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	CSRFSecret     []byte
	SecureCookies  bool

	// Application info
	Version string
}
