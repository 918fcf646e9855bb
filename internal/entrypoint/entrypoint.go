package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/config"
	"github.com/tahfiz/listening/internal/database"
	auditrepo "github.com/tahfiz/listening/internal/database/audit"
	sessionrepo "github.com/tahfiz/listening/internal/database/listening"
	settingsrepo "github.com/tahfiz/listening/internal/database/settings"
	surahrepo "github.com/tahfiz/listening/internal/database/surahs"
	userrepo "github.com/tahfiz/listening/internal/database/users"
	http_controllers "github.com/tahfiz/listening/internal/http"
	"github.com/tahfiz/listening/internal/listening"
	"github.com/tahfiz/listening/internal/reports"
	"github.com/tahfiz/listening/internal/settings"
	"github.com/tahfiz/listening/internal/users"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain for the
	// configured timeout before killing in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting listening sessions server v%s", version)

	// Initialize database, migrations and seed data
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories
	userRepository := userrepo.NewRepository(db.DB)
	sessionRepository := sessionrepo.NewRepository(db.DB)
	surahRepository := surahrepo.NewRepository(db.DB)
	auditRepository := auditrepo.NewRepository(db.DB)
	settingsRepository := settingsrepo.NewRepository(db.DB)

	// Domain services
	authService := auth.NewService(userRepository, auditRepository, cfg.Auth)
	userService := users.NewService(userRepository, auditRepository, cfg.Auth)
	sessionService := listening.NewService(sessionRepository, userRepository, surahRepository, auditRepository)
	settingsService := settings.NewService(settingsRepository)
	reportService := reports.NewService(userRepository, sessionRepository, surahRepository, cfg.Reports)

	// Session store lives in the same sqlite database
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}
	authMiddleware := auth.NewMiddleware(authService, sessionManager)

	// Configured CSRF secret, or a fresh one per process
	var csrfSecret []byte
	if cfg.Auth.SessionSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Auth.SessionSecret)
		}
	} else {
		secret, err := auth.GenerateSessionSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Users:          userService,
		Sessions:       sessionService,
		Settings:       settingsService,
		Reports:        reportService,
		Surahs:         surahRepository,
		Audit:          auditRepository,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
