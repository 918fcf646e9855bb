package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Reports
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		SessionSecret   string
		SessionLifetime time.Duration
		BcryptCost      int
		SecureCookies   bool // set to false for local dev without HTTPS
	}
	Reports struct {
		FontPath string // TTF with Arabic glyph coverage, used by PDF export
		FontName string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8180)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Auth defaults
	v.SetDefault("auth_session_secret", "") // auto-generated if empty
	v.SetDefault("auth_session_lifetime", "24h")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_secure_cookies", true)

	// Report rendering defaults
	v.SetDefault("report_font_path", DefaultReportFontPath)
	v.SetDefault("report_font_name", "Tahoma")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("port"),
			Host: v.GetString("host"),
		},
		Database: Database{
			Path: v.GetString("database_path"),
		},
		Auth: Auth{
			SessionSecret:   v.GetString("auth_session_secret"),
			SessionLifetime: v.GetDuration("auth_session_lifetime"),
			BcryptCost:      v.GetInt("auth_bcrypt_cost"),
			SecureCookies:   v.GetBool("auth_secure_cookies"),
		},
		Reports: Reports{
			FontPath: v.GetString("report_font_path"),
			FontName: v.GetString("report_font_name"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("shutdown_timeout_in_seconds"),
		},
	}
}
