package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./listening.db"

	// DefaultReportFontPath is the default TTF used for PDF reports. Any
	// Tahoma-equivalent font with Arabic glyph coverage works.
	DefaultReportFontPath = "./fonts/Tahoma.ttf"
)
