package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/site-cloner/internal/clone"
	"github.com/ytget/site-cloner/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServiceEndpoint   = "service_endpoint"
	KeyExportDir         = "export_directory"
	KeyLanguage          = "app_language"
	KeyRevealAfterExport = "reveal_after_export"
	KeyLogLevel          = "log_level"
)

// Default values
const (
	DefaultServiceEndpoint   = clone.DefaultEndpoint
	DefaultLanguage          = "system"
	DefaultRevealAfterExport = true
	DefaultLogLevel          = "info"
	FallbackExportDir        = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServiceEndpoint returns the base URL of the cloning service
func (s *Settings) GetServiceEndpoint() string {
	endpoint := s.app.Preferences().String(KeyServiceEndpoint)
	if endpoint == "" {
		s.SetServiceEndpoint(DefaultServiceEndpoint)
		return DefaultServiceEndpoint
	}
	return endpoint
}

// SetServiceEndpoint sets the service base URL; blank resets to the default
func (s *Settings) SetServiceEndpoint(endpoint string) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultServiceEndpoint
	}
	s.app.Preferences().SetString(KeyServiceEndpoint, endpoint)
}

// GetExportDirectory returns the directory quick exports are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackExportDir
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealAfterExport returns whether exported files are shown in the file manager
func (s *Settings) GetRevealAfterExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterExport, DefaultRevealAfterExport)
}

// SetRevealAfterExport sets whether exported files are shown in the file manager
func (s *Settings) SetRevealAfterExport(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterExport, reveal)
}

// GetLogLevel returns the configured log level, falling back to info for
// anything logrus cannot parse
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if _, err := logrus.ParseLevel(level); err != nil {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, strings.ToLower(strings.TrimSpace(level)))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevelOptions returns the levels offered in the settings dialog
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
