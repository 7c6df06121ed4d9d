package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServiceEndpoint(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if endpoint := settings.GetServiceEndpoint(); endpoint != DefaultServiceEndpoint {
		t.Errorf("Expected default endpoint %s, got %s", DefaultServiceEndpoint, endpoint)
	}

	// Test setting custom value, trailing slash is dropped
	settings.SetServiceEndpoint(" https://cloner.example.com/ ")
	if endpoint := settings.GetServiceEndpoint(); endpoint != "https://cloner.example.com" {
		t.Errorf("Expected endpoint https://cloner.example.com, got %s", endpoint)
	}

	// Test blank resets to default
	settings.SetServiceEndpoint("   ")
	if endpoint := settings.GetServiceEndpoint(); endpoint != DefaultServiceEndpoint {
		t.Errorf("Blank endpoint should reset to %s, got %s", DefaultServiceEndpoint, endpoint)
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)

	if retrievedDir := settings.GetExportDirectory(); retrievedDir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, retrievedDir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestRevealAfterExport(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealAfterExport() != DefaultRevealAfterExport {
		t.Errorf("Expected default reveal setting %v", DefaultRevealAfterExport)
	}

	settings.SetRevealAfterExport(false)
	if settings.GetRevealAfterExport() {
		t.Error("Expected reveal setting to be false")
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, level)
	}

	settings.SetLogLevel(" DEBUG ")
	if level := settings.GetLogLevel(); level != "debug" {
		t.Errorf("Expected log level debug, got %s", level)
	}

	settings.SetLogLevel("loud")
	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Unknown level should fall back to %s, got %s", DefaultLogLevel, level)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
