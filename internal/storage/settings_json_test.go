package storage

import (
	"os"
	"path/filepath"
	"testing"

	"pomostudy/internal/ui/theme"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// os.UserConfigDir honors XDG_CONFIG_HOME on linux; point it at a
	// throwaway directory for the test's lifetime.
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, appDirName, settingsFileName)
}

func writeSettingsFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// TestLoadMissingFile verifies a missing file yields defaults with no error.
func TestLoadMissingFile(t *testing.T) {
	useTempConfigDir(t)

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

// TestLoadMalformedFile verifies corrupt content falls back to defaults
// without surfacing an error.
func TestLoadMalformedFile(t *testing.T) {
	path := useTempConfigDir(t)
	writeSettingsFile(t, path, "{definitely not json")

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load returned error for malformed file: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

// TestLoadPartialFile verifies missing keys keep their defaults per key,
// including nested theme keys.
func TestLoadPartialFile(t *testing.T) {
	path := useTempConfigDir(t)
	writeSettingsFile(t, path, `{
  "study_minutes": 45,
  "theme": {"card_color": "#112233"}
}`)

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.StudyMinutes != 45 {
		t.Fatalf("StudyMinutes = %d, want 45", settings.StudyMinutes)
	}
	if settings.BreakMinutes != 5 {
		t.Fatalf("BreakMinutes = %d, want default 5", settings.BreakMinutes)
	}
	if settings.TotalStudySeconds != 0 {
		t.Fatalf("TotalStudySeconds = %v, want 0", settings.TotalStudySeconds)
	}
	if settings.Theme.Card != "#112233" {
		t.Fatalf("Theme.Card = %q", settings.Theme.Card)
	}
	if settings.Theme.Background != theme.Default().Background {
		t.Fatalf("Theme.Background = %q, want default", settings.Theme.Background)
	}
}

// TestLoadRejectsInvalidValues verifies non-positive minutes and negative
// totals are ignored in favor of defaults.
func TestLoadRejectsInvalidValues(t *testing.T) {
	path := useTempConfigDir(t)
	writeSettingsFile(t, path, `{
  "study_minutes": 0,
  "break_minutes": -3,
  "total_study_seconds": -10
}`)

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

// TestSaveLoadRoundTrip verifies a save followed by a load preserves every
// field.
func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	saved := Settings{
		StudyMinutes:      50,
		BreakMinutes:      10,
		TotalStudySeconds: 5400.5,
		Theme: theme.Theme{
			Background: "#101418",
			Card:       "#1C232B",
			Accent:     "#3A86FF",
			Progress:   "#3A86FF",
			Text:       "#E6EDF3",
		},
	}
	if err := Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != saved {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

// TestUpdateTotalStudySeconds verifies the total is rewritten in place while
// other settings survive.
func TestUpdateTotalStudySeconds(t *testing.T) {
	useTempConfigDir(t)

	settings := DefaultSettings()
	settings.StudyMinutes = 45
	if err := Save(settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := UpdateTotalStudySeconds(1234.5); err != nil {
		t.Fatalf("UpdateTotalStudySeconds: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.TotalStudySeconds != 1234.5 {
		t.Fatalf("TotalStudySeconds = %v, want 1234.5", loaded.TotalStudySeconds)
	}
	if loaded.StudyMinutes != 45 {
		t.Fatalf("StudyMinutes = %d, want 45 preserved", loaded.StudyMinutes)
	}

	if err := ResetTotalStudySeconds(); err != nil {
		t.Fatalf("ResetTotalStudySeconds: %v", err)
	}
	loaded, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.TotalStudySeconds != 0 {
		t.Fatalf("TotalStudySeconds after reset = %v, want 0", loaded.TotalStudySeconds)
	}
}

// TestConfigNormalizes verifies out-of-range persisted minutes are clamped at
// the engine boundary.
func TestConfigNormalizes(t *testing.T) {
	settings := Settings{StudyMinutes: 500, BreakMinutes: 90}
	config := settings.Config()
	if config.StudyMinutes != 180 || config.BreakMinutes != 60 {
		t.Fatalf("Config = %+v, want clamped", config)
	}
}
