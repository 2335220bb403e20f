package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pomostudy/internal/core/model"
	"pomostudy/internal/ui/theme"
)

const (
	appDirName       = "PomoStudy"
	settingsFileName = "settings.json"
)

// Settings holds everything persisted between runs.
type Settings struct {
	StudyMinutes      int
	BreakMinutes      int
	TotalStudySeconds float64
	Theme             theme.Theme
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	config := model.DefaultConfig()
	return Settings{
		StudyMinutes: config.StudyMinutes,
		BreakMinutes: config.BreakMinutes,
		Theme:        theme.Default(),
	}
}

// Config converts settings to a normalized engine configuration.
func (settings Settings) Config() model.Config {
	return model.Config{
		StudyMinutes: settings.StudyMinutes,
		BreakMinutes: settings.BreakMinutes,
	}.Normalize()
}

// Pointer fields distinguish absent keys from zero values, so a partial file
// keeps its defaults per key.
type jsonSettings struct {
	StudyMinutes      *int       `json:"study_minutes"`
	BreakMinutes      *int       `json:"break_minutes"`
	TotalStudySeconds *float64   `json:"total_study_seconds"`
	Theme             *jsonTheme `json:"theme"`
}

type jsonTheme struct {
	Background *string `json:"background_color"`
	Card       *string `json:"card_color"`
	Accent     *string `json:"accent_color"`
	Progress   *string `json:"progress_color"`
	Text       *string `json:"text_color"`
}

// Load reads settings from JSON. A missing file yields defaults. Malformed
// content is logged and also yields defaults; corruption of the settings file
// must never reach the caller.
func Load() (Settings, error) {
	settings := DefaultSettings()
	configPath, err := resolveConfigPath()
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData jsonSettings
	if err := json.Unmarshal(rawData, &fileData); err != nil {
		log.Printf("settings file malformed, using defaults: %v", err)
		return settings, nil
	}

	applyJSONSettings(&settings, fileData)
	return settings, nil
}

// Save writes settings to JSON, creating the config directory if needed.
func Save(settings Settings) error {
	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := jsonSettings{
		StudyMinutes:      &settings.StudyMinutes,
		BreakMinutes:      &settings.BreakMinutes,
		TotalStudySeconds: &settings.TotalStudySeconds,
		Theme: &jsonTheme{
			Background: &settings.Theme.Background,
			Card:       &settings.Theme.Card,
			Accent:     &settings.Theme.Accent,
			Progress:   &settings.Theme.Progress,
			Text:       &settings.Theme.Text,
		},
	}

	serialized, err := json.MarshalIndent(fileData, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings json: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// UpdateTotalStudySeconds rewrites only the accumulated total, preserving the
// rest of the file.
func UpdateTotalStudySeconds(totalSeconds float64) error {
	settings, err := Load()
	if err != nil {
		return err
	}
	settings.TotalStudySeconds = totalSeconds
	return Save(settings)
}

// ResetTotalStudySeconds zeroes the accumulated total on disk.
func ResetTotalStudySeconds() error {
	return UpdateTotalStudySeconds(0)
}

func resolveConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appDirName, settingsFileName), nil
}

func applyJSONSettings(settings *Settings, fileData jsonSettings) {
	if fileData.StudyMinutes != nil && *fileData.StudyMinutes > 0 {
		settings.StudyMinutes = *fileData.StudyMinutes
	}
	if fileData.BreakMinutes != nil && *fileData.BreakMinutes > 0 {
		settings.BreakMinutes = *fileData.BreakMinutes
	}
	if fileData.TotalStudySeconds != nil && *fileData.TotalStudySeconds >= 0 {
		settings.TotalStudySeconds = *fileData.TotalStudySeconds
	}
	if fileData.Theme != nil {
		applyJSONTheme(&settings.Theme, *fileData.Theme)
	}
}

func applyJSONTheme(value *theme.Theme, fileData jsonTheme) {
	if fileData.Background != nil && *fileData.Background != "" {
		value.Background = *fileData.Background
	}
	if fileData.Card != nil && *fileData.Card != "" {
		value.Card = *fileData.Card
	}
	if fileData.Accent != nil && *fileData.Accent != "" {
		value.Accent = *fileData.Accent
	}
	if fileData.Progress != nil && *fileData.Progress != "" {
		value.Progress = *fileData.Progress
	}
	if fileData.Text != nil && *fileData.Text != "" {
		value.Text = *fileData.Text
	}
}
