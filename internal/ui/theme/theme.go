package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme holds the color set for the main window. Colors are "#RRGGBB" hex
// strings so they round-trip through the settings file unchanged.
type Theme struct {
	Background string `json:"background_color" yaml:"background_color"`
	Card       string `json:"card_color" yaml:"card_color"`
	Accent     string `json:"accent_color" yaml:"accent_color"`
	Progress   string `json:"progress_color" yaml:"progress_color"`
	Text       string `json:"text_color" yaml:"text_color"`
}

// Default returns the soft pink color set.
func Default() Theme {
	return Theme{
		Background: "#FFE5EC",
		Card:       "#FFD6E0",
		Accent:     "#FF9BB5",
		Progress:   "#FF9BB5",
		Text:       "#FFFFFF",
	}
}

// Merge fills empty color fields from fallback.
func (theme Theme) Merge(fallback Theme) Theme {
	if theme.Background == "" {
		theme.Background = fallback.Background
	}
	if theme.Card == "" {
		theme.Card = fallback.Card
	}
	if theme.Accent == "" {
		theme.Accent = fallback.Accent
	}
	if theme.Progress == "" {
		theme.Progress = fallback.Progress
	}
	if theme.Text == "" {
		theme.Text = fallback.Text
	}
	return theme
}

// BackgroundColor returns the parsed window background.
func (theme Theme) BackgroundColor() color.NRGBA {
	return ParseColor(theme.Background)
}

// CardColor returns the parsed timer card fill.
func (theme Theme) CardColor() color.NRGBA {
	return ParseColor(theme.Card)
}

// AccentColor returns the parsed accent (borders, highlights).
func (theme Theme) AccentColor() color.NRGBA {
	return ParseColor(theme.Accent)
}

// ProgressColor returns the parsed progress fill.
func (theme Theme) ProgressColor() color.NRGBA {
	return ParseColor(theme.Progress)
}

// TextColor returns the parsed timer text color.
func (theme Theme) TextColor() color.NRGBA {
	return ParseColor(theme.Text)
}

// FormatColor renders a color in the "#RRGGBB" form theme fields use. Alpha
// is dropped; stored colors are always opaque.
func FormatColor(value color.Color) string {
	red, green, blue, _ := value.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(red>>8), uint8(green>>8), uint8(blue>>8))
}

// ParseColor decodes a "#RRGGBB" hex string. Malformed values fall back to an
// opaque mid grey rather than failing; a wrong color is recoverable, a crash
// is not.
func ParseColor(value string) color.NRGBA {
	fallback := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}

	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(value) != 6 {
		return fallback
	}
	var red, green, blue uint8
	if _, err := fmt.Sscanf(value, "%02x%02x%02x", &red, &green, &blue); err != nil {
		return fallback
	}
	return color.NRGBA{R: red, G: green, B: blue, A: 0xFF}
}
