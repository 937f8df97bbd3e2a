package style

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme configures how numeric class suffixes resolve to units.
type Theme struct {
	// SpacingUnit multiplies numeric suffixes: with the default of 4,
	// "p-4" resolves to 16 units, matching the Tailwind spacing scale.
	SpacingUnit float32 `toml:"spacing_unit"`

	// Sizes maps named suffixes to absolute values, so "w-panel" resolves
	// through Sizes["panel"].
	Sizes map[string]float32 `toml:"sizes"`
}

// DefaultTheme returns the built-in scale.
func DefaultTheme() Theme {
	return Theme{SpacingUnit: 4}
}

// registeredTheme holds the consumer's theme. Nil falls back to defaults.
var registeredTheme *Theme

// SetTheme registers the theme used by Parse. Call at startup, before any
// parsing occurs.
func SetTheme(t Theme) {
	if t.SpacingUnit <= 0 {
		t.SpacingUnit = DefaultTheme().SpacingUnit
	}
	registeredTheme = &t
}

// ResetTheme restores the default theme.
func ResetTheme() {
	registeredTheme = nil
}

// CurrentTheme returns the registered theme or the default.
func CurrentTheme() Theme {
	if registeredTheme != nil {
		return *registeredTheme
	}
	return DefaultTheme()
}

// LoadTheme reads a TOML theme file and registers it.
func LoadTheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("style: read theme: %w", err)
	}
	t := DefaultTheme()
	if err := toml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("style: parse theme %s: %w", path, err)
	}
	SetTheme(t)
	return nil
}
