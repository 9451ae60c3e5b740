package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds presentation-only settings: nothing here changes what gets
// validated or sampled, only how it is drawn.
type Theme struct {
	PlotHeight  int    `yaml:"plot_height"`
	PlotWidth   int    `yaml:"plot_width"`
	ErrorColor  string `yaml:"error_color"`
	AccentColor string `yaml:"accent_color"`
	LabelColor  string `yaml:"label_color"`
}

// DefaultTheme is the stock presentation; a -theme file overrides it.
func DefaultTheme() Theme {
	return Theme{
		PlotHeight:  20,
		PlotWidth:   72,
		ErrorColor:  "1",   // red
		AccentColor: "12",  // blue
		LabelColor:  "245", // grey
	}
}

// LoadTheme reads a user-supplied YAML theme file and overlays it on the
// defaults. Zero values in the file keep the default. The file is only ever
// read when the user passes it explicitly; no path is searched implicitly.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("theme: %w", err)
	}

	var overlay Theme
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return theme, fmt.Errorf("theme: %w", err)
	}

	if overlay.PlotHeight > 0 {
		theme.PlotHeight = overlay.PlotHeight
	}
	if overlay.PlotWidth > 0 {
		theme.PlotWidth = overlay.PlotWidth
	}
	if overlay.ErrorColor != "" {
		theme.ErrorColor = overlay.ErrorColor
	}
	if overlay.AccentColor != "" {
		theme.AccentColor = overlay.AccentColor
	}
	if overlay.LabelColor != "" {
		theme.LabelColor = overlay.LabelColor
	}
	return theme, nil
}
