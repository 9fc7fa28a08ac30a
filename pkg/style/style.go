// Package style holds the visual configuration for generated images.
//
// Settings mirror the on-disk yaml settings document. Missing keys fall back
// to defaults, and loaded values are normalized into safe ranges before use,
// so a hand-edited settings file can never push geometry off the canvas.
package style

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siragigame02/novel-image-generator/pkg/errors"
)

// Default canvas and typography values.
const (
	DefaultWidth    = 960
	DefaultHeight   = 1280
	DefaultFontSize = 48

	// DefaultSerifMaxChars is the wrap width for vertical dialogue columns.
	DefaultSerifMaxChars = 10

	// DefaultNarrationMaxChars is the wrap width for caption panels.
	DefaultNarrationMaxChars = 35
)

// Default colors, as hex codes.
const (
	DefaultSerifColor       = "#2A2A2A"
	DefaultSerifBGColor     = "#FFFFFF"
	DefaultSerifBorderColor = "#3C4C6A"
	DefaultNarrationBGColor = "#003232"
	DefaultNarrationColor   = "#FFFFFF"
)

// Settings is the full style configuration document.
type Settings struct {
	// Caption (narration) typography
	FontPath  string `yaml:"font_path"`
	FontSize  int    `yaml:"font_size"`
	FontColor string `yaml:"font_color"`

	// Dialogue bubbles
	SerifFontPath    string `yaml:"serif_font_path"`
	SerifFontColor   string `yaml:"serif_font_color"`
	SerifBGColor     string `yaml:"serif_bg_color"`
	SerifBGAlpha     int    `yaml:"serif_bg_alpha"`
	SerifBorderColor string `yaml:"serif_border_color"`
	SerifMaxChars    int    `yaml:"serif_max_chars"`

	// Narration panel
	NarrationBGColor     string `yaml:"narration_bg_color"`
	NarrationBGAlpha     int    `yaml:"narration_bg_alpha"`
	NarrationTextAlign   string `yaml:"narration_text_align"`
	NarrationOrientation string `yaml:"narration_orientation"`
	NarrationMaxChars    int    `yaml:"narration_max_chars"`

	// Output
	OutputWidth  int    `yaml:"output_width"`
	OutputHeight int    `yaml:"output_height"`
	OutputFormat string `yaml:"output_format"`
	BaseName     string `yaml:"base_name"`
}

// Defaults returns a Settings populated with every default value.
func Defaults() Settings {
	return Settings{
		FontSize:             DefaultFontSize,
		FontColor:            DefaultNarrationColor,
		SerifFontColor:       DefaultSerifColor,
		SerifBGColor:         DefaultSerifBGColor,
		SerifBGAlpha:         30,
		SerifBorderColor:     DefaultSerifBorderColor,
		SerifMaxChars:        DefaultSerifMaxChars,
		NarrationBGColor:     DefaultNarrationBGColor,
		NarrationBGAlpha:     30,
		NarrationTextAlign:   "center",
		NarrationOrientation: "horizontal",
		NarrationMaxChars:    DefaultNarrationMaxChars,
		OutputWidth:          DefaultWidth,
		OutputHeight:         DefaultHeight,
		OutputFormat:         "jpg",
		BaseName:             "untitled",
	}
}

// Load reads a yaml settings document from path. Keys absent from the file
// keep their default values. The result is normalized.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return s, errors.Wrap(errors.ErrCodeInvalidSettings, err, "read settings %s", path)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), errors.Wrap(errors.ErrCodeInvalidSettings, err, "parse settings %s", path)
	}

	s.Normalize()
	return s, nil
}

// Save writes the settings document to path as yaml.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write settings %s", path)
	}
	return nil
}

// Normalize clamps numeric values into safe ranges and resets enum-like
// strings to their defaults when unrecognized.
func (s *Settings) Normalize() {
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	if s.SerifMaxChars <= 0 {
		s.SerifMaxChars = DefaultSerifMaxChars
	}
	if s.NarrationMaxChars <= 0 {
		s.NarrationMaxChars = DefaultNarrationMaxChars
	}
	if s.OutputWidth <= 0 {
		s.OutputWidth = DefaultWidth
	}
	if s.OutputHeight <= 0 {
		s.OutputHeight = DefaultHeight
	}
	s.SerifBGAlpha = clampInt(s.SerifBGAlpha, 0, 100)
	s.NarrationBGAlpha = clampInt(s.NarrationBGAlpha, 0, 100)

	switch s.NarrationTextAlign {
	case "left", "center", "right":
	default:
		s.NarrationTextAlign = "center"
	}
	switch s.NarrationOrientation {
	case "horizontal", "vertical":
	default:
		s.NarrationOrientation = "horizontal"
	}
	switch s.OutputFormat {
	case "jpg", "png":
	default:
		s.OutputFormat = "jpg"
	}
	if s.BaseName == "" {
		s.BaseName = "untitled"
	}
}

// Validate reports the first invalid value that Normalize cannot repair,
// currently the color fields.
func (s Settings) Validate() error {
	colors := []struct {
		name  string
		value string
	}{
		{"font_color", s.FontColor},
		{"serif_font_color", s.SerifFontColor},
		{"serif_bg_color", s.SerifBGColor},
		{"serif_border_color", s.SerifBorderColor},
		{"narration_bg_color", s.NarrationBGColor},
	}
	for _, c := range colors {
		if _, err := ParseHex(c.value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSettings, err, "invalid %s", c.name)
		}
	}
	return nil
}
