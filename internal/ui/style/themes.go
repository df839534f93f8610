package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the configurable colors, ANSI numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// BaseThemeNames lists the theme bases; dark or light is detected.
var BaseThemeNames = []string{"default", "mono"}

// Themes are the built-in palettes. Dark variants use bright colors, light
// variants dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
	},
	// One accent color, greys for the rest.
	"mono-dark": {
		Success: "50",
		Warning: "229",
		Error:   "210",
		Info:    "50",
		Muted:   "245",
		Header:  "bold",
	},
	"mono-light": {
		Success: "30",
		Warning: "136",
		Error:   "124",
		Info:    "30",
		Muted:   "244",
		Header:  "bold",
	},
}

var colorConfigKeys = []string{
	"color_success",
	"color_warning",
	"color_error",
	"color_info",
	"color_muted",
	"color_header",
}

// IsDarkBackground asks the terminal; true when detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig resolves the palette. Priority: GNOTE_COLOR_* variables,
// color_* config keys, the theme (GNOTE_THEME, then the theme key), the
// default theme.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if env := os.Getenv("GNOTE_THEME"); env != "" {
		name = env
	} else if v := cfg["theme"]; v != "" {
		name = v
	}

	result, ok := Themes[ResolveThemeName(name)]
	if !ok {
		result = Themes["default-dark"]
	}

	for _, key := range colorConfigKeys {
		if v := os.Getenv("GNOTE_" + strings.ToUpper(key)); v != "" {
			setColorField(&result, key, v)
			continue
		}
		if v := cfg[key]; v != "" {
			setColorField(&result, key, v)
		}
	}
	return result
}

func setColorField(c *ColorConfig, key, value string) {
	switch key {
	case "color_success":
		c.Success = value
	case "color_warning":
		c.Warning = value
	case "color_error":
		c.Error = value
	case "color_info":
		c.Info = value
	case "color_muted":
		c.Muted = value
	case "color_header":
		c.Header = value
	}
}
