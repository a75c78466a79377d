// Package theme maps semantic style names to colorize operations.
//
// A theme is a registry of named attribute sets (foreground,
// background, bold, ...) loaded from YAML, so hosts can restyle their
// output without touching call sites:
//
//	th := theme.Default(styler)
//	fmt.Println(th.Render("error", "connection refused"))
//
// Color values are ANSI color names ("red", "bright_cyan") or hex
// strings ("#ff8000"). Anything else falls back to plain reset
// framing, matching the engine's invalid-hex behavior. Rendering goes
// through the underlying Styler, so themes inherit its suppression
// policy.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/colorize/pkg/colorize"
	"github.com/arthur-debert/colorize/pkg/logging"
)

//go:embed theme.yaml
var embeddedTheme []byte

// StyleDef is one named attribute set in a theme definition.
type StyleDef struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Dim        bool   `yaml:"dim,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
}

type themeConfig struct {
	Styles map[string]StyleDef `yaml:"styles"`
}

// Theme resolves semantic names to styling operations on a Styler.
type Theme struct {
	styler *colorize.Styler
	styles map[string]StyleDef
}

// Named foreground colors accepted in theme definitions.
var fgCodes = map[string]string{
	"black":          "30",
	"red":            "31",
	"green":          "32",
	"yellow":         "33",
	"blue":           "34",
	"magenta":        "35",
	"cyan":           "36",
	"white":          "37",
	"bright_red":     "91",
	"bright_green":   "92",
	"bright_yellow":  "93",
	"bright_blue":    "94",
	"bright_magenta": "95",
	"bright_cyan":    "96",
	"bright_white":   "97",
}

// Named background colors accepted in theme definitions.
var bgCodes = map[string]string{
	"black":   "40",
	"red":     "41",
	"green":   "42",
	"yellow":  "43",
	"blue":    "44",
	"magenta": "45",
	"cyan":    "46",
	"white":   "47",
}

// Default returns the built-in theme bound to the given Styler. The
// embedded definition is validated at build time by the package tests,
// so a parse failure degrades to an empty theme instead of failing.
func Default(st *colorize.Styler) *Theme {
	t, err := LoadData(embeddedTheme, st)
	if err != nil {
		logger := logging.GetLogger("theme")
		logger.Warn().Err(err).Msg("embedded theme failed to parse, using empty theme")
		return &Theme{styler: st, styles: map[string]StyleDef{}}
	}
	return t
}

// LoadData parses a YAML theme definition.
func LoadData(data []byte, st *colorize.Styler) (*Theme, error) {
	var cfg themeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if cfg.Styles == nil {
		cfg.Styles = map[string]StyleDef{}
	}

	logger := logging.GetLogger("theme")
	logger.Debug().Int("styles", len(cfg.Styles)).Msg("Theme loaded")
	return &Theme{styler: st, styles: cfg.Styles}, nil
}

// Load reads a theme definition from a YAML file.
func Load(path string, st *colorize.Styler) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	return LoadData(data, st)
}

// Render styles v with the named style. Unknown names render plain.
// Attributes nest innermost-first: foreground, background, then text
// styles, each with its own reset.
func (t *Theme) Render(name string, v any) string {
	def, ok := t.styles[name]
	if !ok {
		return fmt.Sprint(v)
	}

	out := fmt.Sprint(v)
	if def.Foreground != "" {
		if code, ok := fgCodes[def.Foreground]; ok {
			out = t.styler.Colorize(out, code)
		} else {
			out = t.styler.Hex(out, def.Foreground)
		}
	}
	if def.Background != "" {
		if code, ok := bgCodes[def.Background]; ok {
			out = t.styler.Colorize(out, code)
		} else {
			out = t.styler.OnHex(out, def.Background)
		}
	}
	if def.Bold {
		out = t.styler.Bold(out)
	}
	if def.Dim {
		out = t.styler.Dim(out)
	}
	if def.Italic {
		out = t.styler.Italic(out)
	}
	if def.Underline {
		out = t.styler.Underline(out)
	}
	return out
}

// Has reports whether the theme defines the named style.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Names returns the defined style names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
