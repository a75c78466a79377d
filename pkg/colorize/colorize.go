package colorize

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// SGR codes for the named operations. These values are part of the
// public contract; downstream output is asserted byte-for-byte.
const (
	codeBlack   = "30"
	codeRed     = "31"
	codeGreen   = "32"
	codeYellow  = "33"
	codeBlue    = "34"
	codeMagenta = "35"
	codeCyan    = "36"
	codeWhite   = "37"

	codeBrightRed     = "91"
	codeBrightGreen   = "92"
	codeBrightYellow  = "93"
	codeBrightBlue    = "94"
	codeBrightMagenta = "95"
	codeBrightCyan    = "96"
	codeBrightWhite   = "97"

	codeOnBlack   = "40"
	codeOnRed     = "41"
	codeOnGreen   = "42"
	codeOnYellow  = "43"
	codeOnBlue    = "44"
	codeOnMagenta = "45"
	codeOnCyan    = "46"
	codeOnWhite   = "47"

	codeBold          = "1"
	codeDim           = "2"
	codeItalic        = "3"
	codeUnderline     = "4"
	codeInverse       = "7"
	codeStrikethrough = "9"
)

// Config controls when a Styler emits escape sequences.
type Config struct {
	// Output is the destination consulted for terminal detection.
	// Nil falls back to os.Stdout.
	Output *os.File

	// TermCheck probes Output for interactivity and color support
	// before styling. When false, only NO_COLOR is consulted.
	TermCheck bool
}

// DefaultConfig returns the configuration used by the package-level
// functions: styling to os.Stdout with terminal detection enabled.
func DefaultConfig() Config {
	return Config{Output: os.Stdout, TermCheck: true}
}

// Styler applies styling operations under a fixed Config. The zero
// value styles unconditionally except for NO_COLOR; use New for
// terminal-aware behavior.
type Styler struct {
	cfg Config
}

// New returns a Styler bound to the given configuration.
func New(cfg Config) *Styler {
	return &Styler{cfg: cfg}
}

// ShouldColorize reports whether styling operations will emit escape
// sequences right now. Environment and terminal state are read fresh
// on every call, never cached, so changes between calls take effect
// immediately.
func (st *Styler) ShouldColorize() bool {
	// NO_COLOR set to anything, including the empty string, wins.
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}

	if !st.cfg.TermCheck {
		return true
	}

	out := st.cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// Colorize wraps v in an arbitrary SGR code, subject to suppression.
// The code may be a single parameter or a semicolon-delimited
// sequence; it is emitted verbatim.
func (st *Styler) Colorize(v any, code string) string {
	if !st.ShouldColorize() {
		return fmt.Sprint(v)
	}
	return "\x1b[" + code + "m" + fmt.Sprint(v) + "\x1b[0m"
}

// Clear wraps v in reset codes, stripping no content. Unlike every
// other operation this ignores suppression entirely: it always emits
// the reset framing, and it is the fallback for invalid hex input.
func (st *Styler) Clear(v any) string {
	return "\x1b[0m" + fmt.Sprint(v) + "\x1b[0m"
}

// RGB styles v with a 24-bit truecolor foreground.
func (st *Styler) RGB(v any, r, g, b uint8) string {
	if !st.ShouldColorize() {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%v\x1b[0m", r, g, b, v)
}

// OnRGB styles v with a 24-bit truecolor background.
func (st *Styler) OnRGB(v any, r, g, b uint8) string {
	if !st.ShouldColorize() {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%v\x1b[0m", r, g, b, v)
}

// HSL styles v with a foreground converted from hue (degrees),
// saturation and lightness (percent). Out-of-range inputs are fed
// through the conversion as-is rather than rejected.
func (st *Styler) HSL(v any, h, s, l float64) string {
	if !st.ShouldColorize() {
		return fmt.Sprint(v)
	}
	c := hslToRGB(h, s, l)
	return st.RGB(v, c.r, c.g, c.b)
}

// OnHSL styles v with a background converted from HSL values.
func (st *Styler) OnHSL(v any, h, s, l float64) string {
	if !st.ShouldColorize() {
		return fmt.Sprint(v)
	}
	c := hslToRGB(h, s, l)
	return st.OnRGB(v, c.r, c.g, c.b)
}

// Hex styles v with a foreground parsed from a hex color string, with
// or without a leading "#". Invalid input falls back to Clear.
func (st *Styler) Hex(v any, hex string) string {
	c, ok := hexToRGB(hex)
	if !ok {
		return st.Clear(v)
	}
	return st.RGB(v, c.r, c.g, c.b)
}

// OnHex styles v with a background parsed from a hex color string.
// Invalid input falls back to Clear.
func (st *Styler) OnHex(v any, hex string) string {
	c, ok := hexToRGB(hex)
	if !ok {
		return st.Clear(v)
	}
	return st.OnRGB(v, c.r, c.g, c.b)
}

// Basic foreground colors.

func (st *Styler) Black(v any) string   { return st.Colorize(v, codeBlack) }
func (st *Styler) Red(v any) string     { return st.Colorize(v, codeRed) }
func (st *Styler) Green(v any) string   { return st.Colorize(v, codeGreen) }
func (st *Styler) Yellow(v any) string  { return st.Colorize(v, codeYellow) }
func (st *Styler) Blue(v any) string    { return st.Colorize(v, codeBlue) }
func (st *Styler) Magenta(v any) string { return st.Colorize(v, codeMagenta) }
func (st *Styler) Cyan(v any) string    { return st.Colorize(v, codeCyan) }
func (st *Styler) White(v any) string   { return st.Colorize(v, codeWhite) }

// Bright foreground colors.

func (st *Styler) BrightRed(v any) string     { return st.Colorize(v, codeBrightRed) }
func (st *Styler) BrightGreen(v any) string   { return st.Colorize(v, codeBrightGreen) }
func (st *Styler) BrightYellow(v any) string  { return st.Colorize(v, codeBrightYellow) }
func (st *Styler) BrightBlue(v any) string    { return st.Colorize(v, codeBrightBlue) }
func (st *Styler) BrightMagenta(v any) string { return st.Colorize(v, codeBrightMagenta) }
func (st *Styler) BrightCyan(v any) string    { return st.Colorize(v, codeBrightCyan) }
func (st *Styler) BrightWhite(v any) string   { return st.Colorize(v, codeBrightWhite) }

// Background colors.

func (st *Styler) OnBlack(v any) string   { return st.Colorize(v, codeOnBlack) }
func (st *Styler) OnRed(v any) string     { return st.Colorize(v, codeOnRed) }
func (st *Styler) OnGreen(v any) string   { return st.Colorize(v, codeOnGreen) }
func (st *Styler) OnYellow(v any) string  { return st.Colorize(v, codeOnYellow) }
func (st *Styler) OnBlue(v any) string    { return st.Colorize(v, codeOnBlue) }
func (st *Styler) OnMagenta(v any) string { return st.Colorize(v, codeOnMagenta) }
func (st *Styler) OnCyan(v any) string    { return st.Colorize(v, codeOnCyan) }
func (st *Styler) OnWhite(v any) string   { return st.Colorize(v, codeOnWhite) }

// Text styles.

func (st *Styler) Bold(v any) string          { return st.Colorize(v, codeBold) }
func (st *Styler) Dim(v any) string           { return st.Colorize(v, codeDim) }
func (st *Styler) Italic(v any) string        { return st.Colorize(v, codeItalic) }
func (st *Styler) Underline(v any) string     { return st.Colorize(v, codeUnderline) }
func (st *Styler) Inverse(v any) string       { return st.Colorize(v, codeInverse) }
func (st *Styler) Strikethrough(v any) string { return st.Colorize(v, codeStrikethrough) }

// Default styler shared by the package-level functions. Replaced
// wholesale under the mutex so in-flight calls see a consistent value.
var (
	stdMu sync.RWMutex
	std   = New(DefaultConfig())
)

// Default returns the Styler used by the package-level functions.
func Default() *Styler {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// SetTermCheck enables or disables terminal detection for the default
// Styler. Intended for host setup (or tests, which run without a
// tty); NO_COLOR is honored either way.
func SetTermCheck(enabled bool) {
	stdMu.Lock()
	defer stdMu.Unlock()
	cfg := std.cfg
	cfg.TermCheck = enabled
	std = New(cfg)
}

// Package-level convenience functions, delegating to the default
// Styler.

func Colorize(v any, code string) string { return Default().Colorize(v, code) }
func Clear(v any) string                 { return Default().Clear(v) }

func RGB(v any, r, g, b uint8) string   { return Default().RGB(v, r, g, b) }
func OnRGB(v any, r, g, b uint8) string { return Default().OnRGB(v, r, g, b) }
func HSL(v any, h, s, l float64) string { return Default().HSL(v, h, s, l) }
func OnHSL(v any, h, s, l float64) string {
	return Default().OnHSL(v, h, s, l)
}
func Hex(v any, hex string) string   { return Default().Hex(v, hex) }
func OnHex(v any, hex string) string { return Default().OnHex(v, hex) }

func Black(v any) string   { return Default().Black(v) }
func Red(v any) string     { return Default().Red(v) }
func Green(v any) string   { return Default().Green(v) }
func Yellow(v any) string  { return Default().Yellow(v) }
func Blue(v any) string    { return Default().Blue(v) }
func Magenta(v any) string { return Default().Magenta(v) }
func Cyan(v any) string    { return Default().Cyan(v) }
func White(v any) string   { return Default().White(v) }

func BrightRed(v any) string     { return Default().BrightRed(v) }
func BrightGreen(v any) string   { return Default().BrightGreen(v) }
func BrightYellow(v any) string  { return Default().BrightYellow(v) }
func BrightBlue(v any) string    { return Default().BrightBlue(v) }
func BrightMagenta(v any) string { return Default().BrightMagenta(v) }
func BrightCyan(v any) string    { return Default().BrightCyan(v) }
func BrightWhite(v any) string   { return Default().BrightWhite(v) }

func OnBlack(v any) string   { return Default().OnBlack(v) }
func OnRed(v any) string     { return Default().OnRed(v) }
func OnGreen(v any) string   { return Default().OnGreen(v) }
func OnYellow(v any) string  { return Default().OnYellow(v) }
func OnBlue(v any) string    { return Default().OnBlue(v) }
func OnMagenta(v any) string { return Default().OnMagenta(v) }
func OnCyan(v any) string    { return Default().OnCyan(v) }
func OnWhite(v any) string   { return Default().OnWhite(v) }

func Bold(v any) string          { return Default().Bold(v) }
func Dim(v any) string           { return Default().Dim(v) }
func Italic(v any) string        { return Default().Italic(v) }
func Underline(v any) string     { return Default().Underline(v) }
func Inverse(v any) string       { return Default().Inverse(v) }
func Strikethrough(v any) string { return Default().Strikethrough(v) }
