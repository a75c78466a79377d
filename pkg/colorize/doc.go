// Package colorize wraps displayable values in ANSI SGR escape
// sequences for terminal output.
//
// Every operation takes any value, renders it with fmt.Sprint, and
// returns a new string framed by an SGR code and a reset:
//
//	colorize.Red("fail")            // "\x1b[31mfail\x1b[0m"
//	colorize.Bold(colorize.Red(42)) // nested, outer style last
//	colorize.RGB("hi", 255, 128, 0) // truecolor foreground
//
// Operations compose by wrapping the already-styled string, so chained
// calls nest escape sequences outer-to-inner in call order. Nested
// resets are never deduplicated; the redundant trailing resets are
// harmless and callers assert on the literal nesting.
//
// # Suppression
//
// Styling is suppressed when the NO_COLOR environment variable is set
// to any value, including the empty string, or when the configured
// output is not an interactive color-capable terminal. Terminal
// detection can be switched off per Styler (or globally via
// SetTermCheck), in which case only NO_COLOR is consulted. Both
// signals are read fresh on every call.
//
// Clear is the one exception: it always emits reset framing, even
// under NO_COLOR. It is also the fallback for invalid hex input, so
// Hex with a malformed color is never fully suppressed. This is
// intentional, long-standing behavior; do not "fix" it.
//
// # Stylers
//
// The package-level functions delegate to a shared default Styler
// bound to os.Stdout. Callers that need isolated configuration, such
// as tests or concurrent writers with different destinations,
// construct their own Styler; Styler values are immutable and safe
// for concurrent use.
package colorize
