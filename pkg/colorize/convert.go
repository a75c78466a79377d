package colorize

import (
	"math"
	"strconv"
	"strings"
)

// rgbColor holds one 8-bit channel triple.
type rgbColor struct {
	r, g, b uint8
}

// hexToRGB parses a hex color string into channel values. The leading
// "#" is optional; after stripping it the string must be exactly six
// hex digits. Any failure discards the whole result.
func hexToRGB(hex string) (rgbColor, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return rgbColor{}, false
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgbColor{}, false
		}
		ch[i] = uint8(v)
	}

	return rgbColor{ch[0], ch[1], ch[2]}, true
}

// hslToRGB converts hue (degrees), saturation and lightness (percent)
// to an RGB triple. Total over all inputs: out-of-range values flow
// through the formula rather than erroring.
func hslToRGB(h, s, l float64) rgbColor {
	h /= 360
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	// Pre-offset triple by 60-degree hue segment.
	var r, g, b float64
	switch int(h * 6) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return rgbColor{channel(r + m), channel(g + m), channel(b + m)}
}

// channel narrows a unit-range component to 8 bits. Truncates toward
// zero, never rounds; saturates outside [0,255].
func channel(v float64) uint8 {
	v *= 255
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
