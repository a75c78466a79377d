package colorize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
	}{
		{"#ff8000", 255, 128, 0},
		{"ff8000", 255, 128, 0},
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"#0080ff", 0, 128, 255},
		{"#AbCdEf", 171, 205, 239},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, ok := hexToRGB(tt.hex)
			assert.True(t, ok)
			assert.Equal(t, rgbColor{tt.r, tt.g, tt.b}, c)
		})
	}
}

func TestHexToRGBInvalid(t *testing.T) {
	invalid := []string{
		"",
		"#",
		"#12",
		"#12345",
		"#1234567",
		"1234567",
		"#xyzxyz",
		"gghhii",
		"#ff 800",
		"not-a-color",
	}

	for _, hex := range invalid {
		t.Run(fmt.Sprintf("%q", hex), func(t *testing.T) {
			_, ok := hexToRGB(hex)
			assert.False(t, ok)
		})
	}
}

func TestHSLToRGBAnchors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		r, g, b uint8
	}{
		{"red", 0, 100, 50, 255, 0, 0},
		{"yellow", 60, 100, 50, 255, 255, 0},
		{"green", 120, 100, 50, 0, 255, 0},
		{"cyan", 180, 100, 50, 0, 255, 255},
		{"blue", 240, 100, 50, 0, 0, 255},
		{"magenta", 300, 100, 50, 255, 0, 255},
		{"white", 0, 0, 100, 255, 255, 255},
		{"black", 0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := hslToRGB(tt.h, tt.s, tt.l)
			// Channels truncate, so anchors may land one below the
			// nominal value.
			assert.InDelta(t, tt.r, c.r, 1)
			assert.InDelta(t, tt.g, c.g, 1)
			assert.InDelta(t, tt.b, c.b, 1)
		})
	}
}

func TestHSLToRGBTruncatesGray(t *testing.T) {
	// 50% lightness at zero saturation is 127.5 per channel; the
	// conversion truncates rather than rounds.
	c := hslToRGB(0, 0, 50)
	assert.InDelta(t, 127, c.r, 1)
	assert.Equal(t, c.r, c.g)
	assert.Equal(t, c.g, c.b)
}

func TestHSLToRGBOutOfRangeIsDeterministic(t *testing.T) {
	inputs := []struct {
		name    string
		h, s, l float64
	}{
		{"hue past full turn", 720, 100, 50},
		{"negative hue", -120, 100, 50},
		{"saturation above 100", 0, 250, 50},
		{"lightness above 100", 0, 100, 150},
		{"negative lightness", 0, 100, -40},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			first := hslToRGB(tt.h, tt.s, tt.l)
			second := hslToRGB(tt.h, tt.s, tt.l)
			assert.Equal(t, first, second)
		})
	}
}

func TestChannelSaturates(t *testing.T) {
	assert.Equal(t, uint8(0), channel(-0.5))
	assert.Equal(t, uint8(0), channel(0))
	assert.Equal(t, uint8(255), channel(1))
	assert.Equal(t, uint8(255), channel(1.5))
	assert.Equal(t, uint8(127), channel(0.5))
}
