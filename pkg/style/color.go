package style

import (
	"image/color"
	"strings"

	"github.com/siragigame02/novel-image-generator/pkg/errors"
)

// ParseHex converts a hex color code ("#FF0000", "ff0000", "#F0A") to an
// opaque NRGBA color. Three-digit shorthand expands digit-wise, so "#F0A"
// means "#FF00AA".
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}

	if len(hex) != 6 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %q", s)
	}

	var v [6]uint8
	for i := 0; i < 6; i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %q", s)
		}
		v[i] = d
	}

	return color.NRGBA{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
		A: 255,
	}, nil
}

// ParseHexAlpha converts a hex color code plus an opacity percentage (0-100)
// to an NRGBA color. The percentage is clamped before conversion.
func ParseHexAlpha(s string, percent int) (color.NRGBA, error) {
	c, err := ParseHex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	c.A = AlphaFromPercent(percent)
	return c, nil
}

// AlphaFromPercent converts an opacity percentage (0-100) to an 8-bit alpha
// value. Out-of-range percentages are clamped.
func AlphaFromPercent(percent int) uint8 {
	p := clampInt(percent, 0, 100)
	return uint8(p * 255 / 100)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
