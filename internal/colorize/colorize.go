// Package colorize provides color parsing, normalization, and manipulation
// utilities for go-zonestyle. It accepts the color formats commonly found in
// chart configurations (hex shorthand and full, rgb()/rgba(), hsl()/hsla(),
// and CSS named colors) and converts between them and image/color values.
package colorize

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Recognized functional and hex color notations. The rgb and hsl patterns
// accept comma- or space-separated components and an optional alpha
// introduced by a comma or a slash, given as a plain number or a percentage.
var (
	reRGB      = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*(?:[,/]\s*([0-9]*\.?[0-9]+%?)\s*)?\)$`)
	reHSL      = regexp.MustCompile(`(?i)^hsla?\(\s*([+-]?[0-9]*\.?[0-9]+)(?:deg|grad|rad)?\s*[,\s]\s*([0-9]*\.?[0-9]+)%\s*[,\s]\s*([0-9]*\.?[0-9]+)%\s*(?:[,/]\s*([0-9]*\.?[0-9]+%?)\s*)?\)$`)
	reHexShort = regexp.MustCompile(`(?i)^#([0-9a-f])([0-9a-f])([0-9a-f])([0-9a-f])?$`)
	reHexLong  = regexp.MustCompile(`(?i)^#([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})?$`)
)

// Normalize converts an arbitrary color representation plus a desired alpha
// into a canonical alpha-bearing color string.
//
// Non-string values are stringified unchanged; alpha is not applied to them.
// Strings are trimmed and matched against, in order: rgb/rgba notation,
// hsl/hsla notation, 3/4-digit hex shorthand, and 6/8-digit hex. An alpha
// embedded in the input takes precedence over the alpha argument. Matched
// colors are reassembled as "rgba(r,g,b,a)" or "hsla(h,s%,l%,a)" depending
// on the matched family.
//
// Strings that match no pattern (named colors, host-specific values) are
// returned unchanged, since alpha cannot be injected into them. Normalize
// never fails; unparseable input degrades to pass-through.
func Normalize(clr any, alpha float64) string {
	s, ok := clr.(string)
	if !ok {
		return fmt.Sprint(clr)
	}

	trimmed := strings.TrimSpace(s)

	if m := reRGB.FindStringSubmatch(trimmed); m != nil {
		a := alpha
		if m[4] != "" {
			a = parseAlphaToken(m[4])
		}
		return fmt.Sprintf("rgba(%s,%s,%s,%s)", m[1], m[2], m[3], formatAlpha(a))
	}

	if m := reHSL.FindStringSubmatch(trimmed); m != nil {
		a := alpha
		if m[4] != "" {
			a = parseAlphaToken(m[4])
		}
		return fmt.Sprintf("hsla(%s,%s%%,%s%%,%s)", m[1], m[2], m[3], formatAlpha(a))
	}

	if m := reHexShort.FindStringSubmatch(trimmed); m != nil {
		r := hexByte(m[1] + m[1])
		g := hexByte(m[2] + m[2])
		b := hexByte(m[3] + m[3])
		a := alpha
		if m[4] != "" {
			a = float64(hexByte(m[4]+m[4])) / 255
		}
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatAlpha(a))
	}

	if m := reHexLong.FindStringSubmatch(trimmed); m != nil {
		r := hexByte(m[1])
		g := hexByte(m[2])
		b := hexByte(m[3])
		a := alpha
		if m[4] != "" {
			a = float64(hexByte(m[4])) / 255
		}
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatAlpha(a))
	}

	return s
}

// parseAlphaToken parses an alpha capture: a plain number or a percentage.
func parseAlphaToken(s string) float64 {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 1
		}
		return v / 100
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return v
}

// formatAlpha renders an alpha value without trailing zeros, so 1.0 becomes
// "1" and 0.5 becomes "0.5".
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// hexByte parses a two-character hex string. The regexes guarantee validity,
// so parse failures collapse to zero.
func hexByte(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}

// ParseColor parses a color string into an RGBA value.
// Supported formats:
//   - Named colors: "red", "steelblue", "transparent", etc.
//   - Hex formats: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"
//   - RGB function: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)"
//   - HSL function: "hsl(120, 50%, 50%)", "hsla(120, 50%, 50%, 0.5)"
//
// Unlike Normalize, ParseColor is strict: it returns an error for anything
// it cannot resolve to a concrete RGBA value. It is used by the renderer,
// which needs real pixels rather than a pass-through string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}

	lower := strings.ToLower(s)
	if lower == "transparent" {
		return color.RGBA{}, nil
	}
	if clr, ok := colornames.Map[lower]; ok {
		return clr, nil
	}

	if m := reHexShort.FindStringSubmatch(s); m != nil {
		c := color.RGBA{
			R: uint8(hexByte(m[1] + m[1])),
			G: uint8(hexByte(m[2] + m[2])),
			B: uint8(hexByte(m[3] + m[3])),
			A: 255,
		}
		if m[4] != "" {
			c.A = uint8(hexByte(m[4] + m[4]))
		}
		return c, nil
	}

	if m := reHexLong.FindStringSubmatch(s); m != nil {
		c := color.RGBA{
			R: uint8(hexByte(m[1])),
			G: uint8(hexByte(m[2])),
			B: uint8(hexByte(m[3])),
			A: 255,
		}
		if m[4] != "" {
			c.A = uint8(hexByte(m[4]))
		}
		return c, nil
	}

	if m := reRGB.FindStringSubmatch(s); m != nil {
		r, err := parseColorComponent(m[1])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid red value: %w", err)
		}
		g, err := parseColorComponent(m[2])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid green value: %w", err)
		}
		b, err := parseColorComponent(m[3])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid blue value: %w", err)
		}
		a := uint8(255)
		if m[4] != "" {
			a = alphaByte(parseAlphaToken(m[4]))
		}
		return color.RGBA{R: r, G: g, B: b, A: a}, nil
	}

	if m := reHSL.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		a := uint8(255)
		if m[4] != "" {
			a = alphaByte(parseAlphaToken(m[4]))
		}
		return HSLToRGBA(HSL{H: h, S: sat / 100, L: l / 100}, a), nil
	}

	return color.RGBA{}, fmt.Errorf("unrecognized color format: %q", s)
}

// MustParseColor parses a color string and panics if parsing fails.
// Use this only for known-good color values in initialization code.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseColorComponent parses a color component value (0-255).
func parseColorComponent(s string) (uint8, error) {
	val, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(val), nil
}

// alphaByte converts a [0,1] alpha fraction to a byte, clamping.
func alphaByte(a float64) uint8 {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return uint8(a * 255)
}

// ToRGBA converts a color to an "rgba(r, g, b, a)" string.
func ToRGBA(c color.RGBA) string {
	alpha := float64(c.A) / 255.0
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatAlpha(alpha))
}

// WithOpacity returns a new color with the specified opacity (0.0-1.0).
func WithOpacity(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity * 255)}
}

// Blend blends two colors together with the specified ratio (0.0-1.0).
// A ratio of 0.0 returns c1, 1.0 returns c2, 0.5 returns an even mix.
func Blend(c1, c2 color.RGBA, ratio float64) color.RGBA {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	return color.RGBA{
		R: blendChannel(c1.R, c2.R, ratio),
		G: blendChannel(c1.G, c2.G, ratio),
		B: blendChannel(c1.B, c2.B, ratio),
		A: blendChannel(c1.A, c2.A, ratio),
	}
}

// blendChannel blends two channel values with the given ratio.
func blendChannel(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
}

// Lighten returns a lighter version of the color.
// Amount is a value from 0.0-1.0, where 0.0 returns the original color
// and 1.0 returns white.
func Lighten(c color.RGBA, amount float64) color.RGBA {
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}

	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*amount),
		G: uint8(float64(c.G) + (255-float64(c.G))*amount),
		B: uint8(float64(c.B) + (255-float64(c.B))*amount),
		A: c.A,
	}
}

// Darken returns a darker version of the color.
// Amount is a value from 0.0-1.0, where 0.0 returns the original color
// and 1.0 returns black.
func Darken(c color.RGBA, amount float64) color.RGBA {
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}

	return color.RGBA{
		R: uint8(float64(c.R) * (1 - amount)),
		G: uint8(float64(c.G) * (1 - amount)),
		B: uint8(float64(c.B) * (1 - amount)),
		A: c.A,
	}
}

// HSL represents a color in Hue-Saturation-Lightness space.
// H is in range [0, 360), S and L are in range [0, 1].
type HSL struct {
	H, S, L float64
}

// HSLToRGBA converts an HSL color to RGBA with the specified alpha.
func HSLToRGBA(hsl HSL, alpha uint8) color.RGBA {
	if hsl.S == 0 {
		// Achromatic
		l := uint8(hsl.L * 255)
		return color.RGBA{R: l, G: l, B: l, A: alpha}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	hNorm := hsl.H / 360.0

	r := hueToRGB(p, q, hNorm+1.0/3.0)
	g := hueToRGB(p, q, hNorm)
	b := hueToRGB(p, q, hNorm-1.0/3.0)

	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: alpha,
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
