package zonestyle

import "github.com/opd-ai/go-zonestyle/internal/colorize"

// Default values for series styling options.
const (
	// DefaultThreshold is the default split value for threshold rules.
	DefaultThreshold = 0.0
	// DefaultFillOpacity is the default opacity of gradient fill bands.
	DefaultFillOpacity = 0.6
	// DefaultPointOpacity is the default opacity of point fills.
	DefaultPointOpacity = 1.0
	// DefaultHoverLighten is how much point colors are lightened for the
	// hover variant.
	DefaultHoverLighten = 0.15
)

// Config holds the value-dependent styling rules for one series.
// Construct it with DefaultConfig and override fields as needed; the zero
// value carries zero opacities, which is rarely what you want.
type Config struct {
	// Zones are ordered value bands. When non-empty they take precedence
	// over Color/NegativeColor/Threshold for both point colors and
	// gradients; first match wins for point colors.
	Zones []Zone

	// Color is the color for values at or above Threshold when no zones
	// are configured.
	Color any

	// NegativeColor is the color for values below Threshold. When nil,
	// Color applies to all values.
	NegativeColor any

	// Threshold is the split value for the two-color rule.
	Threshold float64

	// FillOpacity is the opacity applied to gradient fill bands unless a
	// zone carries its own override.
	FillOpacity float64

	// PointOpacity is the opacity applied to point fills.
	PointOpacity float64

	// HoverLighten is the lightening amount for hover point variants.
	HoverLighten float64
}

// DefaultConfig returns a Config with documented defaults and no rules.
func DefaultConfig() Config {
	return Config{
		Threshold:    DefaultThreshold,
		FillOpacity:  DefaultFillOpacity,
		PointOpacity: DefaultPointOpacity,
		HoverLighten: DefaultHoverLighten,
	}
}

// ColorFor resolves the configured color for a single value.
// The second return value is false when no rule matches.
func (c Config) ColorFor(value float64) (any, bool) {
	return ColorForValue(value, c.Zones, c.Color, c.NegativeColor, c.Threshold)
}

// Gradient builds the fill gradient for the configured rules over the given
// plot area. Zones take precedence; without zones the threshold rule is
// desugared into its two-zone form. The result may be empty.
func (c Config) Gradient(area PlotArea, toPixel PixelMapper) *Gradient {
	if len(c.Zones) > 0 {
		return BuildGradient(area, toPixel, c.Zones, c.FillOpacity)
	}
	if c.Color == nil && c.NegativeColor == nil {
		return &Gradient{}
	}
	return BuildThresholdGradient(area, toPixel, c.Color, c.NegativeColor, c.Threshold, c.FillOpacity)
}

// PointStyle is the resolved per-point styling for one data point. All
// fields are canonical color strings ready to hand to a renderer.
type PointStyle struct {
	Fill        string
	Stroke      string
	HoverFill   string
	HoverStroke string
}

// ResolvePointStyle computes the style for a single point value under the
// configured rules. It is a pure function invoked from the caller's render
// loop, once per point.
//
// The second return value is false when no rule matches the value; the
// caller must keep its default styling in that case. Hover variants are the
// lightened base color when the base color is parseable, and fall back to
// the base color otherwise (a host-specific color string cannot be
// lightened here).
func ResolvePointStyle(value float64, cfg Config) (PointStyle, bool) {
	clr, ok := cfg.ColorFor(value)
	if !ok {
		return PointStyle{}, false
	}

	fill := colorize.Normalize(clr, cfg.PointOpacity)
	stroke := colorize.Normalize(clr, 1)
	style := PointStyle{
		Fill:        fill,
		Stroke:      stroke,
		HoverFill:   fill,
		HoverStroke: stroke,
	}

	if rgba, err := colorize.ParseColor(stroke); err == nil {
		hover := colorize.Lighten(rgba, cfg.HoverLighten)
		style.HoverStroke = colorize.ToRGBA(hover)
		style.HoverFill = colorize.ToRGBA(colorize.WithOpacity(hover, cfg.PointOpacity))
	}
	return style, true
}
