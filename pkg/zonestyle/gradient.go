package zonestyle

import (
	"image/color"
	"math"
	"sort"

	"github.com/opd-ai/go-zonestyle/internal/colorize"
)

// Stop is a (position, color) pair defining a linear gradient's appearance
// at a normalized point along its axis. Position is in [0, 1] measured from
// the plot area's top edge; Color is a canonical alpha-bearing color string.
type Stop struct {
	Position float64
	Color    string
}

// Gradient is an ordered set of stops for a vertical linear gradient
// spanning a plot area from top to bottom. A gradient with zero stops is
// valid and means "leave the style unmodified".
type Gradient struct {
	stops []Stop
}

// Stops returns a copy of the gradient's stops in construction order:
// two flat stops per contributing zone, zones ordered by descending From.
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// Empty reports whether the gradient has no stops.
func (g *Gradient) Empty() bool {
	return len(g.stops) == 0
}

// At samples the gradient at the given normalized position, interpolating
// between neighboring stops. It is used by rasterizing renderers; stops
// whose color string cannot be parsed sample as transparent.
func (g *Gradient) At(position float64) color.RGBA {
	if len(g.stops) == 0 {
		return color.RGBA{}
	}

	sorted := make([]Stop, len(g.stops))
	copy(sorted, g.stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	if position <= sorted[0].Position {
		return stopRGBA(sorted[0])
	}
	last := sorted[len(sorted)-1]
	if position >= last.Position {
		return stopRGBA(last)
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Position < position {
			continue
		}
		s1, s2 := sorted[i-1], sorted[i]
		span := s2.Position - s1.Position
		if span == 0 {
			return stopRGBA(s2)
		}
		ratio := (position - s1.Position) / span
		return colorize.Blend(stopRGBA(s1), stopRGBA(s2), ratio)
	}
	return stopRGBA(last)
}

func stopRGBA(s Stop) color.RGBA {
	c, err := colorize.ParseColor(s.Color)
	if err != nil {
		return color.RGBA{}
	}
	return c
}

// PlotArea is the vertical pixel span of the drawing surface a gradient is
// applied to. Top and Bottom are pixel coordinates; Bottom is normally the
// larger of the two since screen Y grows downward.
type PlotArea struct {
	Top    float64
	Bottom float64
}

// normalize converts a pixel coordinate into a [0,1] position within the
// area, clamping overshoot. A non-positive area height collapses every
// position to 0: render passes may legitimately run before layout
// stabilizes, and that must not fail.
func (a PlotArea) normalize(px float64) float64 {
	h := a.Bottom - a.Top
	if h <= 0 {
		return 0
	}
	p := (px - a.Top) / h
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// PixelMapper converts a data-space value into a drawing-surface pixel
// coordinate. It is supplied by the caller (typically a chart scale) and is
// re-queried on every gradient build; the resolver never caches it.
type PixelMapper func(value float64) float64

// BuildGradient constructs a multi-stop vertical gradient that partitions
// the plot area according to the zone list.
//
// A copy of the zone list is sorted by descending From; the caller's slice
// is never reordered, since point-color resolution depends on the original
// order. For each zone, From and To are mapped through toPixel and
// normalized into the area. Zones whose two positions coincide contribute
// nothing: a zero-height band would only corrupt stop ordering. Surviving
// zones contribute two stops of the same color, the color being the zone's
// color normalized at the zone's own opacity or, absent one, fillOpacity.
//
// A nil mapper or an empty zone list yields an empty gradient, never an
// error.
func BuildGradient(area PlotArea, toPixel PixelMapper, zones []Zone, fillOpacity float64) *Gradient {
	g := &Gradient{}
	if toPixel == nil || len(zones) == 0 {
		return g
	}

	sorted := make([]Zone, len(zones))
	copy(sorted, zones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From > sorted[j].From
	})

	for _, z := range sorted {
		start := area.normalize(toPixel(z.From))
		end := area.normalize(toPixel(z.To))
		if start == end {
			continue
		}

		opacity := fillOpacity
		if z.Opacity != nil {
			opacity = *z.Opacity
		}
		c := colorize.Normalize(z.Color, opacity)

		g.stops = append(g.stops,
			Stop{Position: start, Color: c},
			Stop{Position: end, Color: c},
		)
	}
	return g
}

// BuildThresholdGradient is sugar over BuildGradient for the two-color
// threshold rule: color above the threshold, negativeColor below.
func BuildThresholdGradient(area PlotArea, toPixel PixelMapper, color, negativeColor any, threshold, fillOpacity float64) *Gradient {
	return BuildGradient(area, toPixel, thresholdZones(color, negativeColor, threshold), fillOpacity)
}
