// Package render provides Ebiten-based rendering for go-zonestyle.
// This file implements the line chart widget: a gradient-filled plot whose
// band colors, line segment colors, and point markers all come from the
// series' zone and threshold rules.
package render

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-zonestyle/internal/colorize"
	"github.com/opd-ai/go-zonestyle/pkg/zonestyle"
)

// ChartStyle defines the visual appearance of a line chart.
type ChartStyle struct {
	// Rules are the value-dependent coloring rules for the series.
	Rules zonestyle.Config
	// StrokeWidth is the width of the series line in pixels.
	StrokeWidth float32
	// PointRadius is the radius of point markers in pixels. Zero disables
	// markers.
	PointRadius float32
	// FallbackColor strokes segments and points no rule matches.
	FallbackColor color.RGBA
	// BackgroundColor is the background color of the plot area.
	BackgroundColor color.RGBA
	// ShowBackground indicates whether to draw the background.
	ShowBackground bool
}

// DefaultChartStyle returns a ChartStyle with sensible defaults and no
// coloring rules.
func DefaultChartStyle() ChartStyle {
	return ChartStyle{
		Rules:           zonestyle.DefaultConfig(),
		StrokeWidth:     2.0,
		PointRadius:     3.0,
		FallbackColor:   color.RGBA{R: 150, G: 255, B: 150, A: 255},
		BackgroundColor: color.RGBA{R: 16, G: 20, B: 24, A: 255},
		ShowBackground:  true,
	}
}

// LineChart displays data points connected by lines, with the fill and the
// stroke colored according to zone/threshold rules. It is safe for
// concurrent use: data feeds and the draw loop may run on different
// goroutines.
type LineChart struct {
	x, y          float64
	width, height float64
	style         ChartStyle
	data          []float64
	maxPoints     int
	minValue      float64
	maxValue      float64
	autoScale     bool
	mu            sync.RWMutex
}

// NewLineChart creates a new line chart with the specified dimensions.
func NewLineChart(x, y, width, height float64) *LineChart {
	return &LineChart{
		x:         x,
		y:         y,
		width:     width,
		height:    height,
		style:     DefaultChartStyle(),
		data:      make([]float64, 0),
		maxPoints: 120,
		minValue:  0,
		maxValue:  100,
		autoScale: true,
	}
}

// SetStyle sets the visual style of the chart.
func (lc *LineChart) SetStyle(style ChartStyle) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.style = style
}

// SetPosition sets the top-left position of the chart.
func (lc *LineChart) SetPosition(x, y float64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.x = x
	lc.y = y
}

// SetSize sets the width and height of the chart.
func (lc *LineChart) SetSize(width, height float64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.width = width
	lc.height = height
}

// SetMaxPoints sets the maximum number of data points to display.
func (lc *LineChart) SetMaxPoints(n int) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if n > 0 {
		lc.maxPoints = n
	}
}

// SetRange sets the minimum and maximum values for the Y axis.
// This disables auto-scaling.
func (lc *LineChart) SetRange(minVal, maxVal float64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.minValue = minVal
	lc.maxValue = maxVal
	lc.autoScale = false
}

// SetAutoScale enables or disables automatic Y-axis scaling.
func (lc *LineChart) SetAutoScale(enabled bool) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.autoScale = enabled
}

// AddPoint adds a new data point to the chart.
// Old points are removed when maxPoints is exceeded.
func (lc *LineChart) AddPoint(value float64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.data = append(lc.data, value)
	if len(lc.data) > lc.maxPoints {
		lc.data = lc.data[len(lc.data)-lc.maxPoints:]
	}
}

// SetData replaces all data points in the chart.
func (lc *LineChart) SetData(data []float64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.data = make([]float64, len(data))
	copy(lc.data, data)
	if len(lc.data) > lc.maxPoints {
		lc.data = lc.data[len(lc.data)-lc.maxPoints:]
	}
}

// ClearData removes all data points from the chart.
func (lc *LineChart) ClearData() {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.data = lc.data[:0]
}

// valueRange returns the effective min and max of the Y axis, from the data
// with padding when auto-scaling, from the configured range otherwise.
// Callers must hold the lock.
func (lc *LineChart) valueRange() (minVal, maxVal float64) {
	minVal, maxVal = lc.minValue, lc.maxValue
	if lc.autoScale && len(lc.data) > 0 {
		minVal, maxVal = lc.data[0], lc.data[0]
		for _, v := range lc.data {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		// Add 10% padding
		padding := (maxVal - minVal) * 0.1
		if padding == 0 {
			padding = 1
		}
		minVal -= padding
		maxVal += padding
	}
	if maxVal-minVal == 0 {
		maxVal = minVal + 1
	}
	return minVal, maxVal
}

// band is a horizontal slice of the plot filled with one flat color.
type band struct {
	top    float64
	height float64
	color  color.RGBA
}

// fillBands converts a gradient's flat stop pairs into pixel bands within a
// vertical span. Stops with unparseable colors are dropped: the bundled
// renderer cannot rasterize a pass-through color string.
func fillBands(g *zonestyle.Gradient, top, height float64) []band {
	stops := g.Stops()
	bands := make([]band, 0, len(stops)/2)

	for i := 0; i+1 < len(stops); i += 2 {
		p0, p1 := stops[i].Position, stops[i+1].Position
		if p1 < p0 {
			p0, p1 = p1, p0
		}
		clr, err := colorize.ParseColor(stops[i].Color)
		if err != nil {
			continue
		}
		bands = append(bands, band{
			top:    top + p0*height,
			height: (p1 - p0) * height,
			color:  clr,
		})
	}
	return bands
}

// segmentColor resolves the stroke color for the line segment starting at
// the given value, falling back to the style's fallback color.
func (lc *LineChart) segmentColor(value float64) color.RGBA {
	clr, ok := lc.style.Rules.ColorFor(value)
	if !ok {
		return lc.style.FallbackColor
	}
	rgba, err := colorize.ParseColor(colorize.Normalize(clr, 1))
	if err != nil {
		return lc.style.FallbackColor
	}
	return rgba
}

// Draw renders the chart onto the given screen.
func (lc *LineChart) Draw(screen *ebiten.Image) {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	if lc.style.ShowBackground {
		vector.DrawFilledRect(
			screen,
			float32(lc.x), float32(lc.y),
			float32(lc.width), float32(lc.height),
			lc.style.BackgroundColor,
			false,
		)
	}

	if len(lc.data) < 2 {
		return
	}

	minVal, maxVal := lc.valueRange()
	valueRange := maxVal - minVal

	// Screen Y grows down, values grow up.
	valueToPixel := func(v float64) float64 {
		return lc.y + lc.height - ((v-minVal)/valueRange)*lc.height
	}

	// Gradient fill: one flat band per zone, rebuilt every frame since the
	// visible value range may have shifted.
	area := zonestyle.PlotArea{Top: lc.y, Bottom: lc.y + lc.height}
	grad := lc.style.Rules.Gradient(area, valueToPixel)
	for _, b := range fillBands(grad, lc.y, lc.height) {
		vector.DrawFilledRect(
			screen,
			float32(lc.x), float32(b.top),
			float32(lc.width), float32(b.height),
			b.color,
			false,
		)
	}

	pointSpacing := lc.width / float64(len(lc.data)-1)

	for i := 0; i < len(lc.data)-1; i++ {
		x1 := lc.x + float64(i)*pointSpacing
		x2 := lc.x + float64(i+1)*pointSpacing
		y1 := valueToPixel(lc.data[i])
		y2 := valueToPixel(lc.data[i+1])

		vector.StrokeLine(
			screen,
			float32(x1), float32(y1),
			float32(x2), float32(y2),
			lc.style.StrokeWidth,
			lc.segmentColor(lc.data[i]),
			false,
		)
	}

	if lc.style.PointRadius <= 0 {
		return
	}
	for i, v := range lc.data {
		style, ok := zonestyle.ResolvePointStyle(v, lc.style.Rules)
		fill := lc.style.FallbackColor
		if ok {
			if rgba, err := colorize.ParseColor(style.Fill); err == nil {
				fill = rgba
			}
		}
		px := lc.x + float64(i)*pointSpacing
		vector.DrawFilledCircle(
			screen,
			float32(px), float32(valueToPixel(v)),
			lc.style.PointRadius,
			fill,
			false,
		)
	}
}
