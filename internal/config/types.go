// Package config provides configuration parsing for go-zonestyle demos and
// hosts. Style configurations are Lua files declaring a chart table (window
// and plot geometry) and a series table (zone and threshold coloring rules).
package config

import (
	"time"

	"github.com/opd-ai/go-zonestyle/pkg/zonestyle"
)

// Config is a fully parsed style configuration.
type Config struct {
	Chart  ChartConfig
	Series SeriesConfig
}

// ChartConfig holds window and plot geometry settings.
type ChartConfig struct {
	// Width is the window width in pixels.
	Width int
	// Height is the window height in pixels.
	Height int
	// Title is the window title.
	Title string
	// Background is the plot background color string.
	Background string
	// StrokeWidth is the series line width in pixels.
	StrokeWidth float64
	// PointRadius is the point marker radius in pixels. Zero disables
	// point markers.
	PointRadius float64
	// UpdateInterval is the time between data updates.
	UpdateInterval time.Duration
	// MaxPoints is the number of recent data points kept on screen.
	MaxPoints int
	// Min and Max fix the value axis range when AutoScale is false.
	Min float64
	Max float64
	// AutoScale derives the value axis range from the visible data.
	AutoScale bool
}

// SeriesConfig holds the value-dependent coloring rules for the series.
type SeriesConfig struct {
	// Color is the color for values at or above Threshold.
	Color string
	// NegativeColor is the color for values below Threshold.
	NegativeColor string
	// Threshold is the split value for the two-color rule.
	Threshold float64
	// FillOpacity is the gradient fill opacity.
	FillOpacity float64
	// PointOpacity is the point fill opacity.
	PointOpacity float64
	// Zones are ordered value bands; when present they take precedence
	// over the threshold colors.
	Zones []zonestyle.Zone
}

// Style converts the series settings into a resolver configuration.
// Empty color strings become nil rules rather than empty-string colors.
func (s SeriesConfig) Style() zonestyle.Config {
	cfg := zonestyle.DefaultConfig()
	cfg.Threshold = s.Threshold
	cfg.FillOpacity = s.FillOpacity
	cfg.PointOpacity = s.PointOpacity
	cfg.Zones = s.Zones
	if s.Color != "" {
		cfg.Color = s.Color
	}
	if s.NegativeColor != "" {
		cfg.NegativeColor = s.NegativeColor
	}
	return cfg
}
