package config

import (
	"time"

	"github.com/opd-ai/go-zonestyle/pkg/zonestyle"
)

// Default values for chart configuration options.
const (
	// DefaultUpdateInterval is the default time between updates.
	DefaultUpdateInterval = 500 * time.Millisecond
	// DefaultWidth is the default window width in pixels.
	DefaultWidth = 640
	// DefaultHeight is the default window height in pixels.
	DefaultHeight = 360
	// DefaultTitle is the default window title.
	DefaultTitle = "zonechart"
	// DefaultBackground is the default plot background color.
	DefaultBackground = "#101418"
	// DefaultStrokeWidth is the default series line width in pixels.
	DefaultStrokeWidth = 2.0
	// DefaultPointRadius is the default point marker radius in pixels.
	DefaultPointRadius = 3.0
	// DefaultMaxPoints is the default number of visible data points.
	DefaultMaxPoints = 120
)

// DefaultConfig returns a Config with sensible default values: an
// auto-scaling chart with no coloring rules. Series defaults mirror the
// resolver's documented defaults.
func DefaultConfig() Config {
	return Config{
		Chart: ChartConfig{
			Width:          DefaultWidth,
			Height:         DefaultHeight,
			Title:          DefaultTitle,
			Background:     DefaultBackground,
			StrokeWidth:    DefaultStrokeWidth,
			PointRadius:    DefaultPointRadius,
			UpdateInterval: DefaultUpdateInterval,
			MaxPoints:      DefaultMaxPoints,
			Min:            0,
			Max:            100,
			AutoScale:      true,
		},
		Series: SeriesConfig{
			Threshold:    zonestyle.DefaultThreshold,
			FillOpacity:  zonestyle.DefaultFillOpacity,
			PointOpacity: zonestyle.DefaultPointOpacity,
		},
	}
}
