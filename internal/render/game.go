package render

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-zonestyle/pkg/zonestyle"
)

// Feed produces the next data point for a live chart.
type Feed func() float64

// Game drives a LineChart inside an Ebiten window, pulling a new point from
// the feed at a fixed interval. It implements ebiten.Game.
type Game struct {
	chart    *LineChart
	feed     Feed
	interval time.Duration
	logger   zonestyle.Logger

	width  int
	height int

	mu       sync.Mutex
	lastFeed time.Time
}

// NewGame creates a Game of the given window size. A nil feed produces a
// static chart; a nil logger disables logging.
func NewGame(width, height int, chart *LineChart, feed Feed, interval time.Duration, logger zonestyle.Logger) *Game {
	if logger == nil {
		logger = zonestyle.NopLogger()
	}
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Game{
		chart:    chart,
		feed:     feed,
		interval: interval,
		logger:   logger,
		width:    width,
		height:   height,
	}
}

// Chart returns the underlying chart widget.
func (g *Game) Chart() *LineChart {
	return g.chart
}

// ApplyStyle swaps the chart's style. It is safe to call from a config
// reload callback while the game is running.
func (g *Game) ApplyStyle(style ChartStyle) {
	g.chart.SetStyle(style)
	g.logger.Info("chart style applied",
		"zones", len(style.Rules.Zones),
		"threshold", style.Rules.Threshold)
}

// Update advances the game state, feeding the chart when the interval has
// elapsed.
func (g *Game) Update() error {
	if g.feed == nil {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if now.Sub(g.lastFeed) < g.interval {
		return nil
	}
	g.lastFeed = now

	v := g.feed()
	g.chart.AddPoint(v)
	g.logger.Debug("point added", "value", v)
	return nil
}

// Draw renders the chart onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.chart.Draw(screen)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
