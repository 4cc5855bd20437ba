// Package main provides the zonechart demo: a live line chart whose colors
// and gradient fill follow the zone/threshold rules of a Lua style
// configuration, with optional hot reload on file changes.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-zonestyle/internal/colorize"
	"github.com/opd-ai/go-zonestyle/internal/config"
	"github.com/opd-ai/go-zonestyle/internal/render"
	"github.com/opd-ai/go-zonestyle/pkg/zonestyle"
)

// Version is the current version of zonechart.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("c", "", "Path to Lua style configuration file")
	version := flag.Bool("v", false, "Print version and exit")
	watch := flag.Bool("watch", false, "Reload the style configuration when the file changes")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *version {
		fmt.Printf("zonechart version %s\n", Version)
		return 0
	}

	logger := zonestyle.DefaultLogger()
	if *debug {
		logger = zonestyle.DebugLogger()
	}

	cfg := config.DefaultConfig()
	// Without a config file, show a demo threshold rule rather than a
	// colorless chart.
	cfg.Series.Color = "#44bb99"
	cfg.Series.NegativeColor = "#ee6677"

	var parser *config.LuaStyleParser
	if *configPath != "" {
		if _, err := os.Stat(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot access style configuration %s: %v\n", *configPath, err)
			return 1
		}

		parser = config.NewLuaStyleParser()
		defer parser.Close()

		loaded, err := parser.ParseFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing style configuration: %v\n", err)
			return 1
		}
		result := loaded.Validate()
		for _, w := range result.Warnings {
			logger.Warn("style configuration", "field", w.Field, "issue", w.Message)
		}
		if err := result.Error(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid style configuration: %v\n", err)
			return 1
		}
		cfg = *loaded
	}

	chart := render.NewLineChart(0, 0, float64(cfg.Chart.Width), float64(cfg.Chart.Height))
	chart.SetMaxPoints(cfg.Chart.MaxPoints)
	if !cfg.Chart.AutoScale {
		chart.SetRange(cfg.Chart.Min, cfg.Chart.Max)
	}
	chart.SetStyle(chartStyle(cfg))

	game := render.NewGame(cfg.Chart.Width, cfg.Chart.Height, chart, signalFeed(), cfg.Chart.UpdateInterval, logger)

	if *watch && *configPath != "" {
		watcher, err := config.NewWatcher(*configPath, config.DefaultWatchDebounce,
			func() error {
				reloaded, err := parser.ParseFile(*configPath)
				if err != nil {
					return err
				}
				if err := reloaded.Validate().Error(); err != nil {
					return err
				}
				game.ApplyStyle(chartStyle(*reloaded))
				logger.Info("style configuration reloaded", "path", *configPath)
				return nil
			},
			func(err error) {
				logger.Error("style reload failed", "error", err)
			})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching style configuration: %v\n", err)
			return 1
		}
		watcher.Start()
		defer watcher.Stop()
	}

	ebiten.SetWindowSize(cfg.Chart.Width, cfg.Chart.Height)
	ebiten.SetWindowTitle(cfg.Chart.Title)

	logger.Info("zonechart starting",
		"version", Version,
		"config", *configPath,
		"watch", *watch)

	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error running chart: %v\n", err)
		return 1
	}
	return 0
}

// chartStyle converts a parsed configuration into a renderer style.
func chartStyle(cfg config.Config) render.ChartStyle {
	style := render.DefaultChartStyle()
	style.Rules = cfg.Series.Style()
	style.StrokeWidth = float32(cfg.Chart.StrokeWidth)
	style.PointRadius = float32(cfg.Chart.PointRadius)
	if bg, err := colorize.ParseColor(cfg.Chart.Background); err == nil {
		style.BackgroundColor = bg
	}
	return style
}

// signalFeed produces a noisy sine wave spanning positive and negative
// values, so both sides of a threshold rule are visible.
func signalFeed() render.Feed {
	t := 0.0
	return func() float64 {
		t += 0.15
		return 60*math.Sin(t) + 20*rand.Float64() - 10
	}
}
