// Package config provides configuration parsing for go-zonestyle.
// This file implements the Lua style-configuration parser. Style files are
// executed with the Golua runtime under hard resource limits and the chart
// and series tables are extracted from the resulting globals.

package config

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-zonestyle/pkg/zonestyle"
)

// LuaStyleParser parses Lua style configuration files. It uses the Golua
// runtime to execute the file and extract values from the global chart and
// series tables.
type LuaStyleParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaStyleParser creates a new LuaStyleParser with a fresh Lua runtime.
func NewLuaStyleParser() *LuaStyleParser {
	return NewLuaStyleParserWithOutput(io.Discard)
}

// NewLuaStyleParserWithOutput creates a LuaStyleParser whose Lua print
// output goes to the given writer.
func NewLuaStyleParserWithOutput(stdout io.Writer) *LuaStyleParser {
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaStyleParser{
		runtime: runtime,
		cleanup: cleanup,
	}
}

// ParseFile reads and parses a Lua style configuration file.
func (p *LuaStyleParser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style configuration: %w", err)
	}
	return p.Parse(content)
}

// Parse parses a Lua style configuration from content bytes. The code runs
// under CPU and memory hard limits so a runaway configuration cannot hang
// the host.
func (p *LuaStyleParser) Parse(content []byte) (*Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"style",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile style configuration: %w", err)
	}

	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    10_000_000,
			Memory: 50 * 1024 * 1024,
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	thread := p.runtime.MainThread()
	if _, err = rt.Call1(thread, rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("failed to execute style configuration: %w", err)
	}

	return p.extractConfig()
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaStyleParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// extractConfig extracts configuration values from the chart and series
// globals. Missing tables leave the defaults in place.
func (p *LuaStyleParser) extractConfig() (*Config, error) {
	cfg := DefaultConfig()

	chartVal := p.runtime.GlobalEnv().Get(rt.StringValue("chart"))
	if chartTable, ok := chartVal.TryTable(); ok {
		p.extractChartTable(&cfg, chartTable)
	}

	seriesVal := p.runtime.GlobalEnv().Get(rt.StringValue("series"))
	if seriesTable, ok := seriesVal.TryTable(); ok {
		if err := p.extractSeriesTable(&cfg, seriesTable); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// extractChartTable extracts window and plot geometry from the chart table.
func (p *LuaStyleParser) extractChartTable(cfg *Config, table *rt.Table) {
	if val := getTableInt(table, "width"); val != nil {
		cfg.Chart.Width = *val
	}
	if val := getTableInt(table, "height"); val != nil {
		cfg.Chart.Height = *val
	}
	if val := getTableString(table, "title"); val != nil {
		cfg.Chart.Title = *val
	}
	if val := getTableString(table, "background"); val != nil {
		cfg.Chart.Background = *val
	}
	if val := getTableFloat(table, "stroke_width"); val != nil {
		cfg.Chart.StrokeWidth = *val
	}
	if val := getTableFloat(table, "point_radius"); val != nil {
		cfg.Chart.PointRadius = *val
	}
	if val := getTableFloat(table, "update_interval"); val != nil {
		cfg.Chart.UpdateInterval = time.Duration(*val * float64(time.Second))
	}
	if val := getTableInt(table, "max_points"); val != nil {
		cfg.Chart.MaxPoints = *val
	}
	if val := getTableFloat(table, "min"); val != nil {
		cfg.Chart.Min = *val
		cfg.Chart.AutoScale = false
	}
	if val := getTableFloat(table, "max"); val != nil {
		cfg.Chart.Max = *val
		cfg.Chart.AutoScale = false
	}
	if val := getTableBool(table, "autoscale"); val != nil {
		cfg.Chart.AutoScale = *val
	}
}

// extractSeriesTable extracts the coloring rules from the series table.
func (p *LuaStyleParser) extractSeriesTable(cfg *Config, table *rt.Table) error {
	if val := getTableString(table, "color"); val != nil {
		cfg.Series.Color = *val
	}
	if val := getTableString(table, "negative_color"); val != nil {
		cfg.Series.NegativeColor = *val
	}
	if val := getTableFloat(table, "threshold"); val != nil {
		cfg.Series.Threshold = *val
	}
	if val := getTableFloat(table, "fill_opacity"); val != nil {
		cfg.Series.FillOpacity = *val
	}
	if val := getTableFloat(table, "point_opacity"); val != nil {
		cfg.Series.PointOpacity = *val
	}

	zonesVal := table.Get(rt.StringValue("zones"))
	if zonesVal == rt.NilValue {
		return nil
	}
	zonesTable, ok := zonesVal.TryTable()
	if !ok {
		return fmt.Errorf("series.zones is not a table")
	}

	zones, err := extractZones(zonesTable)
	if err != nil {
		return err
	}
	cfg.Series.Zones = zones
	return nil
}

// extractZones reads the array part of the zones table in declaration
// order. Order is preserved: point-color resolution depends on it.
func extractZones(table *rt.Table) ([]zonestyle.Zone, error) {
	var zones []zonestyle.Zone

	for i := int64(1); ; i++ {
		entry := table.Get(rt.IntValue(i))
		if entry == rt.NilValue {
			break
		}
		entryTable, ok := entry.TryTable()
		if !ok {
			return nil, fmt.Errorf("series.zones[%d] is not a table", i)
		}

		var z zonestyle.Zone
		from := getTableFloat(entryTable, "from")
		to := getTableFloat(entryTable, "to")
		if from == nil || to == nil {
			return nil, fmt.Errorf("series.zones[%d] requires from and to", i)
		}
		z.From = *from
		z.To = *to

		clr := getTableString(entryTable, "color")
		if clr == nil {
			return nil, fmt.Errorf("series.zones[%d] requires a color", i)
		}
		z.Color = *clr

		if op := getTableFloat(entryTable, "opacity"); op != nil {
			z.Opacity = op
		}

		zones = append(zones, z)
	}
	return zones, nil
}

// getTableBool retrieves a boolean value from a Lua table.
// Returns nil if the key doesn't exist or is not a boolean.
func getTableBool(table *rt.Table, key string) *bool {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if b, ok := val.TryBool(); ok {
		return &b
	}
	return nil
}

// getTableString retrieves a string value from a Lua table.
// Returns nil if the key doesn't exist or is not a string.
func getTableString(table *rt.Table, key string) *string {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if s, ok := val.TryString(); ok {
		return &s
	}
	return nil
}

// getTableFloat retrieves a float64 value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableFloat(table *rt.Table, key string) *float64 {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryFloat(); ok {
		return &n
	}
	if n, ok := val.TryInt(); ok {
		f := float64(n)
		return &f
	}
	return nil
}

// getTableInt retrieves an int value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableInt(table *rt.Table, key string) *int {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryInt(); ok {
		i := int(n)
		return &i
	}
	if f, ok := val.TryFloat(); ok {
		i := int(f)
		return &i
	}
	return nil
}
