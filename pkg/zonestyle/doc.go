// Package zonestyle computes value-dependent visual styling for line/area
// chart series: given a set of coloring rules (ordered value zones, or a
// single threshold split) and a plot area's pixel geometry, it produces
// color strings and multi-stop linear gradients ready to hand to a renderer.
//
// # Rules
//
// A series is styled either by ordered [Zone] bands or by a threshold rule
// (color above, negative color below). Zones take precedence over the
// threshold rule, zone membership is inclusive on both ends, and for point
// colors the first matching zone wins. A threshold rule is internally the
// two-zone form {From: +Inf, To: threshold} / {From: threshold, To: -Inf}.
//
// # Point colors
//
//	cfg := zonestyle.DefaultConfig()
//	cfg.Color = "#44bb99"
//	cfg.NegativeColor = "#ee6677"
//
//	style, ok := zonestyle.ResolvePointStyle(v, cfg)
//	if ok {
//		// style.Fill, style.Stroke, style.HoverFill, style.HoverStroke
//	}
//
// When ok is false no rule matched; keep the default styling.
//
// # Gradients
//
// [BuildGradient] maps each zone's bounds through a caller-supplied
// [PixelMapper] (typically a chart scale) and emits two flat stops per
// zone, positions normalized into the [PlotArea]:
//
//	grad := cfg.Gradient(zonestyle.PlotArea{Top: 0, Bottom: 100}, scale.PixelFor)
//	for _, stop := range grad.Stops() {
//		// stop.Position in [0,1], stop.Color an rgba()/hsla() string
//	}
//
// Every operation is a pure function of its arguments: nothing is cached,
// no call can fail, and concurrent invocations for independent series are
// safe. Degenerate input (unparseable colors, zero-height areas, collapsed
// zones, empty rule sets) degrades to pass-through strings, position 0,
// skipped zones, and empty gradients respectively.
package zonestyle
