// Package config provides configuration parsing and validation for
// go-zonestyle. This file implements validation for chart geometry and
// series coloring rules.
package config

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-zonestyle/internal/colorize"
)

// ValidationError represents a configuration validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	// Errors contains all validation errors found.
	Errors []ValidationError
	// Warnings contains non-fatal issues (e.g., degenerate zones).
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error message if there are errors, nil otherwise.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Validate checks the configuration for problems a renderer cannot work
// around. Coloring-rule oddities the resolver tolerates (opacity outside
// [0,1], degenerate zones, missing rules) surface as warnings, not errors.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.validateChart(result)
	c.validateSeries(result)

	return result
}

func (c *Config) validateChart(result *ValidationResult) {
	if c.Chart.Width <= 0 {
		result.AddError("chart.width", fmt.Sprintf("must be positive, got %d", c.Chart.Width))
	}
	if c.Chart.Height <= 0 {
		result.AddError("chart.height", fmt.Sprintf("must be positive, got %d", c.Chart.Height))
	}
	if c.Chart.StrokeWidth < 0 {
		result.AddError("chart.stroke_width", fmt.Sprintf("must not be negative, got %g", c.Chart.StrokeWidth))
	}
	if c.Chart.PointRadius < 0 {
		result.AddError("chart.point_radius", fmt.Sprintf("must not be negative, got %g", c.Chart.PointRadius))
	}
	if c.Chart.UpdateInterval <= 0 {
		result.AddError("chart.update_interval", "must be positive")
	}
	if c.Chart.MaxPoints < 2 {
		result.AddError("chart.max_points", fmt.Sprintf("must be at least 2, got %d", c.Chart.MaxPoints))
	}
	if !c.Chart.AutoScale && c.Chart.Min >= c.Chart.Max {
		result.AddError("chart.min", fmt.Sprintf("fixed range requires min < max, got [%g, %g]", c.Chart.Min, c.Chart.Max))
	}

	if c.Chart.Background != "" {
		if _, err := colorize.ParseColor(c.Chart.Background); err != nil {
			result.AddError("chart.background", fmt.Sprintf("unparseable color %q", c.Chart.Background))
		}
	}
}

func (c *Config) validateSeries(result *ValidationResult) {
	if len(c.Series.Zones) == 0 && c.Series.Color == "" && c.Series.NegativeColor == "" {
		result.AddWarning("series", "no zones and no threshold colors; series keeps default styling")
	}

	checkOpacity(result, "series.fill_opacity", c.Series.FillOpacity)
	checkOpacity(result, "series.point_opacity", c.Series.PointOpacity)

	for i, z := range c.Series.Zones {
		field := fmt.Sprintf("series.zones[%d]", i+1)
		if z.From == z.To {
			result.AddWarning(field, "from equals to; zone contributes no gradient band")
		}
		if z.Opacity != nil {
			checkOpacity(result, field+".opacity", *z.Opacity)
		}
		if s, ok := z.Color.(string); ok {
			if _, err := colorize.ParseColor(s); err != nil {
				// Pass-through colors are legitimate for hosts that resolve
				// them natively, but the bundled renderer cannot.
				result.AddWarning(field+".color", fmt.Sprintf("color %q is not parseable and will pass through", s))
			}
		}
	}
}

func checkOpacity(result *ValidationResult, field string, v float64) {
	if v < 0 || v > 1 {
		result.AddWarning(field, fmt.Sprintf("opacity %g outside [0,1]; renderer clamping applies", v))
	}
}
