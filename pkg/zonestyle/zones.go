package zonestyle

import "math"

// Zone is a value-space color band. From and To are data-space values, not
// pixel positions, and either bound may be the larger one; descending bands
// are valid and expected (threshold rules encode the positive band as
// {From: +Inf, To: threshold}). Membership is tested against the closed
// interval [min(From,To), max(From,To)].
type Zone struct {
	// From is one bound of the band in data space.
	From float64
	// To is the other bound of the band in data space.
	To float64
	// Color is the band's color: a string in any format accepted by
	// colorize.Normalize, or any other value stringified as-is.
	Color any
	// Opacity, when non-nil, overrides the fill opacity for this band only.
	Opacity *float64
}

// contains reports whether v falls inside the zone's closed interval.
func (z Zone) contains(v float64) bool {
	lo, hi := z.From, z.To
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// ColorForValue resolves the color assigned to a single value.
//
// When zones is non-empty it is scanned in the given order and the first
// zone containing the value wins; zones are not required to be disjoint or
// sorted, and zones always take precedence over the threshold colors.
// Otherwise the threshold rule applies: negativeColor for values below
// threshold (when negativeColor is non-nil), color for the rest.
//
// The second return value is false when no rule produced a color; callers
// must leave their default styling untouched in that case rather than treat
// it as an error.
func ColorForValue(value float64, zones []Zone, color, negativeColor any, threshold float64) (any, bool) {
	for _, z := range zones {
		if z.contains(value) {
			return z.Color, true
		}
	}
	if value < threshold && negativeColor != nil {
		return negativeColor, true
	}
	if color != nil {
		return color, true
	}
	return nil, false
}

// thresholdZones desugars a threshold rule into its two-zone form: values
// above the threshold belong to the unbounded positive band, the rest to
// the unbounded negative band.
func thresholdZones(color, negativeColor any, threshold float64) []Zone {
	return []Zone{
		{From: math.Inf(1), To: threshold, Color: color},
		{From: threshold, To: math.Inf(-1), Color: negativeColor},
	}
}
