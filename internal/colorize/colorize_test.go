package colorize

import (
	"image/color"
	"testing"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		alpha    float64
		expected string
	}{
		{"6-digit hex", "#ff0000", 0.5, "rgba(255,0,0,0.5)"},
		{"6-digit hex uppercase", "#FF0000", 1, "rgba(255,0,0,1)"},
		{"6-digit hex full alpha", "#1a2b3c", 1, "rgba(26,43,60,1)"},
		{"8-digit hex embedded opaque", "#ff0000ff", 0.2, "rgba(255,0,0,1)"},
		{"8-digit hex embedded transparent", "#ff000000", 0.9, "rgba(255,0,0,0)"},
		{"3-digit shorthand", "#abc", 1, "rgba(170,187,204,1)"},
		{"3-digit shorthand with alpha arg", "#f00", 0.25, "rgba(255,0,0,0.25)"},
		{"4-digit shorthand embedded opaque", "#f00f", 0.3, "rgba(255,0,0,1)"},
		{"4-digit shorthand embedded transparent", "#f000", 0.3, "rgba(255,0,0,0)"},
		{"surrounding whitespace", "  #ff0000  ", 1, "rgba(255,0,0,1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input, tt.alpha); got != tt.expected {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.alpha, got, tt.expected)
			}
		})
	}
}

func TestNormalizeRGB(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		alpha    float64
		expected string
	}{
		{"rgb injects alpha", "rgb(10,20,30)", 0.25, "rgba(10,20,30,0.25)"},
		{"rgb with spaces", "rgb(10, 20, 30)", 1, "rgba(10,20,30,1)"},
		{"rgba embedded alpha wins", "rgba(1,2,3,0.9)", 0.2, "rgba(1,2,3,0.9)"},
		{"rgba percentage alpha", "rgba(1,2,3,90%)", 0.2, "rgba(1,2,3,0.9)"},
		{"space separated", "rgb(10 20 30)", 0.5, "rgba(10,20,30,0.5)"},
		{"space separated slash alpha", "rgb(10 20 30 / 50%)", 1, "rgba(10,20,30,0.5)"},
		{"space separated slash number", "rgb(10 20 30 / 0.75)", 1, "rgba(10,20,30,0.75)"},
		{"uppercase function", "RGB(255, 0, 0)", 1, "rgba(255,0,0,1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input, tt.alpha); got != tt.expected {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.alpha, got, tt.expected)
			}
		})
	}
}

func TestNormalizeHSL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		alpha    float64
		expected string
	}{
		{"hsl injects alpha", "hsl(120, 50%, 50%)", 0.5, "hsla(120,50%,50%,0.5)"},
		{"hsla embedded alpha wins", "hsla(120, 50%, 50%, 0.8)", 0.2, "hsla(120,50%,50%,0.8)"},
		{"degree unit stripped", "hsl(120deg 50% 50%)", 1, "hsla(120,50%,50%,1)"},
		{"radian unit stripped", "hsl(1.5rad, 50%, 50%)", 1, "hsla(1.5,50%,50%,1)"},
		{"gradian unit stripped", "hsl(100grad, 50%, 50%)", 1, "hsla(100,50%,50%,1)"},
		{"fractional components", "hsl(210.5, 12.5%, 62.5%)", 0.4, "hsla(210.5,12.5%,62.5%,0.4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input, tt.alpha); got != tt.expected {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.alpha, got, tt.expected)
			}
		})
	}
}

func TestNormalizePassThrough(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		alpha    float64
		expected string
	}{
		{"named color unchanged", "red", 0.5, "red"},
		{"arbitrary string unchanged", "not-a-color", 0.1, "not-a-color"},
		{"empty string unchanged", "", 1, ""},
		{"malformed rgb unchanged", "rgb(10,20)", 1, "rgb(10,20)"},
		{"integer stringified", 42, 0.5, "42"},
		{"nil stringified", nil, 0.5, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input, tt.alpha); got != tt.expected {
				t.Errorf("Normalize(%v, %v) = %q, want %q", tt.input, tt.alpha, got, tt.expected)
			}
		})
	}
}

// Normalize must be idempotent for input it cannot parse.
func TestNormalizeUnparseableIdempotent(t *testing.T) {
	if got := Normalize("red", 0.5); got != "red" {
		t.Fatalf("Normalize(\"red\", 0.5) = %q, want \"red\"", got)
	}
	if got := Normalize(Normalize("red", 0.5), 0.25); got != "red" {
		t.Fatalf("double Normalize = %q, want \"red\"", got)
	}
}

func TestParseColorNamed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{"red", "red", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"Red mixed case", "Red", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"steelblue", "steelblue", color.RGBA{R: 70, G: 130, B: 180, A: 255}},
		{"white", "white", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"black", "black", color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{"transparent", "transparent", color.RGBA{}},
		{"with spaces", "  red  ", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{"hex #RRGGBB", "#FF0000", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"hex lowercase", "#ff0000", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"hex mixed", "#1A2B3C", color.RGBA{R: 26, G: 43, B: 60, A: 255}},
		{"hex #RRGGBBAA", "#FF000080", color.RGBA{R: 255, G: 0, B: 0, A: 128}},
		{"hex #RGB", "#F00", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"hex #ABC", "#ABC", color.RGBA{R: 170, G: 187, B: 204, A: 255}},
		{"hex #RGBA", "#F008", color.RGBA{R: 255, G: 0, B: 0, A: 136}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseColorFunctional(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{"rgb basic", "rgb(255, 0, 0)", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"rgb no spaces", "rgb(255,0,0)", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"rgba float alpha", "rgba(255, 0, 0, 0.5)", color.RGBA{R: 255, G: 0, B: 0, A: 127}},
		{"rgba zero alpha", "rgba(255, 0, 0, 0.0)", color.RGBA{R: 255, G: 0, B: 0, A: 0}},
		{"rgba full alpha", "rgba(255, 0, 0, 1.0)", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"rgba percentage alpha", "rgba(255, 0, 0, 50%)", color.RGBA{R: 255, G: 0, B: 0, A: 127}},
		{"hsl green", "hsl(120, 100%, 50%)", color.RGBA{R: 0, G: 255, B: 0, A: 255}},
		{"hsl achromatic", "hsl(0, 0%, 50%)", color.RGBA{R: 127, G: 127, B: 127, A: 255}},
		{"hsla with alpha", "hsla(120, 100%, 50%, 0.5)", color.RGBA{R: 0, G: 255, B: 0, A: 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"invalid name", "notacolor"},
		{"invalid hex length", "#FFFFF"},
		{"invalid hex chars", "#GGGGGG"},
		{"rgb missing values", "rgb(255, 0)"},
		{"rgb out of range", "rgb(903, 0, 0)"},
		{"incomplete rgb", "rgb("},
		{"hsl missing percent", "hsl(120, 50, 50)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseColor(tt.input); err == nil {
				t.Errorf("ParseColor(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestMustParseColor(t *testing.T) {
	c := MustParseColor("red")
	if c != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("MustParseColor(\"red\") = %v", c)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseColor(\"notacolor\") did not panic")
		}
	}()
	MustParseColor("notacolor")
}

func TestNormalizeParseColorRoundTrip(t *testing.T) {
	// Strings emitted by Normalize must be accepted by ParseColor, since the
	// renderer rasterizes gradient stops produced by Normalize.
	inputs := []string{"#ff0000", "#abc", "rgb(10,20,30)", "hsl(120, 100%, 50%)"}
	for _, in := range inputs {
		normalized := Normalize(in, 0.5)
		if _, err := ParseColor(normalized); err != nil {
			t.Errorf("ParseColor(Normalize(%q)) error = %v", in, err)
		}
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    color.RGBA
		expected string
	}{
		{"opaque red", color.RGBA{R: 255, G: 0, B: 0, A: 255}, "rgba(255,0,0,1)"},
		{"transparent black", color.RGBA{}, "rgba(0,0,0,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.color); got != tt.expected {
				t.Errorf("ToRGBA(%v) = %q, want %q", tt.color, got, tt.expected)
			}
		})
	}
}

func TestWithOpacity(t *testing.T) {
	c := color.RGBA{R: 100, G: 150, B: 200, A: 255}

	half := WithOpacity(c, 0.5)
	if half.A != 127 {
		t.Errorf("WithOpacity alpha = %d, want 127", half.A)
	}
	if half.R != 100 || half.G != 150 || half.B != 200 {
		t.Error("WithOpacity should not change RGB channels")
	}

	if got := WithOpacity(c, -1).A; got != 0 {
		t.Errorf("negative opacity alpha = %d, want 0", got)
	}
	if got := WithOpacity(c, 2).A; got != 255 {
		t.Errorf("excess opacity alpha = %d, want 255", got)
	}
}

func TestBlend(t *testing.T) {
	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	if got := Blend(black, white, 0); got != black {
		t.Errorf("Blend ratio 0 = %v, want %v", got, black)
	}
	if got := Blend(black, white, 1); got != white {
		t.Errorf("Blend ratio 1 = %v, want %v", got, white)
	}

	mid := Blend(black, white, 0.5)
	if mid.R != 127 || mid.G != 127 || mid.B != 127 {
		t.Errorf("Blend ratio 0.5 = %v, want mid gray", mid)
	}
}

func TestLightenDarken(t *testing.T) {
	c := color.RGBA{R: 100, G: 100, B: 100, A: 200}

	light := Lighten(c, 0.5)
	if light.R <= c.R {
		t.Error("Lighten should increase channel values")
	}
	if light.A != c.A {
		t.Error("Lighten should preserve alpha")
	}
	if got := Lighten(c, 1); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Lighten(c, 1) = %v, want white", got)
	}

	dark := Darken(c, 0.5)
	if dark.R != 50 {
		t.Errorf("Darken(c, 0.5).R = %d, want 50", dark.R)
	}
	if got := Darken(c, 1); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Darken(c, 1) = %v, want black", got)
	}
}
