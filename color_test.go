package kir

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#112233", Solid(0x11, 0x22, 0x33, 0xFF)},
		{"#11223344", Solid(0x11, 0x22, 0x33, 0x44)},
		{"#abc", Solid(0xAA, 0xBB, 0xCC, 0xFF)},
		{"  #ffffff  ", Solid(0xFF, 0xFF, 0xFF, 0xFF)},
		{"transparent", Transparent()},
		{"", Transparent()},
		{"#12345", Transparent()},
		{"#gghhii", Transparent()},
		{"red", Transparent()},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexDropsOpaqueAlpha(t *testing.T) {
	if got := (RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}).Hex(); got != "#112233" {
		t.Errorf("opaque Hex = %q", got)
	}
	if got := (RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}).Hex(); got != "#11223380" {
		t.Errorf("translucent Hex = %q", got)
	}
}

func TestHexParseRoundTrip(t *testing.T) {
	for _, c := range []RGBA{
		{0, 0, 0, 0xFF},
		{0x12, 0x34, 0x56, 0x78},
		{0xFF, 0xFF, 0xFF, 0x01},
	} {
		if got := ParseColor(c.Hex()); got.RGBA != c {
			t.Errorf("round trip %+v -> %q -> %+v", c, c.Hex(), got.RGBA)
		}
	}
}

func TestGradientAddStopClamps(t *testing.T) {
	g := &Gradient{Kind: GradientLinear}
	for i := 0; i < MaxGradientStops+3; i++ {
		g.AddStop(float64(i)/10, RGBA{A: 0xFF})
	}
	if len(g.Stops) != MaxGradientStops {
		t.Errorf("stop count = %d, want %d", len(g.Stops), MaxGradientStops)
	}
}

func TestColorResolve(t *testing.T) {
	vars := NewVarTable()
	vars.Set(2, "accent", Solid(1, 2, 3, 0xFF))

	if got := VarRef(2).Resolve(vars); got != Solid(1, 2, 3, 0xFF) {
		t.Errorf("Resolve(set slot) = %+v", got)
	}
	if got := VarRef(5).Resolve(vars); !got.IsTransparent() {
		t.Errorf("Resolve(unset slot) = %+v, want transparent", got)
	}
	if got := VarRef(2).Resolve(nil); !got.IsTransparent() {
		t.Errorf("Resolve(nil table) = %+v, want transparent", got)
	}

	solid := Solid(9, 9, 9, 0xFF)
	if got := solid.Resolve(nil); got != solid {
		t.Errorf("non-ref Resolve changed the color: %+v", got)
	}
}

func TestVarTableLookup(t *testing.T) {
	vars := NewVarTable()
	vars.Set(7, "primary", Solid(1, 1, 1, 0xFF))
	vars.Set(600, "ignored", Solid(2, 2, 2, 0xFF)) // out of range

	idx, ok := vars.Lookup("primary")
	if !ok || idx != 7 {
		t.Errorf("Lookup(primary) = %d, %v", idx, ok)
	}
	if _, ok := vars.Lookup("ignored"); ok {
		t.Error("out-of-range Set should not register a name")
	}
	if got := vars.Color(600); !got.IsTransparent() {
		t.Errorf("Color(out of range) = %+v", got)
	}
}

func TestColorString(t *testing.T) {
	g := &Gradient{Kind: GradientRadial}
	g.AddStop(0, RGBA{A: 0xFF})
	g.AddStop(1, RGBA{R: 0xFF, A: 0xFF})

	tests := []struct {
		c    Color
		want string
	}{
		{Solid(0xAB, 0xCD, 0xEF, 0xFF), "#abcdef"},
		{VarRef(12), "var(12)"},
		{GradientColor(g), "radial-gradient(2 stops)"},
		{Transparent(), "transparent"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
