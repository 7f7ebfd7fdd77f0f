package theme

import "testing"

func TestColor_ARGB(t *testing.T) {
	if got := AccentBlue.ARGB(); got != "FF0078D4" {
		t.Fatalf("ARGB = %q, want FF0078D4", got)
	}
}

func TestColor_RGB(t *testing.T) {
	r, g, b := AccentTeal.RGB()
	if r != 0x00 || g != 0xB2 || b != 0x94 {
		t.Fatalf("RGB = %d,%d,%d", r, g, b)
	}
}

func TestColor_RGBMalformed(t *testing.T) {
	r, g, b := Color("zz").RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("malformed color should be black, got %d,%d,%d", r, g, b)
	}
}

func TestAccent_Wraps(t *testing.T) {
	if Accent(0) != AccentBlue || Accent(3) != AccentBlue || Accent(4) != AccentTeal {
		t.Fatal("Accent should cycle through the accents")
	}
}

func TestTint_Default(t *testing.T) {
	if Tint(DarkText) != NearWhite {
		t.Fatalf("Tint(DarkText) = %q, want NearWhite", Tint(DarkText))
	}
	if Tint(AccentBlue) != LightBlue {
		t.Fatalf("Tint(AccentBlue) = %q, want LightBlue", Tint(AccentBlue))
	}
}

func TestEMU(t *testing.T) {
	if EMU(1) != 914400 {
		t.Fatalf("EMU(1) = %d", EMU(1))
	}
	if EMU(0.5) != 457200 {
		t.Fatalf("EMU(0.5) = %d", EMU(0.5))
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"🎯  Module Objectives", "Module Objectives"},
		{"Service health first → Message center next", "Service health first -> Message center next"},
		{"Participant Pack — P01", "Participant Pack - P01"},
		{"OneDrive ≤ SharePoint", "OneDrive <= SharePoint"},
		{"Day 1  ·  Tenant Foundations", "Day 1 · Tenant Foundations"},
		{"line one\n📁 line two", "line one\nline two"},
		{"Café", "Café"},
	}
	for _, tt := range tests {
		if got := Plain(tt.in); got != tt.want {
			t.Errorf("Plain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
