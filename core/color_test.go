package core

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want RGB
	}{
		{"black", RGB{0, 0, 0}, RGB{0, 0, 0}},
		{"white", RGB{255, 255, 255}, RGB{255, 255, 255}},
		{"red", RGB{255, 0, 0}, RGB{255, 0, 0}},
		{"low bits dropped", RGB{7, 3, 7}, RGB{0, 0, 0}},
		{"mid gray", RGB{128, 128, 128}, RGB{132, 130, 132}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Quantize565(); got != tt.want {
				t.Errorf("Quantize565(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBTo565Layout(t *testing.T) {
	if got := (RGB{255, 0, 0}).To565(); got != 0xF800 {
		t.Errorf("red: got %#04x, want 0xf800", got)
	}
	if got := (RGB{0, 255, 0}).To565(); got != 0x07E0 {
		t.Errorf("green: got %#04x, want 0x07e0", got)
	}
	if got := (RGB{0, 0, 255}).To565(); got != 0x001F {
		t.Errorf("blue: got %#04x, want 0x001f", got)
	}
}
