package core

// RGB stores explicit 8-bit color channels, decoupled from any display backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

// To565 packs the color into the 16-bit 5-6-5 layout used by HUB75 panel drivers
func (c RGB) To565() uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B)>>3
}

// RGBFrom565 expands a 5-6-5 value back to 8 bits per channel
// Low bits are filled from the high bits so full scale maps to 255
func RGBFrom565(v uint16) RGB {
	r := uint8(v>>11) & 0x1F
	g := uint8(v>>5) & 0x3F
	b := uint8(v) & 0x1F
	return RGB{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
	}
}

// Quantize565 returns the color as a 5-6-5 panel would actually show it
func (c RGB) Quantize565() RGB {
	return RGBFrom565(c.To565())
}
