package parameter

// Rainbow Palette
const (
	// FlockHueSpeed is hue cycles per second for swarm units
	FlockHueSpeed = 0.5
	// FlockHueStride is the hue offset between consecutive unit indices
	FlockHueStride  = 0.1
	FlockSaturation = 0.9
	FlockValue      = 0.8

	// TextHueSpeed is hue cycles per second for captured pixels
	TextHueSpeed = 0.2
	// TextHueSpread is the hue offset across the normalized (x/w + y/h) diagonal
	TextHueSpread  = 0.3
	TextSaturation = 1.0
	TextValue      = 1.0
)

// GIF Export
const (
	// GIFScale is the default output pixels per LED
	GIFScale = 6

	// GIFEvery captures every Nth presented frame
	GIFEvery = 3
)
