package parameter

// LED Matrix Geometry
const (
	// MatrixWidth is the panel width in LEDs
	MatrixWidth = 64

	// MatrixHeight is the panel height in LEDs
	MatrixHeight = 32

	// MatrixBitDepth is the per-channel color depth of the panel driver
	MatrixBitDepth = 6
)
