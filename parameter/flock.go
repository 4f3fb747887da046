package parameter

// Flocking Rule Radii
const (
	// SeparationRadiusMin and SeparationRadiusMax bound the per-unit separation radius
	SeparationRadiusMin = 2.0
	SeparationRadiusMax = 4.0

	// AlignmentRadius is the neighbor radius for velocity matching
	AlignmentRadius = 8.0

	// CohesionRadius is the neighbor radius for centering
	CohesionRadius = 12.0
)

// Flocking Rule Weights
const (
	SeparationWeight = 0.15
	AlignmentWeight  = 0.1
	CohesionWeight   = 0.05
	AttractionWeight = 0.3

	// CohesionFactor scales the offset toward the local center before weighting
	CohesionFactor = 0.01

	// AttractionStrength is the magnitude of the normalized pull toward the attraction center
	AttractionStrength = 0.5
)

// Motion
const (
	// MaxSpeed caps velocity magnitude after all forces and jitter
	MaxSpeed = 3.0

	// StepScale converts velocity into per-tick displacement
	StepScale = 0.4

	// Jitter amplitudes and angular rates (radians per simulated second)
	JitterAmplitudeX = 0.05
	JitterAmplitudeY = 0.03
	JitterRateX      = 8.0
	JitterRateY      = 6.0

	// SpeedMultiplierMin and SpeedMultiplierMax bound the per-unit jitter multiplier
	SpeedMultiplierMin = 0.7
	SpeedMultiplierMax = 1.3
)

// Homing toward the largest missing clump
const (
	// ClumpRadius is the neighborhood used when grouping missing pixels
	ClumpRadius = 12.0

	// ClumpDirectThreshold is the missing count at or below which the plain centroid is used
	ClumpDirectThreshold = 10
)
