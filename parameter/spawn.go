package parameter

// Spawn Waves
const (
	// SpawnInterval is the minimum simulated seconds between waves (strictly greater)
	SpawnInterval = 3.0

	// WaveSize is the maximum units per wave
	WaveSize = 50

	// MaxUnits caps live units; no wave spawns at or above it
	MaxUnits = 200

	// DespawnMargin is how far past the matrix edge a unit may fly before removal
	DespawnMargin = 25

	// EntryOffset is the distance outside the edge where waves originate
	EntryOffset = 10
)

// Formation
const (
	// FormationColumns is the number of units per formation row
	FormationColumns = 8

	// FormationColumnSpacing and FormationRowSpacing are in pixels
	FormationColumnSpacing = 2.0
	FormationRowSpacing    = 3.0

	// FormationJitter is the half-width of the uniform noise added to each offset
	FormationJitter = 1.0
)

// Flight Vectors
const (
	// EntrySpeed is the dominant velocity component for edge entries
	EntrySpeed = 2.0

	// EntrySpread is the half-width of the random cross component
	EntrySpread = 0.5

	// VelocityJitterMin and VelocityJitterMax scale each unit's velocity components independently
	VelocityJitterMin = 0.8
	VelocityJitterMax = 1.2

	// DiagonalAimDivisor converts the corner-to-target offset into a flight vector
	DiagonalAimDivisor = 20.0
)

// Targeted Entry Scoring
const (
	// EdgeSampleStepVertical is the Y sampling stride along left and right edges
	EdgeSampleStepVertical = 2

	// EdgeSampleStepHorizontal is the X sampling stride along top and bottom edges
	EdgeSampleStepHorizontal = 4

	// EdgeDepthWeight scales the perpendicular distance from the entry edge
	EdgeDepthWeight = 0.3

	// EdgeScoreRange excludes targets at or beyond this weighted distance
	EdgeScoreRange = 20.0
)
