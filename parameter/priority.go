package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn   = 10
	PriorityFlock   = 20
	PriorityCapture = 30
	PriorityCull    = 40 // After capture so a unit leaving the screen still lights its last pixel
)
