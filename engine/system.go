package engine

// System is one stage of the per-tick pipeline
// Systems run in ascending priority order while the simulation is running
type System interface {
	// Priority orders systems; lower runs first
	Priority() int
	// Update advances the system's concern by one tick
	Update(s *State)
}
