package parameter

// System Execution Priorities (lower runs first within a phase)

// Update phase
const (
	PriorityDispatch = 10 // Aggregator fan-out, before any per-field stream is read
	PriorityOpen     = 20 // Dialog and picker open systems
	PriorityHandle   = 30 // Field handlers consuming result events
	PriorityFeedback = 90 // Audio feedback, after everything that requests sounds
)

// GUI phase
const (
	PriorityForm   = 10 // Person window, background layer
	PriorityDialog = 20 // Modal windows drawn over the form
)
