package engine

// System is an interface that all systems must implement
type System interface {
	Update()
	Priority() int // Lower values run first
}

// Conditional systems are skipped for the frame when ShouldRun returns false
// The predicate is evaluated once per frame, right before the system would run
type Conditional interface {
	ShouldRun() bool
}

// Named systems report a label used in logs and schedule listings
type Named interface {
	Name() string
}

// SystemFunc adapts closures to System, Conditional and Named
type SystemFunc struct {
	Label string
	Order int
	Run   func()
	RunIf func() bool // nil means always run
}

// Update runs the closure
func (s *SystemFunc) Update() { s.Run() }

// Priority returns the configured order
func (s *SystemFunc) Priority() int { return s.Order }

// ShouldRun evaluates the run condition
func (s *SystemFunc) ShouldRun() bool { return s.RunIf == nil || s.RunIf() }

// Name returns the label
func (s *SystemFunc) Name() string { return s.Label }
