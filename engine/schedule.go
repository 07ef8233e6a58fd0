package engine

import (
	"fmt"
	"sync"
)

// Phase is a named stage of the frame
type Phase uint8

const (
	// PhaseUpdate runs event dispatch, dialog open systems and field handlers
	PhaseUpdate Phase = iota
	// PhaseGUI runs every system that draws through the immediate-mode GUI
	PhaseGUI

	phaseCount
)

// String returns the phase label
func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "Update"
	case PhaseGUI:
		return "GUI"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Schedule holds systems per phase, sorted by priority
// Systems with equal priority keep registration order
type Schedule struct {
	world  *World
	mu     sync.RWMutex
	phases [phaseCount][]System
}

func newSchedule(w *World) *Schedule {
	return &Schedule{world: w}
}

// Add registers a system in a phase
func (s *Schedule) Add(phase Phase, system System) {
	if phase >= phaseCount {
		panic("unknown phase: " + phase.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	systems := append(s.phases[phase], system)

	// Sort by priority (bubble sort, stable, small N)
	for i := 0; i < len(systems)-1; i++ {
		for j := 0; j < len(systems)-i-1; j++ {
			if systems[j].Priority() > systems[j+1].Priority() {
				systems[j], systems[j+1] = systems[j+1], systems[j]
			}
		}
	}
	s.phases[phase] = systems
}

// Systems returns a copy of the systems registered in a phase, in run order
func (s *Schedule) Systems(phase Phase) []System {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]System, len(s.phases[phase]))
	copy(result, s.phases[phase])
	return result
}

// Run executes one phase: each system whose condition holds runs,
// then queued commands are flushed before the next system
func (s *Schedule) Run(phase Phase) {
	for _, system := range s.Systems(phase) {
		if c, ok := system.(Conditional); ok && !c.ShouldRun() {
			continue
		}
		system.Update()
		s.world.commands.Flush()
	}
}
