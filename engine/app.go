package engine

import (
	"reflect"
)

// Plugin bundles streams, resources and systems registered together
type Plugin interface {
	Build(app *App)
}

// App owns the world and drives frames
//
// Frame order:
//  1. Frame counter advances, event streams swap buffers
//  2. PhaseUpdate systems run (dispatch, open, handle)
//  3. PhaseGUI systems run (form, dialogs, picker)
type App struct {
	World   *World
	plugins map[reflect.Type]struct{}
}

// NewApp creates an app with an empty world
func NewApp() *App {
	return &App{
		World:   NewWorld(),
		plugins: make(map[reflect.Type]struct{}),
	}
}

// AddPlugins builds each plugin once; adding the same plugin type twice panics
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		t := reflect.TypeOf(p)
		if _, dup := a.plugins[t]; dup {
			panic("plugin added twice: " + t.String())
		}
		a.plugins[t] = struct{}{}
		p.Build(a)
	}
	return a
}

// AddSystem registers a system in a phase
func (a *App) AddSystem(phase Phase, system System) *App {
	a.World.schedule.Add(phase, system)
	return a
}

// InsertResource adds a singleton resource
func InsertResource[T any](a *App, resource T) *App {
	AddResource(a.World.Resources, resource)
	return a
}

// Frame runs one full frame
func (a *App) Frame() {
	w := a.World
	MustGetResource[*TimeResource](w.Resources).FrameNumber++
	w.updateStreams()

	w.schedule.Run(PhaseUpdate)
	w.schedule.Run(PhaseGUI)
}
