// Package event declares field plugins: typed trigger and result streams,
// the modal component of a field and the systems that open, draw and handle it.
package event

import (
	"log"

	"github.com/lixenwraith/personform/audio"
	"github.com/lixenwraith/personform/component"
	"github.com/lixenwraith/personform/core"
	"github.com/lixenwraith/personform/dialog"
	"github.com/lixenwraith/personform/engine"
	"github.com/lixenwraith/personform/gui"
	"github.com/lixenwraith/personform/parameter"
	"github.com/lixenwraith/personform/status"
)

// Descriptor configures a dialog field; E is the trigger payload type
// Immutable once declared
type Descriptor[E any] struct {
	Name   string // Registry name and dialog window ID
	Dialog dialog.Config
}

// Result pairs the originating trigger with the confirmed input
type Result[E any] struct {
	Event  E
	Result string
}

// DeclareDialogField registers a field edited through the text/number dialog
//
// Systems:
//   - open (Update): every trigger despawns the field's windows and spawns a fresh one
//   - render (GUI): draws the dialog, emits Result[E] on confirm
//   - handle (Update): applies results to the S resource in emission order
func DeclareDialogField[E any, S any](app *engine.App, d Descriptor[E], handle func(state *S, res Result[E])) {
	w := app.World
	registryOf(w).register(d.Name, KindDialog)

	triggers := engine.AddEvent[E](w).Reader()
	results := engine.AddEvent[Result[E]](w)
	resultReader := results.Reader()
	windows := engine.GetStore[component.DialogWindow[E]](w)

	app.AddSystem(engine.PhaseUpdate, &engine.SystemFunc{
		Label: d.Name + ".open",
		Order: parameter.PriorityOpen,
		RunIf: func() bool { return !triggers.IsEmpty() },
		Run: func() {
			cmds := w.Commands()
			var spawned []core.Entity
			for _, ev := range triggers.Read() {
				for _, e := range windows.GetAllEntities() {
					cmds.Despawn(e)
				}
				// Windows spawned earlier in this run are not in the store until flush
				for _, e := range spawned {
					cmds.Despawn(e)
				}
				eb := engine.With(cmds.Spawn(), component.DialogWindow[E]{Event: ev})
				spawned = append(spawned[:0], eb.Entity())
				status.Inc(w, d.Name+".opened")
			}
			audio.Request(w, audio.SoundOpen)
		},
	})

	app.AddSystem(engine.PhaseGUI, &engine.SystemFunc{
		Label: d.Name + ".render",
		Order: parameter.PriorityDialog,
		RunIf: func() bool { return windows.CountEntities() > 0 },
		Run: func() {
			ctx, ok := gui.FromWorld(w)
			if !ok {
				return
			}
			for _, e := range windows.GetAllEntities() {
				win, ok := windows.GetComponent(e)
				if !ok {
					continue
				}
				input := win.Input
				outcome, err := dialog.Show(ctx, d.Name, uint64(e), d.Dialog, &input)
				switch outcome {
				case dialog.Confirmed:
					results.Send(Result[E]{Event: win.Event, Result: input})
					w.Commands().Despawn(e)
					audio.Request(w, audio.SoundConfirm)
					status.Inc(w, d.Name+".confirmed")
				case dialog.Dismissed:
					w.Commands().Despawn(e)
					audio.Request(w, audio.SoundCancel)
					status.Inc(w, d.Name+".dismissed")
				case dialog.Rejected:
					log.Printf("%s: input %q rejected: %v", d.Name, input, err)
					status.Inc(w, d.Name+".rejected")
					fallthrough
				default:
					if input != win.Input {
						win.Input = input
						windows.SetComponent(e, win)
					}
				}
			}
		},
	})

	app.AddSystem(engine.PhaseUpdate, &engine.SystemFunc{
		Label: d.Name + ".handle",
		Order: parameter.PriorityHandle,
		RunIf: func() bool { return !resultReader.IsEmpty() },
		Run: func() {
			state := engine.MustGetResource[*S](w.Resources)
			for _, res := range resultReader.Read() {
				handle(state, res)
			}
		},
	})
}

// DeclareEvent registers a field without a dialog: each trigger goes straight to the handler
func DeclareEvent[E any, S any](app *engine.App, name string, handle func(state *S, ev E)) {
	w := app.World
	registryOf(w).register(name, KindEvent)

	reader := engine.AddEvent[E](w).Reader()
	app.AddSystem(engine.PhaseUpdate, &engine.SystemFunc{
		Label: name + ".handle",
		Order: parameter.PriorityHandle,
		RunIf: func() bool { return !reader.IsEmpty() },
		Run: func() {
			state := engine.MustGetResource[*S](w.Resources)
			for _, ev := range reader.Read() {
				handle(state, ev)
			}
		},
	})
}

// DeclareEventWithUI registers a field that owns its own GUI system
// open receives every pending trigger of the frame; ui runs in the GUI phase
func DeclareEventWithUI[E any](app *engine.App, name string, open func(w *engine.World, events []E), ui engine.System) {
	w := app.World
	registryOf(w).register(name, KindUI)

	reader := engine.AddEvent[E](w).Reader()
	app.AddSystem(engine.PhaseUpdate, &engine.SystemFunc{
		Label: name + ".open",
		Order: parameter.PriorityOpen,
		RunIf: func() bool { return !reader.IsEmpty() },
		Run:   func() { open(w, reader.Read()) },
	})
	if ui != nil {
		app.AddSystem(engine.PhaseGUI, ui)
	}
}

// DeclareAggregator registers a tagged-union stream and the system fanning it out
// dispatch runs once per event, in emission order, before any open system
func DeclareAggregator[A any](app *engine.App, name string, dispatch func(w *engine.World, ev A)) {
	w := app.World
	registryOf(w).register(name, KindAggregator)

	reader := engine.AddEvent[A](w).Reader()
	app.AddSystem(engine.PhaseUpdate, &engine.SystemFunc{
		Label: name + ".dispatch",
		Order: parameter.PriorityDispatch,
		RunIf: func() bool { return !reader.IsEmpty() },
		Run: func() {
			for _, ev := range reader.Read() {
				dispatch(w, ev)
			}
		},
	})
}
