// Package form draws the Person window and turns its buttons into aggregator events.
package form

import (
	"fmt"

	"github.com/lixenwraith/personform/engine"
	"github.com/lixenwraith/personform/field"
	"github.com/lixenwraith/personform/gui"
	"github.com/lixenwraith/personform/parameter"
	"github.com/lixenwraith/personform/person"
	"github.com/lixenwraith/personform/picker"
)

// Plugin adds the form system to the GUI phase
type Plugin struct{}

// Build implements engine.Plugin
func (Plugin) Build(app *engine.App) {
	w := app.World
	app.AddSystem(engine.PhaseGUI, &engine.SystemFunc{
		Label: "form.render",
		Order: parameter.PriorityForm,
		Run:   func() { render(w) },
	})
}

// row is one labelled value with its action button
type row struct {
	label  string
	button string
	event  func(p person.Person) field.AppEvent
}

var rows = []row{
	{"Name: %s", "Change", func(person.Person) field.AppEvent {
		return field.ChangeName{}
	}},
	{"Age: %d", "Grow old", func(person.Person) field.AppEvent {
		return field.GrowOlder{}
	}},
	{"Location: %s", "Change", func(person.Person) field.AppEvent {
		return field.ChangeLocation{}
	}},
	{"Color: %s", "Change", func(p person.Person) field.AppEvent {
		return field.OpenColorPicker{OpenEvent: picker.OpenEvent{Color: p.Color}}
	}},
	{"Counter: %d", "Randomize", func(p person.Person) field.AppEvent {
		return field.ChangeCounter{ChangeCounterEvent: field.ChangeCounterEvent{Counter: p.Counter}}
	}},
}

func render(w *engine.World) {
	ctx, ok := gui.FromWorld(w)
	if !ok {
		return
	}
	p := engine.MustGetResource[*person.Person](w.Resources).Snapshot()
	values := []any{p.Name, p.Age, p.Location, p.Color, p.Counter}

	var emitted []field.AppEvent
	ctx.Window(gui.WindowOptions{
		ID:     parameter.FormWindowID,
		Title:  parameter.FormTitle,
		Anchor: gui.AnchorCenter,
		Width:  parameter.FormWidth,
		Height: parameter.FormHeight,
	}, func(ui gui.UI) {
		ui.Heading(parameter.FormTitle)
		ui.Space(1)
		for i, r := range rows {
			ui.Label(fmt.Sprintf(r.label, values[i]))
			if ui.Button(r.button, gui.ButtonPlain) {
				emitted = append(emitted, r.event(p))
			}
			ui.Space(1)
		}
	})

	for _, ev := range emitted {
		field.Emit(w, ev)
	}
}
