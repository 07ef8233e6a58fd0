// Package picker is the color field: a modal with an RGBA editor, hex readout and Save/Cancel.
package picker

import (
	"log"
	"strings"

	"github.com/lixenwraith/personform/audio"
	"github.com/lixenwraith/personform/component"
	"github.com/lixenwraith/personform/core"
	"github.com/lixenwraith/personform/engine"
	"github.com/lixenwraith/personform/event"
	"github.com/lixenwraith/personform/gui"
	"github.com/lixenwraith/personform/parameter"
	"github.com/lixenwraith/personform/person"
	"github.com/lixenwraith/personform/status"
)

// Name is the registry name of the color field
const Name = "color"

// OpenEvent requests the picker seeded with a color
type OpenEvent struct {
	Color core.Color
}

// Plugin declares the color field
type Plugin struct{}

// Build implements engine.Plugin
func (Plugin) Build(app *engine.App) {
	w := app.World
	pickers := engine.GetStore[component.ColorPicker](w)

	event.DeclareEventWithUI(app, Name, func(w *engine.World, events []OpenEvent) {
		open(w, pickers, events)
	}, &engine.SystemFunc{
		Label: Name + ".render",
		Order: parameter.PriorityDialog,
		RunIf: func() bool { return pickers.CountEntities() > 0 },
		Run:   func() { render(w, pickers) },
	})
}

// open replaces any live picker with one per trigger; only the last survives the flush
func open(w *engine.World, pickers *engine.Store[component.ColorPicker], events []OpenEvent) {
	cmds := w.Commands()
	var spawned []core.Entity
	for _, ev := range events {
		for _, e := range pickers.GetAllEntities() {
			cmds.Despawn(e)
		}
		for _, e := range spawned {
			cmds.Despawn(e)
		}
		eb := engine.With(cmds.Spawn(), component.ColorPicker{
			Title: parameter.PickerTitle,
			Color: ev.Color,
			Hex:   core.HexReadout(ev.Color.Array()),
		})
		spawned = append(spawned[:0], eb.Entity())
		status.Inc(w, Name+".opened")
	}
	audio.Request(w, audio.SoundOpen)
}

func render(w *engine.World, pickers *engine.Store[component.ColorPicker]) {
	ctx, ok := gui.FromWorld(w)
	if !ok {
		return
	}

	for _, e := range pickers.GetAllEntities() {
		p, ok := pickers.GetComponent(e)
		if !ok {
			continue
		}

		var save, cancel bool
		rgba := p.Color.Array()
		hex := p.Hex

		visible := ctx.Window(gui.WindowOptions{
			ID:         parameter.PickerWindowID,
			Instance:   uint64(e),
			Title:      p.Title,
			Anchor:     gui.AnchorCenter,
			MinWidth:   parameter.PickerMinWidth,
			Closable:   true,
			Foreground: true,
		}, func(ui gui.UI) {
			ui.Frame(func(ui gui.UI) {
				ui.Heading(p.Title)
				ui.Space(1)
				ui.Label(parameter.PickerBand)
				ui.Caption(parameter.PickerCaption)
				ui.Space(1)

				if ui.ColorEdit(&rgba) {
					hex = core.HexReadout(rgba)
				}
				ui.Horizontal(func(ui gui.UI) {
					ui.Swatch(core.ColorFromArray(rgba))
					ui.Monospace(core.HexReadout(rgba))
				})

				// Hex entry applies once it parses; partial input is kept as typed
				if ui.TextEdit(&hex) {
					if c, err := core.ParseHex(strings.TrimSpace(hex), core.ColorFromArray(rgba)); err == nil {
						rgba = c.Array()
					}
				}

				ui.Space(1)
				ui.Horizontal(func(ui gui.UI) {
					save = ui.Button("Save", gui.ButtonPositive)
					cancel = ui.Button("Cancel", gui.ButtonNegative)
				})
			})
		})

		p.Color = core.ColorFromArray(rgba)
		p.Hex = hex

		switch {
		case save:
			// Save wins over a same-frame Cancel or close
			engine.MustGetResource[*person.Person](w.Resources).Color = p.Color
			w.Commands().Despawn(e)
			audio.Request(w, audio.SoundConfirm)
			status.Inc(w, Name+".confirmed")
			log.Printf("color: saved %s", p.Color)
		case cancel || !visible:
			w.Commands().Despawn(e)
			audio.Request(w, audio.SoundCancel)
			status.Inc(w, Name+".dismissed")
		default:
			pickers.SetComponent(e, p)
		}
	}
}
