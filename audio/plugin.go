package audio

import (
	"github.com/lixenwraith/personform/engine"
	"github.com/lixenwraith/personform/parameter"
)

// Plugin declares the SoundRequest stream and the system that plays requests
type Plugin struct {
	Player Player // nil plays nothing
}

// Build implements engine.Plugin
func (p Plugin) Build(app *engine.App) {
	player := p.Player
	if player == nil {
		player = Silent{}
	}

	requests := engine.AddEvent[SoundRequest](app.World)
	reader := requests.Reader()

	app.AddSystem(engine.PhaseUpdate, &engine.SystemFunc{
		Label: "audio.feedback",
		Order: parameter.PriorityFeedback,
		RunIf: func() bool { return !reader.IsEmpty() },
		Run: func() {
			for _, req := range reader.Read() {
				player.Play(req.Sound)
			}
		},
	})
}

// Request sends a sound request if the feedback stream is declared
func Request(w *engine.World, s Sound) {
	if requests, ok := engine.LookupEvents[SoundRequest](w); ok {
		requests.Send(SoundRequest{Sound: s})
	}
}
