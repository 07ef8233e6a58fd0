package gui

import "github.com/lixenwraith/personform/engine"

// FromWorld returns the GUI context of the current frame, if any
func FromWorld(w *engine.World) (Context, bool) {
	res, ok := engine.GetResource[*Resource](w.Resources)
	if !ok || res == nil || res.Ctx == nil {
		return nil, false
	}
	return res.Ctx, true
}
