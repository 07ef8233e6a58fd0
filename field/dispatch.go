package field

import (
	"fmt"

	"github.com/lixenwraith/personform/engine"
	"github.com/lixenwraith/personform/picker"
)

// AggregatorName is the registry name of the AppEvent stream
const AggregatorName = "app"

// dispatch forwards one aggregator event to its field's trigger stream
func dispatch(w *engine.World, ev AppEvent) {
	switch v := ev.(type) {
	case ChangeName:
		engine.Events[ChangeNameEvent](w).Send(v.ChangeNameEvent)
	case GrowOlder:
		engine.Events[GrowOlderEvent](w).Send(v.GrowOlderEvent)
	case ChangeLocation:
		engine.Events[ChangeLocationEvent](w).Send(v.ChangeLocationEvent)
	case OpenColorPicker:
		engine.Events[picker.OpenEvent](w).Send(v.OpenEvent)
	case ChangeCounter:
		engine.Events[ChangeCounterEvent](w).Send(v.ChangeCounterEvent)
	default:
		panic(fmt.Sprintf("unhandled app event %T", ev))
	}
}

// Emit sends an aggregator event; the dispatcher forwards it next Update phase
func Emit(w *engine.World, ev AppEvent) {
	engine.Events[AppEvent](w).Send(ev)
}
