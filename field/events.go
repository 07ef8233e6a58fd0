package field

import "github.com/lixenwraith/personform/picker"

// Trigger payloads, one per field
type (
	ChangeNameEvent     struct{}
	GrowOlderEvent      struct{}
	ChangeLocationEvent struct{}
	ChangeCounterEvent  struct {
		Counter uint32 // Counter value when the dialog was requested
	}
)

// AppEvent is the aggregator: one variant per field, in declaration order
// ChangeName, GrowOlder, ChangeLocation, OpenColorPicker, ChangeCounter
type AppEvent interface {
	isAppEvent()
}

type ChangeName struct{ ChangeNameEvent }
type GrowOlder struct{ GrowOlderEvent }
type ChangeLocation struct{ ChangeLocationEvent }
type OpenColorPicker struct{ picker.OpenEvent }
type ChangeCounter struct{ ChangeCounterEvent }

func (ChangeName) isAppEvent()      {}
func (GrowOlder) isAppEvent()       {}
func (ChangeLocation) isAppEvent()  {}
func (OpenColorPicker) isAppEvent() {}
func (ChangeCounter) isAppEvent()   {}
