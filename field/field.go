// Package field declares the Person fields on the event kernel and the aggregator that feeds them.
package field

import (
	"crypto/rand"
	"log"
	"math"
	mrand "math/rand/v2"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lixenwraith/personform/dialog"
	"github.com/lixenwraith/personform/engine"
	"github.com/lixenwraith/personform/event"
	"github.com/lixenwraith/personform/person"
	"github.com/lixenwraith/personform/picker"
)

// Descriptors of the dialog fields
var (
	Name = event.Descriptor[ChangeNameEvent]{
		Name: "name",
		Dialog: dialog.Config{
			Title:          "Name",
			InputType:      dialog.InputText,
			PositiveAction: "Change",
			NegativeAction: "Cancel",
		},
	}
	Location = event.Descriptor[ChangeLocationEvent]{
		Name: "location",
		Dialog: dialog.Config{
			Title:          "Location",
			InputType:      dialog.InputText,
			PositiveAction: "Change",
			NegativeAction: "Cancel",
		},
	}
	Counter = event.Descriptor[ChangeCounterEvent]{
		Name: "counter",
		Dialog: dialog.Config{
			Title:          "This will be added to some random",
			InputType:      dialog.InputNumber,
			PositiveAction: "Randomize!",
			NegativeAction: "Cancel",
			Validate:       validateCounter,
		},
	}
)

// AgeName is the registry name of the age field
const AgeName = "age"

// Roll returns an integer in [1, 100)
type Roll func() uint32

// RandomRoll draws from a fresh generator seeded from the system entropy source
func RandomRoll() uint32 {
	var seed [32]byte
	_, _ = rand.Read(seed[:]) // Never fails since Go 1.24
	r := mrand.New(mrand.NewChaCha8(seed))
	return 1 + r.Uint32N(99)
}

// Plugin declares the aggregator and the five Person fields
type Plugin struct {
	Roll Roll // nil uses RandomRoll
}

// Build implements engine.Plugin
func (p Plugin) Build(app *engine.App) {
	roll := p.Roll
	if roll == nil {
		roll = RandomRoll
	}

	event.DeclareAggregator(app, AggregatorName, dispatch)

	event.DeclareDialogField(app, Name, func(s *person.Person, r event.Result[ChangeNameEvent]) {
		s.Name = r.Result
	})
	event.DeclareEvent(app, AgeName, func(s *person.Person, _ GrowOlderEvent) {
		if s.Age < math.MaxUint32 {
			s.Age++
		}
	})
	event.DeclareDialogField(app, Location, func(s *person.Person, r event.Result[ChangeLocationEvent]) {
		s.Location = r.Result
	})
	app.AddPlugins(picker.Plugin{})
	event.DeclareDialogField(app, Counter, func(s *person.Person, r event.Result[ChangeCounterEvent]) {
		n, err := parseCounter(r.Result)
		if err != nil {
			// Validate already refused this input in the dialog
			log.Printf("counter: %v", err)
			return
		}
		s.Counter = saturatingSum(r.Event.Counter, roll(), n)
	})
}

func validateCounter(s string) error {
	_, err := parseCounter(s)
	return err
}

func parseCounter(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "counter input %q", s)
	}
	return uint32(n), nil
}

func saturatingSum(vals ...uint32) uint32 {
	var sum uint64
	for _, v := range vals {
		sum += uint64(v)
	}
	if sum > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(sum)
}
