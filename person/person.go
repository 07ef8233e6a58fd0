// Package person holds the single record edited by the form.
package person

import "github.com/lixenwraith/personform/core"

// Person is the process-wide record shown by the form
// Registered as a *Person resource; only field handlers and the picker mutate it
type Person struct {
	Name     string
	Age      uint32
	Location string
	Color    core.Color
	Counter  uint32
}

// New returns an empty record: blank text, zero numbers, opaque black
func New() *Person {
	return &Person{Color: core.Black}
}

// Snapshot returns a copy for read-only consumers
func (p *Person) Snapshot() Person {
	return *p
}
