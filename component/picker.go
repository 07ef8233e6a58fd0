package component

import "github.com/lixenwraith/personform/core"

// ColorPicker is the modal entity of the color field
type ColorPicker struct {
	Title string
	Color core.Color // Tracks the edit control every frame
	Hex   string     // Hex entry buffer
}
