package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/personform/core"
)

// Palette defines the fixed colors of every window
type Palette struct {
	Bg         core.RGB
	FrameBg    core.RGB
	Border     core.RGB
	Text       core.RGB
	Heading    core.RGB
	Caption    core.RGB
	Mono       core.RGB
	Field      core.RGB
	FieldFocus core.RGB
	Plain      core.RGB
	Positive   core.RGB
	Negative   core.RGB
	ButtonText core.RGB
}

// DefaultPalette returns the dark palette used by the editor
func DefaultPalette() Palette {
	return Palette{
		Bg:         core.RGB{R: 27, G: 27, B: 32},
		FrameBg:    core.RGB{R: 18, G: 16, B: 22},
		Border:     core.RGB{R: 45, G: 40, B: 50},
		Text:       core.RGB{R: 220, G: 220, B: 220},
		Heading:    core.RGB{R: 255, G: 255, B: 255},
		Caption:    core.RGB{R: 180, G: 180, B: 180},
		Mono:       core.RGB{R: 200, G: 200, B: 200},
		Field:      core.RGB{R: 40, G: 38, B: 48},
		FieldFocus: core.RGB{R: 60, G: 58, B: 76},
		Plain:      core.RGB{R: 60, G: 60, B: 70},
		Positive:   core.RGB{R: 70, G: 140, B: 70},
		Negative:   core.RGB{R: 200, G: 50, B: 70},
		ButtonText: core.RGB{R: 255, G: 255, B: 255},
	}
}

func color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}
