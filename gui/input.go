package gui

import "github.com/gdamore/tcell/v2"

// Translate converts a tcell event into an Input
// Returns false for events the GUI does not use
func Translate(ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		shift := ev.Modifiers()&tcell.ModShift != 0
		switch ev.Key() {
		case tcell.KeyRune:
			return Input{Key: KeyRune, Rune: ev.Rune()}, true
		case tcell.KeyEnter:
			return Input{Key: KeyEnter}, true
		case tcell.KeyEscape:
			return Input{Key: KeyEscape}, true
		case tcell.KeyTab:
			return Input{Key: KeyTab}, true
		case tcell.KeyBacktab:
			return Input{Key: KeyBacktab}, true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Input{Key: KeyBackspace}, true
		case tcell.KeyLeft:
			return Input{Key: KeyLeft, Shift: shift}, true
		case tcell.KeyRight:
			return Input{Key: KeyRight, Shift: shift}, true
		case tcell.KeyUp:
			return Input{Key: KeyUp}, true
		case tcell.KeyDown:
			return Input{Key: KeyDown}, true
		case tcell.KeyCtrlU:
			return Input{Key: KeyClearLine}, true
		case tcell.KeyCtrlC, tcell.KeyCtrlQ:
			return Input{Key: KeyQuit}, true
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return Input{}, false
		}
		x, y := ev.Position()
		return Input{Click: true, X: x, Y: y}, true
	case *tcell.EventResize:
		return Input{Resize: true}, true
	}
	return Input{}, false
}
