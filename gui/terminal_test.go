package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return NewTerminal(screen, DefaultPalette()), screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestWindowCenteredWithBorder(t *testing.T) {
	term, screen := newTestTerminal(t)

	term.BeginFrame(nil)
	term.Window(WindowOptions{Title: "T", Anchor: AnchorCenter}, func(ui UI) {
		ui.Label("hi")
	})
	term.EndFrame()

	// inner 3, box 7x3 centered in 80x24
	if r := runeAt(screen, 36, 10); r != '┌' {
		t.Errorf("Expected top-left corner at (36,10), got %q", r)
	}
	if r := runeAt(screen, 42, 12); r != '┘' {
		t.Errorf("Expected bottom-right corner at (42,12), got %q", r)
	}
	if r := runeAt(screen, 38, 11); r != 'h' {
		t.Errorf("Expected label at (38,11), got %q", r)
	}
	if term.KeyTarget() != "T" {
		t.Errorf("Expected key target T, got %q", term.KeyTarget())
	}
}

func TestForegroundPaintsLast(t *testing.T) {
	term, screen := newTestTerminal(t)

	term.BeginFrame(nil)
	term.Window(WindowOptions{ID: "top", Anchor: AnchorCenter, Foreground: true}, func(ui UI) {
		ui.Label("o")
	})
	term.Window(WindowOptions{ID: "base", Anchor: AnchorCenter}, func(ui UI) {
		ui.Label("XXXXXXXXXX")
	})
	term.EndFrame()

	if r := runeAt(screen, 39, 11); r != 'o' {
		t.Errorf("Expected foreground label on top, got %q", r)
	}
	if term.KeyTarget() != "top" {
		t.Errorf("Expected foreground window to take keys, got %q", term.KeyTarget())
	}
}

func TestTextEditTyping(t *testing.T) {
	term, _ := newTestTerminal(t)
	buf := ""
	frame := func(inputs ...Input) bool {
		term.BeginFrame(inputs)
		changed := false
		term.Window(WindowOptions{ID: "w"}, func(ui UI) {
			changed = ui.TextEdit(&buf)
		})
		term.EndFrame()
		return changed
	}

	frame(Input{Key: KeyRune, Rune: 'z'}) // no key target yet
	if buf != "" {
		t.Fatalf("Expected keys ignored before the window exists, got %q", buf)
	}

	changed := frame(
		Input{Key: KeyRune, Rune: 'A'},
		Input{Key: KeyRune, Rune: 'd'},
		Input{Key: KeyRune, Rune: 'x'},
		Input{Key: KeyBackspace},
		Input{Key: KeyRune, Rune: 'a'},
	)
	if !changed || buf != "Ada" {
		t.Errorf("Expected Ada changed, got %q %v", buf, changed)
	}

	frame(Input{Key: KeyClearLine})
	if buf != "" {
		t.Errorf("Expected cleared buffer, got %q", buf)
	}
}

func TestEscapeClosesClosableWindow(t *testing.T) {
	term, _ := newTestTerminal(t)
	draw := func(closable bool, inputs ...Input) bool {
		term.BeginFrame(inputs)
		open := term.Window(WindowOptions{ID: "w", Closable: closable}, func(ui UI) {
			ui.Label("x")
		})
		term.EndFrame()
		return open
	}

	draw(true)
	if !draw(false, Input{Key: KeyEscape}) {
		t.Error("Expected non-closable window to stay open")
	}
	if draw(true, Input{Key: KeyEscape}) {
		t.Error("Expected Escape to close the window")
	}
}

func TestButtonFocusAndClick(t *testing.T) {
	term, _ := newTestTerminal(t)
	var a, b bool
	frame := func(inputs ...Input) {
		term.BeginFrame(inputs)
		term.Window(WindowOptions{ID: "w"}, func(ui UI) {
			ui.Horizontal(func(ui UI) {
				a = ui.Button("A", ButtonPositive)
				b = ui.Button("B", ButtonNegative)
			})
		})
		term.EndFrame()
	}

	frame()
	frame(Input{Key: KeyTab})
	frame(Input{Key: KeyEnter})
	if a || !b {
		t.Errorf("Expected Enter to activate the focused second button, got a=%v b=%v", a, b)
	}

	r, ok := term.rects["w#0"]
	if !ok {
		t.Fatal("Expected hit rect for the first button")
	}
	frame(Input{Click: true, X: r.x, Y: r.y})
	if !a || b {
		t.Errorf("Expected click to activate the first button, got a=%v b=%v", a, b)
	}
}

func TestFocusResetsForNewInstance(t *testing.T) {
	term, _ := newTestTerminal(t)
	var a, b bool
	frame := func(instance uint64, inputs ...Input) {
		term.BeginFrame(inputs)
		term.Window(WindowOptions{ID: "w", Instance: instance}, func(ui UI) {
			ui.Horizontal(func(ui UI) {
				a = ui.Button("A", ButtonPositive)
				b = ui.Button("B", ButtonNegative)
			})
		})
		term.EndFrame()
	}

	frame(1)
	frame(1, Input{Key: KeyTab})
	frame(2, Input{Key: KeyEnter})
	if !a || b {
		t.Errorf("Expected a new instance to focus the first button, got a=%v b=%v", a, b)
	}
}

func TestFocusDroppedWhenWindowSkipped(t *testing.T) {
	term, _ := newTestTerminal(t)
	var a, b bool
	frame := func(show bool, inputs ...Input) {
		term.BeginFrame(inputs)
		if show {
			term.Window(WindowOptions{ID: "w"}, func(ui UI) {
				ui.Horizontal(func(ui UI) {
					a = ui.Button("A", ButtonPositive)
					b = ui.Button("B", ButtonNegative)
				})
			})
		}
		term.EndFrame()
	}

	frame(true)
	frame(true, Input{Key: KeyTab})
	frame(false)
	if _, ok := term.focus["w"]; ok {
		t.Fatal("Expected focus forgotten for a window not drawn")
	}
	frame(true)
	frame(true, Input{Key: KeyEnter})
	if !a || b {
		t.Errorf("Expected the reopened window to focus the first button, got a=%v b=%v", a, b)
	}
}

func TestColorEditKeys(t *testing.T) {
	term, _ := newTestTerminal(t)
	rgba := [4]float32{0, 0.5, 1, 1}
	frame := func(inputs ...Input) bool {
		term.BeginFrame(inputs)
		changed := false
		term.Window(WindowOptions{ID: "c"}, func(ui UI) {
			changed = ui.ColorEdit(&rgba)
		})
		term.EndFrame()
		return changed
	}

	frame()
	if !frame(Input{Key: KeyRight, Shift: true}) {
		t.Fatal("Expected change on Right")
	}
	if want := float32(channelCoarse); rgba[0] != want {
		t.Errorf("Expected red %v, got %v", want, rgba[0])
	}

	// Left at zero clamps
	rgba[0] = 0
	if frame(Input{Key: KeyLeft}) {
		t.Error("Expected no change when clamped at zero")
	}
}

func TestDropLastGrapheme(t *testing.T) {
	tests := []struct{ in, want string }{
		{"abc", "ab"},
		{"a", ""},
		{"ce\u0301", "c"},
		{"hi\U0001F44D\U0001F3FD", "hi"},
		{"\U0001F1EB\U0001F1F7\U0001F1E9\U0001F1EA", "\U0001F1EB\U0001F1F7"},
	}
	for _, tt := range tests {
		if got := dropLastGrapheme(tt.in); got != tt.want {
			t.Errorf("dropLastGrapheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
