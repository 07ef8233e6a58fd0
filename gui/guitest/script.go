// Package guitest provides a scripted gui.Context for driving GUI systems in tests.
package guitest

import (
	"github.com/lixenwraith/personform/core"
	"github.com/lixenwraith/personform/gui"
)

type actionKind uint8

const (
	actType actionKind = iota
	actClick
	actColor
)

type action struct {
	kind  actionKind
	text  string
	color [4]float32
}

// WindowRecord captures what one window drew during a frame
type WindowRecord struct {
	Options gui.WindowOptions
	Texts   []string // Headings, labels, captions and monospace text in draw order
	Buttons []string
	Edits   []string // TextEdit contents after the frame's actions
}

// Script is a gui.Context whose user interactions are queued by the test
//
// Actions target a window ID and apply to the next frame in which that window is drawn:
// Type replaces the text of the first TextEdit, Click fires the first Button with the label,
// SetColor replaces the channels of the first ColorEdit, Close makes Window return false.
type Script struct {
	actions map[string][]action
	closing map[string]bool
	frame   []*WindowRecord
}

// New creates an empty script
func New() *Script {
	return &Script{
		actions: make(map[string][]action),
		closing: make(map[string]bool),
	}
}

// Type queues text entry into the window's text field
func (s *Script) Type(window, text string) *Script {
	s.actions[window] = append(s.actions[window], action{kind: actType, text: text})
	return s
}

// Click queues a click on the window's button with the given label
func (s *Script) Click(window, label string) *Script {
	s.actions[window] = append(s.actions[window], action{kind: actClick, text: label})
	return s
}

// SetColor queues an edit of the window's color control
func (s *Script) SetColor(window string, rgba [4]float32) *Script {
	s.actions[window] = append(s.actions[window], action{kind: actColor, color: rgba})
	return s
}

// Close queues the host close affordance for the window
func (s *Script) Close(window string) *Script {
	s.closing[window] = true
	return s
}

// BeginFrame discards the records of the previous frame
func (s *Script) BeginFrame() {
	s.frame = s.frame[:0]
}

// Windows returns the IDs drawn since BeginFrame, in draw order
func (s *Script) Windows() []string {
	ids := make([]string, 0, len(s.frame))
	for _, r := range s.frame {
		ids = append(ids, id(r.Options))
	}
	return ids
}

// Record returns what the window drew since BeginFrame
func (s *Script) Record(window string) (*WindowRecord, bool) {
	for _, r := range s.frame {
		if id(r.Options) == window {
			return r, true
		}
	}
	return nil, false
}

// Pending reports whether actions for the window are still queued
func (s *Script) Pending(window string) bool {
	return len(s.actions[window]) > 0 || s.closing[window]
}

// Window implements gui.Context
func (s *Script) Window(opts gui.WindowOptions, body func(ui gui.UI)) bool {
	wid := id(opts)
	rec := &WindowRecord{Options: opts}
	s.frame = append(s.frame, rec)

	u := &scriptUI{rec: rec, actions: s.actions[wid]}
	body(u)
	s.actions[wid] = u.remaining()

	if s.closing[wid] {
		delete(s.closing, wid)
		return false
	}
	return true
}

func id(opts gui.WindowOptions) string {
	if opts.ID != "" {
		return opts.ID
	}
	return opts.Title
}

type scriptUI struct {
	rec     *WindowRecord
	actions []action
	used    []bool
}

// take consumes the first unused action matching kind (and label for clicks)
func (u *scriptUI) take(kind actionKind, label string) (action, bool) {
	if u.used == nil {
		u.used = make([]bool, len(u.actions))
	}
	for i, a := range u.actions {
		if u.used[i] || a.kind != kind {
			continue
		}
		if kind == actClick && a.text != label {
			continue
		}
		u.used[i] = true
		return a, true
	}
	return action{}, false
}

func (u *scriptUI) remaining() []action {
	var rest []action
	for i, a := range u.actions {
		if u.used == nil || !u.used[i] {
			rest = append(rest, a)
		}
	}
	return rest
}

func (u *scriptUI) Heading(text string)   { u.rec.Texts = append(u.rec.Texts, text) }
func (u *scriptUI) Label(text string)     { u.rec.Texts = append(u.rec.Texts, text) }
func (u *scriptUI) Caption(text string)   { u.rec.Texts = append(u.rec.Texts, text) }
func (u *scriptUI) Monospace(text string) { u.rec.Texts = append(u.rec.Texts, text) }
func (u *scriptUI) Space(int)             {}
func (u *scriptUI) Swatch(core.Color)     {}

func (u *scriptUI) TextEdit(buf *string) bool {
	changed := false
	if a, ok := u.take(actType, ""); ok && a.text != *buf {
		*buf = a.text
		changed = true
	}
	u.rec.Edits = append(u.rec.Edits, *buf)
	return changed
}

func (u *scriptUI) Button(label string, _ gui.ButtonKind) bool {
	u.rec.Buttons = append(u.rec.Buttons, label)
	_, ok := u.take(actClick, label)
	return ok
}

func (u *scriptUI) ColorEdit(rgba *[4]float32) bool {
	a, ok := u.take(actColor, "")
	if !ok || a.color == *rgba {
		return false
	}
	*rgba = a.color
	return true
}

func (u *scriptUI) Horizontal(fn func(ui gui.UI)) { fn(u) }
func (u *scriptUI) Frame(fn func(ui gui.UI))      { fn(u) }
