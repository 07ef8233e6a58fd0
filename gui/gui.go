// Package gui is a small immediate-mode GUI: systems describe windows and widgets
// every frame, widgets report interaction through their return values.
package gui

import "github.com/lixenwraith/personform/core"

// Anchor positions a window relative to the viewport
type Anchor uint8

const (
	// AnchorNone places the window at WindowOptions.X/Y
	AnchorNone Anchor = iota
	// AnchorCenter centers the window in the viewport
	AnchorCenter
)

// ButtonKind selects the button palette
type ButtonKind uint8

const (
	ButtonPlain ButtonKind = iota
	ButtonPositive
	ButtonNegative
)

// WindowOptions configures a window for the current frame
type WindowOptions struct {
	ID       string // Stable identity across frames, defaults to Title
	Instance uint64 // Distinguishes successive windows sharing an ID; a change resets focus
	Title    string
	Anchor   Anchor
	X, Y     int // Default position when Anchor is AnchorNone
	Width    int // Fixed inner width in cells, 0 fits content
	Height   int // Fixed inner height in rows, 0 fits content
	MinWidth int

	TitleBar    bool
	Closable    bool // Host close affordance (Esc) enabled
	Resizable   bool
	Collapsible bool
	Foreground  bool // Painted above non-foreground windows
}

// Key identifies a non-mouse input
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyClearLine
	KeyQuit
)

// Input is one backend-neutral input event
type Input struct {
	Key   Key
	Rune  rune
	Shift bool

	Click bool // Primary button press at X, Y
	X, Y  int

	Resize bool
}

// Context is the immediate-mode entry point available during the GUI pass
type Context interface {
	// Window draws a window and runs body to lay out its widgets.
	// Returns false when the user closed it through the host affordance this frame.
	Window(opts WindowOptions, body func(ui UI)) bool
}

// UI lays out widgets inside a window, top to bottom
type UI interface {
	Heading(text string)
	Label(text string)
	Caption(text string)
	Monospace(text string)
	Space(rows int)

	// TextEdit edits a single line in place, returns true if the text changed
	TextEdit(buf *string) bool
	// Button returns true when clicked this frame
	Button(label string, kind ButtonKind) bool
	// ColorEdit edits unmultiplied RGBA channels in [0, 1] in place, returns true on change
	ColorEdit(rgba *[4]float32) bool
	// Swatch shows a block of the given linear color
	Swatch(c core.Color)

	// Horizontal lays out the widgets of fn on one row
	Horizontal(fn func(ui UI))
	// Frame groups widgets with an indented, filled background
	Frame(fn func(ui UI))
}

// Resource exposes the GUI context to systems for the current frame
// Ctx is nil when no GUI is available; render systems skip the frame then
type Resource struct {
	Ctx Context
}

// windowID resolves the stable identity of a window
func windowID(opts WindowOptions) string {
	if opts.ID != "" {
		return opts.ID
	}
	return opts.Title
}
