package gui

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type point struct {
	x, y int
}

// cell is one painted grapheme
type cell struct {
	x, y  int
	main  rune
	comb  []rune
	style tcell.Style
}

// layer holds the painted cells of one window for the current frame
type layer struct {
	id     string
	fg     bool
	bounds rect
	cells  []cell
}

type winRect struct {
	id     string
	bounds rect
}

// Terminal is the tcell-backed Context
//
// Frame protocol:
//  1. BeginFrame with the inputs gathered since the last frame
//  2. systems call Window during the GUI pass
//  3. EndFrame paints background windows, then foreground windows, and shows the screen
//
// Keyboard input goes to the top window of the previous frame.
// Mouse clicks go to the top window of the previous frame that contains the point,
// and are hit-tested against the widget rectangles of the previous frame.
type Terminal struct {
	screen  tcell.Screen
	palette Palette
	width   int
	height  int

	inputs    []Input
	keyTarget string

	focus     map[string]focusState
	drawn     map[string]bool
	rects     map[string]rect
	nextRects map[string]rect
	winRects  []winRect

	layers []*layer
	cursor *point
}

// focusState is the focused widget index of one window instance
type focusState struct {
	instance uint64
	index    int
}

// NewTerminal wraps an initialized tcell screen
func NewTerminal(screen tcell.Screen, palette Palette) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen:    screen,
		palette:   palette,
		width:     w,
		height:    h,
		focus:     make(map[string]focusState),
		drawn:     make(map[string]bool),
		rects:     make(map[string]rect),
		nextRects: make(map[string]rect),
	}
}

// Size returns the viewport size in cells
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// KeyTarget returns the window that receives keyboard input this frame
func (t *Terminal) KeyTarget() string {
	return t.keyTarget
}

// BeginFrame starts a frame with the inputs received since the previous one
func (t *Terminal) BeginFrame(inputs []Input) {
	for _, in := range inputs {
		if in.Resize {
			t.screen.Sync()
			break
		}
	}
	t.width, t.height = t.screen.Size()
	t.inputs = inputs
	t.layers = t.layers[:0]
	t.nextRects = make(map[string]rect, len(t.rects))
	t.cursor = nil
	clear(t.drawn)
}

// EndFrame paints all windows drawn this frame and presents the screen
func (t *Terminal) EndFrame() {
	sort.SliceStable(t.layers, func(i, j int) bool {
		return !t.layers[i].fg && t.layers[j].fg
	})

	t.screen.Clear()
	t.winRects = t.winRects[:0]
	for _, l := range t.layers {
		for _, c := range l.cells {
			if c.x < 0 || c.y < 0 || c.x >= t.width || c.y >= t.height {
				continue
			}
			t.screen.SetContent(c.x, c.y, c.main, c.comb, c.style)
		}
		t.winRects = append(t.winRects, winRect{id: l.id, bounds: l.bounds})
	}

	if n := len(t.layers); n > 0 {
		t.keyTarget = t.layers[n-1].id
	} else {
		t.keyTarget = ""
	}
	t.rects = t.nextRects

	// A window skipped for a frame starts over with the first widget focused
	for id := range t.focus {
		if !t.drawn[id] {
			delete(t.focus, id)
		}
	}

	if t.cursor != nil {
		t.screen.ShowCursor(t.cursor.x, t.cursor.y)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

// clickOwner returns the top window of the previous frame containing the point
func (t *Terminal) clickOwner(x, y int) string {
	for i := len(t.winRects) - 1; i >= 0; i-- {
		if t.winRects[i].bounds.contains(x, y) {
			return t.winRects[i].id
		}
	}
	return ""
}

// Window implements Context
func (t *Terminal) Window(opts WindowOptions, body func(ui UI)) bool {
	id := windowID(opts)
	target := id == t.keyTarget

	t.drawn[id] = true

	u := &termUI{
		t:       t,
		win:     id,
		palette: t.palette,
	}
	if fs, ok := t.focus[id]; ok && fs.instance == opts.Instance {
		u.focus = fs.index
	}
	for i := range t.inputs {
		in := t.inputs[i]
		switch {
		case in.Click:
			if t.clickOwner(in.X, in.Y) == id {
				u.clicks = append(u.clicks, &pending{in: in})
			}
		case in.Resize:
		case target:
			u.keys = append(u.keys, &pending{in: in})
		}
	}

	closed := false
	if opts.Closable {
		if _, ok := u.takeKey(func(in Input) bool { return in.Key == KeyEscape }); ok {
			closed = true
		}
	}

	body(u)
	u.endRow()

	// Focus traversal runs after widgets had their chance at the keys
	for _, k := range u.keys {
		if k.used || u.count == 0 {
			continue
		}
		switch k.in.Key {
		case KeyTab:
			u.focus = (u.focus + 1) % u.count
			k.used = true
		case KeyBacktab:
			u.focus = (u.focus - 1 + u.count) % u.count
			k.used = true
		}
	}
	fs := focusState{instance: opts.Instance}
	if u.count > 0 {
		fs.index = u.focus % u.count
	}
	t.focus[id] = fs

	t.layout(opts, id, target, u.rows)
	return !closed
}

// layout sizes, positions and paints a window into a new layer
func (t *Terminal) layout(opts WindowOptions, id string, target bool, rows []*row) {
	inner := opts.Width
	if inner == 0 {
		for _, r := range rows {
			inner = max(inner, r.width())
		}
	}
	inner = max(inner, opts.MinWidth, len([]rune(opts.Title))+2)
	inner = min(inner, max(t.width-4, 1))

	height := opts.Height
	if height == 0 {
		height = len(rows)
	}

	bw, bh := inner+4, height+2
	x, y := opts.X, opts.Y
	if opts.Anchor == AnchorCenter {
		x = (t.width - bw) / 2
		y = (t.height - bh) / 2
	}
	x, y = max(x, 0), max(y, 0)

	l := &layer{id: id, fg: opts.Foreground, bounds: rect{x: x, y: y, w: bw, h: bh}}
	bg := style(t.palette.Text, t.palette.Bg)
	border := style(t.palette.Border, t.palette.Bg)

	for yy := y; yy < y+bh; yy++ {
		for xx := x; xx < x+bw; xx++ {
			r := ' '
			switch {
			case yy == y && xx == x:
				r = '┌'
			case yy == y && xx == x+bw-1:
				r = '┐'
			case yy == y+bh-1 && xx == x:
				r = '└'
			case yy == y+bh-1 && xx == x+bw-1:
				r = '┘'
			case yy == y || yy == y+bh-1:
				r = '─'
			case xx == x || xx == x+bw-1:
				r = '│'
			}
			st := bg
			if r != ' ' {
				st = border
			}
			l.cells = append(l.cells, cell{x: xx, y: yy, main: r, style: st})
		}
	}
	if opts.TitleBar && opts.Title != "" {
		l.put(x+2, y, " "+opts.Title+" ", style(t.palette.Heading, t.palette.Bg).Bold(true))
	}

	for i, r := range rows {
		if i >= height {
			break
		}
		ry := y + 1 + i
		if r.framed {
			fill := style(t.palette.Text, t.palette.FrameBg)
			for xx := x + 1; xx < x+bw-1; xx++ {
				l.cells = append(l.cells, cell{x: xx, y: ry, main: ' ', style: fill})
			}
		}
		sx := x + 2 + r.indent*2
		for j, seg := range r.segs {
			if j > 0 {
				sx++
			}
			w := l.put(sx, ry, seg.text, seg.style)
			if seg.id != "" {
				t.nextRects[seg.id] = rect{x: sx, y: ry, w: w, h: 1}
			}
			if seg.cursor >= 0 && target {
				t.cursor = &point{x: sx + seg.cursor, y: ry}
			}
			sx += w
		}
	}

	t.layers = append(t.layers, l)
}

// put paints a string grapheme by grapheme and returns its width in cells
func (l *layer) put(x, y int, s string, st tcell.Style) int {
	start := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		l.cells = append(l.cells, cell{x: x, y: y, main: rs[0], comb: rs[1:], style: st})
		x += max(g.Width(), 1)
	}
	return x - start
}
