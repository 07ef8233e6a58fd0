package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/personform/core"
)

const (
	textFieldWidth = 30
	sliderWidth    = 24
	swatchWidth    = 8
	channelStep    = 1.0 / 255
	channelCoarse  = 16.0 / 255
)

type segment struct {
	text   string
	style  tcell.Style
	id     string // Widget identity for hit testing, empty for static text
	cursor int    // Cursor cell offset when the text field is focused, -1 otherwise
}

type row struct {
	segs   []segment
	indent int
	framed bool
}

func (r *row) width() int {
	w := r.indent * 2
	for i, s := range r.segs {
		if i > 0 {
			w++
		}
		w += runewidth.StringWidth(s.text)
	}
	return w
}

type pending struct {
	in   Input
	used bool
}

// termUI implements UI for one window of one frame
type termUI struct {
	t       *Terminal
	win     string
	palette Palette

	keys   []*pending
	clicks []*pending

	focus int // Focused widget index
	count int // Focusable widgets laid out so far

	rows   []*row
	hrow   *row // Open horizontal row
	indent int
	framed int
}

func (u *termUI) takeKey(match func(Input) bool) (Input, bool) {
	for _, k := range u.keys {
		if !k.used && match(k.in) {
			k.used = true
			return k.in, true
		}
	}
	return Input{}, false
}

// focusable registers the next interactive widget
// A click inside its previous-frame rectangle focuses it and is returned
func (u *termUI) focusable() (id string, focused bool, click *Input) {
	idx := u.count
	u.count++
	id = fmt.Sprintf("%s#%d", u.win, idx)

	if r, ok := u.t.rects[id]; ok {
		for _, c := range u.clicks {
			if !c.used && r.contains(c.in.X, c.in.Y) {
				c.used = true
				u.focus = idx
				in := c.in
				click = &in
				break
			}
		}
	}
	return id, idx == u.focus, click
}

func (u *termUI) newRow() *row {
	return &row{indent: u.indent, framed: u.framed > 0}
}

// emit adds a segment to the open horizontal row or to a row of its own
func (u *termUI) emit(seg segment) {
	if u.hrow != nil {
		u.hrow.segs = append(u.hrow.segs, seg)
		return
	}
	r := u.newRow()
	r.segs = append(r.segs, seg)
	u.rows = append(u.rows, r)
}

// emitRow always produces a full row, splitting an open horizontal row
func (u *termUI) emitRow(segs ...segment) {
	reopen := u.hrow != nil
	u.endRow()
	r := u.newRow()
	r.segs = segs
	u.rows = append(u.rows, r)
	if reopen {
		u.hrow = u.newRow()
	}
}

func (u *termUI) endRow() {
	if u.hrow != nil {
		if len(u.hrow.segs) > 0 {
			u.rows = append(u.rows, u.hrow)
		}
		u.hrow = nil
	}
}

func (u *termUI) bg() core.RGB {
	if u.framed > 0 {
		return u.palette.FrameBg
	}
	return u.palette.Bg
}

func static(text string, st tcell.Style) segment {
	return segment{text: text, style: st, cursor: -1}
}

func (u *termUI) Heading(text string) {
	u.emit(static(text, style(u.palette.Heading, u.bg()).Bold(true)))
}

func (u *termUI) Label(text string) {
	u.emit(static(text, style(u.palette.Text, u.bg())))
}

func (u *termUI) Caption(text string) {
	u.emit(static(text, style(u.palette.Caption, u.bg()).Dim(true)))
}

func (u *termUI) Monospace(text string) {
	u.emit(static(text, style(u.palette.Mono, u.palette.Field)))
}

func (u *termUI) Space(rows int) {
	u.endRow()
	for i := 0; i < rows; i++ {
		u.rows = append(u.rows, u.newRow())
	}
}

func (u *termUI) TextEdit(buf *string) bool {
	id, focused, _ := u.focusable()
	changed := false

	if focused {
	keys:
		for {
			in, ok := u.takeKey(func(in Input) bool {
				switch in.Key {
				case KeyRune, KeyBackspace, KeyClearLine, KeyEnter:
					return true
				}
				return false
			})
			if !ok {
				break
			}
			switch in.Key {
			case KeyRune:
				*buf += string(in.Rune)
				changed = true
			case KeyBackspace:
				if *buf != "" {
					*buf = dropLastGrapheme(*buf)
					changed = true
				}
			case KeyClearLine:
				if *buf != "" {
					*buf = ""
					changed = true
				}
			case KeyEnter:
				u.focus++
				break keys
			}
		}
	}

	shown := *buf
	if runewidth.StringWidth(shown) > textFieldWidth-1 {
		shown = runewidth.TruncateLeft(shown, runewidth.StringWidth(shown)-(textFieldWidth-2), "…")
	}
	cursor := -1
	bg := u.palette.Field
	if focused {
		cursor = runewidth.StringWidth(shown)
		bg = u.palette.FieldFocus
	}
	u.emit(segment{
		text:   runewidth.FillRight(shown, textFieldWidth),
		style:  style(u.palette.Text, bg).Underline(true),
		id:     id,
		cursor: cursor,
	})
	return changed
}

func (u *termUI) Button(label string, kind ButtonKind) bool {
	id, focused, click := u.focusable()
	clicked := click != nil
	if focused && !clicked {
		_, clicked = u.takeKey(func(in Input) bool { return in.Key == KeyEnter })
	}

	bg := u.palette.Plain
	switch kind {
	case ButtonPositive:
		bg = u.palette.Positive
	case ButtonNegative:
		bg = u.palette.Negative
	}
	st := style(u.palette.ButtonText, bg)
	text := " " + label + " "
	if focused {
		st = st.Bold(true).Underline(true)
		text = "[" + label + "]"
	}
	u.emit(segment{text: text, style: st, id: id, cursor: -1})
	return clicked
}

func (u *termUI) ColorEdit(rgba *[4]float32) bool {
	changed := false
	for i, name := range [4]string{"R", "G", "B", "A"} {
		id, focused, click := u.focusable()
		v := rgba[i]

		if click != nil {
			if r, ok := u.t.rects[id]; ok {
				// "X " prefix precedes the bar
				pos := click.X - r.x - 2
				if pos >= 0 && pos < sliderWidth {
					v = float32(pos) / float32(sliderWidth-1)
				}
			}
		}
		if focused {
			for {
				in, ok := u.takeKey(func(in Input) bool { return in.Key == KeyLeft || in.Key == KeyRight })
				if !ok {
					break
				}
				step := float32(channelStep)
				if in.Shift {
					step = channelCoarse
				}
				if in.Key == KeyLeft {
					step = -step
				}
				v += step
			}
		}
		v = min(max(v, 0), 1)
		if v != rgba[i] {
			rgba[i] = v
			changed = true
		}

		filled := int(v*float32(sliderWidth) + 0.5)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
		st := style(u.palette.Text, u.bg())
		if focused {
			st = st.Bold(true)
		}
		u.emitRow(segment{
			text:   fmt.Sprintf("%s %s %.3f", name, bar, v),
			style:  st,
			id:     id,
			cursor: -1,
		})
	}
	return changed
}

func (u *termUI) Swatch(c core.Color) {
	rgb := c.SRGB()
	u.emit(static(strings.Repeat(" ", swatchWidth), tcell.StyleDefault.Background(color(rgb))))
}

func (u *termUI) Horizontal(fn func(ui UI)) {
	u.endRow()
	u.hrow = u.newRow()
	fn(u)
	u.endRow()
}

func (u *termUI) Frame(fn func(ui UI)) {
	u.endRow()
	u.indent++
	u.framed++
	fn(u)
	u.endRow()
	u.framed--
	u.indent--
}

// dropLastGrapheme removes the final user-perceived character
func dropLastGrapheme(s string) string {
	last := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = len(s) - len(rest) - len(cluster)
	}
	return s[:last]
}
