// Package dialog draws the text/number modal used by dialog fields.
package dialog

import (
	"github.com/lixenwraith/personform/gui"
)

// InputType selects how the editor's text is filtered
type InputType uint8

const (
	InputText InputType = iota
	InputNumber
)

// String returns the input type name
func (t InputType) String() string {
	if t == InputNumber {
		return "NUMBER"
	}
	return "TEXT"
}

// Config is the immutable dialog part of a field descriptor
type Config struct {
	Title          string
	InputType      InputType
	PositiveAction string
	NegativeAction string

	// Validate, when set, must accept the filtered input before a confirm is honored
	Validate func(string) error
}

// Outcome is the result of one dialog frame
type Outcome uint8

const (
	Pending   Outcome = iota // Still open
	Confirmed                // Positive action with acceptable input
	Dismissed                // Negative action or host close
	Rejected                 // Positive action refused by Validate, stays open
)

// Filter applies the input type to the editor text
// NUMBER keeps ASCII digits, '.' and '-' only; it is idempotent
func Filter(t InputType, s string) string {
	if t != InputNumber {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			out = append(out, c)
		}
	}
	return string(out)
}

// Show draws the dialog for one frame
// instance identifies this opening of the dialog; a new instance starts with the editor focused.
// input holds the window's buffer; it is replaced by the filtered editor text.
// The error is non-nil only for Rejected.
func Show(ctx gui.Context, id string, instance uint64, cfg Config, input *string) (Outcome, error) {
	positive, negative := false, false

	open := ctx.Window(gui.WindowOptions{
		ID:         id,
		Instance:   instance,
		Title:      cfg.Title,
		Anchor:     gui.AnchorCenter,
		Closable:   true,
		Foreground: true,
	}, func(ui gui.UI) {
		ui.Frame(func(ui gui.UI) {
			ui.Heading(cfg.Title)
			ui.Space(1)

			text := *input
			ui.TextEdit(&text)
			*input = Filter(cfg.InputType, text)

			ui.Space(1)
			ui.Horizontal(func(ui gui.UI) {
				positive = ui.Button(cfg.PositiveAction, gui.ButtonPositive)
				negative = ui.Button(cfg.NegativeAction, gui.ButtonNegative)
			})
		})
	})

	if positive && *input != "" {
		if cfg.Validate != nil {
			if err := cfg.Validate(*input); err != nil {
				if negative || !open {
					return Dismissed, nil
				}
				return Rejected, err
			}
		}
		return Confirmed, nil
	}
	if negative || !open {
		return Dismissed, nil
	}
	return Pending, nil
}
