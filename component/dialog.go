package component

// DialogWindow is the modal entity of a dialog field
// E is the field's trigger event, so each field gets its own component type
type DialogWindow[E any] struct {
	Event E      // Originating trigger payload
	Input string // Current filtered input buffer
}
