package parameter

// Person window
const (
	FormWindowID = "Person Window"
	FormTitle    = "Person"
	FormWidth    = 50 // Inner cells, scaled from a 500px window
	FormHeight   = 19
)

// Dialogs
const (
	// PickerMinWidth is the picker's minimum inner width, scaled from 450px
	PickerMinWidth = 45
	PickerWindowID = "ColorPicker"
	PickerTitle    = "Change Color"
	PickerBand     = "What is your color?"
	PickerCaption  = "Who you is~"
)
