package ui

// CursorIcon is a request to the platform shell to change the pointer
// shape.
type CursorIcon uint8

// Cursor icon constants.
const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorResizeHorizontal
	CursorResizeNwSe
	CursorText
)

// String returns a human-readable name for the cursor icon.
func (c CursorIcon) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorPointingHand:
		return "PointingHand"
	case CursorResizeHorizontal:
		return "ResizeHorizontal"
	case CursorResizeNwSe:
		return "ResizeNwSe"
	case CursorText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Output is the set of user-visible side effects a frame produced, for
// the platform shell to apply. It is taken and reset by EndFrame.
type Output struct {
	// CursorIcon is the pointer shape requested by the widgets this
	// frame.
	CursorIcon CursorIcon

	// CopiedText, when non-empty, should be placed on the clipboard.
	CopiedText string
}
