package ui

// RawInput is what the platform shell captured since the last frame.
// It carries no derived state; BeginFrame merges it with the previous
// frame's InputState to produce edges, deltas and double-click timing.
type RawInput struct {
	// MouseDown is true while the primary button is held.
	MouseDown bool

	// MousePos is the pointer position in points. Valid only when
	// MousePresent is true (the pointer may have left the window).
	MousePos     Point
	MousePresent bool

	// Scroll is the scroll delta in points since the last frame.
	Scroll Vec2

	// ScreenSize is the drawable area in points.
	ScreenSize Vec2

	// PixelsPerPoint is the HiDPI scale factor. Zero means "unchanged";
	// the first frame falls back to 1.
	PixelsPerPoint float64

	// Time is the shell's monotonic clock in seconds.
	Time float64

	// Events holds text input and clipboard events captured this frame.
	Events []Event

	// SecondsSinceMidnight is wall-clock seconds, for widgets that want
	// to animate on real time. Optional.
	SecondsSinceMidnight float64
}

// Event is a non-pointer input event.
type Event interface {
	inputEvent()
}

// TextEvent is typed text.
type TextEvent struct {
	Text string
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

func (TextEvent) inputEvent() {}
func (KeyEvent) inputEvent()  {}

// Key identifies a non-text key.
type Key uint8

// Key constants.
const (
	KeyEscape Key = iota
	KeyTab
	KeyBackspace
	KeyReturn
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
)

// Double-click detection: two release edges within this many seconds and
// this many points of each other count as a double click.
const (
	doubleClickSeconds  = 0.3
	doubleClickDistance = 4.0
)

// MouseState is the derived pointer state for one frame. It is frozen at
// BeginFrame and never mutated during the frame.
type MouseState struct {
	// Down is true while the primary button is held.
	Down bool

	// Pressed is the press edge: the button went down this frame.
	Pressed bool

	// Released is the release edge: the button went up this frame.
	Released bool

	// DoubleClick is true when this frame's release completed a double
	// click.
	DoubleClick bool

	// Pos is the pointer position; valid only when Present is true.
	Pos     Point
	Present bool

	// Delta is the pointer movement since the last frame, zero when the
	// pointer was absent in either frame.
	Delta Vec2

	// Velocity is the pointer speed in points per second, derived from
	// Delta and the frame time.
	Velocity Vec2

	// lastClickTime and lastClickPos remember the previous release edge
	// for double-click detection.
	lastClickTime float64
	lastClickPos  Point
}

// beginFrame derives the next mouse state from the previous one plus a
// new raw sample. dt is the frame time used for velocity.
func (m MouseState) beginFrame(raw *RawInput, time, dt float64) MouseState {
	next := MouseState{
		Down:          raw.MouseDown && raw.MousePresent,
		Pos:           raw.MousePos,
		Present:       raw.MousePresent,
		lastClickTime: m.lastClickTime,
		lastClickPos:  m.lastClickPos,
	}
	next.Pressed = next.Down && !m.Down
	next.Released = !next.Down && m.Down

	if next.Present && m.Present {
		next.Delta = next.Pos.Sub(m.Pos)
		if dt > 0 {
			next.Velocity = next.Delta.Mul(1 / dt)
		}
	}

	if next.Released && next.Present {
		sinceLast := time - m.lastClickTime
		if sinceLast < doubleClickSeconds &&
			next.Pos.Distance(m.lastClickPos) < doubleClickDistance {
			next.DoubleClick = true
			// Swallow the click so a triple click does not read as two
			// doubles.
			next.lastClickTime = -1e9
		} else {
			next.lastClickTime = time
			next.lastClickPos = next.Pos
		}
	}

	return next
}

// InputState is the immutable per-frame input snapshot. All widget code
// running during a frame observes the same InputState.
type InputState struct {
	// Raw is the unprocessed platform sample this state was derived from.
	Raw RawInput

	// Mouse is the derived pointer state.
	Mouse MouseState

	// Scroll is the scroll delta this frame.
	Scroll Vec2

	// ScreenSize is the drawable area in points.
	ScreenSize Vec2

	// PixelsPerPoint is the HiDPI scale factor.
	PixelsPerPoint float64

	// Time is the shell clock at BeginFrame, in seconds.
	Time float64

	// DeltaTime is the seconds elapsed since the previous frame.
	DeltaTime float64
}

// beginFrame merges the previous snapshot with new raw input, producing
// the snapshot for the next frame.
func (s InputState) beginFrame(raw RawInput) InputState {
	ppp := raw.PixelsPerPoint
	if ppp <= 0 {
		ppp = s.PixelsPerPoint
	}
	if ppp <= 0 {
		ppp = 1
	}

	dt := raw.Time - s.Time
	if dt <= 0 {
		// First frame, or a clock that went backwards.
		dt = 1.0 / 60.0
	}

	return InputState{
		Raw:            raw,
		Mouse:          s.Mouse.beginFrame(&raw, raw.Time, dt),
		Scroll:         raw.Scroll,
		ScreenSize:     raw.ScreenSize,
		PixelsPerPoint: ppp,
		Time:           raw.Time,
		DeltaTime:      dt,
	}
}

// ScreenRect returns the full drawable area as a rectangle at the origin.
func (s *InputState) ScreenRect() Rect {
	return RectFromMinSize(Point{}, s.ScreenSize)
}
