package core

// MinSwipeDistance is the default gesture length, in distance units, a swipe
// must exceed to count as a move.
const MinSwipeDistance = 30

// DetectSwipe maps a gesture displacement to a directional action.
// The dominant axis wins; ties go to the vertical axis. Gestures whose
// dominant component does not exceed minDistance are taps and yield false.
func DetectSwipe(dx, dy, minDistance int) (Action, bool) {
	absDx, absDy := Abs(dx), Abs(dy)
	if Max(absDx, absDy) <= minDistance {
		return ActionNone, false
	}

	if absDx > absDy {
		if dx > 0 {
			return ActionRight, true
		}
		return ActionLeft, true
	}
	if dy > 0 {
		return ActionDown, true
	}
	return ActionUp, true
}

// SwipeTracker turns pointer press/release pairs into swipe actions.
// Terminal cells are not square, so each axis has its own scale converting
// cells to distance units.
type SwipeTracker struct {
	MinDistance int // Threshold in distance units
	ScaleX      int // Distance units per column
	ScaleY      int // Distance units per row

	start  Point
	active bool
}

// NewSwipeTracker creates a tracker with the given threshold and cell scales.
func NewSwipeTracker(minDistance, scaleX, scaleY int) *SwipeTracker {
	return &SwipeTracker{
		MinDistance: minDistance,
		ScaleX:      scaleX,
		ScaleY:      scaleY,
	}
}

// Begin records the start of a gesture.
func (t *SwipeTracker) Begin(p Point) {
	t.start = p
	t.active = true
}

// Active reports whether a gesture is in progress.
func (t *SwipeTracker) Active() bool {
	return t.active
}

// End finishes the gesture at p and returns the resulting action, if any.
// End without a matching Begin is ignored.
func (t *SwipeTracker) End(p Point) (Action, bool) {
	if !t.active {
		return ActionNone, false
	}
	t.active = false

	d := p.Sub(t.start)
	return DetectSwipe(d.X*t.ScaleX, d.Y*t.ScaleY, t.MinDistance)
}

// Cancel drops any gesture in progress.
func (t *SwipeTracker) Cancel() {
	t.active = false
}
