package state

// PendingKind tags how far the current click sequence has progressed.
type PendingKind int

const (
	Idle PendingKind = iota
	OneClicked
	TwoClicked
)

func (k PendingKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case OneClicked:
		return "one-clicked"
	case TwoClicked:
		return "two-clicked"
	default:
		return "unknown"
	}
}

// PendingState is the in-progress click sequence toward a new curve. From is
// meaningful in OneClicked and TwoClicked, To only in TwoClicked; unused
// fields are always zero so states compare with ==.
type PendingState struct {
	Kind PendingKind
	From Point
	To   Point
}

// IdleState is the state with no clicks recorded.
func IdleState() PendingState { return PendingState{} }

// OneClickedState records the start point of a curve.
func OneClickedState(from Point) PendingState {
	return PendingState{Kind: OneClicked, From: from}
}

// TwoClickedState records start and end points of a curve.
func TwoClickedState(from, to Point) PendingState {
	return PendingState{Kind: TwoClicked, From: from, To: to}
}

// EventKind distinguishes clicks that count toward a curve from everything else.
type EventKind int

const (
	// Other covers movement, non-primary buttons and clicks outside the bounds.
	Other EventKind = iota
	// Click is a primary button press at an in-bounds position.
	Click
)

// PointerEvent is one discrete pointer event with its position resolved
// against the vector layer's bounds.
type PointerEvent struct {
	Kind EventKind
	Pos  Point
}

// ClickAt returns an in-bounds primary click at p.
func ClickAt(p Point) PointerEvent {
	return PointerEvent{Kind: Click, Pos: p}
}

// OtherEvent returns an event that never advances the click sequence.
func OtherEvent() PointerEvent {
	return PointerEvent{Kind: Other}
}

// ResolvePress turns a button press into a PointerEvent. Only a primary press
// whose position lies inside a width×height box anchored at the origin is a
// Click; everything else resolves to Other.
func ResolvePress(primary bool, pos Point, width, height float32) PointerEvent {
	if !primary || !InBounds(pos, width, height) {
		return OtherEvent()
	}
	return ClickAt(pos)
}

// InBounds reports whether p lies in the half-open box [0,width)×[0,height).
func InBounds(p Point, width, height float32) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

// Transition advances the click sequence by one event. It returns the next
// state and, when the event completes a sequence, the finished curve with ok
// set. The result depends only on the arguments.
func Transition(s PendingState, ev PointerEvent) (next PendingState, c Curve, ok bool) {
	if ev.Kind != Click {
		return s, Curve{}, false
	}
	switch s.Kind {
	case Idle:
		return OneClickedState(ev.Pos), Curve{}, false
	case OneClicked:
		return TwoClickedState(s.From, ev.Pos), Curve{}, false
	case TwoClicked:
		return IdleState(), Curve{From: s.From, To: s.To, Control: ev.Pos}, true
	default:
		return s, Curve{}, false
	}
}
