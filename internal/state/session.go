package state

// Session owns the canonical curve set and the pending click sequence of one
// editing session. All methods run on the UI dispatch goroutine.
type Session struct {
	ID string

	doc     Document
	pending PendingState
	clock   Clock

	// OnNewCurve runs after a completed curve has been appended.
	OnNewCurve func(c Curve)
	// OnClear runs after the curve set has been emptied.
	OnClear func()
}

// NewSession starts a session for doc. The pending state starts Idle.
func NewSession(doc Document) *Session {
	return &Session{
		ID:  newSessionID(),
		doc: Document{SourcePath: doc.SourcePath, Curves: doc.Curves.Clone()},
	}
}

func (s *Session) SourcePath() string { return s.doc.SourcePath }

// Curves returns the current curve set. Callers must not hold on to it across
// mutations; use Snapshot for that.
func (s *Session) Curves() CurveSet { return s.doc.Curves }

func (s *Session) Pending() PendingState { return s.pending }

func (s *Session) Revision() uint64 { return s.clock.Now() }

// HandlePointer feeds ev through the click state machine and applies a
// completed curve to the set.
func (s *Session) HandlePointer(ev PointerEvent) (Curve, bool) {
	next, c, ok := Transition(s.pending, ev)
	s.pending = next
	if !ok {
		return Curve{}, false
	}
	s.doc.Curves.Append(c)
	s.clock.Tick()
	if s.OnNewCurve != nil {
		s.OnNewCurve(c)
	}
	return c, true
}

// Clear empties the curve set and drops any pending click sequence.
func (s *Session) Clear() {
	s.doc.Curves.Clear()
	s.pending = IdleState()
	s.clock.Tick()
	if s.OnClear != nil {
		s.OnClear()
	}
}

// Document returns a copy of the session's document, safe to hand to
// encoders or other goroutines.
func (s *Session) Document() Document {
	return Document{SourcePath: s.doc.SourcePath, Curves: s.doc.Curves.Clone()}
}

// Snapshot is an immutable view of a session at one revision.
type Snapshot struct {
	Session  string
	Revision uint64
	Document Document
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{Session: s.ID, Revision: s.clock.Now(), Document: s.Document()}
}
