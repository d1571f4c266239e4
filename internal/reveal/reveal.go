// Package reveal implements the one-way "reveal once visible" gate used for
// section entrance animations.
package reveal

// State of a latch.
type State int

const (
	Unseen State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "unseen"
}

// Latch flips from Unseen to Revealed on the first visible observation and
// stays there. The zero value is an unseen latch.
type Latch struct {
	state State
}

// Observe records a visibility event and reports whether it revealed the latch.
func (l *Latch) Observe(visible bool) bool {
	if !visible || l.state == Revealed {
		return false
	}
	l.state = Revealed
	return true
}

// Revealed reports whether the latch has been tripped.
func (l *Latch) Revealed() bool {
	return l.state == Revealed
}

// State returns the current state.
func (l *Latch) State() State {
	return l.state
}
