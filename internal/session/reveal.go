package session

// Reveal controls whether the current card's answer is visible.
type Reveal struct {
	shown bool
}

// Toggle flips answer visibility.
func (r *Reveal) Toggle() {
	r.shown = !r.shown
}

// Hide conceals the answer.
func (r *Reveal) Hide() {
	r.shown = false
}

// Shown returns true if the answer is visible.
func (r Reveal) Shown() bool {
	return r.shown
}
