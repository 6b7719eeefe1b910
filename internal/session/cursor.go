package session

// Cursor is a wrapping position within a view of length n.
// All moves are no-ops on an empty view.
type Cursor struct {
	index int
}

// Index returns the current position.
func (c Cursor) Index() int {
	return c.index
}

// Next advances one position, wrapping to the start.
func (c *Cursor) Next(n int) {
	if n <= 0 {
		return
	}
	c.index = (c.index + 1) % n
}

// Previous moves back one position, wrapping to the end.
func (c *Cursor) Previous(n int) {
	if n <= 0 {
		return
	}
	c.index = (c.index - 1 + n) % n
}

// Random jumps to intn(n). The current position may be picked again.
func (c *Cursor) Random(n int, intn func(int) int) {
	if n <= 0 {
		return
	}
	c.index = intn(n)
}

// Set jumps to i when it lies within the view.
func (c *Cursor) Set(i, n int) {
	if i < 0 || i >= n {
		return
	}
	c.index = i
}

// Clamp resets the cursor to 0 when the view no longer reaches it.
func (c *Cursor) Clamp(n int) {
	if c.index >= n {
		c.index = 0
	}
}
