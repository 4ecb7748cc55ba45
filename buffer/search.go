package buffer

// Find locates query starting at from. Forward searches the rest of line
// from.Y and then each following line from its start. Backward searches the
// part of line from.Y before from.X and then each preceding line in full.
// The search does not wrap around.
func (b *Buffer) Find(query string, from Position, dir SearchDirection) (Position, bool) {
	if query == "" || from.Y < 0 || from.Y >= len(b.lines) {
		return Position{}, false
	}

	if dir == Backward {
		at := from.X
		for y := from.Y; y >= 0; y-- {
			l := b.lines[y]
			if y != from.Y {
				at = l.n
			}
			if x, ok := l.Find(query, at, Backward); ok {
				return Position{X: x, Y: y}, true
			}
		}
		return Position{}, false
	}

	at := from.X
	for y := from.Y; y < len(b.lines); y++ {
		if y != from.Y {
			at = 0
		}
		if x, ok := b.lines[y].Find(query, at, Forward); ok {
			return Position{X: x, Y: y}, true
		}
	}
	return Position{}, false
}
