package buffer

import "slices"

// Insert inserts r at p. A '\n' splits line p.Y at p.X. Inserting at
// Y == LineCount() appends a new line. Positions below the buffer are ignored.
func (b *Buffer) Insert(p Position, r rune) {
	if p.Y < 0 || p.Y > len(b.lines) {
		return
	}

	if r == '\n' {
		if p.Y == len(b.lines) {
			b.lines = append(b.lines, NewLine(""))
		} else {
			tail := b.lines[p.Y].Split(p.X)
			b.lines = slices.Insert(b.lines, p.Y+1, tail)
		}
	} else {
		if p.Y == len(b.lines) {
			b.lines = append(b.lines, NewLine(""))
		}
		b.lines[p.Y].Insert(p.X, r)
	}
	b.touch(p.Y)
}

// Delete removes the cluster at p. At the end of a line that has a successor
// the two lines are merged. Positions outside the text are ignored.
func (b *Buffer) Delete(p Position) {
	if p.Y < 0 || p.Y >= len(b.lines) {
		return
	}

	l := b.lines[p.Y]
	switch {
	case p.X == l.n && p.Y+1 < len(b.lines):
		l.Append(b.lines[p.Y+1])
		b.lines = slices.Delete(b.lines, p.Y+1, p.Y+2)
	case p.X >= 0 && p.X < l.n:
		l.Delete(p.X)
	default:
		return
	}
	b.touch(p.Y)
}

// touch records a mutation of line y.
func (b *Buffer) touch(y int) {
	b.dirty = true
	b.version++
	b.invalidateFrom(y)
}

// invalidateFrom marks every line from y-1 to the end of the buffer stale.
// An edit can open or close a block comment, which changes how every later
// line classifies; the line before is included because the edit may complete
// or break its closing marker.
func (b *Buffer) invalidateFrom(y int) {
	for i := max(y-1, 0); i < len(b.lines); i++ {
		b.lines[i].invalidate()
	}
}
