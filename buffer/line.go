package buffer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/iw2rmb/scribe/highlight"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

// Line is one editable line of text with its cached classification.
type Line struct {
	text string
	n    int

	tags  []highlight.Type
	state highlight.State
	// word is the search word overlaid on tags, if any.
	word string
}

// NewLine returns a line holding text. Its classification starts stale.
func NewLine(text string) *Line {
	return &Line{text: text, n: grapheme.Count(text)}
}

// Len returns the number of grapheme clusters in the line.
func (l *Line) Len() int { return l.n }

func (l *Line) IsEmpty() bool { return l.n == 0 }

func (l *Line) String() string { return l.text }

// State reports whether the cached tags are current.
func (l *Line) State() highlight.State { return l.state }

func (l *Line) invalidate() { l.state = highlight.Stale }

// bounds clamps [start, end) into [0, n].
func bounds(start, end, n int) (int, int) {
	end = clampInt(end, 0, n)
	start = clampInt(start, 0, end)
	return start, end
}

// Render returns the clusters in [start, end) with tabs shown as one space.
func (l *Line) Render(start, end int) string {
	start, end = bounds(start, end, l.n)
	if start == end {
		return ""
	}
	var sb strings.Builder
	g := uniseg.NewGraphemes(l.text)
	for idx := 0; idx < end && g.Next(); idx++ {
		if idx < start {
			continue
		}
		if c := g.Str(); c == "\t" {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// Tags returns the cached classification of the clusters in [start, end).
// Clusters the cache does not cover are reported as highlight.None.
func (l *Line) Tags(start, end int) []highlight.Type {
	start, end = bounds(start, end, l.n)
	out := make([]highlight.Type, end-start)
	for i := start; i < end && i < len(l.tags); i++ {
		out[i-start] = l.tags[i]
	}
	return out
}

// Insert inserts r before the cluster at offset at, or appends it when at is
// at or past the end of the line. Negative offsets insert at the start.
func (l *Line) Insert(at int, r rune) {
	at = max(at, 0)
	if at >= l.n {
		l.text += string(r)
		l.n = grapheme.Count(l.text)
		return
	}

	var sb strings.Builder
	sb.Grow(len(l.text) + 4)
	g := uniseg.NewGraphemes(l.text)
	for idx := 0; g.Next(); idx++ {
		if idx == at {
			sb.WriteRune(r)
		}
		sb.WriteString(g.Str())
	}
	l.text = sb.String()
	// A combining mark joins its neighbor, so count rather than increment.
	l.n = grapheme.Count(l.text)
}

// Delete removes the cluster at offset at. Out-of-range offsets are ignored.
func (l *Line) Delete(at int) {
	if at < 0 || at >= l.n {
		return
	}
	var sb strings.Builder
	sb.Grow(len(l.text))
	g := uniseg.NewGraphemes(l.text)
	for idx := 0; g.Next(); idx++ {
		if idx != at {
			sb.WriteString(g.Str())
		}
	}
	l.text = sb.String()
	l.n = grapheme.Count(l.text)
}

// Split truncates the line to the clusters before at and returns a new line
// holding the rest. Both halves are left stale.
func (l *Line) Split(at int) *Line {
	at = clampInt(at, 0, l.n)
	_, offs := grapheme.Boundaries(l.text)
	head, tail := l.text[:offs[at]], l.text[offs[at]:]

	l.text = head
	l.n = at
	l.tags = nil
	l.word = ""
	l.invalidate()
	return &Line{text: tail, n: grapheme.Count(tail)}
}

// Append concatenates other's text onto l.
func (l *Line) Append(other *Line) {
	if other == nil || other.text == "" {
		return
	}
	l.text += other.text
	l.n = grapheme.Count(l.text)
}

// Find returns the cluster offset of query within the line. Forward searches
// [at, Len()) for the first occurrence; Backward searches [0, at) for the
// last. An empty query never matches.
func (l *Line) Find(query string, at int, dir SearchDirection) (int, bool) {
	if query == "" {
		return 0, false
	}
	at = clampInt(at, 0, l.n)
	_, offs := grapheme.Boundaries(l.text)

	var col int
	var ok bool
	if dir == Backward {
		col, _, ok = grapheme.LastIndex(l.text, offs, query, at)
	} else {
		col, _, ok = grapheme.Index(l.text, offs, query, at)
	}
	return col, ok
}

// highlight brings the cached tags up to date and returns whether the line
// ends inside an open block comment.
func (l *Line) highlight(p highlight.Profile, word string, inComment bool) bool {
	if l.state == highlight.Valid && word == "" && l.word == "" {
		return highlight.HasOpenComment(l.text, l.tags, p)
	}

	tags, open := highlight.Scan(l.text, p, inComment, word)
	l.tags = tags
	l.word = word
	if open {
		l.state = highlight.OpenComment
	} else {
		l.state = highlight.Valid
	}
	return open
}
