package highlight

import (
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// rule tries to classify the clusters starting at i. It returns the index of
// the first unconsumed cluster, or ok=false to let the next rule try.
type rule func(c *classifier, i int) (next int, ok bool)

// rules run in priority order; the first to accept a position wins.
var rules = []rule{
	(*classifier).blockComment,
	(*classifier).character,
	(*classifier).lineComment,
	(*classifier).keyword,
	(*classifier).str,
	(*classifier).number,
}

type classifier struct {
	t    text
	p    Profile
	mk   Markers
	tags []Type
	open bool
}

// Classify tags every cluster of line. inComment reports whether the line
// starts inside a block comment left open by a previous line. The returned
// open flag reports whether the line ends inside an unterminated block comment.
func Classify(line string, p Profile, inComment bool) (tags []Type, open bool) {
	c := &classifier{t: newText(line), p: p}
	c.tags = make([]Type, c.t.len())
	if p == nil {
		return c.tags, false
	}
	c.mk = p.Markers()

	i := 0
	if inComment {
		i = c.commentBody(0, 0)
	}
	for i < c.t.len() && !c.open {
		next, ok := c.step(i)
		if !ok {
			next = i + 1
		}
		i = next
	}
	return c.tags, c.open
}

// Scan classifies line and overlays matches of word.
func Scan(line string, p Profile, inComment bool, word string) (tags []Type, open bool) {
	tags, open = Classify(line, p, inComment)
	ApplyMatches(line, tags, word)
	return tags, open
}

// ApplyMatches retags every non-overlapping occurrence of word in line as
// Match, scanning forward and resuming after each match.
func ApplyMatches(line string, tags []Type, word string) {
	if word == "" {
		return
	}
	t := newText(line)
	i := 0
	for {
		start, end, ok := t.indexFrom(i, word)
		if !ok {
			return
		}
		for j := start; j < end && j < len(tags); j++ {
			tags[j] = Match
		}
		i = end
	}
}

// HasOpenComment reports whether a line whose cached tags are valid still
// leaves a block comment open: its last tag is BlockComment and the line does
// not end with the closing marker.
func HasOpenComment(line string, tags []Type, p Profile) bool {
	if len(tags) == 0 || tags[len(tags)-1] != BlockComment {
		return false
	}
	closing := DefaultMarkers.BlockClose
	if p != nil {
		closing = p.Markers().BlockClose
	}
	if closing == "" {
		return true
	}
	return !strings.HasSuffix(line, closing)
}

func (c *classifier) step(i int) (int, bool) {
	for _, r := range rules {
		if next, ok := r(c, i); ok {
			return next, true
		}
	}
	return i, false
}

func (c *classifier) mark(from, to int, typ Type) {
	for j := from; j < to && j < len(c.tags); j++ {
		c.tags[j] = typ
	}
}

func (c *classifier) precededBySeparator(i int) bool {
	return i == 0 || grapheme.IsSeparator(c.t.clusters[i-1])
}

// commentBody tags clusters from `from` as BlockComment up to and including
// the closing marker searched from `scan`. Without a closing marker the rest
// of the line is tagged and the comment stays open.
func (c *classifier) commentBody(from, scan int) int {
	if _, end, ok := c.t.indexFrom(scan, c.mk.BlockClose); ok {
		c.mark(from, end, BlockComment)
		return end
	}
	c.mark(from, c.t.len(), BlockComment)
	c.open = true
	return c.t.len()
}

func (c *classifier) blockComment(i int) (int, bool) {
	if !c.p.Enabled(BlockComments) {
		return 0, false
	}
	after, ok := c.t.matchAt(i, c.mk.BlockOpen)
	if !ok {
		return 0, false
	}
	return c.commentBody(i, after), true
}

// character accepts 'x' and '\x' only when the closing quote lines up.
func (c *classifier) character(i int) (int, bool) {
	if !c.p.Enabled(Characters) || c.t.clusters[i] != "'" || i+1 >= c.t.len() {
		return 0, false
	}
	closing := i + 2
	if c.t.clusters[i+1] == "\\" {
		closing = i + 3
	}
	if closing >= c.t.len() || c.t.clusters[closing] != "'" {
		return 0, false
	}
	c.mark(i, closing+1, Character)
	return closing + 1, true
}

func (c *classifier) lineComment(i int) (int, bool) {
	if !c.p.Enabled(Comments) {
		return 0, false
	}
	if _, ok := c.t.matchAt(i, c.mk.Line); !ok {
		return 0, false
	}
	c.mark(i, c.t.len(), LineComment)
	return c.t.len(), true
}

func (c *classifier) keyword(i int) (int, bool) {
	if !c.precededBySeparator(i) {
		return 0, false
	}
	if next, ok := c.keywordFrom(i, c.p.PrimaryKeywords(), PrimaryKeyword); ok {
		return next, true
	}
	return c.keywordFrom(i, c.p.SecondaryKeywords(), SecondaryKeyword)
}

func (c *classifier) keywordFrom(i int, words []string, typ Type) (int, bool) {
	for _, w := range words {
		end, ok := c.t.matchAt(i, w)
		if !ok {
			continue
		}
		if end < c.t.len() && !grapheme.IsSeparator(c.t.clusters[end]) {
			continue
		}
		c.mark(i, end, typ)
		return end, true
	}
	return 0, false
}

// str runs from an opening double quote to the next one, or to line end.
// Escapes are not interpreted.
func (c *classifier) str(i int) (int, bool) {
	if !c.p.Enabled(Strings) || c.t.clusters[i] != `"` {
		return 0, false
	}
	j := i + 1
	for j < c.t.len() && c.t.clusters[j] != `"` {
		j++
	}
	if j < c.t.len() {
		j++
	}
	c.mark(i, j, String)
	return j, true
}

func (c *classifier) number(i int) (int, bool) {
	if !c.p.Enabled(Numbers) || !grapheme.IsDigit(c.t.clusters[i]) || !c.precededBySeparator(i) {
		return 0, false
	}
	j := i + 1
	for j < c.t.len() && (grapheme.IsDigit(c.t.clusters[j]) || c.t.clusters[j] == ".") {
		j++
	}
	c.mark(i, j, Number)
	return j, true
}
