package highlight

import (
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// text is a line split into clusters with their byte offsets.
type text struct {
	raw      string
	clusters []string
	offs     []int
}

func newText(s string) text {
	clusters, offs := grapheme.Boundaries(s)
	return text{raw: s, clusters: clusters, offs: offs}
}

func (t text) len() int { return len(t.clusters) }

// matchAt reports whether s occurs at cluster i and ends on a cluster
// boundary. It returns the index of the first cluster after the match.
func (t text) matchAt(i int, s string) (int, bool) {
	if s == "" || i < 0 || i >= len(t.clusters) {
		return 0, false
	}
	start := t.offs[i]
	if !strings.HasPrefix(t.raw[start:], s) {
		return 0, false
	}
	end := start + len(s)
	j := i + 1
	for t.offs[j] < end {
		j++
	}
	if t.offs[j] != end {
		return 0, false
	}
	return j, true
}

// indexFrom finds the first cluster-aligned occurrence of s starting at or
// after cluster i. It returns the half-open cluster range of the match.
func (t text) indexFrom(i int, s string) (start, end int, ok bool) {
	if i < 0 {
		i = 0
	}
	return grapheme.Index(t.raw, t.offs, s, i)
}
