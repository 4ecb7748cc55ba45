package grapheme

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Boundaries returns the clusters of text together with the byte offset at
// which each one starts. offs has one more entry than clusters; the last entry
// is len(text).
func Boundaries(text string) (clusters []string, offs []int) {
	offs = make([]int, 0, len(text)+1)
	if text == "" {
		return nil, append(offs, 0)
	}
	g := uniseg.NewGraphemes(text)
	clusters = make([]string, 0, len(text))
	for g.Next() {
		from, _ := g.Positions()
		clusters = append(clusters, g.Str())
		offs = append(offs, from)
	}
	offs = append(offs, len(text))
	return clusters, offs
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Index finds the first occurrence of query in text that starts at or after
// cluster from and both begins and ends on cluster boundaries. offs are the
// boundaries returned by Boundaries(text). It returns the half-open cluster
// range of the match.
func Index(text string, offs []int, query string, from int) (start, end int, ok bool) {
	if query == "" || from < 0 || from >= len(offs) {
		return 0, 0, false
	}
	pos := offs[from]
	for pos <= len(text) {
		k := strings.Index(text[pos:], query)
		if k < 0 {
			return 0, 0, false
		}
		off := pos + k
		if s, sok := colAt(offs, off); sok {
			if e, eok := colAt(offs, off+len(query)); eok {
				return s, e, true
			}
		}
		pos = off + 1
	}
	return 0, 0, false
}

// LastIndex finds the last cluster-aligned occurrence of query lying entirely
// before cluster to.
func LastIndex(text string, offs []int, query string, to int) (start, end int, ok bool) {
	if query == "" || to < 0 || to >= len(offs) {
		return 0, 0, false
	}
	limit := offs[to]
	for limit >= len(query) {
		k := strings.LastIndex(text[:limit], query)
		if k < 0 {
			return 0, 0, false
		}
		if s, sok := colAt(offs, k); sok {
			if e, eok := colAt(offs, k+len(query)); eok {
				return s, e, true
			}
		}
		limit = k + len(query) - 1
	}
	return 0, 0, false
}

func colAt(offs []int, off int) (int, bool) {
	i := sort.SearchInts(offs, off)
	if i < len(offs) && offs[i] == off {
		return i, true
	}
	return 0, false
}

// IsSeparator reports whether cluster delimits words: whitespace, punctuation,
// or symbols such as '+', '=' and '<'.
func IsSeparator(cluster string) bool {
	return cluster != "" && strings.IndexFunc(cluster, isWordRune) < 0
}

func isWordRune(r rune) bool {
	return !unicode.IsSpace(r) && !unicode.IsPunct(r) && !unicode.IsSymbol(r)
}

// IsDigit reports whether cluster is a single ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}
