package buffer

// Highlight brings the classification of lines 0 through bound up to date,
// threading block-comment state from each line into the next. bound is
// clamped to the last line; a negative bound does nothing. When word is not
// empty its occurrences are tagged as matches on every line in range, cached
// or not.
func (b *Buffer) Highlight(word string, bound int) {
	if bound < 0 || len(b.lines) == 0 {
		return
	}
	bound = min(bound, len(b.lines)-1)

	open := false
	for _, l := range b.lines[:bound+1] {
		open = l.highlight(b.ft, word, open)
	}
}
