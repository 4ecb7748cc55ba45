package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCellWidth returns the terminal cell width of one cluster. Tabs are
// rendered as a single space by the buffer.
func graphemeCellWidth(text string) int {
	if text == "\t" {
		return 1
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// cellWidths returns the width of each cluster.
func cellWidths(clusters []string) []int {
	out := make([]int, len(clusters))
	for i, c := range clusters {
		out[i] = graphemeCellWidth(c)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
