package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

// renderContent renders the rows inside the viewport window. Rows outside the
// window are left empty so the viewport keeps its offsets, and only the
// window is classified.
func (m *Model) renderContent() string {
	n := m.rowCount()
	h := m.viewport.Height
	if h <= 0 {
		return strings.Repeat("\n", n-1)
	}

	// Deleting lines can leave the window past the end of the document.
	m.viewport.YOffset = clampInt(m.viewport.YOffset, 0, max(n-h, 0))
	top := m.viewport.YOffset
	bottom := min(top+h, n)
	m.buf.Highlight(m.searchWord(), bottom-1)

	out := make([]string, n)
	for y := top; y < bottom; y++ {
		out[y] = m.renderRow(y)
	}
	return strings.Join(out, "\n")
}

func (m *Model) searchWord() string {
	if m.mode == modeSearch {
		return m.prompt.input
	}
	return ""
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// textWidth is the number of cells available for line text. Zero means the
// editor has not been sized and lines are not clipped.
func (m *Model) textWidth() int {
	if m.viewport.Width <= 0 {
		return 0
	}
	return max(m.viewport.Width-m.gutterWidth(), 1)
}

func (m *Model) renderRow(y int) string {
	st := m.cfg.Style
	var sb strings.Builder

	if m.cfg.ShowLineNums {
		digits := gutterDigits(m.buf.LineCount())
		numStyle := st.LineNum
		if m.focused && y == m.cursor.Y {
			numStyle = st.LineNumActive
		}
		num := fmt.Sprintf("%*s", digits, "")
		if y < m.buf.LineCount() {
			num = fmt.Sprintf("%*d", digits, y+1)
		}
		sb.WriteString(numStyle.Render(num))
		sb.WriteString(st.Gutter.Render(" "))
	}

	sb.WriteString(m.renderText(y))
	return sb.String()
}

// renderText paints the visible clusters of line y in runs of equal
// classification. The cursor cluster is always its own run.
func (m *Model) renderText(y int) string {
	st := m.cfg.Style
	v, _ := m.buf.Line(y)
	widths := cellWidths(graphemeutil.Split(v.String()))
	tags := v.Tags(0, v.Len())
	width := m.textWidth()

	cursorCol := -1
	if m.focused && y == m.cursor.Y {
		cursorCol = clampInt(m.cursor.X, 0, len(widths))
	}

	start := min(m.colOff, len(widths))
	end, used := start, 0
	for end < len(widths) && (width <= 0 || used+widths[end] <= width) {
		used += widths[end]
		end++
	}

	var sb strings.Builder
	for i := start; i < end; {
		style := st.forType(tags[i])
		j := i + 1
		if i == cursorCol {
			style = st.Cursor
		} else {
			for j < end && j != cursorCol && tags[j] == tags[i] {
				j++
			}
		}
		sb.WriteString(style.Render(v.Render(i, j)))
		i = j
	}
	if cursorCol == len(widths) && (width <= 0 || used < width) {
		// Cursor at EOL is rendered as a 1-cell placeholder space.
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) statusLine() string {
	st := m.cfg.Style.Status
	var left string
	switch m.mode {
	case modeSearch:
		left = "Search: " + m.prompt.input
		if m.prompt.failed {
			left += " (no match)"
		}
	case modeSaveAs:
		left = "Save as: " + m.prompt.input
	default:
		if m.message != "" {
			left = m.message
			st = m.cfg.Style.StatusMessage.Inherit(st)
			break
		}
		name := m.buf.Path()
		if name == "" && m.buf.LineCount() == 0 {
			left = m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp())
			break
		}
		if name == "" {
			name = "[No Name]"
		}
		left = fmt.Sprintf("%s - %d lines", name, m.buf.LineCount())
		if m.buf.IsDirty() {
			left += " (modified)"
		}
	}
	right := fmt.Sprintf("%s | %d/%d", m.buf.FileType(), m.cursor.Y+1, max(m.buf.LineCount(), 1))
	return st.Render(layoutStatus(left, right, m.width))
}

// layoutStatus places left and right at the edges of a width-cell line,
// truncating left first.
func layoutStatus(left, right string, width int) string {
	if width <= 0 {
		return left + "  " + right
	}
	rw := runewidth.StringWidth(right)
	if rw+1 > width {
		return runewidth.Truncate(left, width, "…")
	}
	left = runewidth.Truncate(left, width-rw-1, "…")
	gap := width - runewidth.StringWidth(left) - rw
	return left + strings.Repeat(" ", gap) + right
}
