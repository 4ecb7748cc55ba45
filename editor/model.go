package editor

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

type mode uint8

const (
	modeEdit mode = iota
	modeSearch
	modeSaveAs
)

// prompt is the input line shown in place of the status bar.
type prompt struct {
	input  string
	origin buffer.Position
	failed bool
}

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	focused bool

	viewport viewport.Model
	help     help.Model
	width    int
	height   int
	// colOff is the first visible cluster column.
	colOff int

	cursor buffer.Position

	mode      mode
	prompt    prompt
	quitArmed bool
	message   string
}

// New returns an editor for buf. A nil buf starts an empty unnamed buffer.
func New(buf *buffer.Buffer, cfg Config) Model {
	if buf == nil {
		buf = buffer.New("", buffer.Options{})
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		cfg:      cfg,
		buf:      buf,
		log:      log,
		focused:  true,
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.refresh()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Cursor() buffer.Position { return m.cursor }

// Message returns the transient status message, if any.
func (m Model) Message() string { return m.message }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size. The last row holds the status line.
func (m Model) SetSize(width, height int) Model {
	width = max(width, 0)
	height = max(height, 0)
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 0)

	m.refresh()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.refresh()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case DiskChangedMsg:
		if msg.Path == m.buf.Path() && m.buf.ChangedOnDisk() {
			m.message = "file changed on disk"
			m.log.Warn("file changed on disk", "path", msg.Path, "dirty", m.buf.IsDirty())
		}
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Manual scrolling leaves the cursor where it is; only the window moves.
		m.rebuildContent()
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.height == 0 {
		return ""
	}
	if m.viewport.Height == 0 {
		return m.statusLine()
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

// rowCount is the number of document rows, including the empty row past the
// last line when the cursor sits there.
func (m *Model) rowCount() int {
	return max(m.buf.LineCount(), m.cursor.Y+1)
}

func (m *Model) lineLen(y int) int {
	v, _ := m.buf.Line(y)
	return v.Len()
}

// refresh scrolls the cursor into view and re-renders the visible rows.
func (m *Model) refresh() {
	m.followCursor()
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.cursor
	if h := m.viewport.Height; h > 0 {
		y := m.viewport.YOffset
		if cur.Y < y {
			m.viewport.YOffset = cur.Y
		} else if cur.Y >= y+h {
			m.viewport.YOffset = cur.Y - h + 1
		}
	}

	if cur.X < m.colOff {
		m.colOff = cur.X
	}
	w := m.textWidth()
	if w <= 0 {
		return
	}
	v, _ := m.buf.Line(cur.Y)
	widths := cellWidths(graphemeutil.Split(v.String()))
	x := clampInt(cur.X, 0, len(widths))
	used := 1
	if x < len(widths) {
		used = max(widths[x], 1)
	}
	for i := m.colOff; i < x; i++ {
		used += widths[i]
	}
	for m.colOff < x && used > w {
		used -= widths[m.colOff]
		m.colOff++
	}
}
