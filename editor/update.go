package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}
	km := m.cfg.KeyMap
	version := m.buf.Version()

	if !key.Matches(msg, km.Quit) {
		m.quitArmed = false
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.updateSearch(msg)
	case modeSaveAs:
		m.updateSaveAs(msg)
	default:
		cmd = m.updateEdit(msg)
	}

	if m.buf.Version() != version && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.cursor))
	}
	m.refresh()
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	km := m.cfg.KeyMap
	m.message = ""

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertRunes(msg.Runes)
		return nil
	}

	switch {
	case key.Matches(msg, km.Quit):
		if m.buf.IsDirty() && !m.quitArmed {
			m.quitArmed = true
			m.message = fmt.Sprintf("unsaved changes: press %s again to quit", km.Quit.Help().Key)
			return nil
		}
		return tea.Quit
	case key.Matches(msg, km.Save):
		if m.buf.Path() == "" {
			m.openPrompt(modeSaveAs)
			return nil
		}
		m.save()
	case key.Matches(msg, km.Find):
		m.openPrompt(modeSearch)

	case key.Matches(msg, km.Left):
		m.moveLeft()
	case key.Matches(msg, km.Right):
		m.moveRight()
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
	case key.Matches(msg, km.PageUp):
		m.moveVertical(-max(m.viewport.Height, 1))
	case key.Matches(msg, km.PageDown):
		m.moveVertical(max(m.viewport.Height, 1))
	case key.Matches(msg, km.Home):
		m.cursor.X = 0
	case key.Matches(msg, km.End):
		m.cursor.X = m.lineLen(m.cursor.Y)

	case key.Matches(msg, km.Backspace):
		if m.cursor.X > 0 || m.cursor.Y > 0 {
			m.moveLeft()
			m.buf.Delete(m.cursor)
		}
	case key.Matches(msg, km.Delete):
		m.buf.Delete(m.cursor)
	case key.Matches(msg, km.Enter):
		m.newline()

	default:
		switch msg.Type {
		case tea.KeyTab:
			m.insertRune('\t')
			return nil
		case tea.KeySpace:
			m.insertRune(' ')
			return nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insertRunes(msg.Runes)
		}
	}
	return nil
}

func (m *Model) insertRunes(runes []rune) {
	for _, r := range runes {
		switch r {
		case '\r':
		case '\n':
			m.newline()
		default:
			m.insertRune(r)
		}
	}
}

// insertRune inserts r at the cursor and advances past it. A combining mark
// joins the cluster before the cursor and leaves the cursor in place.
func (m *Model) insertRune(r rune) {
	before := m.lineLen(m.cursor.Y)
	m.buf.Insert(m.cursor, r)
	m.cursor.X += m.lineLen(m.cursor.Y) - before
}

func (m *Model) newline() {
	m.buf.Insert(m.cursor, '\n')
	m.cursor = buffer.Position{X: 0, Y: m.cursor.Y + 1}
}

func (m *Model) moveLeft() {
	switch {
	case m.cursor.X > 0:
		m.cursor.X--
	case m.cursor.Y > 0:
		m.cursor.Y--
		m.cursor.X = m.lineLen(m.cursor.Y)
	}
}

func (m *Model) moveRight() {
	switch {
	case m.cursor.X < m.lineLen(m.cursor.Y):
		m.cursor.X++
	case m.cursor.Y < m.buf.LineCount():
		m.cursor.Y++
		m.cursor.X = 0
	}
}

// moveVertical moves by dy rows. The cursor may rest on the empty row after
// the last line, where typing appends a new line.
func (m *Model) moveVertical(dy int) {
	m.cursor.Y = clampInt(m.cursor.Y+dy, 0, m.buf.LineCount())
	m.cursor.X = min(m.cursor.X, m.lineLen(m.cursor.Y))
}

func (m *Model) save() {
	path := m.buf.Path()
	if err := m.buf.Save(); err != nil {
		m.log.Error("save failed", "path", path, "err", err)
		m.message = "save failed: " + err.Error()
		return
	}
	m.log.Info("saved", "path", path, "lines", m.buf.LineCount(), "filetype", m.buf.FileType())
	m.message = fmt.Sprintf("wrote %d lines to %s", m.buf.LineCount(), path)
}
