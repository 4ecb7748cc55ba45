package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

func (m *Model) openPrompt(md mode) {
	m.mode = md
	m.prompt = prompt{origin: m.cursor}
}

func (m *Model) closePrompt() {
	m.mode = modeEdit
	m.prompt = prompt{}
}

// edit applies a text-editing key to the prompt input. It reports whether
// the input changed.
func (p *prompt) edit(msg tea.KeyMsg, km KeyMap) bool {
	switch {
	case key.Matches(msg, km.Backspace):
		clusters := graphemeutil.Split(p.input)
		if len(clusters) == 0 {
			return false
		}
		p.input = graphemeutil.Join(clusters[:len(clusters)-1])
		return true
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		p.input += string(msg.Runes)
		return true
	case msg.Type == tea.KeySpace:
		p.input += " "
		return true
	}
	return false
}

// updateSearch drives incremental search. Typing searches forward from the
// cursor; arrows step to the next or previous match; cancel returns the
// cursor to where the search started.
func (m *Model) updateSearch(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.cursor = m.prompt.origin
		m.closePrompt()
	case key.Matches(msg, km.Accept):
		m.closePrompt()
	case key.Matches(msg, km.Right), key.Matches(msg, km.Down):
		from := m.cursor
		from.X++
		m.find(from, buffer.Forward)
	case key.Matches(msg, km.Left), key.Matches(msg, km.Up):
		m.find(m.cursor, buffer.Backward)
	default:
		grew := !key.Matches(msg, km.Backspace)
		if !m.prompt.edit(msg, km) {
			return
		}
		from := m.cursor
		if !grew {
			from = m.prompt.origin
		}
		m.find(from, buffer.Forward)
	}
}

// find moves the cursor to the next match of the prompt input.
func (m *Model) find(from buffer.Position, dir buffer.SearchDirection) {
	if m.prompt.input == "" {
		m.prompt.failed = false
		m.cursor = m.prompt.origin
		return
	}
	if n := m.buf.LineCount(); from.Y >= n && n > 0 {
		// The row past the last line has no text; search from the end of the last.
		from = buffer.Position{X: m.lineLen(n - 1), Y: n - 1}
		if dir == buffer.Forward {
			from.X++
		}
	}
	pos, ok := m.buf.Find(m.prompt.input, from, dir)
	m.prompt.failed = !ok
	if ok {
		m.cursor = pos
	}
}

func (m *Model) updateSaveAs(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.closePrompt()
		m.message = "save aborted"
	case key.Matches(msg, km.Accept):
		path := m.prompt.input
		m.closePrompt()
		if path == "" {
			m.message = "save aborted"
			return
		}
		m.buf.SetPath(path)
		m.save()
	default:
		m.prompt.edit(msg, km)
	}
}
