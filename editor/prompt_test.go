package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/highlight"
)

func TestSearch_StepsThroughMatches(t *testing.T) {
	m := newModel("1testtest\nfoo test", Config{})
	m = keys(m, tea.KeyMsg{Type: tea.KeyCtrlF}, runes("t"))

	steps := []struct {
		key  tea.KeyType
		want buffer.Position
	}{
		{tea.KeyRunes, buffer.Position{X: 1, Y: 0}},
		{tea.KeyRight, buffer.Position{X: 4, Y: 0}},
		{tea.KeyRight, buffer.Position{X: 5, Y: 0}},
		{tea.KeyDown, buffer.Position{X: 8, Y: 0}},
		{tea.KeyRight, buffer.Position{X: 4, Y: 1}},
		{tea.KeyLeft, buffer.Position{X: 8, Y: 0}},
		{tea.KeyUp, buffer.Position{X: 5, Y: 0}},
	}
	for i, s := range steps {
		if s.key != tea.KeyRunes {
			m = keys(m, tea.KeyMsg{Type: s.key})
		}
		if got := m.Cursor(); got != s.want {
			t.Fatalf("step %d: cursor got %v, want %v", i, got, s.want)
		}
	}

	// The last match is the end of the line; forward search stops there.
	m = keys(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if got, want := m.Cursor(), (buffer.Position{X: 7, Y: 1}); got != want {
		t.Fatalf("cursor at last match: got %v, want %v", got, want)
	}
	if !m.prompt.failed {
		t.Fatalf("expected failed flag past the last match")
	}
}

func TestSearch_CancelRestoresCursor(t *testing.T) {
	m := newModel("abc\nxbz", Config{})
	m = keys(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyCtrlF}, runes("z"))
	if got, want := m.Cursor(), (buffer.Position{X: 2, Y: 1}); got != want {
		t.Fatalf("cursor after search: got %v, want %v", got, want)
	}

	m = keys(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got, want := m.Cursor(), (buffer.Position{X: 1, Y: 0}); got != want {
		t.Fatalf("cursor after cancel: got %v, want %v", got, want)
	}
	if m.mode != modeEdit {
		t.Fatalf("prompt still open")
	}
}

func TestSearch_AcceptKeepsCursorAndLeavesTextAlone(t *testing.T) {
	m := newModel("abc\nxbz", Config{})
	m = keys(m, tea.KeyMsg{Type: tea.KeyCtrlF}, runes("xb"), tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Cursor(), (buffer.Position{X: 0, Y: 1}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if m.buf.IsDirty() {
		t.Fatalf("search edited the buffer")
	}
}

func TestSearch_BackspaceResearchesFromOrigin(t *testing.T) {
	m := newModel("ab ac", Config{})
	m = keys(m, tea.KeyMsg{Type: tea.KeyCtrlF}, runes("a"), runes("c"))
	if got, want := m.Cursor(), (buffer.Position{X: 3, Y: 0}); got != want {
		t.Fatalf("cursor after 'ac': got %v, want %v", got, want)
	}

	m = keys(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Cursor(), (buffer.Position{X: 0, Y: 0}); got != want {
		t.Fatalf("cursor after backspace: got %v, want %v", got, want)
	}
	if m.prompt.input != "a" {
		t.Fatalf("input: got %q", m.prompt.input)
	}
}

func TestSearch_OverlaysMatchesWhileActive(t *testing.T) {
	m := newModel("1testtest", Config{})
	m = m.SetSize(20, 2)
	m = keys(m, tea.KeyMsg{Type: tea.KeyCtrlF}, runes("t"))

	v, _ := m.buf.Line(0)
	want := []highlight.Type{
		highlight.None, highlight.Match, highlight.None, highlight.None,
		highlight.Match, highlight.Match, highlight.None, highlight.None, highlight.Match,
	}
	got := v.Tags(0, v.Len())
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tags during search: got %v, want %v", got, want)
		}
	}

	m = keys(m, tea.KeyMsg{Type: tea.KeyEsc})
	v, _ = m.buf.Line(0)
	for i, typ := range v.Tags(0, v.Len()) {
		if typ == highlight.Match {
			t.Fatalf("tag %d still a match after search closed", i)
		}
	}
}
