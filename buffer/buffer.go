package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iw2rmb/scribe/filetype"
	"github.com/iw2rmb/scribe/highlight"
)

// ErrInvalidUTF8 is returned by Open when the file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("buffer: file is not valid UTF-8")

// Options configures New and Open.
type Options struct {
	// FileTypes resolves language profiles by extension.
	// Default: filetype.Builtin(nil).
	FileTypes *filetype.Registry
	// Path is the file the buffer saves to. Empty means unnamed.
	Path string
}

// Buffer is an ordered sequence of lines backed by an optional file.
type Buffer struct {
	lines   []*Line
	version uint64

	path  string
	dirty bool
	// modTime is the file's modification time as of the last Open or Save.
	modTime time.Time

	types *filetype.Registry
	ft    *filetype.Profile
}

// New returns a clean buffer holding text. Lines are split on "\n"; a single
// trailing terminator does not produce an extra empty line, and a trailing
// "\r" is dropped from each line.
func New(text string, opt Options) *Buffer {
	if opt.FileTypes == nil {
		opt.FileTypes = filetype.Builtin(nil)
	}
	b := &Buffer{
		lines: splitLines(text),
		path:  opt.Path,
		types: opt.FileTypes,
	}
	b.ft = b.types.ForPath(b.path)
	return b
}

// Open reads path into a new buffer. The path is remembered for Save and
// selects the language profile.
func Open(path string, opt Options) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("open %s: %w", path, ErrInvalidUTF8)
	}
	opt.Path = path
	b := New(string(data), opt)
	b.modTime = statModTime(path)
	return b, nil
}

// Save writes every line followed by "\n" to the buffer's path. A buffer
// without a path is left untouched and Save reports success.
func (b *Buffer) Save() error {
	if b.path == "" {
		return nil
	}
	if ft := b.types.ForPath(b.path); ft != b.ft {
		b.ft = ft
		b.invalidateFrom(0)
	}

	f, err := os.Create(b.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	w := bufio.NewWriter(f)
	for _, l := range b.lines {
		w.WriteString(l.text)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	b.dirty = false
	b.modTime = statModTime(b.path)
	return nil
}

// ChangedOnDisk reports whether the file at Path was modified or removed since
// the buffer last read or wrote it. Buffers that never touched their file
// report false.
func (b *Buffer) ChangedOnDisk() bool {
	if b.path == "" || b.modTime.IsZero() {
		return false
	}
	fi, err := os.Stat(b.path)
	if err != nil {
		return true
	}
	return !fi.ModTime().Equal(b.modTime)
}

func statModTime(path string) time.Time {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}

func (b *Buffer) Path() string { return b.path }

// SetPath changes the file the buffer saves to. The language profile is
// re-resolved on the next Save.
func (b *Buffer) SetPath(path string) {
	if path != b.path {
		b.path = path
		b.modTime = time.Time{}
	}
}

// FileType returns the name of the active language profile.
func (b *Buffer) FileType() string { return b.ft.Name() }

func (b *Buffer) Profile() *filetype.Profile { return b.ft }

// IsDirty reports whether the buffer changed since it was opened or saved.
func (b *Buffer) IsDirty() bool { return b.dirty }

// Version increments on every mutation. Renderers may use it to detect
// changes without comparing text.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns a read-only view of line i.
func (b *Buffer) Line(i int) (LineView, bool) {
	if i < 0 || i >= len(b.lines) {
		return LineView{}, false
	}
	return LineView{l: b.lines[i]}, true
}

// Text joins all lines with "\n".
func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.text)
	}
	return sb.String()
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].n
}

// LineView exposes a line without its mutators.
type LineView struct {
	l *Line
}

func (v LineView) Len() int {
	if v.l == nil {
		return 0
	}
	return v.l.Len()
}

func (v LineView) String() string {
	if v.l == nil {
		return ""
	}
	return v.l.String()
}

func (v LineView) State() highlight.State {
	if v.l == nil {
		return highlight.Stale
	}
	return v.l.State()
}

func (v LineView) Render(start, end int) string {
	if v.l == nil {
		return ""
	}
	return v.l.Render(start, end)
}

func (v LineView) Tags(start, end int) []highlight.Type {
	if v.l == nil {
		return nil
	}
	return v.l.Tags(start, end)
}

func (v LineView) Find(query string, at int, dir SearchDirection) (int, bool) {
	if v.l == nil {
		return 0, false
	}
	return v.l.Find(query, at, dir)
}

func splitLines(text string) []*Line {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([]*Line, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, NewLine(strings.TrimSuffix(s, "\r")))
	}
	return lines
}
