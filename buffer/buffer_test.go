package buffer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/iw2rmb/scribe/filetype"
	"github.com/iw2rmb/scribe/highlight"
)

func lineTexts(b *Buffer) []string {
	out := make([]string, 0, b.LineCount())
	for i := 0; i < b.LineCount(); i++ {
		v, _ := b.Line(i)
		out = append(out, v.String())
	}
	return out
}

func TestNew_SplitsLines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"", []string{}},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
	}
	for _, tc := range cases {
		b := New(tc.text, Options{})
		if got := lineTexts(b); !slices.Equal(got, tc.want) {
			t.Fatalf("New(%q) lines=%q, want %q", tc.text, got, tc.want)
		}
		if b.IsDirty() {
			t.Fatalf("New(%q) is dirty", tc.text)
		}
	}
}

func TestNew_ResolvesProfileFromPath(t *testing.T) {
	if got, want := New("", Options{Path: "main.rs"}).FileType(), "Rust"; got != want {
		t.Fatalf("filetype=%q, want %q", got, want)
	}
	if got, want := New("", Options{}).FileType(), filetype.Default().Name(); got != want {
		t.Fatalf("filetype=%q, want %q", got, want)
	}
}

func TestBuffer_Line_OutOfRange(t *testing.T) {
	b := New("a", Options{})
	for _, i := range []int{-1, 1, 9} {
		if _, ok := b.Line(i); ok {
			t.Fatalf("Line(%d) ok, want false", i)
		}
	}
	var v LineView
	if v.Len() != 0 || v.Render(0, 3) != "" || v.Tags(0, 3) != nil {
		t.Fatalf("zero LineView not empty")
	}
}

func TestBuffer_SaveOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.rs")
	b := New("fn main() {\n\tlet x = \"\u00e9\";\n\n}", Options{Path: path})
	b.Insert(Position{X: 0, Y: 2}, '/')
	if !b.IsDirty() {
		t.Fatalf("expected dirty after insert")
	}

	if err := b.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if b.IsDirty() {
		t.Fatalf("expected clean after save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(data), "fn main() {\n\tlet x = \"\u00e9\";\n/\n}\n"; got != want {
		t.Fatalf("file=%q, want %q", got, want)
	}

	reopened, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got, want := lineTexts(reopened), lineTexts(b); !slices.Equal(got, want) {
		t.Fatalf("reopened lines=%q, want %q", got, want)
	}
	if reopened.IsDirty() {
		t.Fatalf("reopened buffer is dirty")
	}
	if got, want := reopened.Path(), path; got != want {
		t.Fatalf("path=%q, want %q", got, want)
	}
	if got, want := reopened.FileType(), "Rust"; got != want {
		t.Fatalf("filetype=%q, want %q", got, want)
	}
}

func TestBuffer_Save_WithoutPathIsNoop(t *testing.T) {
	b := New("a", Options{})
	b.Insert(Position{X: 1, Y: 0}, 'b')
	if err := b.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !b.IsDirty() {
		t.Fatalf("unnamed save cleared dirty flag")
	}
}

func TestBuffer_Save_ReresolvesProfile(t *testing.T) {
	dir := t.TempDir()
	b := New("let x = 1;", Options{Path: filepath.Join(dir, "notes.txt")})
	b.Highlight("", 0)
	if got, want := b.FileType(), filetype.Default().Name(); got != want {
		t.Fatalf("filetype=%q, want %q", got, want)
	}

	b.SetPath(filepath.Join(dir, "main.rs"))
	if err := b.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, want := b.FileType(), "Rust"; got != want {
		t.Fatalf("filetype=%q, want %q", got, want)
	}
	v, _ := b.Line(0)
	if v.State() != highlight.Stale {
		t.Fatalf("state=%v, want stale after profile change", v.State())
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.rs"), Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: err=%v, want fs.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.rs")
	if err := os.WriteFile(bad, []byte{'a', 0xff, '\n'}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err = Open(bad, Options{})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("invalid utf-8: err=%v, want ErrInvalidUTF8", err)
	}
}

func TestBuffer_Save_ReportsWriteError(t *testing.T) {
	b := New("a", Options{Path: filepath.Join(t.TempDir(), "no", "such", "dir", "a.rs")})
	b.Insert(Position{}, 'x')
	if err := b.Save(); err == nil {
		t.Fatalf("expected error saving into a missing directory")
	}
	if !b.IsDirty() {
		t.Fatalf("failed save cleared dirty flag")
	}
}

func TestBuffer_ChangedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if b.ChangedOnDisk() {
		t.Fatalf("fresh buffer reported a disk change")
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if !b.ChangedOnDisk() {
		t.Fatalf("touched file not reported")
	}

	if err := b.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if b.ChangedOnDisk() {
		t.Fatalf("own save reported as a disk change")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !b.ChangedOnDisk() {
		t.Fatalf("removed file not reported")
	}

	b.SetPath(filepath.Join(t.TempDir(), "b.txt"))
	if b.ChangedOnDisk() {
		t.Fatalf("new path inherited the old file state")
	}
	if New("x", Options{}).ChangedOnDisk() {
		t.Fatalf("unnamed buffer reported a disk change")
	}
}
