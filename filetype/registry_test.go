package filetype

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/iw2rmb/scribe/highlight"
)

func TestBuiltin_ResolvesRustByExtension(t *testing.T) {
	r := Builtin(nil)

	p := r.ForPath("src/main.rs")
	if got, want := p.Name(), "Rust"; got != want {
		t.Fatalf("name: got %q, want %q", got, want)
	}
	for _, f := range []highlight.Feature{highlight.Numbers, highlight.Strings, highlight.Characters, highlight.Comments, highlight.BlockComments} {
		if !p.Enabled(f) {
			t.Fatalf("feature %d disabled for Rust", f)
		}
	}
	if got := p.PrimaryKeywords(); len(got) == 0 || got[0] != "as" {
		t.Fatalf("primary keywords: got %v", got)
	}
	if got := p.SecondaryKeywords(); len(got) != 14 || got[len(got)-1] != "f64" {
		t.Fatalf("secondary keywords: got %v", got)
	}
	if got := p.Markers(); got != highlight.DefaultMarkers {
		t.Fatalf("markers: got %+v, want %+v", got, highlight.DefaultMarkers)
	}
}

func TestBuiltin_ExtensionMatchIsCaseInsensitive(t *testing.T) {
	r := Builtin(nil)
	if got := r.ForPath("LIB.RS").Name(); got != "Rust" {
		t.Fatalf("LIB.RS: got %q, want Rust", got)
	}
	if got := r.ForExtension(".Go").Name(); got != "Go" {
		t.Fatalf(".Go: got %q, want Go", got)
	}
	if got := r.ForPath("x.py").Markers().Line; got != "#" {
		t.Fatalf("python line comment: got %q, want #", got)
	}
}

func TestForPath_UnknownFallsBackToDefault(t *testing.T) {
	r := Builtin(nil)
	for _, path := range []string{"notes.txt", "Makefile", "rs", ""} {
		p := r.ForPath(path)
		if p != Default() {
			t.Fatalf("%q: got %q, want default", path, p.Name())
		}
	}

	d := Default()
	if d.Name() != DefaultName {
		t.Fatalf("default name: got %q", d.Name())
	}
	if d.Enabled(highlight.Numbers) || len(d.PrimaryKeywords()) != 0 || len(d.SecondaryKeywords()) != 0 {
		t.Fatalf("default profile must classify nothing")
	}

	var nilRegistry *Registry
	if nilRegistry.ForPath("a.rs") != Default() {
		t.Fatalf("nil registry must resolve to default")
	}
}

func TestParse_AppliesDefaultsAndNormalizes(t *testing.T) {
	ps, err := Parse([]byte(`
- name: Shell
  extensions: [".SH", bash, ""]
  line_comment: "#"
  flags: {strings: true, comments: true}
  primary_keywords: [if, then, if, ""]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ps) != 1 {
		t.Fatalf("profiles: got %d, want 1", len(ps))
	}
	p := ps[0]
	if got := strings.Join(p.Extensions(), ","); got != "sh,bash" {
		t.Fatalf("extensions: got %q, want %q", got, "sh,bash")
	}
	if got := strings.Join(p.PrimaryKeywords(), ","); got != "if,then" {
		t.Fatalf("primary: got %q, want %q", got, "if,then")
	}
	want := highlight.Markers{Line: "#", BlockOpen: "/*", BlockClose: "*/"}
	if got := p.Markers(); got != want {
		t.Fatalf("markers: got %+v, want %+v", got, want)
	}
	if p.Enabled(highlight.Numbers) || !p.Enabled(highlight.Strings) {
		t.Fatalf("flags not applied")
	}
}

func TestParse_RejectsInvalidProfiles(t *testing.T) {
	cases := []string{
		"- extensions: [x]",
		"- name: X\n  primary_keywords: [a]\n  secondary_keywords: [a]",
	}
	for _, src := range cases {
		_, err := Parse([]byte(src))
		if !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("Parse(%q): got %v, want ErrInvalidProfile", src, err)
		}
	}

	if _, err := Parse([]byte("{not: a list")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRegister_LaterProfileWins(t *testing.T) {
	r := Builtin(nil)
	ps, err := Parse([]byte("- name: Rust\n  extensions: [rs]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r.Register(ps[0])

	p := r.ForPath("a.rs")
	if p != ps[0] {
		t.Fatalf("expected override to win")
	}
	if p.Enabled(highlight.Numbers) {
		t.Fatalf("override should have no features")
	}
	count := 0
	for _, q := range r.Profiles() {
		if q.Name() == "Rust" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Rust profiles registered: got %d, want 1", count)
	}
}

func TestRegistry_SharedAcrossGoroutines(t *testing.T) {
	r := Builtin(nil)
	ps, err := Parse([]byte("- name: Extra\n  extensions: [ex]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(ps[0])
		}()
		go func() {
			defer wg.Done()
			if got := r.ForPath("a.rs").Name(); got != "Rust" {
				t.Errorf("ForPath(a.rs): got %q, want %q", got, "Rust")
			}
		}()
	}
	wg.Wait()

	if got := r.ForPath("b.ex"); got != ps[0] {
		t.Fatalf("ForPath(b.ex): got %q, want Extra", got.Name())
	}
}

func TestLoadDir_RegistersAndSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("lua.yaml", "- name: Lua\n  extensions: [lua]\n  line_comment: \"--\"\n  flags: {comments: true}\n")
	write("broken.yml", "- extensions: [zz]\n")
	write("readme.txt", "ignored")

	var logs bytes.Buffer
	r := Builtin(slog.New(slog.NewTextHandler(&logs, nil)))
	n, err := r.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if n != 1 {
		t.Fatalf("loaded: got %d, want 1", n)
	}
	if got := r.ForPath("init.lua").Name(); got != "Lua" {
		t.Fatalf("lua: got %q", got)
	}
	if got := r.ForPath("x.zz"); got != Default() {
		t.Fatalf("broken profile must not register, got %q", got.Name())
	}
	if !strings.Contains(logs.String(), "broken.yml") {
		t.Fatalf("expected warning for broken file, logs: %s", logs.String())
	}

	n, err = r.LoadDir(filepath.Join(dir, "missing"))
	if err != nil || n != 0 {
		t.Fatalf("missing dir: got (%d, %v), want (0, nil)", n, err)
	}
}
