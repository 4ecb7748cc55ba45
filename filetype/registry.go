package filetype

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed profiles.yaml
var builtinProfiles []byte

// Registry resolves file names to language profiles by extension. One
// registry is shared by every buffer of a session and is safe for concurrent
// use; LoadDir may run while buffers resolve profiles.
type Registry struct {
	mu       sync.RWMutex
	profiles []*Profile
	byExt    map[string]*Profile
	log      *slog.Logger
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{byExt: make(map[string]*Profile), log: log}
}

var (
	builtinOnce sync.Once
	builtin     []*Profile
)

func builtins() []*Profile {
	builtinOnce.Do(func() {
		ps, err := Parse(builtinProfiles)
		if err != nil {
			panic(fmt.Sprintf("filetype: embedded profiles: %v", err))
		}
		builtin = ps
	})
	return builtin
}

// Builtin returns a registry holding the embedded profiles.
func Builtin(log *slog.Logger) *Registry {
	r := NewRegistry(log)
	for _, p := range builtins() {
		r.Register(p)
	}
	return r
}

// Register adds p. Later registrations win for shared extensions and names.
func (r *Registry) Register(p *Profile) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.profiles[:0]
	for _, old := range r.profiles {
		if old.name != p.name {
			kept = append(kept, old)
			continue
		}
		for _, ext := range old.extensions {
			if r.byExt[ext] == old {
				delete(r.byExt, ext)
			}
		}
	}
	r.profiles = append(kept, p)
	for _, ext := range p.extensions {
		r.byExt[ext] = p
	}
}

// Profiles returns the registered profiles in registration order.
func (r *Registry) Profiles() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Profile(nil), r.profiles...)
}

// ForExtension resolves an extension, with or without a leading dot. Unknown
// extensions resolve to Default().
func (r *Registry) ForExtension(ext string) *Profile {
	if r == nil {
		return Default()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.byExt[normalizeExt(ext)]; ok {
		return p
	}
	return Default()
}

// ForPath resolves the profile for a file path by its extension.
func (r *Registry) ForPath(path string) *Profile {
	ext := filepath.Ext(path)
	if ext == "" {
		return Default()
	}
	return r.ForExtension(ext)
}

// LoadDir registers profiles from every *.yaml and *.yml file in dir. A
// missing directory is not an error. Files that fail to parse are skipped with
// a warning. It returns the number of profiles registered.
func (r *Registry) LoadDir(dir string) (int, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading profiles dir %s: %w", dir, err)
	}

	n := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			r.log.Warn("skipping profile file", "path", path, "err", err)
			continue
		}
		ps, err := Parse(data)
		if err != nil {
			r.log.Warn("skipping profile file", "path", path, "err", err)
			continue
		}
		for _, p := range ps {
			r.Register(p)
			n++
		}
		r.log.Debug("loaded profile file", "path", path, "profiles", len(ps))
	}
	return n, nil
}
