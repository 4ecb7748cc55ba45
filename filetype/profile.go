package filetype

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/scribe/highlight"
)

// DefaultName names the profile used for unrecognized files.
const DefaultName = "No filetype"

// ErrInvalidProfile is returned for profile definitions that cannot be used.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is an immutable language description. It implements
// highlight.Profile.
type Profile struct {
	name       string
	extensions []string
	features   [highlight.BlockComments + 1]bool
	primary    []string
	secondary  []string
	markers    highlight.Markers
}

var _ highlight.Profile = (*Profile)(nil)

var defaultProfile = &Profile{name: DefaultName, markers: highlight.DefaultMarkers}

// Default returns the profile that classifies nothing.
func Default() *Profile { return defaultProfile }

func (p *Profile) Name() string { return p.name }

// Extensions returns the lower-case extensions, without dots, the profile
// applies to.
func (p *Profile) Extensions() []string { return append([]string(nil), p.extensions...) }

func (p *Profile) Enabled(f highlight.Feature) bool {
	if int(f) >= len(p.features) {
		return false
	}
	return p.features[f]
}

// PrimaryKeywords returns the primary keyword table in declaration order. The
// slice must not be modified.
func (p *Profile) PrimaryKeywords() []string { return p.primary }

// SecondaryKeywords returns the secondary keyword table in declaration order.
// The slice must not be modified.
func (p *Profile) SecondaryKeywords() []string { return p.secondary }

func (p *Profile) Markers() highlight.Markers { return p.markers }

type flagsDef struct {
	Numbers       bool `yaml:"numbers"`
	Strings       bool `yaml:"strings"`
	Characters    bool `yaml:"characters"`
	Comments      bool `yaml:"comments"`
	BlockComments bool `yaml:"block_comments"`
}

// profileDef is the on-disk form of a Profile.
type profileDef struct {
	Name              string   `yaml:"name"`
	Extensions        []string `yaml:"extensions"`
	Flags             flagsDef `yaml:"flags"`
	LineComment       string   `yaml:"line_comment"`
	BlockCommentOpen  string   `yaml:"block_comment_open"`
	BlockCommentClose string   `yaml:"block_comment_close"`
	PrimaryKeywords   []string `yaml:"primary_keywords"`
	SecondaryKeywords []string `yaml:"secondary_keywords"`
}

// Parse decodes a YAML list of profile definitions.
func Parse(data []byte) ([]*Profile, error) {
	var defs []profileDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}
	out := make([]*Profile, 0, len(defs))
	for i, def := range defs {
		p, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (d profileDef) build() (*Profile, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}

	primary := dedupe(d.PrimaryKeywords)
	secondary := dedupe(d.SecondaryKeywords)
	seen := make(map[string]bool, len(primary))
	for _, kw := range primary {
		seen[kw] = true
	}
	for _, kw := range secondary {
		if seen[kw] {
			return nil, fmt.Errorf("%w: %s: keyword %q is both primary and secondary", ErrInvalidProfile, name, kw)
		}
	}

	exts := make([]string, 0, len(d.Extensions))
	for _, ext := range d.Extensions {
		ext = normalizeExt(ext)
		if ext != "" {
			exts = append(exts, ext)
		}
	}

	markers := highlight.DefaultMarkers
	if d.LineComment != "" {
		markers.Line = d.LineComment
	}
	if d.BlockCommentOpen != "" {
		markers.BlockOpen = d.BlockCommentOpen
	}
	if d.BlockCommentClose != "" {
		markers.BlockClose = d.BlockCommentClose
	}

	p := &Profile{
		name:       name,
		extensions: exts,
		primary:    primary,
		secondary:  secondary,
		markers:    markers,
	}
	p.features[highlight.Numbers] = d.Flags.Numbers
	p.features[highlight.Strings] = d.Flags.Strings
	p.features[highlight.Characters] = d.Flags.Characters
	p.features[highlight.Comments] = d.Flags.Comments
	p.features[highlight.BlockComments] = d.Flags.BlockComments
	return p, nil
}

// dedupe drops empty and repeated keywords, keeping first-seen order.
func dedupe(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
