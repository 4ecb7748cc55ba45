// Package scribe is a terminal text editor with incremental syntax
// highlighting. The editing core lives in the buffer, highlight and
// filetype packages; cmd/scribe wires them into a Bubble Tea program.
package scribe

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the line printed by `scribe --version`.
func Banner() string {
	return fmt.Sprintf("scribe v%s", Version())
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
