// Package ignore decides whether candidate paths are excluded from
// scanning based on user-supplied glob patterns.
package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Matcher holds a compiled set of ignore patterns. All patterns are
// compiled up front so that a syntactically invalid glob fails the run
// before any file is scanned, rather than being skipped mid-scan.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles the given glob patterns into a Matcher. It
// returns an error naming the offending pattern if any pattern is not a
// valid glob.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{globs: make([]glob.Glob, 0, len(patterns))}
	for _, pat := range patterns {
		g, err := glob.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pat, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether path is excluded. Each pattern is tested twice,
// against the full path as given and against the base name alone; a hit
// on either test excludes the file. The first matching pattern
// short-circuits, and an empty pattern list never excludes anything.
func (m *Matcher) Match(path string) bool {
	base := filepath.Base(path)
	for _, g := range m.globs {
		if g.Match(path) || g.Match(base) {
			return true
		}
	}
	return false
}
