package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyPatternListNeverExcludes(t *testing.T) {
	m, err := NewMatcher(nil)
	require.NoError(t, err)

	assert.False(t, m.Match("anything.txt"))
	assert.False(t, m.Match("deeply/nested/path.go"))
}

func TestMatchFullPath(t *testing.T) {
	m, err := NewMatcher([]string{"src/*.go"})
	require.NoError(t, err)

	assert.True(t, m.Match("src/main.go"))
	assert.False(t, m.Match("docs/readme.md"))
}

// A pattern matching only the base name excludes the file regardless of
// its directory prefix.
func TestMatchBaseName(t *testing.T) {
	m, err := NewMatcher([]string{"*.log"})
	require.NoError(t, err)

	assert.True(t, m.Match("debug.log"))
	assert.True(t, m.Match("var/log/app/debug.log"))
	assert.True(t, m.Match("some/other/tree/trace.log"))
	assert.False(t, m.Match("var/log/app/debug.txt"))
}

func TestMatchExactName(t *testing.T) {
	m, err := NewMatcher([]string{"LICENSE"})
	require.NoError(t, err)

	assert.True(t, m.Match("LICENSE"))
	assert.True(t, m.Match("vendor/some-dep/LICENSE"))
	assert.False(t, m.Match("LICENSE.md"))
}

func TestFirstMatchWins(t *testing.T) {
	m, err := NewMatcher([]string{"*.tmp", "*.log", "*.bak"})
	require.NoError(t, err)

	assert.True(t, m.Match("scratch.log"))
	assert.True(t, m.Match("old.bak"))
	assert.False(t, m.Match("keep.txt"))
}

func TestInvalidPatternFailsCompilation(t *testing.T) {
	_, err := NewMatcher([]string{"[unclosed"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
	assert.Contains(t, err.Error(), "[unclosed")
}

// One bad pattern poisons the whole set: nothing is compiled lazily, so
// the failure surfaces before any file is tested.
func TestInvalidPatternAmongValidOnes(t *testing.T) {
	_, err := NewMatcher([]string{"*.log", "[", "*.tmp"})
	require.Error(t, err)
}
