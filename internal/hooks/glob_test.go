package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchGlobWildcard(t *testing.T) {
	assert.True(t, MatchGlob("Bash:rm *", "Bash:rm -rf /tmp"))
	assert.False(t, MatchGlob("Bash:rm *", "Bash:ls -la"))
}

func TestMatchGlobExact(t *testing.T) {
	assert.True(t, MatchGlob("Write", "Write"))
	assert.False(t, MatchGlob("Write", "Read"))
}

func TestMatchGlobCharacterClass(t *testing.T) {
	assert.True(t, MatchGlob("Bash:rm -[rR]f *", "Bash:rm -rf /tmp"))
}

func TestMatchGlobFallsBackToLiteralPrefixOnCompileFailure(t *testing.T) {
	// An unterminated character class is a compileGlob error.
	assert.True(t, MatchGlob("Bash:rm [*", "Bash:rm [anything"))
	assert.False(t, MatchGlob("Bash:rm [*", "Bash:ls"))
}

func TestFirstMatchingPatternRespectsOrder(t *testing.T) {
	patterns := []string{"Bash:rm -rf /tmp/*", "Bash:rm *"}
	p, ok := FirstMatchingPattern(patterns, "Bash:rm -rf /tmp/x")
	assert.True(t, ok)
	assert.Equal(t, "Bash:rm -rf /tmp/*", p)
}

func TestFirstMatchingPatternNoMatch(t *testing.T) {
	_, ok := FirstMatchingPattern([]string{"Write"}, "Read")
	assert.False(t, ok)
}
