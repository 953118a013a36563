package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBashCommandPlain(t *testing.T) {
	assert.Equal(t, "rm -rf /tmp/x", NormalizeBashCommand("rm -rf /tmp/x"))
}

func TestNormalizeBashCommandStripsPipeline(t *testing.T) {
	assert.Equal(t, "grep foo", NormalizeBashCommand("cat file.txt | grep foo"))
}

func TestNormalizeBashCommandIgnoresQuotedPipe(t *testing.T) {
	assert.Equal(t, `echo "a | b"`, NormalizeBashCommand(`echo "a | b"`))
}

func TestNormalizeBashCommandSplitsAfterDoublePipeOr(t *testing.T) {
	result := NormalizeBashCommand("false || echo fallback")
	assert.Equal(t, "echo fallback", result)
}

func TestNormalizeBashCommandStripsEnvPrefix(t *testing.T) {
	assert.Equal(t, "rm -rf /tmp", NormalizeBashCommand("env FOO=bar BAZ=qux rm -rf /tmp"))
}

func TestNormalizeBashCommandStripsEnvQuotedValue(t *testing.T) {
	assert.Equal(t, "rm -rf /tmp", NormalizeBashCommand(`env FOO="bar baz" rm -rf /tmp`))
}

func TestNormalizeBashCommandStripsNestedShell(t *testing.T) {
	assert.Equal(t, "rm -rf /tmp", NormalizeBashCommand(`bash -c 'rm -rf /tmp'`))
}

func TestNormalizeBashCommandStripsLeadingAssignments(t *testing.T) {
	assert.Equal(t, "rm -rf /tmp", NormalizeBashCommand("FOO=bar rm -rf /tmp"))
}

func TestNormalizeBashCommandTruncatesTo80Runes(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "x"
	}
	result := NormalizeBashCommand(long)
	assert.Len(t, []rune(result), 80)
}

func TestNormalizeBashCommandCombinedPipeline(t *testing.T) {
	result := NormalizeBashCommand(`env X=1 bash -c "rm -rf /" | cat`)
	assert.Equal(t, "cat", result)
}
