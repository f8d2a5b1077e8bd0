package operators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternMatchFindsPhraseCaseInsensitive(t *testing.T) {
	r, err := patternMatch([]byte("the QUICK brown fox"), "quick slow")
	require.NoError(t, err)
	assert.True(t, r.Matched)
	assert.Contains(t, r.Captures, "quick")
}

func TestPatternMatchNoHit(t *testing.T) {
	r, err := patternMatch([]byte("nothing interesting here"), "sqlmap nmap")
	require.NoError(t, err)
	assert.False(t, r.Matched)
}

func TestPatternMatchEmptyPhraseList(t *testing.T) {
	r, err := patternMatch([]byte("anything"), "")
	require.NoError(t, err)
	assert.False(t, r.Matched)
}

func TestPatternMatchFromFileSkipsBlankLinesAndComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrases.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n# a comment\nsqlmap\n\nnmap\n"), 0o644))

	r, err := patternMatchFromFile([]byte("request from sqlmap scanner"), path)
	require.NoError(t, err)
	assert.True(t, r.Matched)
	assert.Contains(t, r.Captures, "sqlmap")
}

func TestPatternMatchFromFileMissingFileErrors(t *testing.T) {
	_, err := patternMatchFromFile([]byte("x"), "/nonexistent/path/phrases.txt")
	assert.Error(t, err)
}

func TestLoadPhraseFileSkipsBlankAndCommentLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrases.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo\n# comment\n\nbar\n"), 0o644))

	phrases, err := loadPhraseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, phrases)
}
