package ftw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func TestLoadDirSkipsDisabledFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "001-enabled.yaml", `
meta:
  name: enabled-case
tests:
  - test_title: t1
    stages:
      - stage:
          input:
            uri: "/"
`)
	writeFile(t, dir, "002-disabled.yaml", `
meta:
  name: disabled-case
  enabled: false
tests:
  - test_title: t2
    stages:
      - stage:
          input:
            uri: "/"
`)
	writeFile(t, dir, "readme.txt", "not a test file")

	files, errs := LoadDir(dir)
	require.Empty(t, errs)
	require.Len(t, files, 1)
	assert.Equal(t, "enabled-case", files[0].Meta.Name)
}

func TestLoadDirMissingDirectoryIsNotAnError(t *testing.T) {
	files, errs := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Nil(t, files)
	assert.Nil(t, errs)
}
