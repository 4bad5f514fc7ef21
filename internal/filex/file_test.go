package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o660))
	return path
}

func TestReadSource_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.tql", "\nmatch $x isa person;\n\n")

	got, err := ReadSource(path)
	require.NoError(t, err)
	require.Equal(t, "match $x isa person;", got)
}

func TestReadSource_MissingFile(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "absent.tql"))
	require.Error(t, err)
}

func TestReadSources_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.tql", "first")
	b := writeFile(t, dir, "b.tql", "second")

	got, err := ReadSources([]string{b, a})
	require.NoError(t, err)
	require.Equal(t, []string{"second", "first"}, got)
}

func TestReadSources_StopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.tql", "first")

	_, err := ReadSources([]string{a, filepath.Join(dir, "absent.tql")})
	require.Error(t, err)
}
