package repositories

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	apperrors "bvdu-bank/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeNumber(line string) (int, error) {
	return strconv.Atoi(line)
}

func TestLoadTable_MissingFileIsEmpty(t *testing.T) {
	rows, err := LoadTable(filepath.Join(t.TempDir(), "absent.txt"), decodeNumber, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadTable_StopsAtFirstMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n\nthree\n4\n"), 0o644))

	rows, err := LoadTable(path, decodeNumber, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, rows)
}

func TestLoadTable_UnreadablePathIsPersistenceError(t *testing.T) {
	// a directory cannot be scanned as a table
	_, err := LoadTable(t.TempDir(), decodeNumber, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestSaveTable_ReplacesContentAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	err := SaveTable(path, []int{3, 1, 2}, strconv.Itoa)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3\n1\n2\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestSaveTable_FailureKeepsOldFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := SaveTable(path, []int{1}, strconv.Itoa)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestAppendRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	require.NoError(t, AppendRecord(path, "a"))
	require.NoError(t, AppendRecord(path, "b"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestAppendRecord_MissingDirectory(t *testing.T) {
	err := AppendRecord(filepath.Join(t.TempDir(), "missing", "log.txt"), "a")
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestTable_OrderedRemoval(t *testing.T) {
	tbl := newTable[string, int]()
	one, two, three := 1, 2, 3
	tbl.put("a", &one)
	tbl.put("b", &two)
	tbl.put("c", &three)

	assert.True(t, tbl.remove("b"))
	assert.False(t, tbl.remove("b"))

	values := tbl.values()
	require.Len(t, values, 2)
	assert.Equal(t, 1, *values[0])
	assert.Equal(t, 3, *values[1])
}
