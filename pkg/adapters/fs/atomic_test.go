package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "1_note.txt")

		require.NoError(t, writeFileAtomic(target, []byte("hello atomic\n"), 0644))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "hello atomic\n", string(got))
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "1_note.txt")
		require.NoError(t, os.WriteFile(target, []byte("initial"), 0644))

		require.NoError(t, writeFileAtomic(target, []byte("overwritten"), 0644))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "overwritten", string(got))
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeFileAtomic(filepath.Join(dir, "1_a.txt"), []byte("a"), 0644))
		require.NoError(t, writeFileAtomic(filepath.Join(dir, "1_a.txt"), []byte("b"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover %s", e.Name())
		}
		assert.Len(t, entries, 1)
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "missing", "1_a.txt")
		err := writeFileAtomic(target, []byte("fail"), 0644)

		assert.ErrorIs(t, err, core.ErrIO)
		var ioErr *core.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "create temp", ioErr.Op)
		assert.Equal(t, target, ioErr.Path)
	})

	t.Run("Rename Failure Cleans Up", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "1_a.txt")
		require.NoError(t, os.Mkdir(target, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "occupied"), nil, 0644))

		err := writeFileAtomic(target, []byte("x"), 0644)
		var ioErr *core.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "rename", ioErr.Op)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file removed after failed rename")
	})
}
