package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/adapters/fs"
)

func TestInit(t *testing.T) {
	t.Run("Creates Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "notes")

		repo, err := platform.Init(dir)
		require.NoError(t, err)

		fsRepo, ok := repo.(*fs.Repository)
		require.True(t, ok, "expected fs repository")
		assert.Equal(t, dir, fsRepo.Path)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("MustExist Fails if Directory Missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")

		_, err := platform.Init(dir, platform.WithMustExist(true))
		assert.Error(t, err)
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := platform.Init(t.TempDir(), platform.WithAdapter("s3"))
		assert.EqualError(t, err, "unknown adapter: s3")
	})

	t.Run("Injected Repository Skips Adapter", func(t *testing.T) {
		injected := fs.NewRepository(fs.Config{Path: t.TempDir()})

		repo, err := platform.Init("ignored", platform.WithRepository(injected), platform.WithAdapter("s3"))
		require.NoError(t, err)
		assert.Same(t, injected, repo)
	})
}

func TestNew(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")

	svc, err := platform.New(dir, platform.WithSortByName(true))
	require.NoError(t, err)

	ctx := context.Background()
	for _, title := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		_, err := svc.CreateNote(ctx, title, nil)
		require.NoError(t, err)
	}

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 10)
	assert.Equal(t, 10, notes[1].ID, "name order puts 10_ before 2_")
}
