package fs_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// waitForEvent reads events until one for id with type want arrives.
func waitForEvent(t *testing.T, events <-chan core.Event, id int, want core.EventType) core.Event {
	t.Helper()

	timeout := time.After(3 * time.Second)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "event channel closed early")
			if e.ID == id && e.Type == want {
				return e
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s on note %d", want, id)
		}
	}
}

func TestWatch_ReportsNoteChanges(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)

	n, err := repo.Create(ctx, "Watched Note", []string{"hi"})
	require.NoError(t, err)

	e := waitForEvent(t, events, n.ID, core.EventCreate)
	assert.Equal(t, "Watched Note", e.Title)
	assert.Equal(t, n.Filename, e.Filename)

	require.NoError(t, repo.Delete(ctx, n.ID))
	waitForEvent(t, events, n.ID, core.EventDelete)
}

func TestWatch_UpdateIsModify(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n, err := repo.Create(ctx, "Existing", []string{"a"})
	require.NoError(t, err)

	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)

	_, err = repo.Update(ctx, n.ID, []string{"b"})
	require.NoError(t, err)

	timeout := time.After(3 * time.Second)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "event channel closed early")
			require.NotEqual(t, core.EventCreate, e.Type, "rewrite of an existing note reported as %s", e)
			if e.Type == core.EventModify {
				assert.Equal(t, n.ID, e.ID)
				assert.Equal(t, n.Filename, e.Filename)
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for MODIFY")
		}
	}
}

func TestWatch_CreateThenUpdate(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)

	n, err := repo.Create(ctx, "Fresh", nil)
	require.NoError(t, err)
	waitForEvent(t, events, n.ID, core.EventCreate)

	_, err = repo.Update(ctx, n.ID, []string{"edited"})
	require.NoError(t, err)
	waitForEvent(t, events, n.ID, core.EventModify)

	require.NoError(t, repo.Delete(ctx, n.ID))
	waitForEvent(t, events, n.ID, core.EventDelete)
}

func TestWatch_PatternFilters(t *testing.T) {
	repo, dir := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "2_*")
	require.NoError(t, err)

	writeRaw(t, dir, "1_skip.txt", "x")
	writeRaw(t, dir, "2_keep.txt", "y")

	e := waitForEvent(t, events, 2, core.EventCreate)
	assert.Equal(t, "2_keep.txt", e.Filename)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(3 * time.Second):
		t.Fatal("event channel not closed after cancel")
	}

	assert.Eventually(t, func() bool {
		state := repo.State().(fs.RepositoryState)
		return !state.WatcherActive
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatch_Errors(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.Watch(context.Background(), "[")
	assert.Error(t, err)

	missing := fs.NewRepository(fs.Config{Path: filepath.Join(t.TempDir(), "gone")})
	_, err = missing.Watch(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrIO)
}
