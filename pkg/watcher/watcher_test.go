package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globesim.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0644))

	fw, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 10)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0644))
	}
	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0644))

	select {
	case p := <-changed:
		assert.Equal(t, path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}

	// the burst collapses into a single callback
	select {
	case p := <-changed:
		t.Fatalf("unexpected second notification for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "nope", "globesim.yaml")}, func(string) {})
	assert.Error(t, err)
}
