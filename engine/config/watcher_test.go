package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "window:\n  title: first\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: second\n"), 0o644))

	select {
	case cfg := <-w.Configs:
		assert.Equal(t, "second", cfg.Window.Title)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "window:\n  title: first\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("camera:\n  mode: sideways\n"), 0o644))

	select {
	case cfg := <-w.Configs:
		t.Fatalf("invalid config delivered: %+v", cfg)
	case err := <-w.Errors:
		assert.ErrorIs(t, err, ErrInvalidConfig)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "window:\n  title: first\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dir+"/other.yaml", []byte("not: [valid"), 0o644))

	select {
	case cfg := <-w.Configs:
		t.Fatalf("unexpected reload: %+v", cfg)
	case err := <-w.Errors:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(3 * reloadDelay):
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, open := <-w.Configs
	assert.False(t, open)
}
