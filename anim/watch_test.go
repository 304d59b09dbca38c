package anim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	assert.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "coastline.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("name: coastline\n"), 0644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for a new spec file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	assert.NoError(t, err)
	defer w.Close()

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w, err := NewWatcher(t.TempDir())
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
