package watch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuiet = 100 * time.Millisecond

func newTestWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher([]string{dir}, WithQuietPeriod(testQuiet))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func nextEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case got := <-w.Events:
		return got
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for level event")
	}
	return ""
}

func assertNoEvent(t *testing.T, w *Watcher, wait time.Duration) {
	t.Helper()
	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(wait):
	}
}

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile("QWQUU001.LEV"))
	assert.True(t, IsLevelFile("/levels/warm up.lev"))
	assert.False(t, IsLevelFile("replay.rec"))
	assert.False(t, IsLevelFile("lev"))
}

func TestWatcher_ReportsLevelFiles(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	levelPath := filepath.Join(dir, "new.lev")
	require.NoError(t, os.WriteFile(levelPath, []byte("POT14"), 0644))

	assert.Equal(t, levelPath, nextEvent(t, w))
	assertNoEvent(t, w, 3*testQuiet)
}

func TestWatcher_ReportsFileOnceWritten(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	content := bytes.Repeat([]byte{0xAB}, 1500)
	levelPath := filepath.Join(dir, "copied.lev")

	f, err := os.Create(levelPath)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, levelPath, nextEvent(t, w))
	info, err := os.Stat(levelPath)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), info.Size())

	assertNoEvent(t, w, 3*testQuiet)
}

func TestWatcher_RemovedBeforeSettling(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	levelPath := filepath.Join(dir, "temp.lev")
	require.NoError(t, os.WriteFile(levelPath, []byte("POT14"), 0644))
	require.NoError(t, os.Remove(levelPath))

	assertNoEvent(t, w, 3*testQuiet)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher([]string{t.TempDir()})
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher([]string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
