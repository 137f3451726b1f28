package fileutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForFile_AlreadyExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ready.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	opts := DefaultWaitOptions()
	opts.StableFor = 0

	err := WaitForFile(context.Background(), path, opts)
	assert.NoError(t, err)
}

func TestWaitForFile_AppearsLater(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "download.bin")

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = os.WriteFile(path, []byte("payload"), 0o644)
	}()

	opts := WaitOptions{Timeout: 5 * time.Second, PollInterval: 50 * time.Millisecond}
	err := WaitForFile(context.Background(), path, opts)
	assert.NoError(t, err)
}

func TestWaitForFile_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.txt")

	opts := WaitOptions{Timeout: 200 * time.Millisecond, PollInterval: 50 * time.Millisecond}
	err := WaitForFile(context.Background(), path, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestWaitForFile_ContextCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.txt")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	opts := WaitOptions{Timeout: 10 * time.Second, PollInterval: 50 * time.Millisecond}
	err := WaitForFile(ctx, path, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitForFile_WaitsForStableSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "growing.bin")

	// Simulate a chunked download: the file grows for a while, then
	// stops.
	go func() {
		f, err := os.Create(path)
		if err != nil {
			return
		}
		defer f.Close()
		for i := 0; i < 5; i++ {
			_, _ = f.Write(make([]byte, 1024))
			_ = f.Sync()
			time.Sleep(60 * time.Millisecond)
		}
	}()

	opts := WaitOptions{
		Timeout:      5 * time.Second,
		PollInterval: 30 * time.Millisecond,
		StableFor:    200 * time.Millisecond,
	}
	start := time.Now()
	err := WaitForFile(context.Background(), path, opts)
	require.NoError(t, err)

	// Completion requires the growth phase plus the stability window.
	assert.Greater(t, time.Since(start), 300*time.Millisecond)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5*1024), info.Size())
}
