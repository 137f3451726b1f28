package fileutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// WaitOptions configures WaitForFile.
type WaitOptions struct {
	// Timeout bounds the whole wait. Defaults to 30s. The context passed
	// to WaitForFile can end the wait earlier.
	Timeout time.Duration
	// PollInterval is the fallback stat cadence used alongside the
	// directory watch. Defaults to 250ms.
	PollInterval time.Duration
	// StableFor requires the file size to hold steady this long before
	// the wait completes, so partially written downloads are not picked
	// up. Zero disables the stability check.
	StableFor time.Duration
}

// DefaultWaitOptions waits up to 30 seconds, polling every 250ms, with a
// 500ms size-stability window.
func DefaultWaitOptions() WaitOptions {
	return WaitOptions{
		Timeout:      30 * time.Second,
		PollInterval: 250 * time.Millisecond,
		StableFor:    500 * time.Millisecond,
	}
}

func (o WaitOptions) normalize() WaitOptions {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 250 * time.Millisecond
	}
	return o
}

// WaitForFile blocks until path exists (and, with StableFor set, has a
// stable size), the timeout elapses, or ctx is canceled. The parent
// directory is watched with fsnotify when possible; a rate-limited stat
// poll covers filesystems where watches do not fire.
func WaitForFile(ctx context.Context, path string, opts WaitOptions) error {
	opts = opts.normalize()
	resolved := resolvePath(path)

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	events := make(chan struct{}, 1)
	if watcher, err := fsnotify.NewWatcher(); err == nil {
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(resolved)); err == nil {
			go func() {
				for {
					select {
					case ev, ok := <-watcher.Events:
						if !ok {
							return
						}
						if ev.Name == resolved {
							select {
							case events <- struct{}{}:
							default:
							}
						}
					case <-ctx.Done():
						return
					}
				}
			}()
		}
	}

	// Watch events wake the loop immediately; the limiter caps the stat
	// rate under event storms (a download writing in many small chunks
	// fires one event per chunk).
	limiter := rate.NewLimiter(rate.Every(opts.PollInterval/2), 1)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	var lastSize int64 = -1
	var stableSince time.Time

	for {
		if info, err := os.Stat(resolved); err == nil && !info.IsDir() {
			if opts.StableFor <= 0 {
				return nil
			}
			now := time.Now()
			if info.Size() != lastSize {
				lastSize = info.Size()
				stableSince = now
			} else if now.Sub(stableSince) >= opts.StableFor {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return fmt.Errorf("timed out waiting for %s", path)
			}
			return ctx.Err()
		case <-events:
			if err := limiter.Wait(ctx); err != nil {
				if ctx.Err() == context.DeadlineExceeded {
					return fmt.Errorf("timed out waiting for %s", path)
				}
				return ctx.Err()
			}
		case <-ticker.C:
		}
	}
}
