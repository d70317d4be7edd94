package portfolio

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mortenator/portfolio/routes"
)

// watchDebounce groups the burst of events an editor save or git checkout
// produces into one rebuild.
const watchDebounce = 150 * time.Millisecond

// WatchContent calls onChange after every burst of filesystem changes under
// cfg.ContentDir, including directories created after the watch started. A
// symlinked content root is resolved first, the same root route discovery
// reads. It logs through cfg.Logger and blocks until ctx is done.
func WatchContent(ctx context.Context, cfg routes.Config, onChange func()) error {
	logger := cfg.Log()

	dir, err := filepath.EvalSymlinks(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("portfolio: watch %s: %w", cfg.ContentDir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("portfolio: fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, dir, logger); err != nil {
		return fmt.Errorf("portfolio: watch %s: %w", dir, err)
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoreEvent(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Lstat(ev.Name); err == nil && fi.IsDir() {
					_ = addDirsRecursive(watcher, ev.Name, logger)
				}
			}
			logger.Debug("content change detected", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(watchDebounce)
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("content watcher error", slog.Any("error", err))
		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// addDirsRecursive watches root and every directory below it. Symlinked
// directories are not followed, matching route discovery.
func addDirsRecursive(w *fsnotify.Watcher, root string, logger *slog.Logger) error {
	if _, err := os.Stat(root); err != nil {
		return err
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(p); err != nil {
				logger.Warn("watch add failed", slog.String("dir", p), slog.Any("error", err))
			}
		}
		return nil
	})
}

// ignoreEvent filters hidden and editor swap files.
func ignoreEvent(p string) bool {
	base := filepath.Base(p)
	return strings.HasPrefix(base, ".") ||
		strings.HasPrefix(base, "#") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp")
}
