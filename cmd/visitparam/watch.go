package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchFile calls run once, then again each time path is written or
// replaced, until ctx is done. Errors from run are logged, not returned.
//
// The parent directory is watched so editors that replace the file by rename
// keep triggering runs.
func watchFile(ctx context.Context, logger *slog.Logger, path string, run func() error) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	if err := run(); err != nil {
		logger.WarnContext(ctx, "Extraction failed", "path", path, "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "Stopped watching", "path", path)
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isChangeOf(event, path) {
				continue
			}
			logger.DebugContext(ctx, "Input changed", "path", path, "op", event.Op.String())
			if err := run(); err != nil {
				logger.WarnContext(ctx, "Extraction failed", "path", path, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "Error watching input", "err", err)
		}
	}
}

func isChangeOf(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
