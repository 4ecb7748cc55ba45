package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/scribe/editor"
)

const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// watchFile reports changes to path until ctx is done. The parent directory is
// watched so that editors which save by rename are still seen.
func watchFile(ctx context.Context, path string, notify func(editor.DiskChangedMsg), log *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&watchOps == 0 {
					continue
				}
				log.Debug("file event", "path", ev.Name, "op", ev.Op.String())
				notify(editor.DiskChangedMsg{Path: path})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watch error", "path", path, "err", err)
			}
		}
	}()
	return nil
}
