package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Holder shares the current Site between request handlers. Readers always
// see a complete document.
type Holder struct {
	site atomic.Pointer[Site]
}

// NewHolder returns a holder serving site.
func NewHolder(site *Site) *Holder {
	h := &Holder{}
	h.site.Store(site)
	return h
}

// Site returns the current document.
func (h *Holder) Site() *Site {
	return h.site.Load()
}

// Replace swaps in a new document.
func (h *Holder) Replace(site *Site) {
	h.site.Store(site)
}

// debounce collapses the burst of events editors emit on save.
const debounce = 200 * time.Millisecond

// Watch reloads path into h whenever it changes, until ctx is done. A document
// that fails to parse is logged and the previous one kept.
func Watch(ctx context.Context, path string, h *Holder, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating content watcher: %w", err)
	}
	// Watch the directory: editors often replace the file rather than write it.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}

	go func() {
		defer w.Close()

		target := filepath.Clean(path)
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("content watcher error", "error", err)
			case <-fire:
				fire = nil
				site, err := LoadFile(path)
				if err != nil {
					logger.Error("content reload failed, keeping previous", "path", path, "error", err)
					continue
				}
				h.Replace(site)
				logger.Info("content reloaded", "path", path)
				for _, d := range site.Duplicates() {
					logger.Warn("duplicate content title", "list", d.List, "title", d.Key, "count", d.Count)
				}
			}
		}
	}()

	return nil
}
