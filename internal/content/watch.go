package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"triptogether_echo/internal/models"
)

// Holder serves the current content to renderers. Content is swapped as a
// whole so a render never sees a half-updated document.
type Holder struct {
	current atomic.Pointer[models.SiteContent]
}

// NewHolder wraps already loaded content
func NewHolder(site *models.SiteContent) *Holder {
	h := &Holder{}
	h.current.Store(site)
	return h
}

// Get returns the content snapshot in use
func (h *Holder) Get() *models.SiteContent {
	return h.current.Load()
}

// Watch reloads the content file whenever it changes, until ctx is done.
// A file that fails to parse is logged and the previous content stays in place.
func (h *Holder) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Editors often replace the file, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				site, err := Load(path)
				if err != nil {
					log.WithError(err).Warn("Content reload failed, keeping previous content")
					continue
				}
				h.current.Store(site)
				log.WithField("file", path).Info("Content reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warn("Content watcher error")
			}
		}
	}()

	return nil
}
