// Package watch reruns generation when a spec file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// BuildFunc regenerates output. Errors are logged and do not stop watching.
type BuildFunc func(ctx context.Context) error

// Watcher rebuilds whenever its file is written or recreated.
type Watcher struct {
	path     string
	build    BuildFunc
	logger   *zap.Logger
	Debounce time.Duration
}

// New returns a Watcher for path. A nil logger disables logging.
func New(path string, build BuildFunc, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		build:    build,
		logger:   logger,
		Debounce: DefaultDebounce,
	}
}

// Run builds once, then after every change until ctx is done. It returns an
// error only if the file system watch cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create fsnotify watcher")
	}
	defer fw.Close()

	// Watch the directory: editors that save by rename drop a watch placed on
	// the file itself.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}
	w.logger.Info("watching spec", zap.String("path", w.path))

	w.rebuild(ctx)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("spec changed", zap.String("op", event.Op.String()))
				fire = time.After(w.Debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			w.rebuild(ctx)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	start := time.Now()
	if err := w.build(ctx); err != nil {
		w.logger.Error("generation failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("regenerated", zap.String("path", w.path), zap.Duration("took", time.Since(start)))
}
