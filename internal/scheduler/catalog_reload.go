package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MrSnakeDoc/faves/internal/catalog"
	"github.com/MrSnakeDoc/faves/internal/index"
	"github.com/MrSnakeDoc/faves/internal/logger"
	"github.com/MrSnakeDoc/faves/internal/metrics"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading.
const DefaultDebounce = 250 * time.Millisecond

// CatalogReloader installs catalog sets into the snapshot: once on Start,
// then on every manual trigger and, when a directory is watched, after file
// changes. A failed reload keeps the previous set.
type CatalogReloader struct {
	source        catalog.Source
	snapshot      *index.Snapshot
	metrics       *metrics.Metrics
	logger        logger.Logger
	watchDir      string
	debounce      time.Duration
	manualTrigger chan struct{}

	mu      sync.Mutex
	running bool
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// ReloaderOptions configures a CatalogReloader.
type ReloaderOptions struct {
	// WatchDir enables the file watcher on that directory and its
	// subdirectories. Empty disables watching.
	WatchDir string
	Debounce time.Duration
	// ManualTrigger receives reload requests, typically from POST /_/reload.
	ManualTrigger chan struct{}
	Metrics       *metrics.Metrics
}

// NewCatalogReloader creates a new catalog reloader
func NewCatalogReloader(source catalog.Source, snap *index.Snapshot, log logger.Logger, opts ReloaderOptions) *CatalogReloader {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &CatalogReloader{
		source:        source,
		snapshot:      snap,
		metrics:       opts.Metrics,
		logger:        log,
		watchDir:      opts.WatchDir,
		debounce:      opts.Debounce,
		manualTrigger: opts.ManualTrigger,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Start loads the catalog and then listens for reload triggers in the
// background. The initial load error is returned as is: without a catalog
// there is nothing to serve.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if cr.running {
		return nil
	}

	if err := cr.Reload(); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	var events <-chan fsnotify.Event
	var errs <-chan error
	if cr.watchDir != "" {
		w, err := cr.watch()
		if err != nil {
			return err
		}
		cr.watcher = w
		events, errs = w.Events, w.Errors
	}

	cr.running = true
	go cr.run(ctx, events, errs)
	return nil
}

// Stop stops the reloader and waits for its goroutine to exit.
func (cr *CatalogReloader) Stop() {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if !cr.running {
		return
	}
	cr.running = false

	close(cr.stopCh)
	<-cr.doneCh

	if cr.watcher != nil {
		if err := cr.watcher.Close(); err != nil {
			cr.logger.Warn("failed to close catalog watcher", logger.Error(err))
		}
	}
}

// Reload loads a new set and swaps it into the snapshot.
func (cr *CatalogReloader) Reload() error {
	start := time.Now()

	set, err := cr.source.Load()
	if err != nil {
		cr.metrics.ObserveReload(err, 0)
		cr.logger.Error("catalog reload failed, keeping previous catalog",
			logger.Error(err),
			logger.Int("current_categories", cr.snapshot.Count()))
		return err
	}

	cr.snapshot.Replace(set)
	cr.metrics.ObserveReload(nil, set.Len())

	cr.logger.Info("catalog loaded",
		logger.Int("categories", set.Len()),
		logger.Int("invalid_entries", cr.snapshot.InvalidEntries()),
		logger.Duration("took", time.Since(start)))
	return nil
}

func (cr *CatalogReloader) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	defer close(cr.doneCh)

	// A stopped timer; armed by file events.
	debounce := time.NewTimer(time.Hour)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-cr.stopCh:
			return

		case <-cr.manualTrigger:
			cr.logger.Info("manual catalog reload triggered")
			_ = cr.Reload()

		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if cr.relevant(event) {
				cr.logger.Debug("catalog file changed",
					logger.String("path", event.Name),
					logger.String("op", event.Op.String()))
				debounce.Reset(cr.debounce)
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			cr.logger.Warn("catalog watcher error", logger.Error(err))

		case <-debounce.C:
			_ = cr.Reload()
		}
	}
}

// relevant reports whether an event can change the catalog. New
// subdirectories are added to the watch list on the way.
func (cr *CatalogReloader) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := cr.watcher.Add(event.Name); err != nil {
				cr.logger.Warn("failed to watch new directory",
					logger.String("path", event.Name), logger.Error(err))
			}
			return true
		}
	}
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// watch creates a watcher on watchDir and every directory below it.
func (cr *CatalogReloader) watch() (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create catalog watcher: %w", err)
	}

	err = filepath.WalkDir(cr.watchDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(p)
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("watch %s: %w", cr.watchDir, err), w.Close())
	}

	cr.logger.Info("watching catalog directory",
		logger.String("dir", cr.watchDir),
		logger.Int("dirs", len(w.WatchList())))
	return w, nil
}
