package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-meal-log/internal/logger"
)

const (
	csvExt = ".csv"

	// ImportedSuffix is appended to a file that was imported.
	ImportedSuffix = ".imported"
	// FailedSuffix is appended to a file that could not be parsed.
	FailedSuffix = ".failed"

	defaultSettleInterval = 500 * time.Millisecond
)

// Watcher imports every *.csv file that appears in a drop directory.
//
// A file is imported once no event has been seen for it during the settle
// interval, then renamed with ImportedSuffix (or FailedSuffix) so it is not
// picked up again. Files already present when Run starts are imported too.
type Watcher struct {
	dir      string
	importer *Importer
	settle   time.Duration
	logger   *logger.Logger
}

func NewWatcher(dir string, importer *Importer, logger *logger.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		importer: importer,
		settle:   defaultSettleInterval,
		logger:   logger,
	}
}

// Run watches the directory until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fsw.Close()

	if err = fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info().Str("func", "*Watcher.Run").Str("dir", w.dir).Msg("watching import directory")

	pending := make(map[string]time.Time)
	if err = w.scan(pending); err != nil {
		return err
	}

	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if isCSV(event.Name) && (event.Has(fsnotify.Create) || event.Has(fsnotify.Write)) {
				pending[event.Name] = time.Now()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "*Watcher.Run").Msg("fs watcher error")
		case now := <-ticker.C:
			for path, seen := range pending {
				if now.Sub(seen) < w.settle {
					continue
				}
				delete(pending, path)
				w.process(ctx, path)
			}
		}
	}
}

func (w *Watcher) scan(pending map[string]time.Time) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read import directory: %w", err)
	}

	// backdated so the first tick picks them up
	seen := time.Now().Add(-w.settle)
	for _, e := range entries {
		if !e.IsDir() && isCSV(e.Name()) {
			pending[filepath.Join(w.dir, e.Name())] = seen
		}
	}
	return nil
}

func (w *Watcher) process(ctx context.Context, path string) {
	log := w.logger.With().Str("func", "*Watcher.process").Str("path", path).Logger()

	saved, failed, err := w.importer.ImportFile(ctx, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// left in place for the next run
		return
	case err != nil:
		log.Error().Err(err).Msg("import failed")
		w.rename(path, path+FailedSuffix)
		return
	}

	log.Info().Int("saved", saved).Int("failed", failed).Msg("imported drop file")
	w.rename(path, path+ImportedSuffix)
}

func (w *Watcher) rename(from, to string) {
	if err := os.Rename(from, to); err != nil {
		w.logger.Err(err).Str("func", "*Watcher.rename").Str("path", from).Msg("rename processed file")
	}
}

func isCSV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), csvExt)
}
