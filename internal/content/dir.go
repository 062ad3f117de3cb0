package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"kbportal/internal/observability"

	"github.com/fsnotify/fsnotify"
)

const docExt = ".md"

// DirSource serves <id>.md files from a directory and reloads them when
// the directory changes.
type DirSource struct {
	dir    string
	logger *observability.Logger

	mu   sync.RWMutex
	docs map[string]string

	fsw  *fsnotify.Watcher
	done chan struct{}
}

func NewDirSource(dir string, logger *observability.Logger) (*DirSource, error) {
	d := &DirSource{
		dir:    dir,
		logger: logger,
		docs:   make(map[string]string),
		done:   make(chan struct{}),
	}

	if err := d.reload(); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	d.fsw = fsw

	go d.watch()

	return d, nil
}

func (d *DirSource) Fetch(ctx context.Context, id string) (Content, error) {
	if err := ctx.Err(); err != nil {
		return Content{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.docs[id]
	if !ok {
		return Content{Content: NotFoundContent}, nil
	}
	return Content{Content: c}, nil
}

func (d *DirSource) Close() error {
	close(d.done)
	return d.fsw.Close()
}

func (d *DirSource) watch() {
	for {
		select {
		case <-d.done:
			return
		case ev, ok := <-d.fsw.Events:
			if !ok {
				return
			}
			if filepath.Ext(ev.Name) != docExt {
				continue
			}
			if err := d.reload(); err != nil {
				d.logger.Error("content reload failed", "dir", d.dir, "err", err)
				continue
			}
			d.logger.Debug("content reloaded", "file", ev.Name, "op", ev.Op.String())
		case err, ok := <-d.fsw.Errors:
			if !ok {
				return
			}
			d.logger.Error("content watcher error", "err", err)
		}
	}
}

func (d *DirSource) reload() error {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}

	docs := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != docExt {
			continue
		}

		b, err := os.ReadFile(filepath.Join(d.dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		docs[strings.TrimSuffix(e.Name(), docExt)] = string(b)
	}

	d.mu.Lock()
	d.docs = docs
	d.mu.Unlock()

	return nil
}
