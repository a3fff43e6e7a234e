package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events editors produce for a single save.
const reloadDelay = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
// Successfully reloaded configs are delivered on Configs; only the newest pending config is kept,
// so a consumer that drains once per frame never falls behind. Load failures are delivered on Errors.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string

	Configs chan *Config
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the config file at path. The containing directory is watched so
// editors that replace the file on save are followed.
//
// Parameters:
//   - path: path to the YAML config file
//
// Returns:
//   - *Watcher: the running watcher; call Close to stop it
//   - error: error if the watch cannot be established
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Configs: make(chan *Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Configs and Errors. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDelay)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// a rename without a create leaves no file behind until the editor finishes
		w.sendError(err)
		return
	}
	slog.Info("config reloaded", "path", w.path)

	select {
	case w.Configs <- cfg:
	default:
		select {
		case <-w.Configs:
		default:
		}
		w.Configs <- cfg
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
		slog.Warn("config watcher error dropped", "path", w.path, "error", err)
	}
}
