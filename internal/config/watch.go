package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before a change is
// reported. A single save usually produces several events.
const reloadDebounce = 100 * time.Millisecond

// Watcher reports changes to a runner config file.
//
// The parent directory is watched rather than the file itself, so
// editors that save by rename keep being followed.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    chan struct{}
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes Events and Errors.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle = time.After(reloadDebounce)
		case <-settle:
			settle = nil
			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// WatchRunner reloads the runner config from path on every change and
// sends the result to the returned channel, with preset applied. Files
// that fail to load or validate are reported to onError and skipped.
// The channel closes when the watcher does.
func WatchRunner(w *Watcher, preset DifficultyPreset, onError func(error)) <-chan RunnerConfig {
	out := make(chan RunnerConfig, 1)
	go func() {
		defer close(out)
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					return
				}
				cfg, err := LoadRunner(w.Path())
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				if preset != "" {
					ApplyRunnerPreset(&cfg, preset)
				}
				// Keep only the newest config.
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()
	return out
}
