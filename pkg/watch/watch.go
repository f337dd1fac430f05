// Package watch reports level files that appear or change in a directory.
//
// Editors and copy tools write a file in several steps, so a path is only
// reported once no create or write event has arrived for it during the
// quiet period. A file that is removed or renamed before it settles is not
// reported.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// LevelExt is the extension of level files.
const LevelExt = ".lev"

// DefaultQuietPeriod is how long a level file must stay unchanged before it
// is reported.
const DefaultQuietPeriod = 200 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithQuietPeriod overrides DefaultQuietPeriod.
func WithQuietPeriod(d time.Duration) Option {
	return func(w *Watcher) {
		w.quiet = d
	}
}

// pending tracks a file that changed and has not settled yet. gen tells a
// stale timer apart from the current one.
type pending struct {
	timer *time.Timer
	gen   uint64
}

type settled struct {
	path string
	gen  uint64
}

// Watcher sends the path of every level file that settled after being
// created or written on Events.
type Watcher struct {
	fs      *fsnotify.Watcher
	quiet   time.Duration
	Events  chan string
	Errors  chan error
	settled chan settled
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dirs.
func NewWatcher(dirs []string, opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		quiet:   DefaultQuietPeriod,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		settled: make(chan settled),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes Events and Errors. Files that have not
// settled are dropped.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.doneCh
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	files := make(map[string]*pending)
	defer func() {
		for _, p := range files {
			p.timer.Stop()
		}
	}()

	var gen uint64
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			switch {
			case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
				gen++
				if p, ok := files[event.Name]; ok {
					p.timer.Stop()
				}
				files[event.Name] = &pending{timer: w.settleAfter(event.Name, gen), gen: gen}
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				if p, ok := files[event.Name]; ok {
					p.timer.Stop()
					delete(files, event.Name)
				}
			}
		case s := <-w.settled:
			p, ok := files[s.path]
			if !ok || p.gen != s.gen {
				continue
			}
			delete(files, s.path)
			select {
			case w.Events <- s.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
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

func (w *Watcher) settleAfter(path string, gen uint64) *time.Timer {
	return time.AfterFunc(w.quiet, func() {
		select {
		case w.settled <- settled{path: path, gen: gen}:
		case <-w.closeCh:
		}
	})
}

// IsLevelFile reports whether path has the level file extension.
func IsLevelFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), LevelExt)
}
