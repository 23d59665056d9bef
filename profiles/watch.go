package profiles

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the watcher waits after the last profile event
// before signaling. Editors that save through temp files emit several
// filesystem events per save; one signal covers the whole burst.
const settleDelay = 100 * time.Millisecond

// Watcher turns on-disk profile edits into reload signals. It reads and
// validates nothing itself; a signal on Reloads means the host should re-run
// its profile loading and decide what to keep.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
	once sync.Once

	// Reloads receives one signal per settled burst of profile edits and
	// closes when the watcher shuts down.
	Reloads chan struct{}
	// Errors receives filesystem watch errors. Best effort: when the host
	// is not draining, errors are dropped rather than stalling the watch.
	Errors chan error
}

// NewWatcher watches the given directories for profile file changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
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
		done:    make(chan struct{}),
		Reloads: make(chan struct{}, 1),
		Errors:  make(chan error, 1),
	}
	go w.run()
	return w, nil
}

// Close stops watching. Safe to call more than once. Reloads and Errors
// close once the watch loop drains out.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// run coalesces raw filesystem events into reload signals: every relevant
// event re-arms the settle window, and the signal fires only once the burst
// goes quiet.
func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Reloads)

	var settled <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !touchesProfile(ev) {
				continue
			}
			settled = time.After(settleDelay)
		case <-settled:
			settled = nil
			select {
			case w.Reloads <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// touchesProfile reports whether a filesystem event concerns a profile file.
func touchesProfile(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(ev.Name))
	return ext == ".yaml" || ext == ".yml"
}
