package prefabs

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports edits to spec and script files under the on-disk prefab
// directory.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changed chan string
	Errors  chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Changed: make(chan string, 16),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Changed)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			now := time.Now()
			if t, ok := seen[ev.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			seen[ev.Name] = now
			select {
			case w.Changed <- ev.Name:
			case <-w.done:
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
		case <-w.done:
			return
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}

// Live holds the most recently loaded specs. Poll swaps in a fresh copy when
// the watcher has reported a change; a broken edit keeps the previous specs.
type Live struct {
	mu      sync.Mutex
	specs   *Specs
	watcher *Watcher
}

func NewLive(specs *Specs, watcher *Watcher) *Live {
	return &Live{specs: specs, watcher: watcher}
}

func (l *Live) Specs() *Specs {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.specs
}

// Poll drains pending change notifications without blocking and reports
// whether the specs were replaced.
func (l *Live) Poll() bool {
	if l.watcher == nil {
		return false
	}
	changed := false
	for {
		select {
		case name, ok := <-l.watcher.Changed:
			if !ok {
				return l.reload(changed)
			}
			log.Printf("Prefabs: %s changed", filepath.Base(name))
			changed = true
		case err, ok := <-l.watcher.Errors:
			if ok {
				log.Printf("Prefabs: watch error: %v", err)
			}
		default:
			return l.reload(changed)
		}
	}
}

func (l *Live) reload(changed bool) bool {
	if !changed {
		return false
	}
	specs, err := LoadAll()
	if err != nil {
		log.Printf("Prefabs: reload failed, keeping previous specs: %v", err)
		return false
	}
	l.mu.Lock()
	l.specs = specs
	l.mu.Unlock()
	log.Printf("Prefabs: reloaded")
	return true
}
