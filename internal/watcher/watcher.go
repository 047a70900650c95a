package watcher

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"
)

type EventKind int

const (
	EventChanged EventKind = iota
	EventMissing
)

// Snapshot captures the state a tracked file was last seen in.
type Snapshot struct {
	Hash    string
	Size    int64
	ModTime time.Time
}

// Event reports a tracked file changing on disk or going missing.
type Event struct {
	Path string
	Kind EventKind
	Prev Snapshot
	Curr Snapshot
}

type Options struct {
	// Interval between background scans. Zero disables the background
	// loop; Scan can still be driven manually.
	Interval time.Duration
	// HashUnchanged forces a content hash even when size and mtime are
	// unchanged, catching writers that preserve both.
	HashUnchanged bool
}

type entry struct {
	snap    Snapshot
	missing bool
}

// Watcher polls tracked files for external modification. Events are
// delivered on a buffered channel; a full channel drops the event rather
// than blocking the scan.
type Watcher struct {
	opts    Options
	mu      sync.Mutex
	tracked map[string]*entry
	events  chan Event
	done    chan struct{}
	once    sync.Once
}

func New(opts Options) *Watcher {
	w := &Watcher{
		opts:    opts,
		tracked: make(map[string]*entry),
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	if opts.Interval > 0 {
		go w.loop()
	}
	return w
}

// Track starts (or refreshes) watching a path with the given known
// content. Calling it right after saving suppresses the self-inflicted
// change event.
func (w *Watcher) Track(path string, content []byte) {
	snap := Snapshot{Hash: hashBytes(content), Size: int64(len(content))}
	if info, err := os.Stat(path); err == nil {
		snap.ModTime = info.ModTime()
		snap.Size = info.Size()
	}
	w.mu.Lock()
	w.tracked[path] = &entry{snap: snap}
	w.mu.Unlock()
}

// Untrack stops watching a path.
func (w *Watcher) Untrack(path string) {
	w.mu.Lock()
	delete(w.tracked, path)
	w.mu.Unlock()
}

func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Scan polls every tracked file once.
func (w *Watcher) Scan() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, e := range w.tracked {
		info, err := os.Stat(path)
		if err != nil {
			if !e.missing {
				e.missing = true
				w.emit(Event{Path: path, Kind: EventMissing, Prev: e.snap, Curr: e.snap})
			}
			continue
		}

		if e.missing {
			// Reappearance is always a change even if the content round
			// tripped, because the file was replaced underneath us.
			curr := w.snapshotFile(path, info)
			prev := e.snap
			e.snap = curr
			e.missing = false
			w.emit(Event{Path: path, Kind: EventChanged, Prev: prev, Curr: curr})
			continue
		}

		metaSame := info.ModTime().Equal(e.snap.ModTime) && info.Size() == e.snap.Size
		if metaSame && !w.opts.HashUnchanged {
			continue
		}
		curr := w.snapshotFile(path, info)
		if curr.Hash == e.snap.Hash {
			e.snap = curr
			continue
		}
		prev := e.snap
		e.snap = curr
		w.emit(Event{Path: path, Kind: EventChanged, Prev: prev, Curr: curr})
	}
}

// Stop terminates the background loop. Safe to call more than once.
func (w *Watcher) Stop() {
	w.once.Do(func() { close(w.done) })
}

func (w *Watcher) loop() {
	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.Scan()
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) snapshotFile(path string, info os.FileInfo) Snapshot {
	snap := Snapshot{ModTime: info.ModTime(), Size: info.Size()}
	data, err := os.ReadFile(path)
	if err == nil {
		snap.Hash = hashBytes(data)
		snap.Size = int64(len(data))
	}
	return snap
}

func (w *Watcher) emit(evt Event) {
	select {
	case w.events <- evt:
	default:
	}
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
