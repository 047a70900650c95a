package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hienpham123/tabletify/internal/errdef"
)

// Entry records one opened data source.
type Entry struct {
	Path     string    `json:"path"`
	Kind     string    `json:"kind"` // csv, sqlite, demo
	Table    string    `json:"table,omitempty"`
	Rows     int       `json:"rows"`
	OpenedAt time.Time `json:"openedAt"`
}

// RecentStore is a file backed list of recently opened sources, newest
// first, bounded to maxEntries.
type RecentStore struct {
	path       string
	maxEntries int
	entries    []Entry
	mu         sync.RWMutex
	loaded     bool
}

func NewRecentStore(path string, maxEntries int) *RecentStore {
	if maxEntries <= 0 {
		maxEntries = 20
	}
	return &RecentStore{path: path, maxEntries: maxEntries}
}

// Load reads the persisted file, tolerating a missing one.
func (s *RecentStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Touch records a source as just opened, replacing any earlier entry for
// the same path and table, and persists.
func (s *RecentStore) Touch(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}

	if entry.OpenedAt.IsZero() {
		entry.OpenedAt = time.Now()
	}
	kept := s.entries[:0]
	for _, e := range s.entries {
		if samePath(e.Path, entry.Path) && e.Table == entry.Table {
			continue
		}
		kept = append(kept, e)
	}
	s.entries = append([]Entry{entry}, kept...)
	s.sortLocked()
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[:s.maxEntries]
	}
	return s.persist()
}

// Entries returns a copy, newest first.
func (s *RecentStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copies := make([]Entry, len(s.entries))
	copy(copies, s.entries)
	return copies
}

// loadLocked reads the file once. Caller must hold the write lock.
func (s *RecentStore) loadLocked() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.entries = []Entry{}
			s.loaded = true
			return nil
		}
		return errdef.Wrap(errdef.CodeFilesystem, err, "read recent sources")
	}
	if len(data) == 0 {
		s.entries = []Entry{}
		s.loaded = true
		return nil
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "parse recent sources")
	}

	s.sortLocked()
	s.loaded = true
	return nil
}

// persist atomically writes the file: temp file, then rename into place.
func (s *RecentStore) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create config dir")
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "encode recent sources")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write recent tmp")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "replace recent file")
	}
	return nil
}

// sortLocked orders entries newest first. Caller must hold the lock.
func (s *RecentStore) sortLocked() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].OpenedAt.After(s.entries[j].OpenedAt)
	})
}

func samePath(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}
