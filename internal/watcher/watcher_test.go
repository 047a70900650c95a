package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScanReportsExternalEdit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "people.csv")
	writeFile(t, path, []byte("id,name\n1,Ana\n"))

	w := New(Options{Interval: time.Hour})
	defer w.Stop()
	w.Track(path, []byte("id,name\n1,Ana\n"))

	writeFile(t, path, []byte("id,name\n1,Ana\n2,Bo\n"))
	w.Scan()

	evt := waitEvent(t, w.Events())
	if evt.Path != path {
		t.Fatalf("expected path %q, got %q", path, evt.Path)
	}
	if evt.Kind != EventChanged {
		t.Fatalf("expected EventChanged, got %v", evt.Kind)
	}
	if evt.Prev.Hash == evt.Curr.Hash {
		t.Fatalf("expected differing hashes")
	}
}

func TestTrackAfterSaveSuppressesOwnWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "people.csv")
	writeFile(t, path, []byte("draft"))

	w := New(Options{Interval: time.Hour})
	defer w.Stop()
	w.Track(path, []byte("draft"))

	writeFile(t, path, []byte("draft updated"))
	w.Track(path, []byte("draft updated"))
	w.Scan()

	expectQuiet(t, w)
}

func TestMissingFileEmitsOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gone.csv")
	writeFile(t, path, []byte("keep"))

	w := New(Options{Interval: time.Hour})
	defer w.Stop()
	w.Track(path, []byte("keep"))

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	w.Scan()

	if evt := waitEvent(t, w.Events()); evt.Kind != EventMissing {
		t.Fatalf("expected EventMissing, got %v", evt.Kind)
	}

	w.Scan()
	expectQuiet(t, w)
}

func TestReappearanceCountsAsChange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reappear.csv")
	content := []byte("keep")
	writeFile(t, path, content)
	origMod := time.Now().Add(-time.Hour)
	touch(t, path, origMod)

	w := New(Options{Interval: time.Hour})
	defer w.Stop()
	w.Track(path, content)

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	w.Scan()
	if evt := waitEvent(t, w.Events()); evt.Kind != EventMissing {
		t.Fatalf("expected EventMissing, got %v", evt.Kind)
	}

	writeFile(t, path, content)
	touch(t, path, origMod)
	w.Scan()

	evt := waitEvent(t, w.Events())
	if evt.Kind != EventChanged {
		t.Fatalf("expected EventChanged on reappear, got %v", evt.Kind)
	}
	if evt.Prev.Hash != evt.Curr.Hash {
		t.Fatalf("expected same content hash after reappear")
	}
}

func TestHashUnchangedOptionCatchesStealthWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stealth.csv")
	first := []byte("one")
	second := []byte("two") // same length
	writeFile(t, path, first)
	fixedMod := time.Now().Add(-2 * time.Hour)
	touch(t, path, fixedMod)

	w := New(Options{Interval: time.Hour, HashUnchanged: true})
	defer w.Stop()
	w.Track(path, first)

	writeFile(t, path, second)
	touch(t, path, fixedMod)
	w.Scan()

	evt := waitEvent(t, w.Events())
	if evt.Kind != EventChanged {
		t.Fatalf("expected EventChanged, got %v", evt.Kind)
	}
	if evt.Prev.Hash == evt.Curr.Hash {
		t.Fatalf("expected differing hashes for changed content")
	}
}

func TestDefaultSkipsHashWhenMetadataUnchanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stealth.csv")
	first := []byte("one")
	second := []byte("two") // same length
	writeFile(t, path, first)
	fixedMod := time.Now().Add(-2 * time.Hour)
	touch(t, path, fixedMod)

	w := New(Options{Interval: time.Hour})
	defer w.Stop()
	w.Track(path, first)

	writeFile(t, path, second)
	touch(t, path, fixedMod)
	w.Scan()

	expectQuiet(t, w)
}

func TestUntrackStopsReporting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dropped.csv")
	writeFile(t, path, []byte("one"))

	w := New(Options{Interval: time.Hour})
	defer w.Stop()
	w.Track(path, []byte("one"))
	w.Untrack(path)

	writeFile(t, path, []byte("two"))
	w.Scan()

	expectQuiet(t, w)
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func touch(t *testing.T, path string, ts time.Time) {
	t.Helper()
	if err := os.Chtimes(path, ts, ts); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}

func expectQuiet(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case evt := <-w.Events():
		t.Fatalf("expected no event, got %+v", evt)
	default:
	}
}
