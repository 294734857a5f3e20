package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_Debouncing(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "flowicons.yaml")
	if err := os.WriteFile(cfgFile, []byte("jobs: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var callCount atomic.Int32
	w := New([]string{cfgFile}, 100*time.Millisecond, func() {
		callCount.Add(1)
	})

	go func() {
		if err := w.Start(); err != nil {
			t.Logf("watcher start error: %v", err)
		}
	}()

	// Give watcher time to start.
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(cfgFile, fmt.Appendf(nil, "jobs: %d\n", i+1), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Wait for debounce to settle.
	time.Sleep(300 * time.Millisecond)
	w.Stop()

	count := callCount.Load()
	if count == 0 {
		t.Error("expected at least one onChange callback")
	}
	if count >= 5 {
		t.Errorf("expected debouncing to reduce callbacks, got %d for 5 changes", count)
	}
}

func TestWatcher_CallbacksDoNotOverlap(t *testing.T) {
	var inFlight, maxInFlight, calls atomic.Int32
	w := New(nil, time.Millisecond, func() {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		calls.Add(1)
	})

	// Each settled change fires on its own timer goroutine.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run()
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 4 {
		t.Errorf("callbacks = %d; want 4", n)
	}
	if m := maxInFlight.Load(); m != 1 {
		t.Errorf("max concurrent callbacks = %d; want 1", m)
	}
}

func TestWatcher_SlowCallbackSerialisesChanges(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "flowicons.yaml")
	if err := os.WriteFile(cfgFile, []byte("jobs: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var inFlight, overlaps, calls atomic.Int32
	w := New([]string{cfgFile}, 10*time.Millisecond, func() {
		if inFlight.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(150 * time.Millisecond)
		inFlight.Add(-1)
		calls.Add(1)
	})
	go func() { _ = w.Start() }()
	time.Sleep(50 * time.Millisecond)

	// The second change settles while the first callback is still running.
	for i := 0; i < 2; i++ {
		if err := os.WriteFile(cfgFile, fmt.Appendf(nil, "jobs: %d\n", i+2), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(60 * time.Millisecond)
	}
	time.Sleep(500 * time.Millisecond)
	w.Stop()

	if n := calls.Load(); n < 2 {
		t.Errorf("callbacks = %d; want at least 2", n)
	}
	if n := overlaps.Load(); n != 0 {
		t.Errorf("%d callbacks overlapped a running one", n)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "flowicons.yaml")
	if err := os.WriteFile(cfgFile, []byte("jobs: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var callCount atomic.Int32
	w := New([]string{cfgFile}, 20*time.Millisecond, func() {
		callCount.Add(1)
	})
	go func() { _ = w.Start() }()
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(150 * time.Millisecond)
	w.Stop()

	if n := callCount.Load(); n != 0 {
		t.Errorf("sibling change triggered %d callbacks; want 0", n)
	}
}

func TestWatcher_NonexistentPaths(t *testing.T) {
	w := New([]string{"/nonexistent/path/that/does/not/exist.yaml"}, 100*time.Millisecond, func() {})

	go func() {
		_ = w.Start()
	}()

	time.Sleep(50 * time.Millisecond)
	w.Stop()
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := New([]string{}, 100*time.Millisecond, func() {})

	go func() {
		_ = w.Start()
	}()

	time.Sleep(50 * time.Millisecond)

	w.Stop()
	w.Stop()
}
