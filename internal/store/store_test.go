package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Mriskiali/motion-fits/internal/kvstore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*Store, *kvstore.Memory) {
	t.Helper()
	kv := kvstore.NewMemory()
	return New(context.Background(), kv, testLogger()), kv
}

// TestLoadRoundTrip verifies that a second Store built on the same
// key-value backend sees the first one's writes.
func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	s1 := New(ctx, kv, testLogger())
	s1.SetCount(ctx, "upper1", "u1-1", "2025-03-14", 2, 4)
	s1.ToggleCompletion(ctx, "upper1", "u1-7", "2025-03-14")
	s1.SetRestDefaultSec(ctx, 90)
	s1.SetAutoRestOnIncrement(ctx, false)

	s2 := New(ctx, kv, testLogger())
	if got := s2.GetCount("upper1", "u1-1", "2025-03-14"); got != 2 {
		t.Errorf("reloaded count = %d, want 2", got)
	}
	if !s2.IsCompleted("upper1", "u1-7", "2025-03-14") {
		t.Error("reloaded completion lost")
	}
	if got := s2.RestDefaultSec(); got != 90 {
		t.Errorf("reloaded rest default = %d, want 90", got)
	}
	if s2.AutoRestOnIncrement() {
		t.Error("reloaded auto-rest preference lost")
	}
}

// TestLoadCorruptValue verifies that a corrupt stored document falls back
// to defaults instead of failing construction.
func TestLoadCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	if err := kv.Set(ctx, keySetCounts, "{not json"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, keyRestDefaultSec, "-5"); err != nil {
		t.Fatal(err)
	}

	s := New(ctx, kv, testLogger())
	if got := s.GetCount("upper1", "u1-1", "2025-03-14"); got != 0 {
		t.Errorf("count from corrupt store = %d, want 0", got)
	}
	if got := s.RestDefaultSec(); got != DefaultRestSec {
		t.Errorf("rest default = %d, want %d", got, DefaultRestSec)
	}
}

// TestWriteFailureDoesNotLoseMemoryState verifies the log-and-continue
// policy: tracking writes survive in memory even when the backend fails.
func TestWriteFailureDoesNotLoseMemoryState(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	kv.FailWrites = io.ErrClosedPipe

	s.SetCount(ctx, "upper1", "u1-1", "2025-03-14", 3, 4)
	if got := s.GetCount("upper1", "u1-1", "2025-03-14"); got != 3 {
		t.Errorf("in-memory count = %d, want 3", got)
	}
}
