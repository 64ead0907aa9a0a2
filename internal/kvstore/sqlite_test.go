package kvstore

import (
	"context"
	"errors"
	"testing"
)

// TestSQLiteRoundTrip verifies get/set/upsert/remove against a real
// database file, including reopening the store.
func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSQLite(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if got, err := s.Get(ctx, "k"); err != nil || got != "v2" {
		t.Errorf("get = %q,%v, want v2", got, err)
	}

	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Errorf("remove missing = %v, want nil", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get removed = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "persisted", "yes"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopen and check the value survived.
	s2, err := OpenSQLite(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if got, err := s2.Get(ctx, "persisted"); err != nil || got != "yes" {
		t.Errorf("get after reopen = %q,%v, want yes", got, err)
	}
}

// TestMemoryFailWrites verifies the failure-injection hook used by
// the store tests.
func TestMemoryFailWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}

	m.FailWrites = errors.New("disk full")
	if err := m.Set(ctx, "k", "v2"); err == nil {
		t.Error("set with FailWrites succeeded")
	}
	if err := m.Remove(ctx, "k"); err == nil {
		t.Error("remove with FailWrites succeeded")
	}

	// Reads are unaffected; the old value is intact.
	if got, err := m.Get(ctx, "k"); err != nil || got != "v" {
		t.Errorf("get = %q,%v, want v", got, err)
	}
}
