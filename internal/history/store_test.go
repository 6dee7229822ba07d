package history

import (
	"context"
	"path/filepath"
	"testing"

	"dicetable/internal/dice"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "rolls.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rolls := []dice.Outcome{
		{Die0: 3, Die1: 5},
		{Die0: 1, Die1: 1},
		{Die0: 6, Die1: 2, Forced: true},
	}
	for _, o := range rolls {
		if err := s.Record(ctx, o); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 rolls, got %d", len(got))
	}

	// Newest first
	if got[0].Die0 != 6 || got[0].Die1 != 2 || !got[0].Forced {
		t.Errorf("Expected newest roll (6,2,forced), got %+v", got[0])
	}
	if got[2].Die0 != 3 || got[2].Die1 != 5 || got[2].Forced {
		t.Errorf("Expected oldest roll (3,5), got %+v", got[2])
	}
	if got[0].RolledAt.IsZero() {
		t.Error("RolledAt should be set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, dice.Outcome{Die0: 1, Die1: 2}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected limit of 2 rolls, got %d", len(got))
	}
}

func TestStoreEmptyRecent(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no rolls in a fresh store, got %d", len(got))
	}
}

func TestStoreNilClose(t *testing.T) {
	var s *Store
	if err := s.Close(); err != nil {
		t.Errorf("Close on a nil store should be a no-op, got %v", err)
	}
}
