package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLastPageUnknownDeck(t *testing.T) {
	s := openTestStore(t)

	page, ok, err := s.LastPage("/nowhere")
	if err != nil {
		t.Fatalf("LastPage error: %v", err)
	}
	if ok || page != 0 {
		t.Fatalf("LastPage = (%d, %v) for unknown deck, want (0, false)", page, ok)
	}
}

func TestSaveAndLoadLastPage(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveLastPage("/decks/notes", "notes", 3, 7); err != nil {
		t.Fatalf("SaveLastPage error: %v", err)
	}

	page, ok, err := s.LastPage("/decks/notes")
	if err != nil {
		t.Fatalf("LastPage error: %v", err)
	}
	if !ok || page != 3 {
		t.Fatalf("LastPage = (%d, %v), want (3, true)", page, ok)
	}

	// Saving again replaces the record.
	if err := s.SaveLastPage("/decks/notes", "notes", 5, 7); err != nil {
		t.Fatalf("second SaveLastPage error: %v", err)
	}
	page, _, err = s.LastPage("/decks/notes")
	if err != nil {
		t.Fatal(err)
	}
	if page != 5 {
		t.Fatalf("page = %d after update, want 5", page)
	}
}

func TestRecentOrdersByOpenedAt(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveLastPage("/a", "a", 0, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveLastPage("/b", "b", 1, 3); err != nil {
		t.Fatal(err)
	}

	records, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.OpenedAt.IsZero() {
			t.Fatalf("record %q has zero opened_at", r.Key)
		}
	}
}

func TestForget(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveLastPage("/a", "a", 2, 4); err != nil {
		t.Fatal(err)
	}
	if err := s.Forget("/a"); err != nil {
		t.Fatalf("Forget error: %v", err)
	}
	_, ok, err := s.LastPage("/a")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("deck still present after Forget")
	}
}
