package store

import "testing"

func TestRecordAndRecentSearches(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	records := []SearchRecord{
		{Notation: "nf3", Score: 15, Depth: 5},
		{Notation: "e4", Score: 30, Depth: 5},
		{Notation: "qxd8", Score: 900, Depth: 5},
	}
	for _, rec := range records {
		if err := s.RecordSearch(rec); err != nil {
			t.Fatalf("RecordSearch: %v", err)
		}
	}

	recent, err := s.RecentSearches(2)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2", len(recent))
	}
	if recent[0].Notation != "qxd8" || recent[1].Notation != "e4" {
		t.Fatalf("unexpected order: %+v", recent)
	}
}

func TestCounterResumesAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.RecordSearch(SearchRecord{Notation: "d4", Score: 10, Depth: 5}); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if err := reopened.RecordSearch(SearchRecord{Notation: "c4", Score: 5, Depth: 5}); err != nil {
		t.Fatalf("RecordSearch after reopen: %v", err)
	}

	recent, err := reopened.RecentSearches(10)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records after reopen, want 2", len(recent))
	}
	if recent[0].Notation != "c4" || recent[1].Notation != "d4" {
		t.Fatalf("unexpected order after reopen: %+v", recent)
	}
}
