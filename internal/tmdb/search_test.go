package tmdb

import "testing"

func TestPartitionByTitle(t *testing.T) {
	results := []Show{
		{ID: 1, Name: "The Office"},
		{ID: 2, Name: "The Office (UK)"},
		{ID: 3, Name: "the office"},
		{ID: 4, Name: "Office Ladies"},
	}

	p := PartitionByTitle(results, "The Office")

	if len(p.Exact) != 2 {
		t.Fatalf("exact matches = %d, want 2", len(p.Exact))
	}
	if p.Exact[0].ID != 1 || p.Exact[1].ID != 3 {
		t.Errorf("exact IDs = [%d %d], want [1 3]", p.Exact[0].ID, p.Exact[1].ID)
	}
	if len(p.Broadened) != 2 {
		t.Fatalf("broadened matches = %d, want 2", len(p.Broadened))
	}
	if p.Broadened[0].ID != 2 || p.Broadened[1].ID != 4 {
		t.Errorf("broadened IDs = [%d %d], want [2 4]", p.Broadened[0].ID, p.Broadened[1].ID)
	}
}

func TestPartitionByTitleTrimsQuery(t *testing.T) {
	results := []Show{{ID: 1, Name: "Dark"}}

	p := PartitionByTitle(results, "  dark ")
	if len(p.Exact) != 1 {
		t.Errorf("exact matches = %d, want 1", len(p.Exact))
	}
}

func TestPartitionByTitleEmptyResults(t *testing.T) {
	p := PartitionByTitle(nil, "anything")
	if p.Exact == nil || p.Broadened == nil {
		t.Error("partition buckets should be non-nil empty slices")
	}
	if len(p.Exact) != 0 || len(p.Broadened) != 0 {
		t.Errorf("expected empty buckets, got %d exact, %d broadened", len(p.Exact), len(p.Broadened))
	}
}
