package dataset

import (
	"testing"

	"github.com/vanderheijden86/tix/pkg/testutil"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(Config{Seed: 7, Count: 200})
	b := Generate(Config{Seed: 7, Count: 200})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ticket %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_Shape(t *testing.T) {
	tickets := Generate(DefaultConfig())
	if len(tickets) != DefaultCount {
		t.Fatalf("len = %d, want %d", len(tickets), DefaultCount)
	}
	if got := tickets[0]; got.ID != 1 || got.Subject != "Item 1" || got.Description != "Description for item 1" {
		t.Errorf("first ticket = %+v", got)
	}
	last := tickets[len(tickets)-1]
	if last.ID != DefaultCount || last.Subject != "Item 10000" {
		t.Errorf("last ticket = %+v", last)
	}
	testutil.AssertAllValid(t, tickets)
	testutil.AssertNoDuplicateIDs(t, tickets)
}

func TestGenerate_NegativeCount(t *testing.T) {
	if got := Generate(Config{Seed: 1, Count: -5}); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
