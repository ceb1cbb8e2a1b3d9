package store_test

import (
	"testing"

	"github.com/vanderheijden86/tix/pkg/model"
	"github.com/vanderheijden86/tix/pkg/store"
	"github.com/vanderheijden86/tix/pkg/store/storetest"
)

func TestMemStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T, tickets []model.Ticket) store.Store {
		return store.NewMemStore(tickets)
	})
}

func TestMemStore_ReplaceRejectsDuplicates(t *testing.T) {
	s := store.NewMemStore(nil)
	dup := storetest.Seed(2)
	dup[1].ID = dup[0].ID
	if err := s.Replace(dup); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		start, end, n int
		wantS, wantE  int
	}{
		{0, 5, 10, 0, 5},
		{-3, 5, 10, 0, 5},
		{8, 20, 10, 8, 10},
		{12, 20, 10, 10, 10},
		{5, 2, 10, 5, 5},
		{0, 3, -1, 0, 0},
	}
	for _, tt := range tests {
		s, e := store.ClampRange(tt.start, tt.end, tt.n)
		if s != tt.wantS || e != tt.wantE {
			t.Errorf("ClampRange(%d,%d,%d) = (%d,%d), want (%d,%d)", tt.start, tt.end, tt.n, s, e, tt.wantS, tt.wantE)
		}
	}
}
