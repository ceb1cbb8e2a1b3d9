// Package storetest holds behavior tests shared by every store.Store
// implementation.
package storetest

import (
	"errors"
	"testing"

	"github.com/vanderheijden86/tix/pkg/model"
	"github.com/vanderheijden86/tix/pkg/store"
	"github.com/vanderheijden86/tix/pkg/testutil"
)

// Factory returns a fresh store seeded with tickets in display order.
type Factory func(t *testing.T, tickets []model.Ticket) store.Store

// Seed returns n valid tickets with ids n..1, newest first.
func Seed(n int) []model.Ticket {
	out := make([]model.Ticket, 0, n)
	for id := n; id >= 1; id-- {
		out = append(out, model.Ticket{
			ID:          id,
			Subject:     "Seed subject",
			Priority:    model.PriorityMedium,
			Status:      model.StatusOpen,
			Description: "Seed description",
		})
	}
	return out
}

func draft(subject string) model.Ticket {
	return model.Ticket{
		Subject:     subject,
		Priority:    model.PriorityHigh,
		Status:      model.StatusOpen,
		Description: "Created in test",
	}
}

func first(t *testing.T, s store.Store) model.Ticket {
	t.Helper()
	got, err := s.Slice(0, 1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Slice(0,1) returned %d tickets", len(got))
	}
	return got[0]
}

// Run exercises the Store contract against stores built by f.
func Run(t *testing.T, f Factory) {
	t.Run("CreatePrepends", func(t *testing.T) {
		s := f(t, Seed(5))
		defer s.Close()

		created, err := s.Create(draft("New ticket"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if s.Len() != 6 {
			t.Fatalf("Len = %d, want 6", s.Len())
		}
		got := first(t, s)
		if got != created {
			t.Errorf("position 0 = %+v, want %+v", got, created)
		}
		if got.Subject != "New ticket" || got.Priority != model.PriorityHigh || got.Description != "Created in test" {
			t.Errorf("fields not preserved: %+v", got)
		}
	})

	t.Run("CreateAssignsFreshIDs", func(t *testing.T) {
		s := f(t, Seed(3))
		defer s.Close()

		seen := map[int]bool{1: true, 2: true, 3: true}
		for i := 0; i < 20; i++ {
			tk := draft("Fresh")
			tk.ID = 2 // ignored
			created, err := s.Create(tk)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if seen[created.ID] {
				t.Fatalf("id %d reused", created.ID)
			}
			seen[created.ID] = true
		}

		all, err := s.Slice(0, s.Len())
		if err != nil {
			t.Fatalf("Slice: %v", err)
		}
		testutil.AssertTicketCount(t, all, 23)
		testutil.AssertNoDuplicateIDs(t, all)
		testutil.AssertAllValid(t, all)
	})

	t.Run("CreateRejectsInvalid", func(t *testing.T) {
		s := f(t, Seed(2))
		defer s.Close()

		if _, err := s.Create(model.Ticket{Subject: "missing fields"}); err == nil {
			t.Fatal("expected validation error")
		}
		if s.Len() != 2 {
			t.Errorf("invalid create changed Len to %d", s.Len())
		}
	})

	t.Run("CreateThenEdit", func(t *testing.T) {
		s := f(t, Seed(4))
		defer s.Close()

		created, err := s.Create(draft("A"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		subject := "B"
		ok, err := s.Update(model.TicketPatch{ID: created.ID, Subject: &subject})
		if err != nil || !ok {
			t.Fatalf("Update = %v, %v", ok, err)
		}
		got := first(t, s)
		if got.ID != created.ID || got.Subject != "B" {
			t.Errorf("position 0 = %+v, want id %d subject B", got, created.ID)
		}
		if got.Priority != created.Priority || got.Status != created.Status || got.Description != created.Description {
			t.Errorf("other fields changed: %+v", got)
		}
	})

	t.Run("EditIsIdempotent", func(t *testing.T) {
		s := f(t, Seed(3))
		defer s.Close()

		before, err := s.Slice(0, 3)
		if err != nil {
			t.Fatalf("Slice: %v", err)
		}
		ok, err := s.Update(model.PatchFrom(before[1]))
		if err != nil || !ok {
			t.Fatalf("Update = %v, %v", ok, err)
		}
		after, err := s.Slice(0, 3)
		if err != nil {
			t.Fatalf("Slice: %v", err)
		}
		for i := range before {
			if before[i] != after[i] {
				t.Errorf("ticket %d changed: %+v -> %+v", i, before[i], after[i])
			}
		}
	})

	t.Run("UpdateUnknownIsNoop", func(t *testing.T) {
		s := f(t, Seed(3))
		defer s.Close()

		subject := "ghost"
		ok, err := s.Update(model.TicketPatch{ID: 999, Subject: &subject})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if ok {
			t.Error("Update reported a match for an unknown id")
		}
		if s.Len() != 3 {
			t.Errorf("Len = %d, want 3", s.Len())
		}
	})

	t.Run("UpdateKeepsPosition", func(t *testing.T) {
		s := f(t, Seed(5))
		defer s.Close()

		status := model.StatusDone
		if _, err := s.Update(model.TicketPatch{ID: 3, Status: &status}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got, err := s.Slice(2, 3)
		if err != nil {
			t.Fatalf("Slice: %v", err)
		}
		if got[0].ID != 3 || got[0].Status != model.StatusDone {
			t.Errorf("position 2 = %+v, want id 3 done", got[0])
		}
	})

	t.Run("UpdateRejectsInvalid", func(t *testing.T) {
		s := f(t, Seed(2))
		defer s.Close()

		empty := ""
		if _, err := s.Update(model.TicketPatch{ID: 1, Subject: &empty}); err == nil {
			t.Fatal("expected validation error")
		}
		got, err := s.Get(1)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Subject == "" {
			t.Error("invalid update was stored")
		}
	})

	t.Run("GetUnknown", func(t *testing.T) {
		s := f(t, Seed(1))
		defer s.Close()

		if _, err := s.Get(42); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("Get(42) err = %v, want ErrNotFound", err)
		}
	})

	t.Run("SliceClamps", func(t *testing.T) {
		s := f(t, Seed(10))
		defer s.Close()

		got, err := s.Slice(8, 50)
		if err != nil {
			t.Fatalf("Slice: %v", err)
		}
		testutil.AssertIDOrder(t, got, 2, 1)
		if got, _ := s.Slice(-5, 0); len(got) != 0 {
			t.Errorf("Slice(-5,0) returned %d tickets", len(got))
		}
		if got, _ := s.Slice(20, 30); len(got) != 0 {
			t.Errorf("Slice(20,30) returned %d tickets", len(got))
		}
	})

	t.Run("ReplaceMovesCounterForward", func(t *testing.T) {
		s := f(t, nil)
		defer s.Close()

		if s.Len() != 0 {
			t.Fatalf("empty store Len = %d", s.Len())
		}
		if err := s.Replace(Seed(50)); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		created, err := s.Create(draft("after replace"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID <= 50 {
			t.Errorf("created id %d collides with replaced ids", created.ID)
		}
	})
}
