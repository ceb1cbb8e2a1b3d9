// Package testutil holds assertions over ticket collections shared by the
// store, dataset and feed tests.
package testutil

import (
	"testing"

	"github.com/vanderheijden86/tix/pkg/model"
)

// AssertTicketCount verifies the expected number of tickets.
func AssertTicketCount(t testing.TB, tickets []model.Ticket, expected int) {
	t.Helper()
	if len(tickets) != expected {
		t.Errorf("expected %d tickets, got %d", expected, len(tickets))
	}
}

// AssertNoDuplicateIDs verifies all ticket IDs are unique.
func AssertNoDuplicateIDs(t testing.TB, tickets []model.Ticket) {
	t.Helper()
	seen := make(map[int]bool, len(tickets))
	for _, tk := range tickets {
		if seen[tk.ID] {
			t.Errorf("duplicate ticket ID: %d", tk.ID)
		}
		seen[tk.ID] = true
	}
}

// AssertAllValid verifies all tickets pass validation.
func AssertAllValid(t testing.TB, tickets []model.Ticket) {
	t.Helper()
	for i, tk := range tickets {
		if err := tk.Validate(); err != nil {
			t.Errorf("ticket %d (#%d) invalid: %v", i, tk.ID, err)
		}
	}
}

// AssertIDOrder verifies the tickets appear with exactly the given IDs, in
// order.
func AssertIDOrder(t testing.TB, tickets []model.Ticket, ids ...int) {
	t.Helper()
	if len(tickets) != len(ids) {
		t.Errorf("expected %d tickets, got %d", len(ids), len(tickets))
		return
	}
	for i, tk := range tickets {
		if tk.ID != ids[i] {
			t.Errorf("position %d: expected #%d, got #%d", i, ids[i], tk.ID)
		}
	}
}

// AssertTicketEqual verifies two tickets match field by field.
func AssertTicketEqual(t testing.TB, got, want model.Ticket) {
	t.Helper()
	if got.ID != want.ID {
		t.Errorf("ID: expected %d, got %d", want.ID, got.ID)
	}
	if got.Subject != want.Subject {
		t.Errorf("Subject: expected %q, got %q", want.Subject, got.Subject)
	}
	if got.Priority != want.Priority {
		t.Errorf("Priority: expected %q, got %q", want.Priority, got.Priority)
	}
	if got.Status != want.Status {
		t.Errorf("Status: expected %q, got %q", want.Status, got.Status)
	}
	if got.Description != want.Description {
		t.Errorf("Description: expected %q, got %q", want.Description, got.Description)
	}
}
