// Package store holds the ordered ticket collection behind the list.
//
// Order is insertion order with newly created tickets first. Ids are handed
// out by the store from a monotonic counter and never reused.
package store

import (
	"errors"

	"github.com/vanderheijden86/tix/pkg/model"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("ticket not found")

// Store is the collection the feed reads from and writes to.
type Store interface {
	// Len is the number of tickets in the collection.
	Len() int

	// Slice returns tickets in display order for the half-open range
	// [start, end), clamped to the collection.
	Slice(start, end int) ([]model.Ticket, error)

	// Get returns the ticket with the given id, or ErrNotFound.
	Get(id int) (model.Ticket, error)

	// Create validates t, assigns it a fresh id and puts it at position 0.
	// Any id already set on t is ignored.
	Create(t model.Ticket) (model.Ticket, error)

	// Update applies a patch in place. It reports false, without error,
	// when no ticket has the patch's id.
	Update(p model.TicketPatch) (bool, error)

	// Replace swaps the whole collection, keeping the given order. The id
	// counter moves past the largest id seen so far.
	Replace(tickets []model.Ticket) error

	Close() error
}

// ClampRange clamps the half-open range [start, end) to [0, n).
func ClampRange(start, end, n int) (int, int) {
	if n < 0 {
		n = 0
	}
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return start, end
}
