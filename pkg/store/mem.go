package store

import (
	"fmt"
	"sync"

	"github.com/vanderheijden86/tix/pkg/metrics"
	"github.com/vanderheijden86/tix/pkg/model"
)

// MemStore is an in-memory Store.
//
// Tickets are kept oldest first so that a create is an append; display
// position i maps to rev[len(rev)-1-i].
type MemStore struct {
	mu     sync.RWMutex
	rev    []model.Ticket
	slot   map[int]int // id -> index into rev
	nextID int
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns a store holding tickets in the given display order.
func NewMemStore(tickets []model.Ticket) *MemStore {
	s := &MemStore{nextID: 1}
	s.replace(tickets)
	return s
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rev)
}

func (s *MemStore) Slice(start, end int) ([]model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.rev)
	start, end = ClampRange(start, end, n)
	out := make([]model.Ticket, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, s.rev[n-1-i])
	}
	return out, nil
}

func (s *MemStore) Get(id int) (model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.slot[id]
	if !ok {
		return model.Ticket{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return s.rev[i], nil
}

func (s *MemStore) Create(t model.Ticket) (model.Ticket, error) {
	defer metrics.Timer(metrics.StoreWrite)()
	if err := t.Validate(); err != nil {
		return model.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID
	s.nextID++
	s.slot[t.ID] = len(s.rev)
	s.rev = append(s.rev, t)
	return t, nil
}

func (s *MemStore) Update(p model.TicketPatch) (bool, error) {
	defer metrics.Timer(metrics.StoreWrite)()

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.slot[p.ID]
	if !ok {
		return false, nil
	}
	next := s.rev[i].Apply(p)
	if err := next.Validate(); err != nil {
		return false, fmt.Errorf("update ticket %d: %w", p.ID, err)
	}
	s.rev[i] = next
	return true, nil
}

func (s *MemStore) Replace(tickets []model.Ticket) error {
	defer metrics.Timer(metrics.StoreWrite)()
	seen := make(map[int]bool, len(tickets))
	for _, t := range tickets {
		if seen[t.ID] {
			return fmt.Errorf("replace: duplicate ticket id %d", t.ID)
		}
		seen[t.ID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(tickets)
	return nil
}

func (s *MemStore) replace(tickets []model.Ticket) {
	n := len(tickets)
	s.rev = make([]model.Ticket, n)
	s.slot = make(map[int]int, n)
	for i, t := range tickets {
		j := n - 1 - i
		s.rev[j] = t
		s.slot[t.ID] = j
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

func (s *MemStore) Close() error { return nil }
