// Package datasource selects and opens the store backend behind the ticket
// list: a plain in-memory slice or an in-memory SQLite database.
package datasource

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/tix/pkg/debug"
	"github.com/vanderheijden86/tix/pkg/model"
	"github.com/vanderheijden86/tix/pkg/store"
)

// SourceType identifies the store backend
type SourceType string

const (
	// SourceTypeMemory keeps tickets in a Go slice
	SourceTypeMemory SourceType = "memory"
	// SourceTypeSQLite keeps tickets in an in-memory SQLite database
	SourceTypeSQLite SourceType = "sqlite"
)

// SourceTypes lists the accepted backend names.
func SourceTypes() []SourceType {
	return []SourceType{SourceTypeMemory, SourceTypeSQLite}
}

// ParseSourceType maps a config or flag value to a SourceType. The empty
// string selects memory.
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceTypeMemory:
		return SourceTypeMemory, nil
	case SourceTypeSQLite:
		return SourceTypeSQLite, nil
	}
	return "", fmt.Errorf("unknown store %q (want memory or sqlite)", s)
}

// Open creates a store of the given type seeded with tickets in display
// order.
func Open(kind SourceType, tickets []model.Ticket) (store.Store, error) {
	debug.Log("datasource: opening %s store with %d tickets", kind, len(tickets))
	switch kind {
	case SourceTypeMemory, "":
		return store.NewMemStore(tickets), nil
	case SourceTypeSQLite:
		s, err := NewSQLiteStore(tickets)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown store %q", kind)
}
