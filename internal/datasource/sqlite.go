package datasource

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/tix/pkg/debug"
	"github.com/vanderheijden86/tix/pkg/metrics"
	"github.com/vanderheijden86/tix/pkg/model"
	"github.com/vanderheijden86/tix/pkg/store"
)

const schema = `
CREATE TABLE tickets (
	id          INTEGER PRIMARY KEY,
	seq         INTEGER NOT NULL UNIQUE,
	subject     TEXT NOT NULL,
	priority    TEXT NOT NULL,
	status      TEXT NOT NULL,
	description TEXT NOT NULL
)`

// SQLiteStore is a store.Store backed by an in-memory SQLite database.
//
// Display order is seq descending: a create takes the next seq and therefore
// lands at position 0. Windowed reads use LIMIT/OFFSET.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	count   int
	nextID  int
	nextSeq int
}

var _ store.Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates an empty in-memory database and loads tickets into
// it in the given display order.
func NewSQLiteStore(tickets []model.Ticket) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = OFF",
		"PRAGMA synchronous = OFF",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			debug.Log("sqlite: %s: %v", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &SQLiteStore{db: db, nextID: 1, nextSeq: 1}
	if err := s.Replace(tickets); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *SQLiteStore) Slice(start, end int) ([]model.Ticket, error) {
	defer metrics.Timer(metrics.StoreRead)()
	start, end = store.ClampRange(start, end, s.Len())
	if start == end {
		return []model.Ticket{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, subject, priority, status, description
		FROM tickets
		ORDER BY seq DESC
		LIMIT ? OFFSET ?`, end-start, start)
	if err != nil {
		return nil, fmt.Errorf("querying tickets [%d,%d): %w", start, end, err)
	}
	defer rows.Close()

	out := make([]model.Ticket, 0, end-start)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTicket(row scanner) (model.Ticket, error) {
	var t model.Ticket
	var priority, status string
	if err := row.Scan(&t.ID, &t.Subject, &priority, &status, &t.Description); err != nil {
		return model.Ticket{}, fmt.Errorf("scanning ticket: %w", err)
	}
	t.Priority = model.Priority(priority)
	t.Status = model.Status(status)
	return t, nil
}

func (s *SQLiteStore) Get(id int) (model.Ticket, error) {
	row := s.db.QueryRow(`
		SELECT id, subject, priority, status, description
		FROM tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ticket{}, fmt.Errorf("get %d: %w", id, store.ErrNotFound)
	}
	return t, err
}

func (s *SQLiteStore) Create(t model.Ticket) (model.Ticket, error) {
	defer metrics.Timer(metrics.StoreWrite)()
	if err := t.Validate(); err != nil {
		return model.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID
	if _, err := s.db.Exec(`
		INSERT INTO tickets (id, seq, subject, priority, status, description)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, s.nextSeq, t.Subject, string(t.Priority), string(t.Status), t.Description); err != nil {
		return model.Ticket{}, fmt.Errorf("inserting ticket: %w", err)
	}
	s.nextID++
	s.nextSeq++
	s.count++
	return t, nil
}

func (s *SQLiteStore) Update(p model.TicketPatch) (bool, error) {
	defer metrics.Timer(metrics.StoreWrite)()

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.Get(p.ID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	next := cur.Apply(p)
	if err := next.Validate(); err != nil {
		return false, fmt.Errorf("update ticket %d: %w", p.ID, err)
	}
	if _, err := s.db.Exec(`
		UPDATE tickets SET subject = ?, priority = ?, status = ?, description = ?
		WHERE id = ?`,
		next.Subject, string(next.Priority), string(next.Status), next.Description, next.ID); err != nil {
		return false, fmt.Errorf("updating ticket %d: %w", p.ID, err)
	}
	return true, nil
}

// Replace swaps the table contents in a single transaction.
func (s *SQLiteStore) Replace(tickets []model.Ticket) error {
	defer metrics.Timer(metrics.StoreWrite)()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tickets`); err != nil {
		return fmt.Errorf("clearing tickets: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO tickets (id, seq, subject, priority, status, description)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	nextID := s.nextID
	n := len(tickets)
	for i := n - 1; i >= 0; i-- {
		t := tickets[i]
		seq := n - i
		if _, err := stmt.Exec(t.ID, seq, t.Subject, string(t.Priority), string(t.Status), t.Description); err != nil {
			return fmt.Errorf("inserting ticket %d: %w", t.ID, err)
		}
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}

	s.count = n
	s.nextID = nextID
	s.nextSeq = n + 1
	return nil
}
