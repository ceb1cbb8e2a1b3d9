// Package dataset generates the mock ticket collection the list starts with.
// Output is deterministic for a given seed.
package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vanderheijden86/tix/pkg/model"
)

// DefaultCount is the size of the generated collection.
const DefaultCount = 10000

// Config controls ticket generation.
type Config struct {
	Seed  int64 // Random seed for determinism (0 = use current time)
	Count int   // Number of tickets (negative = 0)
}

// DefaultConfig returns the stock 10,000-ticket dataset with a fixed seed.
func DefaultConfig() Config {
	return Config{Seed: 42, Count: DefaultCount}
}

// Generator creates mock tickets.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator with the given config.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Tickets returns Count tickets with ids 1..Count in display order. Subjects
// and descriptions follow the "Item N" / "Description for item N" pattern;
// priority and status are drawn uniformly.
func (g *Generator) Tickets() []model.Ticket {
	priorities := model.AllPriorities()
	statuses := model.AllStatuses()

	out := make([]model.Ticket, g.cfg.Count)
	for i := range out {
		n := i + 1
		out[i] = model.Ticket{
			ID:          n,
			Subject:     fmt.Sprintf("Item %d", n),
			Priority:    priorities[g.rng.Intn(len(priorities))],
			Status:      statuses[g.rng.Intn(len(statuses))],
			Description: fmt.Sprintf("Description for item %d", n),
		}
	}
	return out
}

// Generate is New(cfg).Tickets().
func Generate(cfg Config) []model.Ticket {
	return New(cfg).Tickets()
}
