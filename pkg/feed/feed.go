// Package feed is the data collaborator of the ticket list: it owns the
// loading flag, simulates a slow fetch of the mock dataset, and forwards
// create and edit requests to the store.
//
// All methods except the commands returned by Fetch must be called from the
// Bubble Tea update loop.
package feed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/singleflight"

	"github.com/vanderheijden86/tix/pkg/dataset"
	"github.com/vanderheijden86/tix/pkg/debug"
	"github.com/vanderheijden86/tix/pkg/metrics"
	"github.com/vanderheijden86/tix/pkg/model"
	"github.com/vanderheijden86/tix/pkg/store"
)

// DefaultLatency is the simulated fetch delay.
const DefaultLatency = time.Second

// ErrInjected is returned by fetches failed on purpose through FailRate.
var ErrInjected = errors.New("injected fetch failure")

// Loader produces the full ticket collection.
type Loader func(ctx context.Context) ([]model.Ticket, error)

// DatasetLoader returns a Loader for the generated mock dataset.
func DatasetLoader(cfg dataset.Config) Loader {
	return func(ctx context.Context) ([]model.Ticket, error) {
		defer metrics.Timer(metrics.DataLoad)()
		tickets := dataset.Generate(cfg)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return tickets, nil
	}
}

// Options configures a Feed.
type Options struct {
	Latency  time.Duration // Simulated delay before the loader runs
	FailRate float64       // Probability in [0,1] that a fetch fails
	Seed     int64         // Seed for failure injection (0 = current time)
	Loader   Loader        // Defaults to DatasetLoader(dataset.DefaultConfig())
}

// FetchedMsg carries the result of a fetch back to the update loop.
type FetchedMsg struct {
	Gen     uint64
	Tickets []model.Ticket
	Err     error
}

// Feed exposes the ticket collection and the loading flag to the UI.
type Feed struct {
	store    store.Store
	loader   Loader
	latency  time.Duration
	failRate float64

	rngMu sync.Mutex
	rng   *rand.Rand

	ctx    context.Context
	cancel context.CancelFunc
	group  singleflight.Group

	gen     uint64
	loading bool
	closed  bool
}

// New creates a Feed over s. The feed starts in the loading state; call
// Fetch to populate it.
func New(s store.Store, opts Options) *Feed {
	if opts.Loader == nil {
		opts.Loader = DatasetLoader(dataset.DefaultConfig())
	}
	if opts.Latency < 0 {
		opts.Latency = 0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Feed{
		store:    s,
		loader:   opts.Loader,
		latency:  opts.Latency,
		failRate: opts.FailRate,
		rng:      rand.New(rand.NewSource(seed)),
		ctx:      ctx,
		cancel:   cancel,
		loading:  true,
	}
}

// Loading reports whether a fetch is outstanding.
func (f *Feed) Loading() bool {
	return f.loading
}

// Len is the number of tickets currently held.
func (f *Feed) Len() int {
	return f.store.Len()
}

// Slice returns the tickets in display order for [start, end).
func (f *Feed) Slice(start, end int) ([]model.Ticket, error) {
	return f.store.Slice(start, end)
}

// Items returns the whole collection in display order.
func (f *Feed) Items() ([]model.Ticket, error) {
	return f.store.Slice(0, f.store.Len())
}

// Get returns a single ticket by id.
func (f *Feed) Get(id int) (model.Ticket, error) {
	return f.store.Get(id)
}

// Create stores a new ticket at the top of the list and returns it with its
// assigned id.
func (f *Feed) Create(t model.Ticket) (model.Ticket, error) {
	created, err := f.store.Create(t)
	if err != nil {
		debug.Log("feed: create failed: %v", err)
		return model.Ticket{}, err
	}
	debug.Log("feed: created ticket %d", created.ID)
	return created, nil
}

// Update merges a patch into the ticket with the same id. It reports false
// when no such ticket exists.
func (f *Feed) Update(p model.TicketPatch) (bool, error) {
	ok, err := f.store.Update(p)
	if err != nil {
		debug.Log("feed: update %d failed: %v", p.ID, err)
		return false, err
	}
	debug.LogIf(!ok, "feed: update for unknown ticket %d ignored", p.ID)
	return ok, nil
}

// Fetch marks the feed as loading and returns a command that waits for the
// simulated latency, runs the loader and reports a FetchedMsg. Fetches
// started while another is in flight share its result. The command returns
// nil once the feed is closed.
func (f *Feed) Fetch() tea.Cmd {
	if f.closed {
		return nil
	}
	f.gen++
	f.loading = true
	gen := f.gen
	metrics.FetchStarted.Inc()
	debug.Log("feed: fetch %d started", gen)

	return func() tea.Msg {
		v, err, shared := f.group.Do("fetch", func() (any, error) {
			return f.fetch(f.ctx)
		})
		if f.ctx.Err() != nil {
			metrics.FetchCancelled.Inc()
			debug.Log("feed: fetch %d cancelled", gen)
			return nil
		}
		debug.LogIf(shared, "feed: fetch %d shared an in-flight load", gen)
		tickets, _ := v.([]model.Ticket)
		return FetchedMsg{Gen: gen, Tickets: tickets, Err: err}
	}
}

func (f *Feed) fetch(ctx context.Context) ([]model.Ticket, error) {
	if err := sleep(ctx, f.latency); err != nil {
		return nil, err
	}
	if f.shouldFail() {
		return nil, ErrInjected
	}
	tickets, err := f.loader(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tickets: %w", err)
	}
	return tickets, nil
}

func (f *Feed) shouldFail() bool {
	if f.failRate <= 0 {
		return false
	}
	f.rngMu.Lock()
	defer f.rngMu.Unlock()
	return f.rng.Float64() < f.failRate
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Apply folds a fetch result into the feed. It reports whether the message
// was accepted; results from superseded fetches or arriving after Close are
// dropped. A failed fetch is logged and swallowed, and the previous
// collection stays in place. Loading is cleared whenever a current result
// arrives.
func (f *Feed) Apply(msg FetchedMsg) bool {
	if f.closed || msg.Gen != f.gen {
		metrics.FetchDropped.Inc()
		debug.Log("feed: dropping fetch %d (current %d, closed %v)", msg.Gen, f.gen, f.closed)
		return false
	}
	f.loading = false

	if msg.Err != nil {
		metrics.FetchFailed.Inc()
		debug.Log("feed: error fetching data: %v", msg.Err)
		return true
	}
	if err := f.store.Replace(msg.Tickets); err != nil {
		debug.Log("feed: replacing collection: %v", err)
		return true
	}
	debug.Log("feed: fetch %d loaded %d tickets", msg.Gen, len(msg.Tickets))
	return true
}

// Close cancels any in-flight fetch and stops future results from being
// applied. It does not close the store.
func (f *Feed) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.cancel()
	debug.Log("feed: closed")
}

// Closed reports whether Close has been called.
func (f *Feed) Closed() bool {
	return f.closed
}
