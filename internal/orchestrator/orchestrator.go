package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rickgao/coinboard/internal/api"
	"github.com/rickgao/coinboard/internal/metrics"
	"github.com/rickgao/coinboard/internal/model"
	"github.com/rickgao/coinboard/internal/state"
)

// MarketClient is the subset of the API client the orchestrator needs.
type MarketClient interface {
	GetMarkets(ctx context.Context, opts api.MarketsOptions) ([]model.MarketRow, error)
	GetMarketsByIDs(ctx context.Context, ids []string, currency model.Currency) ([]model.MarketRow, error)
}

// Config holds orchestrator configuration.
type Config struct {
	FetchTimeout time.Duration     // Per-cycle timeout (0 = none beyond the client's)
	OnError      model.ErrorPolicy // What to do with displayed rows on failure
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		FetchTimeout: 30 * time.Second,
		OnError:      model.KeepRows,
	}
}

// Orchestrator ties selection changes to market fetches.
type Orchestrator struct {
	cfg     Config
	client  MarketClient
	store   *state.Store
	tracker *metrics.Tracker
	logger  *slog.Logger

	// mu orders Trigger's wg.Add against Stop.
	mu       sync.Mutex
	inflight context.CancelFunc
	stopped  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Orchestrator. tracker may be nil.
func New(cfg Config, client MarketClient, store *state.Store, logger *slog.Logger, tracker *metrics.Tracker) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:     cfg,
		client:  client,
		store:   store,
		tracker: tracker,
		logger:  logger,
	}
}

// Start begins the event loop and runs the initial cycle.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	o.ctx, o.cancel = context.WithCancel(ctx)
	o.wg.Add(1)
	o.mu.Unlock()

	go o.run()

	o.logger.Info("fetch orchestrator started",
		"fetch_timeout", o.cfg.FetchTimeout,
		"on_error", o.cfg.OnError,
	)

	return nil
}

// Stop cancels any in-flight cycle and waits for the loop to exit.
func (o *Orchestrator) Stop(ctx context.Context) error {
	o.mu.Lock()
	o.stopped = true
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		o.logger.Info("fetch orchestrator stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main event loop.
func (o *Orchestrator) run() {
	defer o.wg.Done()

	// Initial mount.
	o.Trigger()

	for {
		select {
		case <-o.ctx.Done():
			return
		case <-o.store.Changes():
			o.Trigger()
		}
	}
}

// Trigger starts a new cycle for the current selection, superseding any
// cycle still in flight. It returns the new cycle's sequence number, or 0
// once the orchestrator has been stopped.
func (o *Orchestrator) Trigger() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	parent := o.ctx
	if parent == nil {
		parent = context.Background()
	}
	if o.stopped || parent.Err() != nil {
		return 0
	}

	if o.inflight != nil {
		o.inflight()
	}
	ctx, cancel := context.WithCancel(parent)
	o.inflight = cancel
	seq := o.store.BeginFetch()
	sel := o.store.Selection()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer cancel()
		o.cycle(ctx, seq, sel)
	}()

	return seq
}

// cycle fetches rows for sel and hands the outcome to the store.
func (o *Orchestrator) cycle(ctx context.Context, seq uint64, sel model.Selection) {
	start := time.Now()

	if o.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.FetchTimeout)
		defer cancel()
	}

	rows, err := o.fetch(ctx, sel)
	applied := o.store.FinishFetch(seq, rows, err, o.cfg.OnError)

	c := model.Cycle{
		Seq:      seq,
		Search:   sel.Searching(),
		Rows:     len(rows),
		Err:      err,
		Applied:  applied,
		Duration: time.Since(start),
	}
	o.tracker.TrackCycle(c)
	o.logCycle(c)
}

// fetch selects the client operation for sel.
func (o *Orchestrator) fetch(ctx context.Context, sel model.Selection) ([]model.MarketRow, error) {
	if sel.Searching() {
		return o.client.GetMarketsByIDs(ctx, []string{sel.Search}, sel.Currency)
	}
	return o.client.GetMarkets(ctx, api.OptionsFor(sel))
}

func (o *Orchestrator) logCycle(c model.Cycle) {
	switch {
	case !c.Applied:
		o.logger.Debug("discarded superseded fetch",
			"seq", c.Seq,
			"duration", c.Duration,
		)
	case c.Err != nil:
		o.logger.Warn("fetch failed",
			"seq", c.Seq,
			"search", c.Search,
			"err", c.Err,
			"duration", c.Duration,
		)
	default:
		o.logger.Info("fetch complete",
			"seq", c.Seq,
			"search", c.Search,
			"rows", c.Rows,
			"duration", c.Duration,
		)
	}
}
