package services

import (
	"context"
	"sync"
	"time"

	"github.com/docfolio/docfolio/internal/core/ports/driven"
	"github.com/docfolio/docfolio/internal/core/ports/driving"
	"github.com/docfolio/docfolio/internal/logger"
)

// Ensure Refresher implements the interface.
var _ driving.Refresher = (*Refresher)(nil)

// TickerFactory produces a tick channel for the refresh interval and
// a stop function. Injectable so tests drive the loop without real
// sleeping.
type TickerFactory func(interval time.Duration) (<-chan time.Time, func())

func defaultTicker(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// Refresher periodically rebuilds the registry from a document
// source. Each cycle runs fetch -> build -> publish; any failure is
// contained within the cycle and the loop runs until shutdown.
type Refresher struct {
	source     driven.DocumentSource
	normaliser driven.EmbedNormaliser
	registry   *Registry
	interval   time.Duration

	newTicker TickerFactory
	trigger   <-chan struct{}

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// RefresherOption customises a Refresher.
type RefresherOption func(*Refresher)

// WithTickerFactory replaces the real interval ticker. Test hook.
func WithTickerFactory(f TickerFactory) RefresherOption {
	return func(r *Refresher) { r.newTicker = f }
}

// WithTrigger adds a channel whose receives schedule an immediate
// refresh in addition to the interval ticks. Used for manifest
// file-change notifications.
func WithTrigger(ch <-chan struct{}) RefresherOption {
	return func(r *Refresher) { r.trigger = ch }
}

// NewRefresher creates a refresher. Interval must be positive.
func NewRefresher(
	source driven.DocumentSource,
	normaliser driven.EmbedNormaliser,
	registry *Registry,
	interval time.Duration,
	opts ...RefresherOption,
) *Refresher {
	r := &Refresher{
		source:     source,
		normaliser: normaliser,
		registry:   registry,
		interval:   interval,
		newTicker:  defaultTicker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start runs the refresh loop. An immediate first cycle populates
// the registry before the first interval elapses. Blocks until Stop
// is called or the context is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil // Already running
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.mu.Unlock()

	r.RefreshNow(ctx)

	tick, stop := r.newTicker(r.interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.stopCh:
			return nil
		case <-tick:
			r.RefreshNow(ctx)
		case <-r.trigger:
			logger.Debug("refresher: change notification, refreshing early")
			r.RefreshNow(ctx)
		}
	}
}

// Stop gracefully shuts down the refresh loop, waiting for an
// in-flight cycle to complete. Safe to call more than once.
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

// RefreshNow performs one refresh cycle. A fetch failure is logged
// and the previous snapshot stays published; a legitimately empty
// listing publishes an empty snapshot.
func (r *Refresher) RefreshNow(ctx context.Context) {
	r.wg.Add(1)
	defer r.wg.Done()

	started := time.Now()

	docs, err := r.source.List(ctx)
	if err != nil {
		logger.Warn("refresher: %s listing failed, keeping previous snapshot: %v", r.source.Type(), err)
		return
	}

	snapshot := BuildSnapshot(docs, r.normaliser)
	r.registry.Publish(snapshot)

	logger.Info("refresher: published snapshot %s with %d entries in %s",
		snapshot.CycleID, snapshot.Len(), time.Since(started).Round(time.Millisecond))
}

// Interval returns the configured refresh interval.
func (r *Refresher) Interval() time.Duration {
	return r.interval
}
