package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/state"
)

// maxBackoff caps the delay between refreshes after repeated failures.
const maxBackoff = 30 * time.Minute

// RefreshRecorder receives the outcome of every refresh. It is implemented
// by metrics.ClientMetrics.
type RefreshRecorder interface {
	RecordRefresh(count int, err error)
}

// Poller keeps the store filled with the latest meetings.
type Poller struct {
	store    *state.Store
	fetcher  api.MeetingFetcher
	interval time.Duration
	logger   *slog.Logger
	recorder RefreshRecorder

	// mu serializes refreshes so a manual retry never races a scheduled one.
	mu sync.Mutex
}

// NewPoller builds a poller. A non-positive interval disables automatic
// refresh; Run then performs only the initial fetch.
func NewPoller(store *state.Store, fetcher api.MeetingFetcher, interval time.Duration, logger *slog.Logger, recorder RefreshRecorder) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		store:    store,
		fetcher:  fetcher,
		interval: interval,
		logger:   logger,
		recorder: recorder,
	}
}

// Run fetches once, then keeps refreshing until ctx ends. Consecutive
// failures stretch the wait between attempts.
func (p *Poller) Run(ctx context.Context) error {
	_ = p.Refresh(ctx)
	if p.interval <= 0 {
		return nil
	}

	timer := time.NewTimer(p.nextDelay())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		_ = p.Refresh(ctx)
		timer.Reset(p.nextDelay())
	}
}

// Refresh fetches meetings now and records the result in the store. The
// error is returned for callers that surface it; the store keeps the last
// good data either way.
func (p *Poller) Refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	meetings, err := p.fetcher.FetchMeetings(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// Shutdown, not a backend failure.
			return err
		}
		p.store.Update(nil, err)
		p.logger.Warn("meetings refresh failed", slog.Any("error", err))
	} else {
		p.store.Update(meetings, nil)
		p.logger.Info("meetings refreshed", slog.Int("count", len(meetings)))
	}
	if p.recorder != nil {
		p.recorder.RecordRefresh(len(meetings), err)
	}
	return err
}

func (p *Poller) nextDelay() time.Duration {
	return calculateBackoff(p.store.Snapshot().ConsecutiveFailures, p.interval)
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}
