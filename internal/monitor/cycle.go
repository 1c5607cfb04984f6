package monitor

import (
	"context"

	"go.uber.org/zap"

	"github.com/parkwatch/parkwatch/internal/fetch"
	"github.com/parkwatch/parkwatch/internal/notify"
	"github.com/parkwatch/parkwatch/internal/parking"
)

// Parser abstracts availability detection for the cycle.
type Parser interface {
	Parse(markup string) parking.State
}

// StateStore abstracts persistence of the latest observation.
type StateStore interface {
	Load() (*parking.State, error)
	Save(parking.State) error
}

// Cycle runs one complete check: fetch, parse, persist, decide, notify.
type Cycle struct {
	url      string
	fetcher  fetch.Fetcher
	parser   Parser
	store    StateStore
	notifier notify.Notifier
	log      *zap.Logger
}

// New wires a Cycle from its collaborators.
func New(url string, fetcher fetch.Fetcher, parser Parser, store StateStore, notifier notify.Notifier, log *zap.Logger) *Cycle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cycle{
		url:      url,
		fetcher:  fetcher,
		parser:   parser,
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// Run executes one check and reports the notification decision. Only a
// fetch failure aborts the cycle; every other failure is handled
// locally. The current state is persisted before the notification is
// attempted, so a crash during send cannot leave the next cycle
// comparing against stale data.
func (c *Cycle) Run(ctx context.Context) (parking.Decision, error) {
	markup, err := c.fetcher.Fetch(ctx, c.url)
	if err != nil {
		c.log.Error("fetch failed; aborting cycle",
			zap.String("url", c.url), zap.Error(err))
		return parking.Decision{}, err
	}

	current := c.parser.Parse(markup)
	c.log.Info("page parsed",
		zap.Bool("has_vacancy", current.HasVacancy),
		zap.String("details", current.Details))

	previous, err := c.store.Load()
	if err != nil {
		// An unreadable record reads as "no prior observation".
		c.log.Warn("previous state unreadable; treating as first observation",
			zap.Error(err))
		previous = nil
	}

	if err := c.store.Save(current); err != nil {
		c.log.Warn("persisting state failed; next cycle may re-alert",
			zap.Error(err))
	}

	decision := parking.Decide(current, previous, c.url)
	if !decision.Send {
		c.log.Info("notification suppressed", zap.String("reason", decision.Reason))
		return decision, nil
	}

	if err := c.notifier.Send(ctx, decision.Subject, decision.Body); err != nil {
		// State is already persisted, so the next cycle suppresses
		// correctly even though this alert was lost.
		c.log.Warn("notification send failed", zap.Error(err))
		return decision, nil
	}

	c.log.Info("notification sent", zap.String("subject", decision.Subject))
	return decision, nil
}
