package app

import (
	"context"
	"log/slog"

	"github.com/five82/skyline/internal/apod"
	"github.com/five82/skyline/internal/state"
)

// Refresher runs load cycles against the store. It is the caller-side
// policy around apod.Client: one load at a time, no automatic retries.
type Refresher struct {
	store      *state.Store
	loader     apod.RecordLoader
	windowDays int
	log        *slog.Logger
}

// NewRefresher builds a Refresher for a fixed window size.
func NewRefresher(store *state.Store, loader apod.RecordLoader, windowDays int, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Refresher{store: store, loader: loader, windowDays: windowDays, log: logger}
}

// WindowDays returns the window size every refresh requests.
func (r *Refresher) WindowDays() int {
	return r.windowDays
}

// Refresh performs one load and publishes it to the store. It returns false
// without loading when another refresh is still pending.
func (r *Refresher) Refresh(ctx context.Context) bool {
	gen, ok := r.store.Begin()
	if !ok {
		r.log.Debug("refresh ignored, load already pending")
		return false
	}
	records, err := r.loader.Load(ctx, r.windowDays)
	if err != nil {
		r.log.Error("refresh failed",
			slog.String("kind", apod.KindOf(err).String()),
			slog.Any("error", err),
		)
		r.store.Finish(gen, nil, err)
		return true
	}
	r.store.Finish(gen, records, nil)
	return true
}
