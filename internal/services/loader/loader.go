// Package loader fetches the three dashboard documents and projects them.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/shelf-watch/internal/models"
	"github.com/Houeta/shelf-watch/internal/projector"
	"golang.org/x/sync/errgroup"
)

// Document names published by the producer.
const (
	SummaryDoc = "summary.json"
	SitesDoc   = "sites.json"
	ErrorsDoc  = "errors.json"
)

// FailureMessage is the single text shown when any document fails to load.
const FailureMessage = "Failed to load dashboard data."

// ErrLoad marks a failed load. No partial snapshot is ever returned with it.
var ErrLoad = errors.New("failed to load dashboard data")

// Source returns the raw bytes of a named document.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Interface is what the presentation layers depend on.
type Interface interface {
	// Dashboard loads a snapshot and returns its projected view.
	Dashboard(ctx context.Context) (*models.DashboardView, error)
}

// Loader fetches documents from a Source.
type Loader struct {
	log     *slog.Logger
	src     Source
	timeout time.Duration
}

// New creates a loader. A zero timeout leaves deadlines to the caller.
func New(log *slog.Logger, src Source, timeout time.Duration) *Loader {
	return &Loader{log: log, src: src, timeout: timeout}
}

// Load fetches the three documents concurrently and decodes them. If any
// document fails the whole load fails.
func (l *Loader) Load(ctx context.Context) (*models.Snapshot, error) {
	const opn = "loader.Load"
	log := l.log.With("op", opn)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var snap models.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.fetchInto(gctx, SummaryDoc, &snap.Summary) })
	g.Go(func() error { return l.fetchInto(gctx, SitesDoc, &snap.Sites) })
	g.Go(func() error { return l.fetchInto(gctx, ErrorsDoc, &snap.Errors) })

	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "Dashboard documents could not be loaded", "error", err)
		return nil, fmt.Errorf("%s: %w: %w", opn, ErrLoad, err)
	}

	for i := range snap.Sites {
		snap.Sites[i] = snap.Sites[i].Normalized()
	}

	log.InfoContext(ctx, "Loaded dashboard documents",
		"sites", len(snap.Sites),
		"errors", len(snap.Errors),
		"time_utc", snap.Summary.TimeUTC,
	)

	return &snap, nil
}

// Dashboard loads a snapshot and projects it.
func (l *Loader) Dashboard(ctx context.Context) (*models.DashboardView, error) {
	snap, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}

	view := projector.Dashboard(*snap)

	return &view, nil
}

func (l *Loader) fetchInto(ctx context.Context, name string, dst any) error {
	data, err := l.src.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", name, err)
	}

	if err = json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	l.log.DebugContext(ctx, "Fetched document", "document", name, "bytes", len(data))

	return nil
}
