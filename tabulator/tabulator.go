// Package tabulator fetches a JSON array of records from an HTTP endpoint and writes it
// as a table to a Store, replacing whatever the store held before.
package tabulator

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorPrefix starts the message written to the top-left cell of the store when a run fails.
const ErrorPrefix = "Error retrieving data: "

type Tabulator struct {
	client *http.Client
	store  Store
	log    *zap.Logger
}

// New returns a Tabulator that writes to store. A nil client uses http.DefaultClient and a
// nil logger discards log output.
func New(client *http.Client, store Store, logger *zap.Logger) *Tabulator {
	if client == nil {
		client = http.DefaultClient
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Tabulator{
		client: client,
		store:  store,
		log:    logger,
	}
}

// Run fetches the records from url and replaces the store contents with the tabulated grid.
//
// On failure the error is logged and written to the top-left cell of the store, replacing
// anything already there, and then returned. The returned error is always a *Error.
func (t *Tabulator) Run(ctx context.Context, url string) error {
	grid, err := t.tabulate(ctx, url)
	if err == nil {
		err = t.write(ctx, grid)
	}

	if err != nil {
		t.log.Error("tabulation failed", zap.String("url", url), zap.Error(err))

		if err := t.store.SetCell(ctx, 1, 1, ErrorPrefix+err.Error()); err != nil {
			t.log.Error("unable to write error to store", zap.Error(err))
		}

		return err
	}

	t.log.Info("tabulated source data",
		zap.String("url", url),
		zap.Int("records", grid.Height()-1),
		zap.Strings("headers", grid.Headers()))

	return nil
}

func (t *Tabulator) tabulate(ctx context.Context, url string) (Grid, error) {
	body, err := t.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	records, err := Parse(body)
	if err != nil {
		return nil, err
	}

	return Tabulate(records)
}

func (t *Tabulator) write(ctx context.Context, grid Grid) error {
	width := grid.Width()

	if err := t.store.Clear(ctx); err != nil {
		return storeError(fmt.Errorf("clear: %w", err))
	}

	if err := t.store.WriteRange(ctx, 1, 1, grid); err != nil {
		return storeError(fmt.Errorf("write: %w", err))
	}

	if err := t.store.SetStyle(ctx, 1, 1, 1, width, HeaderStyle); err != nil {
		return storeError(fmt.Errorf("format header: %w", err))
	}

	if err := t.store.AutoResizeColumns(ctx, 1, width); err != nil {
		return storeError(fmt.Errorf("resize columns: %w", err))
	}

	return nil
}
