// Package export runs the catalog pipeline: decode, select the wanted
// printings, and normalize each one into a Tabletop Simulator record.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/ttsforge/internal/card"
	"github.com/arcanaland/ttsforge/internal/tts"
)

// Options configure a pipeline run
type Options struct {
	Wanted card.Wanted

	// SkipInvalid drops records that fail decode and carries on. When
	// false the first such record aborts the run.
	SkipInvalid bool

	// Workers bounds parallel normalization; values below 1 mean 1
	Workers int

	Logger *zap.Logger
}

// Result is the outcome of a pipeline run
type Result struct {
	// Records are in catalog order, duplicates included
	Records []tts.Record
	// Skipped holds the record errors dropped under SkipInvalid
	Skipped []error
	// Decoded counts every record that decoded, exported or not
	Decoded int
}

// Keyed returns the records keyed by collector number and set. When the
// catalog repeats a printing, the later record wins.
func (r *Result) Keyed() map[string]tts.Record {
	return Keyed(r.Records)
}

// Keyed indexes records by collector number followed by set code, the
// later of two equal keys overwriting the earlier.
func Keyed(records []tts.Record) map[string]tts.Record {
	out := make(map[string]tts.Record, len(records))
	for _, rec := range records {
		out[card.Key{CollectorNumber: rec.CollectorNumber, Set: rec.Set}.String()] = rec
	}
	return out
}

// Run streams a catalog from r through the pipeline
func Run(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	res := &Result{}
	var selected []card.Card

	onErr := func(err error) error {
		if !opts.SkipInvalid {
			return err
		}
		logger.Warn("skipping catalog record", zap.Error(err))
		res.Skipped = append(res.Skipped, err)
		return nil
	}

	err := card.Scan(r, func(c card.Card) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Decoded++
		if opts.Wanted.Selects(c) {
			selected = append(selected, c)
		}
		return nil
	}, onErr)
	if err != nil {
		return nil, fmt.Errorf("error decoding catalog: %w", err)
	}

	logger.Info("catalog decoded",
		zap.Int("records", res.Decoded),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("selected", len(selected)),
		zap.Int("wanted", len(opts.Wanted)))

	records, err := Records(ctx, selected, opts.Workers)
	if err != nil {
		return nil, err
	}
	res.Records = records

	logger.Info("records normalized",
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// Records normalizes cards with up to workers goroutines. Output order
// matches input order.
func Records(ctx context.Context, cards []card.Card, workers int) ([]tts.Record, error) {
	if workers < 1 {
		workers = 1
	}

	out := make([]tts.Record, len(cards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range cards {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := tts.Normalize(c)
			if err != nil {
				return fmt.Errorf("error normalizing %s: %w", c.Key(), err)
			}
			out[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
