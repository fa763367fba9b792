// Package generate orchestrates one conversion run: load the CSV, collect
// unique entities, stream the Turtle artifact, and optionally mirror the run
// into a relational database.
//
// The pipeline is strictly sequential; each stage completes before the next
// starts, and the emitter depends on the collector's finished sets so every
// reference a game block emits resolves to an already-declared subject.
package generate

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"rawg2ttl/internal/collect"
	"rawg2ttl/internal/config"
	"rawg2ttl/internal/dataset"
	"rawg2ttl/internal/emit"
	"rawg2ttl/internal/metrics"
	"rawg2ttl/internal/turtle"
)

// Summary reports what one run produced.
type Summary struct {
	RowsLoaded   int
	GamesEmitted int
	GamesSkipped int

	// Entities counts unique names per category, keyed by category name.
	Entities map[string]int

	// Exported is the number of database rows written, zero when the
	// relational export is disabled.
	Exported int64
}

// Run executes the full pipeline described by p. The Turtle artifact is
// complete and closed before the optional relational export starts, so an
// export failure never truncates the artifact.
func Run(ctx context.Context, p config.Pipeline) (Summary, error) {
	p.ApplyDefaults()
	var sum Summary

	// Load.
	start := time.Now()
	rows, err := dataset.Load(ctx, p.Source.Path, p.Source.Limit)
	metrics.RecordStep(p.Job, "load", err, time.Since(start))
	if err != nil {
		return sum, err
	}
	sum.RowsLoaded = len(rows)
	metrics.RecordRows(p.Job, "loaded", int64(len(rows)))
	log.Printf("load: %d rows from %s", len(rows), p.Source.Path)

	// Collect.
	start = time.Now()
	ents := collect.Rows(rows)
	metrics.RecordStep(p.Job, "collect", nil, time.Since(start))

	sum.Entities = make(map[string]int, turtle.NumCategories)
	var entityTotal int64
	for _, cat := range turtle.Categories {
		n := ents.Set(cat).Len()
		sum.Entities[cat.String()] = n
		entityTotal += int64(n)
	}
	metrics.RecordRows(p.Job, "entities", entityTotal)
	log.Printf("collect: %d unique entities", entityTotal)

	// Emit.
	start = time.Now()
	err = func() error {
		out, err := os.Create(p.Output.Path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}

		e := emit.New(out)
		e.Preamble()
		e.Entities(ents)
		sum.GamesEmitted, sum.GamesSkipped = e.Games(rows)

		flushErr := e.Flush()
		if closeErr := out.Close(); flushErr == nil {
			flushErr = closeErr
		}
		if flushErr != nil {
			return fmt.Errorf("write output: %w", flushErr)
		}
		return nil
	}()
	metrics.RecordStep(p.Job, "emit", err, time.Since(start))
	if err != nil {
		return sum, err
	}
	metrics.RecordRows(p.Job, "games_emitted", int64(sum.GamesEmitted))
	metrics.RecordRows(p.Job, "games_skipped", int64(sum.GamesSkipped))
	log.Printf("emit: %d game blocks (%d skipped) -> %s", sum.GamesEmitted, sum.GamesSkipped, p.Output.Path)

	// Optional relational export.
	if p.StorageEnabled() {
		start = time.Now()
		sum.Exported, err = export(ctx, p, ents, rows)
		metrics.RecordStep(p.Job, "export", err, time.Since(start))
		if err != nil {
			return sum, fmt.Errorf("export: %w", err)
		}
		metrics.RecordRows(p.Job, "exported", sum.Exported)
		log.Printf("export: %d rows -> %s", sum.Exported, p.Storage.Kind)
	}

	return sum, nil
}
