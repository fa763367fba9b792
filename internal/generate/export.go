package generate

import (
	"context"

	"rawg2ttl/internal/collect"
	"rawg2ttl/internal/config"
	"rawg2ttl/internal/dataset"
	"rawg2ttl/internal/storage"
	"rawg2ttl/internal/turtle"
)

// export mirrors the collected entities and the emitted game rows into the
// configured relational backend. The TTL artifact is already on disk by the
// time this runs; the tables exist for ad-hoc SQL over a conversion run, not
// as a second source of truth.
func export(ctx context.Context, p config.Pipeline, ents *collect.Entities, rows []dataset.Row) (int64, error) {
	repo, err := storage.New(ctx, storage.Config{Kind: p.Storage.Kind, DSN: p.Storage.DB.DSN})
	if err != nil {
		return 0, err
	}
	defer repo.Close()

	if err := storage.EnsureEntitiesTable(ctx, repo, p.Storage.DB.EntitiesTable); err != nil {
		return 0, err
	}
	if err := storage.EnsureGamesTable(ctx, repo, p.Storage.DB.GamesTable); err != nil {
		return 0, err
	}

	var total int64

	n, err := storage.LoadBatches(ctx, repo, p.Job, p.Storage.DB.EntitiesTable,
		storage.EntityColumns, entityRows(ents), p.Storage.DB.BatchSize)
	total += n
	if err != nil {
		return total, err
	}

	n, err = storage.LoadBatches(ctx, repo, p.Job, p.Storage.DB.GamesTable,
		storage.GameColumns, gameRows(rows), p.Storage.DB.BatchSize)
	total += n
	return total, err
}

// entityRows flattens the per-category sets into export rows. Names whose
// fragment does not clean are skipped, mirroring the entity phase of the
// emitter.
func entityRows(ents *collect.Entities) [][]any {
	var out [][]any
	for _, cat := range turtle.Categories {
		for _, name := range ents.Set(cat).Names() {
			frag, ok := turtle.CleanFragment(name)
			if !ok {
				continue
			}
			out = append(out, []any{cat.String(), frag, name})
		}
	}
	return out
}

// gameRows extracts the identifying columns of each game row. Rows without
// an identifier are skipped, mirroring the game phase of the emitter.
func gameRows(rows []dataset.Row) [][]any {
	var out [][]any
	for _, row := range rows {
		if _, ok := row.Get("id"); !ok {
			continue
		}
		rec := make([]any, 0, len(storage.GameColumns))
		for _, col := range storage.GameColumns {
			v, _ := row.Get(col)
			rec = append(rec, v)
		}
		out = append(out, rec)
	}
	return out
}
