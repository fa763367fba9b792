package storage

import (
	"context"
	"fmt"
)

// The export schema is deliberately lowest-common-denominator SQL: TEXT
// columns and CREATE TABLE IF NOT EXISTS are accepted verbatim by SQLite,
// Postgres, and MySQL, so one DDL string serves every registered backend.

// EnsureEntitiesTable creates the entities table if it does not exist.
// Columns: category (e.g. "Platforms"), fragment (cleaned URI local name),
// name (raw entity name).
func EnsureEntitiesTable(ctx context.Context, repo Repository, table string) error {
	ddl := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (category TEXT, fragment TEXT, name TEXT)",
		table,
	)
	if err := repo.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure %s: %w", table, err)
	}
	return nil
}

// EntityColumns is the column order used for entity export rows.
var EntityColumns = []string{"category", "fragment", "name"}

// EnsureGamesTable creates the games table if it does not exist. It carries
// the identifying fields of each emitted game block, not the full metric set;
// the TTL artifact remains the complete record of a run.
func EnsureGamesTable(ctx context.Context, repo Repository, table string) error {
	ddl := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (id TEXT, name TEXT, slug TEXT, released TEXT, website TEXT, esrb_rating TEXT)",
		table,
	)
	if err := repo.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure %s: %w", table, err)
	}
	return nil
}

// GameColumns is the column order used for game export rows.
var GameColumns = []string{"id", "name", "slug", "released", "website", "esrb_rating"}
