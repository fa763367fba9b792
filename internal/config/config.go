// Package config defines the canonical, JSON-serializable configuration model
// for the TTL generator. It is intentionally small, explicit, and dependency-
// free so that pipelines can be loaded from disk and passed through the
// program without additional glue code.
//
// Design goals:
//
//  1. Stability: changes to this package should be additive and backwards-
//     compatible whenever possible.
//  2. Clarity: field names in Go mirror the JSON structure used in pipeline
//     files.
//  3. Minimalism: no third-party config libraries; decoding is performed by
//     the standard library.
//
// Example:
//
//	{
//	  "job":    "rawg-full",
//	  "source": { "path": "data/rawg_games.csv", "limit": 0 },
//	  "output": { "path": "out/videogames.ttl" },
//	  "storage": {
//	    "kind": "sqlite",
//	    "db": { "dsn": "file:run.db", "entities_table": "entities", "games_table": "games" }
//	  }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline describes one generation run: where the CSV comes from, where the
// Turtle artifact goes, and the optional relational export.
type Pipeline struct {
	// Job is the logical run name, used for metrics labeling and logs.
	Job string `json:"job"`

	// Source describes the CSV input.
	Source Source `json:"source"`

	// Output describes the Turtle artifact destination.
	Output Output `json:"output"`

	// Storage optionally mirrors the run into a relational database.
	Storage Storage `json:"storage"`
}

// Source identifies the CSV input.
type Source struct {
	// Path is the local filesystem path to the input CSV.
	Path string `json:"path"`

	// Limit caps the number of data rows read from the start of the file.
	// Zero means all rows.
	Limit int `json:"limit"`
}

// Output identifies the Turtle artifact destination.
type Output struct {
	// Path is the local filesystem path the artifact is written to. The file
	// is created or truncated.
	Path string `json:"path"`
}

// Storage selects the optional relational export sink.
type Storage struct {
	// Kind selects the storage implementation: "none" (or empty), "sqlite",
	// "postgres", or "mysql".
	Kind string `json:"kind"`

	// DB carries options for the selected backend.
	DB DBConfig `json:"db"`
}

// DBConfig configures the relational export sink.
type DBConfig struct {
	// DSN is the connection string, interpreted by the selected backend:
	// a pgxpool URL for postgres, a go-sql-driver DSN for mysql, or a file
	// path / file: URL for sqlite.
	DSN string `json:"dsn"`

	// EntitiesTable is the destination table for collected entities.
	// Defaults to "entities".
	EntitiesTable string `json:"entities_table"`

	// GamesTable is the destination table for game rows.
	// Defaults to "games".
	GamesTable string `json:"games_table"`

	// BatchSize is the number of rows per export batch. Defaults to 500.
	BatchSize int `json:"batch_size"`
}

// StorageEnabled reports whether the pipeline requests a relational export.
func (p Pipeline) StorageEnabled() bool {
	return p.Storage.Kind != "" && p.Storage.Kind != "none"
}

// ApplyDefaults fills in the defaulted DB fields. Safe to call on a zero
// Storage block.
func (p *Pipeline) ApplyDefaults() {
	if p.Job == "" {
		p.Job = "ttlgen"
	}
	if p.Storage.DB.EntitiesTable == "" {
		p.Storage.DB.EntitiesTable = "entities"
	}
	if p.Storage.DB.GamesTable == "" {
		p.Storage.DB.GamesTable = "games"
	}
	if p.Storage.DB.BatchSize <= 0 {
		p.Storage.DB.BatchSize = 500
	}
}

// LoadFile decodes a Pipeline from the JSON file at path.
func LoadFile(path string) (Pipeline, error) {
	var p Pipeline

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return p, fmt.Errorf("decode config: %w", err)
	}
	return p, nil
}
