package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rawg2ttl/internal/config"
	"rawg2ttl/internal/storage"
)

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	in := writeCSV(t,
		"id,name,platforms,esrb_rating",
		"1,Portal,PC||Mac,Everyone",
		"2,Doom,PC,Mature",
	)
	out := filepath.Join(t.TempDir(), "out.ttl")

	sum, err := Run(context.Background(), config.Pipeline{
		Job:    "test",
		Source: config.Source{Path: in},
		Output: config.Output{Path: out},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.RowsLoaded != 2 || sum.GamesEmitted != 2 || sum.GamesSkipped != 0 {
		t.Fatalf("summary = %#v", sum)
	}
	if sum.Entities["Platforms"] != 2 || sum.Entities["ESRB ratings"] != 2 {
		t.Fatalf("entity counts = %#v", sum.Entities)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "@prefix : <") {
		t.Fatalf("artifact missing preamble:\n%s", text[:60])
	}
	for _, want := range []string{
		":platform_PC rdf:type schema:VideoGamePlatform",
		":platform_Mac rdf:type schema:VideoGamePlatform",
		":game_1 rdf:type schema:VideoGame",
		":game_2 rdf:type schema:VideoGame",
		"schema:contentRating :esrb_Mature",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("artifact missing %q:\n%s", want, text)
		}
	}
}

func TestRun_Limit(t *testing.T) {
	t.Parallel()

	in := writeCSV(t, "id,name", "1,A", "2,B", "3,C")
	out := filepath.Join(t.TempDir(), "out.ttl")

	sum, err := Run(context.Background(), config.Pipeline{
		Source: config.Source{Path: in, Limit: 2},
		Output: config.Output{Path: out},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.RowsLoaded != 2 || sum.GamesEmitted != 2 {
		t.Fatalf("summary = %#v", sum)
	}
}

func TestRun_MissingSourceFailsBeforeOutput(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.ttl")
	_, err := Run(context.Background(), config.Pipeline{
		Source: config.Source{Path: filepath.Join(t.TempDir(), "nope.csv")},
		Output: config.Output{Path: out},
	})
	if err == nil {
		t.Fatalf("expected error for missing source")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("no output should exist after source failure")
	}
}

// exportRepo records what the export would write.
type exportRepo struct {
	rowsByTable map[string][][]any
	ddl         []string
}

func (f *exportRepo) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if f.rowsByTable == nil {
		f.rowsByTable = map[string][][]any{}
	}
	f.rowsByTable[table] = append(f.rowsByTable[table], rows...)
	return int64(len(rows)), nil
}
func (f *exportRepo) Exec(ctx context.Context, sql string) error {
	f.ddl = append(f.ddl, sql)
	return nil
}
func (f *exportRepo) Close() {}

func TestRun_RelationalExport(t *testing.T) {
	repo := &exportRepo{}
	storage.Register("fake-export", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		return repo, nil
	})

	in := writeCSV(t,
		"id,name,slug,platforms",
		"1,Portal,portal,PC||Mac",
		",NoID,noid,PC",
	)
	out := filepath.Join(t.TempDir(), "out.ttl")

	sum, err := Run(context.Background(), config.Pipeline{
		Job:     "test",
		Source:  config.Source{Path: in},
		Output:  config.Output{Path: out},
		Storage: config.Storage{Kind: "fake-export", DB: config.DBConfig{DSN: "x"}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Two platform entities + one game row (the id-less row is skipped).
	if got := len(repo.rowsByTable["entities"]); got != 2 {
		t.Fatalf("entity rows = %d, want 2", got)
	}
	if got := len(repo.rowsByTable["games"]); got != 1 {
		t.Fatalf("game rows = %d, want 1", got)
	}
	if len(repo.ddl) != 2 {
		t.Fatalf("ddl statements = %d, want 2", len(repo.ddl))
	}
	if sum.Exported != 3 {
		t.Fatalf("exported = %d, want 3", sum.Exported)
	}

	game := repo.rowsByTable["games"][0]
	if game[0] != "1" || game[1] != "Portal" || game[2] != "portal" {
		t.Fatalf("game row = %#v", game)
	}
}
