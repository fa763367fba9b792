package dataset

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func mustRead(t *testing.T, csvText string, limit int) []Row {
	t.Helper()
	rows, err := ReadFrom(context.Background(), strings.NewReader(csvText), limit)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	return rows
}

func TestReadFrom_Basic(t *testing.T) {
	t.Parallel()

	rows := mustRead(t, "id,name,platforms\n1,Portal,PC||Mac\n2,Doom,PC\n", 0)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	if v, ok := rows[0].Get("name"); !ok || v != "Portal" {
		t.Fatalf("rows[0].Get(name) = (%q, %v)", v, ok)
	}
	if v, ok := rows[1].Get("platforms"); !ok || v != "PC" {
		t.Fatalf("rows[1].Get(platforms) = (%q, %v)", v, ok)
	}
}

func TestReadFrom_MissingColumnAndEmptyCell(t *testing.T) {
	t.Parallel()

	rows := mustRead(t, "id,name\n1,\n", 0)
	if _, ok := rows[0].Get("name"); ok {
		t.Fatalf("empty cell should read as missing")
	}
	if _, ok := rows[0].Get("no_such_column"); ok {
		t.Fatalf("absent column should read as missing")
	}
	if rows[0].Has("id") != true {
		t.Fatalf("id should be present")
	}
}

func TestReadFrom_Limit(t *testing.T) {
	t.Parallel()

	rows := mustRead(t, "id\n1\n2\n3\n", 2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if v, _ := rows[1].Get("id"); v != "2" {
		t.Fatalf("limit should keep the first rows in order, got id=%q", v)
	}
}

func TestReadFrom_PadsNarrowRows(t *testing.T) {
	t.Parallel()

	rows := mustRead(t, "id,name,slug\n1,Portal\n", 0)
	if _, ok := rows[0].Get("slug"); ok {
		t.Fatalf("padded cell should be missing")
	}
	if v, _ := rows[0].Get("name"); v != "Portal" {
		t.Fatalf("name = %q, want Portal", v)
	}
}

func TestReadFrom_StripsHeaderBOM(t *testing.T) {
	t.Parallel()

	rows := mustRead(t, "\uFEFFid,name\n7,Quake\n", 0)
	if v, ok := rows[0].Get("id"); !ok || v != "7" {
		t.Fatalf("Get(id) after BOM strip = (%q, %v)", v, ok)
	}
}

func TestReadFrom_EmptySource(t *testing.T) {
	t.Parallel()

	if _, err := ReadFrom(context.Background(), strings.NewReader(""), 0); err == nil {
		t.Fatalf("expected error for empty source")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	if _, err := Load(context.Background(), "does-not-exist-9f2c.csv", 0); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "games.csv")
	if err := os.WriteFile(path, []byte("id,name\n1,Portal\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rows, err := Load(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if got := rows[0].header.Columns(); !reflect.DeepEqual(got, []string{"id", "name"}) {
		t.Fatalf("columns = %#v", got)
	}
}
