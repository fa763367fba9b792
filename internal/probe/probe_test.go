package probe

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const sampleCSV = "id,name,platforms,developers,publishers,genres,esrb_rating,Rating Café\n" +
	"1,Portal,PC||Mac,Valve,Valve,Puzzle,Everyone 10+,x\n" +
	"2,Doom,PC,id Software,Bethesda,Action||Shooter,Mature,y\n"

func TestInspect_Report(t *testing.T) {
	t.Parallel()

	path := writeSample(t, sampleCSV)
	rep, err := Inspect(context.Background(), path, 5)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if rep.SampleRows != 2 {
		t.Fatalf("SampleRows = %d, want 2", rep.SampleRows)
	}
	if len(rep.Columns) != 8 {
		t.Fatalf("Columns = %v", rep.Columns)
	}
	if rep.Fingerprint == 0 {
		t.Fatalf("Fingerprint should not be zero")
	}
	if got := rep.Normalized[7]; got != "rating_cafe" {
		t.Fatalf("Normalized[7] = %q, want %q", got, "rating_cafe")
	}

	var platforms, genres *FieldReport
	for i := range rep.Fields {
		switch rep.Fields[i].Column {
		case "platforms":
			platforms = &rep.Fields[i]
		case "genres":
			genres = &rep.Fields[i]
		}
	}
	if platforms == nil || !platforms.Present || genres == nil {
		t.Fatalf("entity fields missing from report: %#v", rep.Fields)
	}
	if want := []string{"PC", "Mac"}; !reflect.DeepEqual(platforms.Samples[0].Parsed, want) {
		t.Fatalf("platforms parsed = %v, want %v", platforms.Samples[0].Parsed, want)
	}
	if want := []string{"Action", "Shooter"}; !reflect.DeepEqual(genres.Samples[1].Parsed, want) {
		t.Fatalf("genres parsed = %v, want %v", genres.Samples[1].Parsed, want)
	}
}

func TestInspect_SampleCountCapsRows(t *testing.T) {
	t.Parallel()

	path := writeSample(t, "id,platforms\n1,PC\n2,Mac\n3,Linux\n")
	rep, err := Inspect(context.Background(), path, 2)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if rep.SampleRows != 2 {
		t.Fatalf("SampleRows = %d, want 2", rep.SampleRows)
	}
}

func TestInspect_AbsentColumnsReported(t *testing.T) {
	t.Parallel()

	path := writeSample(t, "id,name\n1,Portal\n")
	rep, err := Inspect(context.Background(), path, 5)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	for _, fr := range rep.Fields {
		if fr.Present {
			t.Fatalf("field %s reported present without its column", fr.Column)
		}
	}
}

func TestInspect_FingerprintStable(t *testing.T) {
	t.Parallel()

	path := writeSample(t, sampleCSV)
	a, err := Inspect(context.Background(), path, 5)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	b, err := Inspect(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if a.Fingerprint != b.Fingerprint {
		t.Fatalf("fingerprint varies with sample count: %x vs %x", a.Fingerprint, b.Fingerprint)
	}

	other := writeSample(t, sampleCSV+"3,Quake,PC,,,,,z\n")
	c, err := Inspect(context.Background(), other, 5)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if a.Fingerprint == c.Fingerprint {
		t.Fatalf("different sources share a fingerprint")
	}
}

func TestInspect_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Inspect(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), 5); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	path := writeSample(t, sampleCSV)
	rep, err := Inspect(context.Background(), path, 5)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	var sb strings.Builder
	rep.Render(&sb)
	out := sb.String()
	for _, want := range []string{
		"source: " + path,
		"sampled rows: 2",
		"field platforms:",
		`"PC||Mac" -> ["PC" "Mac"]`,
		"(normalized: rating_cafe)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestNormalizeFieldName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Name", "name"},
		{"Rating Café", "rating_cafe"},
		{"added_status.yet", "added_status_yet"},
		{"--weird--", "weird"},
		{"***", "col"},
	}
	for _, tc := range cases {
		if got := normalizeFieldName(tc.in); got != tc.want {
			t.Errorf("normalizeFieldName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
