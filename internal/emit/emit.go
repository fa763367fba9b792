// Package emit serializes the collected entity sets and the source rows into
// RDF Turtle. Output is strictly append-only: the namespace preamble first,
// then one declaration block per unique entity, then one block per game row,
// so the writer can stream straight to the destination file.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"rawg2ttl/internal/collect"
	"rawg2ttl/internal/dataset"
	"rawg2ttl/internal/fields"
	"rawg2ttl/internal/turtle"
)

// progressEvery controls how often the game phase logs a status line.
const progressEvery = 100

// metricSpec maps one numeric CSV column to its predicate and datatype.
type metricSpec struct {
	column    string
	predicate string
	integer   bool // integer literal (truncated) vs raw decimal
}

// metricSpecs lists the fourteen numeric metrics in emission order.
var metricSpecs = [...]metricSpec{
	{"metacritic", "schema:ratingValue", false},
	{"rating", "schema:bestRating", false},
	{"playtime", "vgo:averagePlayTime", true},
	{"achievements_count", "rawg:achievementCount", true},
	{"ratings_count", "schema:ratingCount", true},
	{"suggestions_count", "rawg:suggestionCount", true},
	{"game_series_count", "rawg:gameSeriesCount", true},
	{"reviews_count", "schema:reviewCount", true},
	{"added_status_yet", "rawg:addedStatusYet", true},
	{"added_status_owned", "rawg:addedStatusOwned", true},
	{"added_status_beaten", "rawg:addedStatusBeaten", true},
	{"added_status_toplay", "rawg:addedStatusToPlay", true},
	{"added_status_dropped", "rawg:addedStatusDropped", true},
	{"added_status_playing", "rawg:addedStatusPlaying", true},
}

// Emitter writes Turtle blocks to a destination. Write errors are sticky: the
// first one is retained and every later call becomes a no-op, so callers
// check a single error at Flush.
type Emitter struct {
	w   *bufio.Writer
	err error
}

// New wraps w in an Emitter with buffered output.
func New(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriterSize(w, 64*1024)}
}

func (e *Emitter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func (e *Emitter) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

// Flush drains the buffer and returns the first write error, if any.
func (e *Emitter) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

// Preamble writes the fixed namespace prefix block.
func (e *Emitter) Preamble() {
	e.writeString(turtle.Preamble)
}

// Entities writes one declaration block per unique entity name, category by
// category in fixed order, names in first-seen order. Names whose cleaned
// fragment is empty are skipped entirely. When two distinct raw names clean
// to the same fragment both blocks are still written (the reader sees the
// last schema:name), but a warning is logged so the collision is visible.
func (e *Emitter) Entities(ents *collect.Entities) {
	for _, cat := range turtle.Categories {
		e.printf("# %s\n", cat)

		firstRaw := make(map[string]string)
		for _, name := range ents.Set(cat).Names() {
			frag, ok := turtle.CleanFragment(name)
			if !ok {
				continue
			}
			if prev, dup := firstRaw[frag]; dup {
				log.Printf("entities: %s %q collides with %q (fragment %q)", cat, name, prev, frag)
			} else {
				firstRaw[frag] = name
			}

			e.printf("%s rdf:type %s ;\n", cat.Subject(frag), cat.Class())
			e.printf("    %s \"%s\" .\n\n", turtle.PredName, turtle.EscapeLiteral(name))
		}
	}
}

// Games writes one block per row in source order and returns how many blocks
// were emitted and how many rows were skipped for lacking an identifier. A
// status line is logged periodically; rows contribute independently, so one
// row's omissions never affect another's output.
func (e *Emitter) Games(rows []dataset.Row) (emitted, skipped int) {
	e.writeString("# Video games\n")

	total := len(rows)
	for i, row := range rows {
		if (i+1)%progressEvery == 0 {
			log.Printf("games: processing %d/%d", i+1, total)
		}

		id, ok := row.Get("id")
		if !ok {
			skipped++
			continue
		}

		e.printf("%s rdf:type %s", turtle.GameSubject(id), turtle.ClassVideoGame)
		e.clause(turtle.PredIdentifier, quoted(id))

		if name, ok := row.Get("name"); ok {
			e.clause(turtle.PredName, quoted(turtle.EscapeLiteral(name)))
		}
		if slug, ok := row.Get("slug"); ok {
			e.clause(turtle.PredAlternateName, quoted(turtle.EscapeLiteral(slug)))
		}
		if raw, ok := row.Get("released"); ok {
			if date, ok := turtle.FormatDate(raw); ok {
				e.clause(turtle.PredDatePublished, quoted(date)+turtle.TypeDate)
			}
		}
		if website, ok := row.Get("website"); ok {
			e.clause(turtle.PredURL, quoted(website)+turtle.TypeAnyURI)
		}

		e.metrics(row)

		if tba, ok := row.Get("tba"); ok {
			e.clause(turtle.PredToBeAnnounced, quoted(boolLiteral(tba))+turtle.TypeBoolean)
		}
		if updated, ok := row.Get("updated"); ok {
			e.clause(turtle.PredModified, quoted(updated)+turtle.TypeDateTime)
		}

		e.references(row)

		e.writeString(" .\n\n")
		emitted++
	}
	return emitted, skipped
}

// clause appends one predicate-object pair to the open subject block.
func (e *Emitter) clause(pred, obj string) {
	e.printf(" ;\n    %s %s", pred, obj)
}

// metrics appends the numeric metric clauses. A metric is emitted only when
// its raw string is present and not exactly "0.0"; that literal comparison is
// inherited from the consuming ontology's existing loads, where zeros happen
// to be written as "0.0", and is kept as-is so re-generated artifacts diff
// clean. Integer metrics are truncated through float conversion ("3.9" -> 3);
// unparsable integer text drops the clause. Decimal metrics pass the raw
// string through.
func (e *Emitter) metrics(row dataset.Row) {
	for _, m := range metricSpecs {
		raw, ok := row.Get(m.column)
		if !ok || raw == "0.0" {
			continue
		}
		if m.integer {
			f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				continue
			}
			e.clause(m.predicate, quoted(strconv.FormatInt(int64(f), 10))+turtle.TypeInteger)
		} else {
			e.clause(m.predicate, quoted(raw)+turtle.TypeDecimal)
		}
	}
}

// references appends one entity reference clause per parsed value whose
// fragment cleans successfully. Entity declarations always precede game
// blocks, so every reference resolves to a declared subject.
func (e *Emitter) references(row dataset.Row) {
	for _, cat := range turtle.Categories {
		raw, ok := row.Get(cat.Column())
		if !ok {
			continue
		}

		var names []string
		if cat.Multi() {
			names = fields.SplitMulti(raw)
		} else if name, ok := fields.Single(raw); ok {
			names = []string{name}
		}

		for _, name := range names {
			if frag, ok := turtle.CleanFragment(name); ok {
				e.clause(cat.Predicate(), cat.Subject(frag))
			}
		}
	}
}

// boolLiteral maps a raw tba value onto "true"/"false". Only "true" and "1"
// (case-insensitive) count as true; anything else, including junk values, is
// false.
func boolLiteral(raw string) string {
	switch strings.ToLower(raw) {
	case "true", "1":
		return "true"
	}
	return "false"
}

func quoted(s string) string { return `"` + s + `"` }
