// Package collect performs the first pass over the row set: it walks every
// row once and accumulates the distinct entity names per category, so the
// emitter can declare each platform, developer, publisher, genre, and ESRB
// rating exactly once before any game block references it.
//
// Sets iterate in first-seen order. The upstream artifact left entity
// ordering to hash-set iteration, which made runs non-diffable; fixing the
// order is a deliberate behavior change with no effect on the triples
// themselves.
package collect

import (
	"rawg2ttl/internal/dataset"
	"rawg2ttl/internal/fields"
	"rawg2ttl/internal/turtle"
)

// Set is an insertion-ordered set of raw entity names.
type Set struct {
	seen  map[string]struct{}
	order []string
}

// Add inserts name unless it is already present.
func (s *Set) Add(name string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, dup := s.seen[name]; dup {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}

// Names returns the distinct names in first-seen order. The returned slice
// is owned by the set; callers must not mutate it.
func (s *Set) Names() []string { return s.order }

// Len returns the number of distinct names.
func (s *Set) Len() int { return len(s.order) }

// Entities holds one unique-name set per entity category.
type Entities struct {
	sets [turtle.NumCategories]Set
}

// Set returns the name set for the given category.
func (e *Entities) Set(c turtle.Category) *Set { return &e.sets[c] }

// Rows walks rows once and returns the accumulated entity sets. Rows that
// carry no value for a category simply contribute nothing; collection never
// fails.
func Rows(rows []dataset.Row) *Entities {
	e := &Entities{}
	for _, row := range rows {
		for _, cat := range turtle.Categories {
			raw, ok := row.Get(cat.Column())
			if !ok {
				continue
			}
			if cat.Multi() {
				for _, name := range fields.SplitMulti(raw) {
					e.sets[cat].Add(name)
				}
			} else if name, ok := fields.Single(raw); ok {
				e.sets[cat].Add(name)
			}
		}
	}
	return e
}
