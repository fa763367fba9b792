// Package turtle holds the RDF vocabulary for the generated Turtle artifact
// and the text-level helpers (URI fragment cleaning, literal escaping, date
// validation) that keep emitted terms well-formed.
//
// The vocabulary is fixed: the output always declares the same nine prefixes
// and uses the same classes and predicates, so terms are plain constants
// rather than a configurable registry.
package turtle

// Namespace prefix declarations emitted at the top of every artifact. The
// base ":" prefix is the VideoGames ontology the game subjects live in; rawg
// covers dataset-specific counters and vgo the Video Game Ontology terms.
const Preamble = `@prefix : <http://www.semanticweb.org/kevin/ontologies/2025/7/VideoGames#> .
@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix schema: <http://schema.org/> .
@prefix rawg: <http://rawg.io/ontology#> .
@prefix vgo: <http://purl.org/net/VideoGameOntology#> .

`

// Predicates used on game subjects.
const (
	PredIdentifier    = "dcterms:identifier"
	PredModified      = "dcterms:modified"
	PredName          = "schema:name"
	PredAlternateName = "schema:alternateName"
	PredDatePublished = "schema:datePublished"
	PredURL           = "schema:url"
	PredGamePlatform  = "schema:gamePlatform"
	PredDeveloper     = "schema:developer"
	PredPublisher     = "schema:publisher"
	PredGenre         = "schema:genre"
	PredContentRating = "schema:contentRating"
	PredToBeAnnounced = "rawg:toBeAnnounced"
)

// XSD datatype suffixes appended to typed literals.
const (
	TypeDate     = "^^xsd:date"
	TypeDateTime = "^^xsd:dateTime"
	TypeAnyURI   = "^^xsd:anyURI"
	TypeInteger  = "^^xsd:integer"
	TypeDecimal  = "^^xsd:decimal"
	TypeBoolean  = "^^xsd:boolean"
)

// ClassVideoGame is the rdf:type of every game subject.
const ClassVideoGame = "schema:VideoGame"

// Category identifies one of the auxiliary entity kinds declared ahead of the
// game records and referenced by them.
type Category int

// Entity categories, in declaration order.
const (
	CategoryPlatform Category = iota
	CategoryDeveloper
	CategoryPublisher
	CategoryGenre
	CategoryEsrbRating

	numCategories
)

// Categories lists all entity categories in the order their declaration
// sections appear in the artifact.
var Categories = [...]Category{
	CategoryPlatform,
	CategoryDeveloper,
	CategoryPublisher,
	CategoryGenre,
	CategoryEsrbRating,
}

// NumCategories is the number of entity categories.
const NumCategories = int(numCategories)

type categoryInfo struct {
	name      string // human-readable, used in section comments and logs
	column    string // source CSV column
	fragment  string // subject local-name prefix, e.g. "platform_"
	class     string // rdf:type object
	predicate string // predicate linking a game to this entity
	multi     bool   // "||"-delimited column vs single value
}

var categoryInfos = [NumCategories]categoryInfo{
	CategoryPlatform:   {"Platforms", "platforms", "platform_", "schema:VideoGamePlatform", PredGamePlatform, true},
	CategoryDeveloper:  {"Developers", "developers", "developer_", "schema:Organization", PredDeveloper, true},
	CategoryPublisher:  {"Publishers", "publishers", "publisher_", "schema:Organization", PredPublisher, true},
	CategoryGenre:      {"Genres", "genres", "genre_", "schema:Genre", PredGenre, true},
	CategoryEsrbRating: {"ESRB ratings", "esrb_rating", "esrb_", "schema:GameRating", PredContentRating, false},
}

// String returns the human-readable category name.
func (c Category) String() string { return categoryInfos[c].name }

// Column is the CSV column the category's values are read from.
func (c Category) Column() string { return categoryInfos[c].column }

// Class is the rdf:type object asserted on the category's entities.
func (c Category) Class() string { return categoryInfos[c].class }

// Predicate links a game subject to an entity of this category.
func (c Category) Predicate() string { return categoryInfos[c].predicate }

// Multi reports whether the source column is "||"-delimited.
func (c Category) Multi() bool { return categoryInfos[c].multi }

// Subject builds the prefixed subject for a cleaned fragment, e.g.
// CategoryPlatform.Subject("PC") == ":platform_PC".
func (c Category) Subject(fragment string) string {
	return ":" + categoryInfos[c].fragment + fragment
}

// GameSubject builds the subject for a game record from its raw identifier.
// The identifier is used verbatim; the dataset carries numeric ids.
func GameSubject(id string) string { return ":game_" + id }
