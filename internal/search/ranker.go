package search

import "fmt"

// Ranker renders the full-text part of a product search. Both methods get
// the placeholder that binds the search term.
type Ranker interface {
	// Match returns a boolean SQL condition selecting rows that match the term.
	Match(placeholder string) string
	// Score returns a numeric SQL expression; higher means more relevant.
	Score(placeholder string) string
}

// TextSearchConfig is the configuration products.search_vector is built
// with. Queries must use the same one or their stems will not match.
const TextSearchConfig = "english"

// PostgresRanker ranks with ts_rank over the products.search_vector column.
type PostgresRanker struct{}

// NewPostgresRanker returns a ranker over TextSearchConfig.
func NewPostgresRanker() *PostgresRanker {
	return &PostgresRanker{}
}

func (r *PostgresRanker) query(placeholder string) string {
	return fmt.Sprintf("plainto_tsquery('%s', %s)", TextSearchConfig, placeholder)
}

func (r *PostgresRanker) Match(placeholder string) string {
	return "search_vector @@ " + r.query(placeholder)
}

func (r *PostgresRanker) Score(placeholder string) string {
	return "ts_rank(search_vector, " + r.query(placeholder) + ")"
}
