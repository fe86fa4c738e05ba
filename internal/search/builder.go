// Package search turns a product search query into parameterized SQL.
package search

import (
	"fmt"
	"strings"

	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/pagination"
)

// ProductColumns is the column list every product read selects, in scan order.
const ProductColumns = "id, name, description, price, category, stock_quantity, image_url, created_at, updated_at"

// Statement is a SQL string with its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Plan holds the statements executing one search. Count sees the same rows
// as Fetch before LIMIT/OFFSET.
type Plan struct {
	Fetch Statement
	Count Statement
	// Ranked is true when Fetch selects a relevance_score column.
	Ranked bool
}

// Builder renders search plans, delegating full-text SQL to its Ranker.
type Builder struct {
	ranker Ranker
}

// NewBuilder returns a Builder that ranks term searches with ranker.
func NewBuilder(ranker Ranker) *Builder {
	return &Builder{ranker: ranker}
}

// args numbers placeholders in the order values are bound.
type args struct {
	values []any
}

func (a *args) bind(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

// Build renders the fetch and count statements for q. q is expected to
// have passed WithDefaults and validation.
func (b *Builder) Build(q models.SearchQuery) Plan {
	preds := Predicates(q)
	ranked := hasPredicate(preds, PredicateText)

	fetchArgs := &args{}
	var termPlaceholder string
	if ranked {
		termPlaceholder = fetchArgs.bind(*q.Term)
	}

	var fetch strings.Builder
	fetch.WriteString("SELECT ")
	fetch.WriteString(ProductColumns)
	if ranked {
		fetch.WriteString(", ")
		fetch.WriteString(b.ranker.Score(termPlaceholder))
		fetch.WriteString(" AS relevance_score")
	}
	fetch.WriteString(" FROM products")
	fetch.WriteString(b.where(preds, fetchArgs, termPlaceholder))
	fetch.WriteString(" ORDER BY ")
	fetch.WriteString(orderBy(q, preds))
	fmt.Fprintf(&fetch, " LIMIT %s OFFSET %s",
		fetchArgs.bind(q.Limit),
		fetchArgs.bind(pagination.Offset(q.Page, q.Limit)))

	countArgs := &args{}
	count := "SELECT COUNT(*) FROM products" + b.where(preds, countArgs, "")

	return Plan{
		Fetch:  Statement{SQL: fetch.String(), Args: fetchArgs.values},
		Count:  Statement{SQL: count, Args: countArgs.values},
		Ranked: ranked,
	}
}

// where renders the conjunction of preds. A text predicate reuses
// termPlaceholder when the term is already bound for scoring.
func (b *Builder) where(preds []Predicate, a *args, termPlaceholder string) string {
	if len(preds) == 0 {
		return ""
	}

	conds := make([]string, 0, len(preds))
	for _, p := range preds {
		switch p.Kind {
		case PredicateID:
			conds = append(conds, "id = "+a.bind(p.Value))
		case PredicateText:
			ph := termPlaceholder
			if ph == "" {
				ph = a.bind(p.Value)
			}
			conds = append(conds, b.ranker.Match(ph))
		case PredicateCategory:
			conds = append(conds, "category = "+a.bind(p.Value))
		case PredicateMinPrice:
			conds = append(conds, "price >= "+a.bind(p.Value))
		case PredicateMaxPrice:
			conds = append(conds, "price <= "+a.bind(p.Value))
		}
	}

	return " WHERE " + strings.Join(conds, " AND ")
}

var sortColumns = map[models.SortBy]string{
	models.SortByPrice: "price",
	models.SortByName:  "name",
	models.SortByDate:  "created_at",
}

func direction(o models.SortOrder) string {
	if o == models.SortAsc {
		return "ASC"
	}
	return "DESC"
}

// orderBy never renders caller text: columns and directions come from
// fixed tables. The trailing id keeps OFFSET pages stable across ties.
func orderBy(q models.SearchQuery, preds []Predicate) string {
	if hasPredicate(preds, PredicateID) {
		return "id ASC"
	}

	column, explicit := sortColumns[q.SortBy]
	dir := direction(q.SortOrder)

	if hasPredicate(preds, PredicateText) {
		if !explicit {
			return "relevance_score DESC, created_at DESC, id DESC"
		}
		return fmt.Sprintf("%s %s, relevance_score DESC, id %s", column, dir, dir)
	}

	if !explicit {
		return "created_at DESC, id DESC"
	}
	return fmt.Sprintf("%s %s, id %s", column, dir, dir)
}
