package search

import "github.com/shopfront/catalog-api/internal/models"

// PredicateKind identifies which search filter a Predicate renders.
type PredicateKind int

const (
	PredicateID PredicateKind = iota
	PredicateText
	PredicateCategory
	PredicateMinPrice
	PredicateMaxPrice
)

func (k PredicateKind) String() string {
	switch k {
	case PredicateID:
		return "id"
	case PredicateText:
		return "text"
	case PredicateCategory:
		return "category"
	case PredicateMinPrice:
		return "min_price"
	case PredicateMaxPrice:
		return "max_price"
	default:
		return "unknown"
	}
}

// Predicate is one active filter of a search together with its bound value.
type Predicate struct {
	Kind  PredicateKind
	Value any
}

// Predicates lists the active filters of q in rendering order. An id
// filter suppresses the free-text filter.
func Predicates(q models.SearchQuery) []Predicate {
	var preds []Predicate

	switch {
	case q.ID != nil:
		preds = append(preds, Predicate{Kind: PredicateID, Value: *q.ID})
	case q.Term != nil:
		preds = append(preds, Predicate{Kind: PredicateText, Value: *q.Term})
	}

	if q.Category != nil {
		preds = append(preds, Predicate{Kind: PredicateCategory, Value: *q.Category})
	}
	if q.MinPrice != nil {
		preds = append(preds, Predicate{Kind: PredicateMinPrice, Value: *q.MinPrice})
	}
	if q.MaxPrice != nil {
		preds = append(preds, Predicate{Kind: PredicateMaxPrice, Value: *q.MaxPrice})
	}

	return preds
}

func hasPredicate(preds []Predicate, kind PredicateKind) bool {
	for _, p := range preds {
		if p.Kind == kind {
			return true
		}
	}
	return false
}
