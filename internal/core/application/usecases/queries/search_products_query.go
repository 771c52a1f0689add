package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrSearchProductsQueryIsNotConstructed = errors.New(
	"SearchProductsQuery must be created via NewSearchProductsQuery constructor",
)

// SearchProductsQuery looks up catalog products whose name contains the
// search term. An empty term matches the whole catalog.
type SearchProductsQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchProductsQuery creates a product search query for the given term.
func NewSearchProductsQuery(term string) SearchProductsQuery {
	return SearchProductsQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchProductsQueryIsNotConstructed if validation fails.
func (q SearchProductsQuery) Validate() error {
	return q.guard.Validate(ErrSearchProductsQueryIsNotConstructed)
}

// Term returns the search term.
func (q SearchProductsQuery) Term() string {
	return q.term
}

// ProductResponse is one catalog entry matched by a product search.
type ProductResponse struct {
	ID   int64
	Name string
}
