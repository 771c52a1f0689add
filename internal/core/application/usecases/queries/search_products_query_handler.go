package queries

import (
	"context"
	"strings"
)

// The catalog is a fixed product list. Orders reference products by the
// catalog id and name they carried at creation time, so the catalog can grow
// without touching stored orders.
var catalog = []ProductResponse{
	{ID: 1, Name: "apple"},
	{ID: 2, Name: "banana"},
	{ID: 3, Name: "cherries"},
	{ID: 4, Name: "apricot"},
	{ID: 5, Name: "blueberry"},
}

// SearchProductsQueryHandler matches catalog products against a search term.
type SearchProductsQueryHandler struct{}

// NewSearchProductsQueryHandler creates a handler for product searches.
func NewSearchProductsQueryHandler() SearchProductsQueryHandler {
	return SearchProductsQueryHandler{}
}

// Handle executes the search. Matching is a case-insensitive substring test;
// an empty term returns the whole catalog.
func (h SearchProductsQueryHandler) Handle(
	_ context.Context,
	query SearchProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query.Term()))

	products := make([]ProductResponse, 0)
	for _, p := range catalog {
		if strings.Contains(p.Name, term) {
			products = append(products, p)
		}
	}

	return products, nil
}
