package view

import "github.com/Zachkp/folio/internal/nav"

// LimitedCount is how many entries a limited listing shows.
const LimitedCount = 3

// Listing is a rendered list of items with an optional "see all" action.
type Listing[T any] struct {
	Items  []T
	SeeAll *nav.Link
}

// List prepares items for display. With limited set it keeps the first
// LimitedCount items and always links to the full list at all, however
// few items there are. Otherwise every item is kept in order, unlinked.
func List[T any](items []T, limited bool, all nav.Route, label string) Listing[T] {
	if !limited {
		return Listing[T]{Items: items}
	}
	n := min(len(items), LimitedCount)
	return Listing[T]{
		Items:  items[:n:n],
		SeeAll: &nav.Link{Label: label, Href: all.Path()},
	}
}
