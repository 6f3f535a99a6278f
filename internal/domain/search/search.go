package search

import (
	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
)

// Apply filters a snapshot of listings, preserving the input order.
// Callers hand in listings already ordered by creation time descending;
// Apply never re-sorts. A limit greater than zero truncates the result
// to the first matches. The input slice is never mutated.
func Apply(listings []*entity.Listing, f FilterSet, limit int) []*entity.Listing {
	out := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if !Matches(l, f) {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
