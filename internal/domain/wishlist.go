package domain

import "slices"

// Wishlist is a deduplicated list of product ids in the order they were added.
type Wishlist struct {
	ProductIDs []string `json:"productIds"`
}

func (w *Wishlist) Has(id string) bool {
	return slices.Contains(w.ProductIDs, id)
}

// Toggle adds or removes id and returns whether it is now present.
func (w *Wishlist) Toggle(id string) bool {
	if i := slices.Index(w.ProductIDs, id); i >= 0 {
		w.ProductIDs = slices.Delete(w.ProductIDs, i, i+1)
		return false
	}
	w.ProductIDs = append(w.ProductIDs, id)
	return true
}

// Set returns the wishlist as a lookup set for the catalog filter.
func (w *Wishlist) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(w.ProductIDs))
	for _, id := range w.ProductIDs {
		set[id] = struct{}{}
	}
	return set
}

// Dedupe drops repeated ids, keeping first occurrences.
func (w *Wishlist) Dedupe() {
	seen := make(map[string]struct{}, len(w.ProductIDs))
	ids := make([]string, 0, len(w.ProductIDs))
	for _, id := range w.ProductIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	w.ProductIDs = ids
}
