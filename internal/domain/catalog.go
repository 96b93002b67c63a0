package domain

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterProducts returns the products matching every active predicate of f,
// preserving catalog order. wishlist is consulted only when FavoritesOnly is set.
func FilterProducts(products []Product, f ProductFilter, wishlist map[string]struct{}) []Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Brand), query) {
			continue
		}
		if f.FavoritesOnly {
			if _, ok := wishlist[p.ID]; !ok {
				continue
			}
		}
		if len(f.Brands) > 0 {
			if _, ok := f.Brands[p.Brand]; !ok {
				continue
			}
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinRating != nil && RatingFor(p).Rating < *f.MinRating {
			continue
		}
		if f.Tag != "" && p.Tag != f.Tag {
			continue
		}
		if f.FreeShipping && !p.FreeShippingEligible() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a stably sorted copy of products. Unknown keys keep the input order.
func SortProducts(products []Product, key string) []Product {
	sorted := slices.Clone(products)

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortNameAsc:
		// Collators keep internal buffers and are not safe to share between goroutines.
		c := collate.New(language.BrazilianPortuguese)
		slices.SortStableFunc(sorted, func(a, b Product) int { return c.CompareString(a.Name, b.Name) })
	case SortNameDesc:
		c := collate.New(language.BrazilianPortuguese)
		slices.SortStableFunc(sorted, func(a, b Product) int { return c.CompareString(b.Name, a.Name) })
	}
	return sorted
}

// IsSortKey reports whether key is one of the supported sort keys.
func IsSortKey(key string) bool {
	return slices.Contains(SortKeys, key)
}
