package search

import (
	"sort"
	"strings"

	"shopquery/internal/catalog"
	"shopquery/internal/filter"
)

// Match returns the products satisfying every constraint in f. Each
// constraint is skipped when its filter field is empty, so the default
// filter matches everything. Original catalog order is preserved.
func Match(products []catalog.Product, f filter.Filter) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))

	categories := map[string]bool{}
	for _, c := range f.Categories {
		categories[strings.ToLower(c)] = true
	}

	for _, p := range products {
		if len(categories) > 0 && !categories[strings.ToLower(p.Category)] {
			continue
		}
		if f.PriceMin != nil && p.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && p.Price > *f.PriceMax {
			continue
		}
		if f.RatingMin != nil && p.Rate() < *f.RatingMin {
			continue
		}
		if !matchesKeywords(p, f.Keywords) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// matchesKeywords requires EVERY keyword to appear somewhere in the
// product's text fields: AND across keywords, OR across fields.
func matchesKeywords(p catalog.Product, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Category)
	for _, kw := range keywords {
		if !strings.Contains(haystack, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// Rank orders matched products. All sorts are stable so ties keep the
// catalog's original relative order; relevance is the catalog order
// itself (no scoring model).
func Rank(products []catalog.Product, sortBy string) []catalog.Product {
	switch sortBy {
	case filter.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case filter.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case filter.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rate() > products[j].Rate()
		})
	}
	return products
}
