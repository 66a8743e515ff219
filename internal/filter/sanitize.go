package filter

import (
	"sort"
	"strings"
)

// sortSynonyms maps phrases users (and the model) actually produce onto
// the allowed sort values. Checked as substrings after the exact match
// fails. Extend here, not in SanitizeSortBy.
var sortSynonyms = []struct {
	phrase string
	sortBy string
}{
	{"good review", SortRatingDesc},
	{"best rated", SortRatingDesc},
	{"top rated", SortRatingDesc},
	{"high rating", SortRatingDesc},
	{"highly rated", SortRatingDesc},
	{"lowest price", SortPriceAsc},
	{"cheap", SortPriceAsc},
	{"highest price", SortPriceDesc},
	{"pricie", SortPriceDesc}, // priciest / pricier
	{"expensive", SortPriceDesc},
}

// categorySynonyms maps common variants onto the catalog vocabulary.
// A nil-equivalent empty mapping ("clothes", "shoes") means the word is
// recognized but has no catalog category and must be dropped.
var categorySynonyms = map[string]string{
	"men":         "men's clothing",
	"men's":       "men's clothing",
	"mens":        "men's clothing",
	"women":       "women's clothing",
	"women's":     "women's clothing",
	"womens":      "women's clothing",
	"jewelry":     "jewelery",
	"jewellery":   "jewelery",
	"jewels":      "jewelery",
	"electronics": "electronics",
	"clothes":     "",
	"shoes":       "",
}

// SanitizeSortBy coerces any string into one of the four allowed sort
// values. It never fails: unrecognized input maps to SortRelevance.
func SanitizeSortBy(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return SortRelevance
	}

	switch v {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return v
	}

	for _, syn := range sortSynonyms {
		if strings.Contains(v, syn.phrase) {
			return syn.sortBy
		}
	}

	return SortRelevance
}

// NormalizeCategories keeps only inputs that resolve to the catalog's
// category vocabulary, via synonyms or exact match. Unknown values are
// dropped silently. Output is deduplicated and sorted.
func NormalizeCategories(values []string) []string {
	seen := map[string]bool{}
	for _, c := range values {
		lc := strings.ToLower(strings.TrimSpace(c))
		if mapped, ok := categorySynonyms[lc]; ok {
			if mapped != "" {
				seen[mapped] = true
			}
			continue
		}
		if ValidCategories[lc] {
			seen[lc] = true
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// NormalizeKeywords lowercases and trims keywords, dropping empties.
func NormalizeKeywords(values []string) []string {
	out := make([]string, 0, len(values))
	for _, k := range values {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
