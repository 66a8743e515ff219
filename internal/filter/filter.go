package filter

// Allowed sort orders. Anything else is coerced to SortRelevance
// before a Filter leaves the interpreter.
const (
	SortRelevance  = "relevance"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

// ValidCategories is the catalog's fixed category vocabulary.
// "jewelery" is the upstream API's spelling, not a typo.
var ValidCategories = map[string]bool{
	"men's clothing":   true,
	"women's clothing": true,
	"jewelery":         true,
	"electronics":      true,
}

// Filter is the normalized intent extracted from a shopping query.
// Nil pointer fields mean "no constraint".
type Filter struct {
	Categories []string `json:"categories"`
	Keywords   []string `json:"keywords"`
	PriceMin   *float64 `json:"price_min"`
	PriceMax   *float64 `json:"price_max"`
	RatingMin  *float64 `json:"rating_min"`
	SortBy     string   `json:"sort_by"`
}

// Default returns the all-defaults filter: no constraints, catalog order.
// It is the fallback whenever the model output is unusable.
func Default() Filter {
	return Filter{
		Categories: []string{},
		Keywords:   []string{},
		SortBy:     SortRelevance,
	}
}
