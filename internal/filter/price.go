package filter

import (
	"regexp"
	"strconv"
	"strings"
)

// Literal price expressions in the raw query always win over whatever
// bounds the model inferred. Numbers may carry an optional $ and decimals.
var (
	rangePattern = regexp.MustCompile(`(?:between|from)\s*\$?\s*(\d+(?:\.\d+)?)\s*(?:and|to|-)\s*\$?\s*(\d+(?:\.\d+)?)`)
	maxPattern   = regexp.MustCompile(`(?:under|below|less than|max(?:imum)?|<=|<)\s*\$?\s*(\d+(?:\.\d+)?)`)
	minPattern   = regexp.MustCompile(`(?:over|above|more than|min(?:imum)?|at least|>=|>)\s*\$?\s*(\d+(?:\.\d+)?)`)

	ratingNumberPattern = regexp.MustCompile(`\d(?:\.\d+)?\s*\+?\s*star|rating\s*(?:above|over|at least|>=?)\s*\d`)
	sentimentPattern    = regexp.MustCompile(`good reviews?|great reviews?|well rated|best rated|highly rated`)
)

// ExtractPriceBounds scans the raw query for explicit numeric price
// expressions. Either return value may be nil. An inverted "between B
// and A" range is swapped into order.
func ExtractPriceBounds(query string) (*float64, *float64) {
	text := strings.ReplaceAll(strings.ToLower(query), ",", "")

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		a, _ := strconv.ParseFloat(m[1], 64)
		b, _ := strconv.ParseFloat(m[2], 64)
		if a > b {
			a, b = b, a
		}
		return &a, &b
	}

	if m := maxPattern.FindStringSubmatch(text); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return nil, &v
	}

	if m := minPattern.FindStringSubmatch(text); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return &v, nil
	}

	return nil, nil
}

// MentionsRatingSentiment reports whether the query asks for well-reviewed
// products without naming a numeric threshold. "good reviews" qualifies;
// "4+ stars" and "rating above 4" do not.
func MentionsRatingSentiment(query string) bool {
	text := strings.ToLower(query)
	if ratingNumberPattern.MatchString(text) {
		return false
	}
	return sentimentPattern.MatchString(text)
}
