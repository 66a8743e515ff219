package query

import (
	"context"
	"encoding/json"
	"time"

	"shopquery/internal/filter"
	"shopquery/internal/llm"
	"shopquery/internal/logger"
	"shopquery/internal/metrics"
)

// Interpreter turns a raw shopping query into a valid Filter. It is
// fail-safe by construction: every model failure mode (timeout,
// unreachable host, prose instead of JSON, missing fields) degrades to
// the default filter instead of an error.
type Interpreter struct {
	client  llm.Client
	timeout time.Duration
	log     logger.Logger
}

func NewInterpreter(client llm.Client, timeout time.Duration, log logger.Logger) *Interpreter {
	return &Interpreter{
		client:  client,
		timeout: timeout,
		log:     log,
	}
}

// Interpret builds the prompt, calls the model under a timeout, parses
// and sanitizes the result, then applies two deterministic corrections:
//
//   - literal price override: explicit numeric price expressions in the
//     query replace the model's bounds unconditionally; if the override
//     leaves min > max the bounds are swapped;
//   - rating sentiment: "good reviews" style phrasing with no numeric
//     threshold clears rating_min and forces rating_desc ordering.
func (i *Interpreter) Interpret(ctx context.Context, query string) filter.Filter {
	f := i.callModel(ctx, query)

	f.SortBy = filter.SanitizeSortBy(f.SortBy)
	f.Categories = filter.NormalizeCategories(f.Categories)
	f.Keywords = filter.NormalizeKeywords(f.Keywords)

	applyLiteralPriceOverride(&f, query)

	if filter.MentionsRatingSentiment(query) {
		f.RatingMin = nil
		f.SortBy = filter.SortRatingDesc
	}

	clampBounds(&f)
	return f
}

func (i *Interpreter) callModel(ctx context.Context, query string) filter.Filter {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	raw, err := i.client.Complete(ctx, llm.BuildFilterPrompt(query))
	if err != nil {
		i.log.Warn("model call failed, using default filter", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.InterpreterFallbacks.WithLabelValues("model_error").Inc()
		return filter.Default()
	}

	jsonText := llm.ExtractJSON(raw)
	if jsonText == "" {
		i.log.Warn("model returned no JSON object", map[string]interface{}{
			"response": raw,
		})
		metrics.InterpreterFallbacks.WithLabelValues("no_json").Inc()
		return filter.Default()
	}

	f := filter.Default()
	if err := json.Unmarshal([]byte(jsonText), &f); err != nil {
		i.log.Warn("model JSON did not match filter schema", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.InterpreterFallbacks.WithLabelValues("bad_schema").Inc()
		return filter.Default()
	}

	if f.Categories == nil {
		f.Categories = []string{}
	}
	if f.Keywords == nil {
		f.Keywords = []string{}
	}
	return f
}

// applyLiteralPriceOverride makes literal text beat model inference. A
// model bound that mirrors the literal value into the opposite field is
// cleared rather than kept.
func applyLiteralPriceOverride(f *filter.Filter, query string) {
	pmin, pmax := filter.ExtractPriceBounds(query)

	if pmin != nil {
		f.PriceMin = pmin
		if f.PriceMax != nil && *f.PriceMax == *pmin {
			f.PriceMax = nil
		}
	}
	if pmax != nil {
		f.PriceMax = pmax
		if f.PriceMin != nil && *f.PriceMin == *pmax {
			f.PriceMin = nil
		}
	}

	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		f.PriceMin, f.PriceMax = f.PriceMax, f.PriceMin
	}
}

func clampBounds(f *filter.Filter) {
	if f.PriceMin != nil && *f.PriceMin < 0 {
		f.PriceMin = nil
	}
	if f.PriceMax != nil && *f.PriceMax < 0 {
		f.PriceMax = nil
	}
	if f.RatingMin != nil {
		switch {
		case *f.RatingMin < 0:
			f.RatingMin = nil
		case *f.RatingMin > 5:
			five := 5.0
			f.RatingMin = &five
		}
	}
}
