package search

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"shopquery/internal/catalog"
	"shopquery/internal/filter"
	"shopquery/internal/logger"
)

// ErrEmptyQuery marks client-input failures, distinct from upstream ones.
var ErrEmptyQuery = errors.New("missing query")

// Interpreter is the query-to-filter boundary. It never fails: unusable
// model output yields the default filter.
type Interpreter interface {
	Interpret(ctx context.Context, query string) filter.Filter
}

// Catalog is the product source boundary.
type Catalog interface {
	Fetch(ctx context.Context) ([]catalog.Product, error)
}

type Service struct {
	interpreter Interpreter
	catalog     Catalog
	log         logger.Logger
}

func NewService(interpreter Interpreter, cat Catalog, log logger.Logger) *Service {
	return &Service{
		interpreter: interpreter,
		catalog:     cat,
		log:         log,
	}
}

// Search runs the full pipeline for one query. The model call and the
// catalog fetch are independent, so they run concurrently; the request
// completes when both have. Only catalog failures surface as errors.
func (s *Service) Search(ctx context.Context, query string) (filter.Filter, []catalog.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return filter.Filter{}, nil, ErrEmptyQuery
	}

	var (
		f        filter.Filter
		products []catalog.Product
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		f = s.interpreter.Interpret(gctx, query)
		return nil
	})

	g.Go(func() error {
		var err error
		products, err = s.catalog.Fetch(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return filter.Filter{}, nil, err
	}

	results := Rank(Match(products, f), f.SortBy)

	s.log.Info("search completed", map[string]interface{}{
		"query":   query,
		"sort_by": f.SortBy,
		"matched": len(results),
		"catalog": len(products),
	})

	return f, results, nil
}
