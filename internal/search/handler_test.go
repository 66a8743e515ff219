package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopquery/internal/catalog"
	"shopquery/internal/filter"
	"shopquery/internal/llm"
	"shopquery/internal/logger"
	"shopquery/internal/query"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockLLM struct {
	response string
	err      error
}

func (m *mockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return m.response, m.err
}

type mockCatalog struct {
	products []catalog.Product
	err      error
}

func (m *mockCatalog) Fetch(ctx context.Context) ([]catalog.Product, error) {
	return m.products, m.err
}

func electronicsCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Hub", Category: "electronics", Price: 50},
		{ID: 2, Title: "Monitor", Category: "electronics", Price: 150},
		{ID: 3, Title: "Keyboard", Category: "electronics", Price: 90},
	}
}

func newTestRouter(llmClient llm.Client, cat Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewNoOpLogger()
	interpreter := query.NewInterpreter(llmClient, time.Second, log)
	service := NewService(interpreter, cat, log)
	handler := NewHandler(service)

	r := gin.New()
	r.POST("/nlp-search", handler.Search)
	return r
}

func doSearch(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/nlp-search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type searchResult struct {
	Filters filter.Filter     `json:"filters"`
	Count   int               `json:"count"`
	Results []catalog.Product `json:"results"`
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestSearchEndToEnd(t *testing.T) {
	model := &mockLLM{
		response: `{"categories":["electronics"],"keywords":[],"price_min":null,"price_max":100,"rating_min":null,"sort_by":"relevance"}`,
	}
	r := newTestRouter(model, &mockCatalog{products: electronicsCatalog()})

	w := doSearch(t, r, `{"query":"Show me electronics under $100"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Results, 2)
	// Relevance sort: catalog order preserved, $50 before $90.
	assert.Equal(t, 1, resp.Results[0].ID)
	assert.Equal(t, 3, resp.Results[1].ID)

	assert.Equal(t, []string{"electronics"}, resp.Filters.Categories)
	require.NotNil(t, resp.Filters.PriceMax)
	assert.Equal(t, 100.0, *resp.Filters.PriceMax)
}

func TestSearchModelFailureStillSucceeds(t *testing.T) {
	model := &mockLLM{err: errors.New("model timeout")}
	r := newTestRouter(model, &mockCatalog{products: electronicsCatalog()})

	w := doSearch(t, r, `{"query":"anything at all"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Default filter: whole catalog comes back in original order.
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, filter.SortRelevance, resp.Filters.SortBy)
}

func TestSearchCatalogFailureIsBadGateway(t *testing.T) {
	model := &mockLLM{response: `{}`}
	cat := &mockCatalog{err: catalog.ErrUnavailable}
	r := newTestRouter(model, cat)

	w := doSearch(t, r, `{"query":"electronics"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "catalog unavailable")
}

func TestSearchEmptyQueryIsBadRequest(t *testing.T) {
	r := newTestRouter(&mockLLM{response: `{}`}, &mockCatalog{})

	for _, body := range []string{`{"query":""}`, `{"query":"   "}`, `{}`, `not json`} {
		w := doSearch(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestSearchLiteralOverrideBeatsModel(t *testing.T) {
	// Model insists on a wrong window; the literal "under $100" wins.
	model := &mockLLM{
		response: `{"categories":["electronics"],"price_min":50,"price_max":500,"sort_by":"relevance"}`,
	}
	r := newTestRouter(model, &mockCatalog{products: electronicsCatalog()})

	w := doSearch(t, r, `{"query":"electronics under $100"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.Filters.PriceMax)
	assert.Equal(t, 100.0, *resp.Filters.PriceMax)
	assert.Equal(t, 2, resp.Count)
}
