package search

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopquery/internal/catalog"
	"shopquery/internal/filter"
	"shopquery/internal/metrics"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Filters filter.Filter     `json:"filters"`
	Count   int               `json:"count"`
	Results []catalog.Product `json:"results"`
}

// --------------------------------------------------
// POST /nlp-search
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	start := time.Now()

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.SearchRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}

	f, results, err := h.service.Search(c.Request.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyQuery):
			metrics.SearchRequests.WithLabelValues("bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		case errors.Is(err, catalog.ErrUnavailable):
			metrics.SearchRequests.WithLabelValues("upstream_error").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "product catalog unavailable"})
		default:
			metrics.SearchRequests.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		}
		return
	}

	metrics.SearchRequests.WithLabelValues("success").Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	c.JSON(http.StatusOK, searchResponse{
		Filters: f,
		Count:   len(results),
		Results: results,
	})
}
