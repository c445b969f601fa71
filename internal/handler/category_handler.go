package handler

import (
	"errors"
	"net/http"

	"catalog-service/internal/search"
	"catalog-service/internal/store"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryHandler serves the aggregated category listing.
type CategoryHandler struct {
	categories *store.CategoryStore
}

// NewCategoryHandler creates a category handler with its store.
func NewCategoryHandler(categories *store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// ListCategoryCounts handles GET /api/catalog/categories. It returns every
// category with its direct and cumulative (self plus descendants) counts of
// active products.
func (h *CategoryHandler) ListCategoryCounts(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing category counts")

	ctx := c.Request().Context()

	categories, err := h.categories.ListCategories(ctx)
	if err != nil {
		log.Error("Failed to retrieve categories", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	counts, err := h.categories.DirectProductCounts(ctx)
	if err != nil {
		log.Error("Failed to count products per category", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	nodes, err := search.AggregateCategoryCounts(categories, counts)
	if err != nil {
		if errors.Is(err, search.ErrCategoryCycle) {
			// data integrity bug, not a user condition
			log.Error("Category tree is corrupted", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Category data is inconsistent",
			})
		}
		log.Error("Failed to aggregate category counts", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to aggregate category counts",
		})
	}

	prometheus.RecordCategoryAggregation()
	log.Info("Category counts aggregated", zap.Int("count", len(nodes)))
	return c.JSON(http.StatusOK, nodes)
}
