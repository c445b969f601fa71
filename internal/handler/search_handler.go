package handler

import (
	"net/http"
	"strconv"

	"catalog-service/internal/middleware"
	"catalog-service/internal/search"
	"catalog-service/internal/store"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SearchHandler serves the tenant-scoped catalog search endpoint.
type SearchHandler struct {
	scopes   *search.ScopeResolver
	products *store.ProductStore
}

// NewSearchHandler creates a search handler with its collaborators.
func NewSearchHandler(scopes *search.ScopeResolver, products *store.ProductStore) *SearchHandler {
	return &SearchHandler{scopes: scopes, products: products}
}

// parseScope maps the request's scope token; an absent token means the
// universal catalog.
func parseScope(raw string) search.Scope {
	if raw == "" {
		return search.ScopeGlobal
	}
	return search.Scope(raw)
}

// parsePagination reads page/limit query params, clamping limit to
// [1, maxPageSize] so the query compiler only ever sees validated values.
func parsePagination(c echo.Context) (page, limit, offset int) {
	page = 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 1 {
		page = v
	}
	limit = defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, (page - 1) * limit
}

// Search handles GET /api/catalog/search
func (h *SearchHandler) Search(c echo.Context) error {
	log := logger.FromEcho(c)

	text := c.QueryParam("q")
	scope := parseScope(c.QueryParam("scope"))
	shopSlug := c.QueryParam("shop")
	callerID := middleware.UserIDFromContext(c)
	page, limit, offset := parsePagination(c)

	log.Info("Catalog search",
		zap.String("scope", string(scope)),
		zap.String("shop", shopSlug),
		zap.Int("page", page),
		zap.Int("limit", limit))

	prometheus.RecordSearch(string(scope))

	// An unknown category id yields zero matches rather than an error, so a
	// non-numeric one gets the same treatment without touching the database.
	var categoryID *uint
	if raw := c.QueryParam("category_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.Warn("Invalid category_id parameter", zap.String("value", raw))
			return c.JSON(http.StatusOK, echo.Map{
				"products": []search.ProductHit{},
				"total":    0,
				"page":     page,
				"limit":    limit,
			})
		}
		id := uint(v)
		categoryID = &id
	}

	ctx := c.Request().Context()
	tenants, err := h.scopes.Resolve(ctx, scope, callerID, shopSlug)
	if err != nil {
		log.Error("Failed to resolve search scope",
			zap.String("scope", string(scope)),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to resolve search scope",
		})
	}
	if tenants.Empty() {
		prometheus.RecordEmptyScope()
	}

	params := search.SearchParams{
		Text:       text,
		Limit:      limit,
		Offset:     offset,
		CategoryID: categoryID,
		ActiveOnly: true,
		// The universal catalog only lists approved universal products;
		// a narrowed shop view shows the shop's full active catalog.
		ApprovedOnly: scope == search.ScopeGlobal && shopSlug == "",
		Tenants:      tenants,
	}

	hits, total, err := h.products.Search(ctx, params)
	if err != nil {
		log.Error("Failed to search products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to search products",
		})
	}

	log.Info("Catalog search completed",
		zap.Int("count", len(hits)),
		zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"products": hits,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
