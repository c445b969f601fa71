package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/labstack/echo/v4"

	"catalog-service/internal/search"
)

func testContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{
			name:      "defaults",
			target:    "/api/catalog/search",
			wantPage:  1,
			wantLimit: defaultPageSize,
		},
		{
			name:       "explicit page and limit",
			target:     "/api/catalog/search?page=3&limit=10",
			wantPage:   3,
			wantLimit:  10,
			wantOffset: 20,
		},
		{
			name:      "zero limit falls back to default",
			target:    "/api/catalog/search?limit=0",
			wantPage:  1,
			wantLimit: defaultPageSize,
		},
		{
			name:      "negative limit falls back to default",
			target:    "/api/catalog/search?limit=-5",
			wantPage:  1,
			wantLimit: defaultPageSize,
		},
		{
			name:      "oversized limit is clamped",
			target:    "/api/catalog/search?limit=5000",
			wantPage:  1,
			wantLimit: maxPageSize,
		},
		{
			name:      "non-numeric values fall back to defaults",
			target:    "/api/catalog/search?page=abc&limit=xyz",
			wantPage:  1,
			wantLimit: defaultPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			page, limit, offset := parsePagination(testContext(tt.target))
			c.Assert(page, qt.Equals, tt.wantPage)
			c.Assert(limit, qt.Equals, tt.wantLimit)
			c.Assert(offset, qt.Equals, tt.wantOffset)
		})
	}
}

func TestParseScope(t *testing.T) {
	c := qt.New(t)

	c.Assert(parseScope(""), qt.Equals, search.ScopeGlobal)
	c.Assert(parseScope("global"), qt.Equals, search.ScopeGlobal)
	c.Assert(parseScope("shop"), qt.Equals, search.ScopeShop)
	c.Assert(parseScope("my-shops"), qt.Equals, search.ScopeMyShops)
	// Unknown tokens pass through; the resolver fails closed on them.
	c.Assert(parseScope("bogus"), qt.Equals, search.Scope("bogus"))
}
