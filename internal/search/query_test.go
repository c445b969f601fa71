package search_test

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"catalog-service/internal/search"
)

func TestSearchParams_NormalizedText(t *testing.T) {
	c := qt.New(t)

	p := search.SearchParams{Text: "  Wireless KEYBOARD  "}
	c.Assert(p.NormalizedText(), qt.Equals, "wireless keyboard")
}

func TestBuildConditions_EmptyTextShortCircuits(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		t.Run("text="+text, func(t *testing.T) {
			c := qt.New(t)

			conds, ok := search.BuildConditions(search.SearchParams{
				Text:    text,
				Tenants: search.AllTenants(),
			})
			c.Assert(ok, qt.IsFalse)
			c.Assert(conds, qt.IsNil)
		})
	}
}

func TestBuildConditions_TextMatchAlwaysFirst(t *testing.T) {
	c := qt.New(t)

	conds, ok := search.BuildConditions(search.SearchParams{
		Text:    " Phone ",
		Tenants: search.AllTenants(),
	})
	c.Assert(ok, qt.IsTrue)
	c.Assert(conds, qt.HasLen, 1)
	c.Assert(conds[0].SQL, qt.Equals, "(LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?)")
	c.Assert(conds[0].Args, qt.DeepEquals, []interface{}{"%phone%", "%phone%"})
}

func TestBuildConditions_TenantRestriction(t *testing.T) {
	c := qt.New(t)

	// Unrestricted set adds no tenant term.
	conds, ok := search.BuildConditions(search.SearchParams{
		Text:    "phone",
		Tenants: search.AllTenants(),
	})
	c.Assert(ok, qt.IsTrue)
	for _, cond := range conds {
		c.Assert(strings.Contains(cond.SQL, "tenant_id"), qt.IsFalse)
	}

	// Explicit set restricts to its members.
	conds, ok = search.BuildConditions(search.SearchParams{
		Text:    "phone",
		Tenants: search.Tenants(4, 8),
	})
	c.Assert(ok, qt.IsTrue)
	c.Assert(conds, qt.HasLen, 2)
	c.Assert(conds[1].SQL, qt.Equals, "products.tenant_id IN ?")
	c.Assert(conds[1].Args, qt.DeepEquals, []interface{}{[]uint{4, 8}})

	// An empty set must exclude everything, not drop the filter.
	conds, ok = search.BuildConditions(search.SearchParams{
		Text:    "phone",
		Tenants: search.NoTenants(),
	})
	c.Assert(ok, qt.IsTrue)
	c.Assert(conds, qt.HasLen, 2)
	c.Assert(conds[1].SQL, qt.Equals, "1 = 0")
	c.Assert(conds[1].Args, qt.HasLen, 0)
}

func TestBuildConditions_OptionalPredicates(t *testing.T) {
	c := qt.New(t)

	categoryID := uint(12)
	conds, ok := search.BuildConditions(search.SearchParams{
		Text:         "phone",
		Tenants:      search.AllTenants(),
		ActiveOnly:   true,
		ApprovedOnly: true,
		CategoryID:   &categoryID,
	})
	c.Assert(ok, qt.IsTrue)
	c.Assert(conds, qt.HasLen, 4)

	c.Assert(conds[1].SQL, qt.Equals, "products.is_active = ?")
	c.Assert(conds[1].Args, qt.DeepEquals, []interface{}{true})

	// Universal listing needs both the flag and an approved review.
	c.Assert(conds[2].SQL, qt.Equals, "products.is_universal = ? AND products.review_status = ?")
	c.Assert(conds[2].Args, qt.DeepEquals, []interface{}{true, "approved"})

	c.Assert(conds[3].SQL, qt.Equals, "products.category_id = ?")
	c.Assert(conds[3].Args, qt.DeepEquals, []interface{}{uint(12)})
}

func TestBuildConditions_Deterministic(t *testing.T) {
	c := qt.New(t)

	params := search.SearchParams{
		Text:       "Same Input",
		Tenants:    search.Tenants(1, 2),
		ActiveOnly: true,
	}

	first, ok1 := search.BuildConditions(params)
	second, ok2 := search.BuildConditions(params)
	c.Assert(ok1, qt.Equals, ok2)
	c.Assert(second, qt.DeepEquals, first)
}

func TestRankingOrder(t *testing.T) {
	c := qt.New(t)

	order := search.RankingOrder("phone")
	// A name hit sorts before a description-only hit, ties break by name.
	c.Assert(order.SQL, qt.Equals,
		"(LOWER(products.name) LIKE ?) DESC, (LOWER(products.description) LIKE ?) DESC, products.name ASC")
	c.Assert(order.Args, qt.DeepEquals, []interface{}{"%phone%", "%phone%"})

	// Stable for identical input.
	c.Assert(search.RankingOrder("phone"), qt.DeepEquals, order)
}
