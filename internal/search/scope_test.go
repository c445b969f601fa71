package search_test

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"catalog-service/internal/search"
)

type fakeMemberships struct {
	byUser map[uint][]uint
	err    error
}

func (f fakeMemberships) TenantIDsForUser(_ context.Context, userID uint) ([]uint, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

type fakeTenants struct {
	bySlug map[string]uint
}

func (f fakeTenants) TenantIDBySlug(_ context.Context, slug string) (uint, bool, error) {
	id, ok := f.bySlug[slug]
	return id, ok, nil
}

func newTestResolver() *search.ScopeResolver {
	return search.NewScopeResolver(
		fakeMemberships{byUser: map[uint][]uint{10: {1, 3}}},
		fakeTenants{bySlug: map[string]uint{"acme": 7}},
	)
}

func TestScopeResolver_Resolve(t *testing.T) {
	caller := uint(10)
	stranger := uint(99)

	tests := []struct {
		name      string
		scope     search.Scope
		callerID  *uint
		shopSlug  string
		wantAll   bool
		wantIDs   []uint
		wantEmpty bool
	}{
		{
			name:    "global scope is unrestricted",
			scope:   search.ScopeGlobal,
			wantAll: true,
		},
		{
			name:     "shop scope resolves slug",
			scope:    search.ScopeShop,
			shopSlug: "acme",
			wantIDs:  []uint{7},
		},
		{
			name:      "shop scope with unknown slug is empty",
			scope:     search.ScopeShop,
			shopSlug:  "nope",
			wantEmpty: true,
		},
		{
			name:      "shop scope without slug is empty",
			scope:     search.ScopeShop,
			wantEmpty: true,
		},
		{
			name:     "my-shops returns memberships",
			scope:    search.ScopeMyShops,
			callerID: &caller,
			wantIDs:  []uint{1, 3},
		},
		{
			name:      "my-shops without caller is empty",
			scope:     search.ScopeMyShops,
			wantEmpty: true,
		},
		{
			name:      "my-shops with no memberships is empty",
			scope:     search.ScopeMyShops,
			callerID:  &stranger,
			wantEmpty: true,
		},
		{
			name:     "shop override narrows my-shops to one tenant",
			scope:    search.ScopeMyShops,
			callerID: &caller,
			shopSlug: "acme",
			wantIDs:  []uint{7},
		},
		{
			name:     "shop override narrows global scope too",
			scope:    search.ScopeGlobal,
			shopSlug: "acme",
			wantIDs:  []uint{7},
		},
		{
			name:      "unknown scope fails closed",
			scope:     search.Scope("everything"),
			callerID:  &caller,
			wantEmpty: true,
		},
	}

	resolver := newTestResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			set, err := resolver.Resolve(context.Background(), tt.scope, tt.callerID, tt.shopSlug)
			c.Assert(err, qt.IsNil)
			c.Assert(set.All(), qt.Equals, tt.wantAll)
			if tt.wantEmpty {
				c.Assert(set.Empty(), qt.IsTrue)
			}
			if tt.wantIDs != nil {
				c.Assert(set.IDs(), qt.DeepEquals, tt.wantIDs)
			}
		})
	}
}

func TestScopeResolver_MembershipErrorFailsClosed(t *testing.T) {
	c := qt.New(t)

	lookupErr := errors.New("connection refused")
	resolver := search.NewScopeResolver(
		fakeMemberships{err: lookupErr},
		fakeTenants{},
	)

	caller := uint(10)
	set, err := resolver.Resolve(context.Background(), search.ScopeMyShops, &caller, "")
	c.Assert(err, qt.ErrorIs, lookupErr)
	c.Assert(set.Empty(), qt.IsTrue)
}
