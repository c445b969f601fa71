package search

import (
	"context"
)

// Scope identifies the visibility boundary requested for a search.
type Scope string

const (
	// ScopeGlobal searches the universal catalog across all tenants.
	ScopeGlobal Scope = "global"
	// ScopeShop searches a single shop identified by its slug.
	ScopeShop Scope = "shop"
	// ScopeMyShops searches the shops the authenticated caller belongs to.
	ScopeMyShops Scope = "my-shops"
)

// MembershipLookup returns the tenant ids a user belongs to, regardless of role.
type MembershipLookup interface {
	TenantIDsForUser(ctx context.Context, userID uint) ([]uint, error)
}

// TenantLookup resolves a shop slug to its tenant id.
type TenantLookup interface {
	TenantIDBySlug(ctx context.Context, slug string) (uint, bool, error)
}

// ScopeResolver turns a requested scope and caller identity into the
// concrete tenant set a query compiler may search.
type ScopeResolver struct {
	memberships MembershipLookup
	tenants     TenantLookup
}

// NewScopeResolver creates a scope resolver backed by the given lookups.
func NewScopeResolver(memberships MembershipLookup, tenants TenantLookup) *ScopeResolver {
	return &ScopeResolver{
		memberships: memberships,
		tenants:     tenants,
	}
}

// Resolve computes the effective tenant set for a request. It fails closed:
// any missing or ambiguous input narrows the result toward the empty set,
// never toward unrestricted access.
func (r *ScopeResolver) Resolve(ctx context.Context, scope Scope, callerID *uint, shopSlug string) (TenantSet, error) {
	// An explicitly named shop always narrows the result to that one
	// tenant, whatever scope the request claimed to be in.
	if shopSlug != "" {
		id, ok, err := r.tenants.TenantIDBySlug(ctx, shopSlug)
		if err != nil {
			return NoTenants(), err
		}
		if !ok {
			return NoTenants(), nil
		}
		return Tenants(id), nil
	}

	switch scope {
	case ScopeGlobal:
		return AllTenants(), nil
	case ScopeShop:
		// shop scope without a slug identifies nothing
		return NoTenants(), nil
	case ScopeMyShops:
		if callerID == nil {
			return NoTenants(), nil
		}
		ids, err := r.memberships.TenantIDsForUser(ctx, *callerID)
		if err != nil {
			return NoTenants(), err
		}
		return Tenants(ids...), nil
	default:
		return NoTenants(), nil
	}
}
