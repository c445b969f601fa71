package search

// TenantSet is the effective set of tenants a search is allowed to touch.
// It is either the unrestricted sentinel (AllTenants) or an explicit,
// possibly empty, set of tenant ids. The zero value is the empty set.
type TenantSet struct {
	all bool
	ids []uint
}

// AllTenants returns the unrestricted sentinel set.
func AllTenants() TenantSet {
	return TenantSet{all: true}
}

// Tenants returns an explicit set containing the given ids.
func Tenants(ids ...uint) TenantSet {
	return TenantSet{ids: ids}
}

// NoTenants returns the explicit empty set, which matches nothing.
func NoTenants() TenantSet {
	return TenantSet{}
}

// All reports whether the set is the unrestricted sentinel.
func (s TenantSet) All() bool {
	return s.all
}

// Empty reports whether the set is explicit and contains no ids.
func (s TenantSet) Empty() bool {
	return !s.all && len(s.ids) == 0
}

// IDs returns the explicit tenant ids. Meaningless when All is true.
func (s TenantSet) IDs() []uint {
	return s.ids
}
