package permissions

import (
	"net/http"

	"backend/entity"
)

// RoleSet is an immutable snapshot of the caller's group names, taken
// once per request by the auth middleware. Predicates below are pure
// functions of (roles, method) and hold no state.
type RoleSet map[string]bool

func NewRoleSet(names ...string) RoleSet {
	rs := make(RoleSet, len(names))
	for _, n := range names {
		rs[n] = true
	}
	return rs
}

func (rs RoleSet) Has(name string) bool { return rs[name] }

func IsManager(rs RoleSet) bool      { return rs.Has(entity.GroupManager) }
func IsCustomer(rs RoleSet) bool     { return rs.Has(entity.GroupCustomer) }
func IsDeliveryCrew(rs RoleSet) bool { return rs.Has(entity.GroupDeliveryCrew) }

func IsManagerOrDeliveryCrew(rs RoleSet) bool {
	return IsManager(rs) || IsDeliveryCrew(rs)
}

// IsManagerOrReadOnly allows reads for everyone, writes for Managers.
func IsManagerOrReadOnly(rs RoleSet, method string) bool {
	if method == http.MethodGet || method == http.MethodHead {
		return true
	}
	return IsManager(rs)
}
