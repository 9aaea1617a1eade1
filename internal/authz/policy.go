// Package authz holds the authorization policy as plain functions so the
// decision logic stays independent of transport and storage.
package authz

import "github.com/SOrtizRamirez/empleabilidad-api/internal/models"

// RoleAllowed reports whether role is one of the allowed roles. An empty
// allow list admits any role.
func RoleAllowed(role string, allowed ...string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CanManage reports whether the actor may mutate a resource owned by
// ownerID. Only ADMIN overrides ownership; GESTOR deliberately gets no
// such parity here.
func CanManage(actor Actor, ownerID uint) bool {
	return actor.Role == models.RoleAdmin || actor.ID == ownerID
}

// CanReview reports whether the role may inspect and resolve any
// application regardless of ownership.
func CanReview(role string) bool {
	return role == models.RoleAdmin || role == models.RoleGestor
}
