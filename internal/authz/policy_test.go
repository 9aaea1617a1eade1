package authz

import (
	"testing"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"admin in list", models.RoleAdmin, []string{models.RoleAdmin, models.RoleGestor}, true},
		{"coder not in list", models.RoleCoder, []string{models.RoleAdmin, models.RoleGestor}, false},
		{"empty list admits anyone", models.RoleCoder, nil, true},
		{"empty role denied", "", []string{models.RoleCoder}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RoleAllowed(tt.role, tt.allowed...))
		})
	}
}

func TestCanManage(t *testing.T) {
	owner := Actor{ID: 7, Role: models.RoleGestor}
	admin := Actor{ID: 1, Role: models.RoleAdmin}
	otherGestor := Actor{ID: 9, Role: models.RoleGestor}
	coder := Actor{ID: 3, Role: models.RoleCoder}

	require.True(t, CanManage(owner, 7))
	require.True(t, CanManage(admin, 7))
	// GESTOR has no admin parity over resources it does not own
	require.False(t, CanManage(otherGestor, 7))
	require.False(t, CanManage(coder, 7))
	require.True(t, CanManage(coder, 3))
}

func TestCanReview(t *testing.T) {
	require.True(t, CanReview(models.RoleAdmin))
	require.True(t, CanReview(models.RoleGestor))
	require.False(t, CanReview(models.RoleCoder))
	require.False(t, CanReview(""))
}
