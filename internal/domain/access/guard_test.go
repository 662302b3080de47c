package access

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func rolePtr(r entity.Role) *entity.Role {
	return &r
}

func TestGuard_Evaluate(t *testing.T) {
	session := &entity.Session{UserID: uuid.New()}

	tests := []struct {
		name     string
		session  *entity.Session
		role     entity.Role
		required *entity.Role
		want     Decision
	}{
		{
			name:     "no session",
			session:  nil,
			role:     entity.RoleCustomer,
			required: rolePtr(entity.RoleShopOwner),
			want:     Decision{State: StateUnauthenticated, RedirectTo: SignInPath},
		},
		{
			name:     "no session on ungated area",
			session:  nil,
			role:     entity.RoleCustomer,
			required: nil,
			want:     Decision{State: StateUnauthenticated, RedirectTo: SignInPath},
		},
		{
			name:     "admin on shop owner area",
			session:  session,
			role:     entity.RoleAdmin,
			required: rolePtr(entity.RoleShopOwner),
			want:     Decision{State: StateAuthorized},
		},
		{
			name:     "admin on customer area",
			session:  session,
			role:     entity.RoleAdmin,
			required: rolePtr(entity.RoleCustomer),
			want:     Decision{State: StateAuthorized},
		},
		{
			name:     "customer on admin area",
			session:  session,
			role:     entity.RoleCustomer,
			required: rolePtr(entity.RoleAdmin),
			want:     Decision{State: StateRedirected, RedirectTo: HomePath},
		},
		{
			name:     "shop owner on admin area",
			session:  session,
			role:     entity.RoleShopOwner,
			required: rolePtr(entity.RoleAdmin),
			want:     Decision{State: StateRedirected, RedirectTo: ShopDashboardPath},
		},
		{
			name:     "shop owner on customer area",
			session:  session,
			role:     entity.RoleShopOwner,
			required: rolePtr(entity.RoleCustomer),
			want:     Decision{State: StateRedirected, RedirectTo: ShopDashboardPath},
		},
		{
			name:     "matching role",
			session:  session,
			role:     entity.RoleShopOwner,
			required: rolePtr(entity.RoleShopOwner),
			want:     Decision{State: StateAuthorized},
		},
		{
			name:     "authenticated only",
			session:  session,
			role:     entity.RoleCustomer,
			required: nil,
			want:     Decision{State: StateAuthorized},
		},
	}

	guard := NewGuard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := guard.Evaluate(tt.session, tt.role, tt.required)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.State == StateAuthorized, got.Allowed())
		})
	}
}

func TestGuard_EvaluateAlwaysSettles(t *testing.T) {
	guard := NewGuard()
	session := &entity.Session{UserID: uuid.New()}
	roles := []entity.Role{entity.RoleCustomer, entity.RoleShopOwner, entity.RoleAdmin}

	for _, s := range []*entity.Session{nil, session} {
		for _, role := range roles {
			required := []*entity.Role{nil}
			for i := range roles {
				required = append(required, &roles[i])
			}
			for _, req := range required {
				assert.NotEqual(t, StateLoading, guard.Evaluate(s, role, req).State)
			}
		}
	}

	assert.False(t, Decision{State: StateLoading}.Allowed())
}
