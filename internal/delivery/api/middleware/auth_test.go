package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/access"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	mockusecase "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockusecase.MockAccountUsecase, *mockusecase.MockRoleUsecase) {
	t.Helper()

	accountUC := mockusecase.NewMockAccountUsecase(t)
	roleUC := mockusecase.NewMockRoleUsecase(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{
		AccountUC: accountUC,
		RoleUC:    roleUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return m, accountUC, roleUC
}

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("sets actor with resolved role", func(t *testing.T) {
		m, accountUC, roleUC := createTestAuthMiddleware(t)
		userID := uuid.New()
		accountUC.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.Session{UserID: userID}, nil)
		roleUC.EXPECT().ResolveRole(mock.Anything, userID).Return(entity.RoleShopOwner)

		c, _ := newAuthContext("Bearer good")
		var seen entity.Actor
		err := m.Authenticate(func(c echo.Context) error {
			actor, ok := GetActor(c)
			require.True(t, ok)
			seen = actor

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, entity.Actor{UserID: userID, Role: entity.RoleShopOwner}, seen)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := createTestAuthMiddleware(t)
			c, rec := newAuthContext(tt.header)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"redirect_to":"/auth"`)
		})
	}

	t.Run("rejected token", func(t *testing.T) {
		m, accountUC, _ := createTestAuthMiddleware(t)
		accountUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthenticated)
		c, rec := newAuthContext("Bearer stale")

		err := m.Authenticate(func(echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_Identify(t *testing.T) {
	m, _, _ := createTestAuthMiddleware(t)
	c, _ := newAuthContext("")

	called := false
	err := m.Identify(func(c echo.Context) error {
		called = true
		_, ok := GetActor(c)
		assert.False(t, ok)
		assert.Equal(t, access.StateUnauthenticated, m.Evaluate(c, nil).State)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name           string
		role           entity.Role
		required       entity.Role
		expectedStatus int
		expectedTarget string
	}{
		{name: "matching role", role: entity.RoleShopOwner, required: entity.RoleShopOwner, expectedStatus: http.StatusOK},
		{name: "admin bypass", role: entity.RoleAdmin, required: entity.RoleShopOwner, expectedStatus: http.StatusOK},
		{name: "customer denied", role: entity.RoleCustomer, required: entity.RoleShopOwner, expectedStatus: http.StatusForbidden, expectedTarget: "/"},
		{name: "owner denied admin", role: entity.RoleShopOwner, required: entity.RoleAdmin, expectedStatus: http.StatusForbidden, expectedTarget: "/shop/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, accountUC, roleUC := createTestAuthMiddleware(t)
			userID := uuid.New()
			accountUC.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.Session{UserID: userID}, nil)
			roleUC.EXPECT().ResolveRole(mock.Anything, userID).Return(tt.role)

			c, rec := newAuthContext("Bearer tok")
			final := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			err := m.Authenticate(m.RequireRole(tt.required)(final))(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedTarget != "" {
				assert.Contains(t, rec.Body.String(), `"redirect_to":"`+tt.expectedTarget+`"`)
			}
		})
	}
}
