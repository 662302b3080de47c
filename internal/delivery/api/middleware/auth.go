package middleware

import (
	"log/slog"
	"strings"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/access"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	RoleUC    usecase.RoleUsecase
	Logger    *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and gates routes by role.
// The role is resolved on every request, never read from the token.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	roleUC    usecase.RoleUsecase
	guard     *access.Guard
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		accountUC: params.AccountUC,
		roleUC:    params.RoleUC,
		guard:     access.NewGuard(),
		logger:    params.Logger,
	}
}

// Authenticate validates the access token, resolves the caller's current role
// and stores both on the context. Requests without a valid session are denied.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := m.session(c)
		if session == nil {
			return response.Denied(c, m.guard.Evaluate(nil, entity.RoleCustomer, nil))
		}

		ctx := c.Request().Context()
		role := m.roleUC.ResolveRole(ctx, session.UserID)

		deliverycontext.SetSession(c, session)
		deliverycontext.SetActor(c, entity.Actor{UserID: session.UserID, Role: role})

		return next(c)
	}
}

// Identify attaches the session and actor when a valid token is present and
// lets anonymous requests through untouched.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session := m.session(c); session != nil {
			role := m.roleUC.ResolveRole(c.Request().Context(), session.UserID)
			deliverycontext.SetSession(c, session)
			deliverycontext.SetActor(c, entity.Actor{UserID: session.UserID, Role: role})
		}

		return next(c)
	}
}

// RequireRole denies callers whose resolved role does not satisfy required.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := m.Evaluate(c, &required)
			if !decision.Allowed() {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Role gate denied",
					slog.String("required", required.String()),
					slog.String("state", string(decision.State)),
					slog.String("redirect_to", decision.RedirectTo),
				)

				return response.Denied(c, decision)
			}

			return next(c)
		}
	}
}

// Evaluate runs the route guard for the current request.
func (m *AuthMiddleware) Evaluate(c echo.Context, required *entity.Role) access.Decision {
	session := deliverycontext.GetSession(c)
	actor, ok := deliverycontext.GetActor(c)
	if session == nil || !ok {
		return m.guard.Evaluate(nil, entity.RoleCustomer, required)
	}

	return m.guard.Evaluate(session, actor.Role, required)
}

func (m *AuthMiddleware) session(c echo.Context) *entity.Session {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || token == "" {
		return nil
	}

	session, err := m.accountUC.Authenticate(c.Request().Context(), token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Access token rejected",
			slog.Any("error", err),
		)

		return nil
	}

	return session
}

// GetActor returns the authenticated caller with the role resolved for this request.
func GetActor(c echo.Context) (entity.Actor, bool) {
	return deliverycontext.GetActor(c)
}
