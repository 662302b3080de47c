package context

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeySession is the key for the authenticated session in echo.Context.
	KeySession ContextKey = "session"

	// KeyActor is the key for the session paired with its freshly resolved role.
	KeyActor ContextKey = "actor"
)

// SetSession stores the authenticated session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the authenticated session, or nil when the request is anonymous.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return session
	}

	return nil
}

// SetActor stores the actor in echo.Context and in the request context.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(string(KeyActor), actor)
	c.SetRequest(c.Request().WithContext(WithActor(c.Request().Context(), actor)))
}

// GetActor returns the actor resolved for this request.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(string(KeyActor)).(entity.Actor)

	return actor, ok
}

// WithActor returns a new context with the actor.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, KeyActor, actor)
}
