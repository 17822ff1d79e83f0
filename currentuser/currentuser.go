// Package currentuser reads the authenticated principal that upstream
// middleware attached to a request.
//
// The package does not authenticate anything and never validates the value:
// whatever was attached is returned as is, and nil is returned when nothing
// was attached.
//
// Handlers receive the principal either by calling one of the From*
// accessors or, preferably, as an explicit parameter through the Handler,
// GinHandler and FiberHandler adapters.
package currentuser

import (
	"context"
	"net/http"
)

// Key is the name under which framework middleware stores the user
// (gin.Context.Set, fiber.Ctx.Locals).
const Key = "user"

type contextKey struct{}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user any) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// FromContext returns the user attached to ctx, or nil if absent.
func FromContext(ctx context.Context) any {
	if ctx == nil {
		return nil
	}

	return ctx.Value(contextKey{})
}

// As returns the user attached to ctx when it has type U.
func As[U any](ctx context.Context) (U, bool) {
	user, ok := FromContext(ctx).(U)
	return user, ok
}

// FromRequest returns the user attached to the request context.
func FromRequest(r *http.Request) any {
	if r == nil {
		return nil
	}

	return FromContext(r.Context())
}

// Attach returns a shallow copy of r whose context carries user.
func Attach(r *http.Request, user any) *http.Request {
	return r.WithContext(WithUser(r.Context(), user))
}

// Handler adapts fn, which takes the user as an explicit parameter, to
// http.HandlerFunc.
func Handler(fn func(w http.ResponseWriter, r *http.Request, user any)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, FromRequest(r))
	}
}
