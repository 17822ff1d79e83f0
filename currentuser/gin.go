package currentuser

import "github.com/gin-gonic/gin"

// FromGin returns the user stored under Key in the gin context, falling
// back to the request context.
func FromGin(c *gin.Context) any {
	if c == nil {
		return nil
	}

	if user, ok := c.Get(Key); ok {
		return user
	}

	return FromRequest(c.Request)
}

// GinHandler adapts fn, which takes the user as an explicit parameter, to
// gin.HandlerFunc.
func GinHandler(fn func(c *gin.Context, user any)) gin.HandlerFunc {
	return func(c *gin.Context) {
		fn(c, FromGin(c))
	}
}

// GinMiddleware copies the user set by an earlier gin middleware into the
// request context, so code that only sees context.Context can read it with
// FromContext.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := c.Get(Key); ok && c.Request != nil {
			c.Request = Attach(c.Request, user)
		}

		c.Next()
	}
}
