package currentuser

import "github.com/gofiber/fiber/v2"

// FromFiber returns the user stored in the fiber locals under Key, falling
// back to the user context.
func FromFiber(c *fiber.Ctx) any {
	if c == nil {
		return nil
	}

	if user := c.Locals(Key); user != nil {
		return user
	}

	return FromContext(c.UserContext())
}

// FiberHandler adapts fn, which takes the user as an explicit parameter, to
// fiber.Handler.
func FiberHandler(fn func(c *fiber.Ctx, user any) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return fn(c, FromFiber(c))
	}
}

// FiberMiddleware copies the user stored in the fiber locals into the user
// context, so code that only sees context.Context can read it with
// FromContext.
func FiberMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := c.Locals(Key); user != nil {
			c.SetUserContext(WithUser(c.UserContext(), user))
		}

		return c.Next()
	}
}
