package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/internal/pkg/session"
)

// Locals keys set by UserContextMiddleware.
const (
	KeyLoggedIn = "logged_in"
	KeyUserID   = "user_id"
)

// Session keys written by the auth controller on login.
const (
	SessionUserID   = "user_id"
	SessionTokenKey = "session_token"
)

// UserContextMiddleware resolves the session cookie once per request and
// exposes the login state via Locals. A session is logged in when it carries
// a user id.
func UserContextMiddleware(c *fiber.Ctx) error {
	c.Locals(KeyLoggedIn, false)

	if userID := session.GetSessionValue(c, SessionUserID); userID != "" {
		c.Locals(KeyLoggedIn, true)
		c.Locals(KeyUserID, userID)
	}
	return c.Next()
}

// RequireAuth ensures a logged-in session for API routes and returns JSON 401.
func RequireAuth(c *fiber.Ctx) error {
	loggedIn, _ := c.Locals(KeyLoggedIn).(bool)
	if !loggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

// UserID returns the authenticated user's id, or "" when not logged in.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(KeyUserID).(string)
	return id
}
