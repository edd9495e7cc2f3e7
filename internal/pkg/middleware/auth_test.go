package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// No session store is initialized here, so every request resolves to an
// anonymous user.
func TestRequireAuthRejectsAnonymous(t *testing.T) {
	app := fiber.New()
	app.Use(UserContextMiddleware)
	app.Get("/private", RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserIDEmptyForAnonymous(t *testing.T) {
	app := fiber.New()
	app.Use(UserContextMiddleware)

	var gotID string
	var gotLoggedIn bool
	app.Get("/", func(c *fiber.Ctx) error {
		gotID = UserID(c)
		gotLoggedIn, _ = c.Locals(KeyLoggedIn).(bool)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, gotID)
	assert.False(t, gotLoggedIn)
}
