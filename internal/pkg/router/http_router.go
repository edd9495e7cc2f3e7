package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/app/controllers"
	"github.com/telecloudhq/telecloud/internal/pkg/middleware"
	"github.com/telecloudhq/telecloud/internal/pkg/oauth"
	"github.com/telecloudhq/telecloud/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// auth flow
	app.Get("/auth/:provider", controllers.HandleBeginAuth)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
	app.Get("/logout", controllers.HandleLogout)

	// public share resolution and contact form
	app.Get("/s/:id", controllers.HandleGetSharedFile)
	app.Post("/support", controllers.HandleCreateSupportTicket)
}
