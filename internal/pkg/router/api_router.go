package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/app/controllers"
	"github.com/telecloudhq/telecloud/internal/pkg/middleware"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (a ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api/v1")

	// bot-facing: authenticates with X-Bot-Token, not a session
	api.Get("/bot/check", controllers.HandleCheckBotToken)
	api.Post("/bot/limited", controllers.HandleReportBotLimit)

	authed := api.Group("", middleware.RequireAuth)

	authed.Get("/me", controllers.HandleGetMe)

	authed.Post("/folders", controllers.HandleCreateFolder)
	authed.Get("/folders", controllers.HandleListFolders)
	authed.Get("/folders/:id", controllers.HandleGetFolder)
	authed.Patch("/folders/:id/rename", controllers.HandleRenameFolder)
	authed.Patch("/folders/:id/move", controllers.HandleMoveFolder)
	authed.Delete("/folders/:id", controllers.HandleDeleteFolder)

	authed.Post("/files", controllers.HandleCreateFile)
	authed.Get("/files", controllers.HandleListFiles)
	authed.Get("/files/:id", controllers.HandleGetFile)
	authed.Delete("/files/:id", controllers.HandleDeleteFile)
	authed.Post("/files/:id/share", controllers.HandleShareFile)

	authed.Get("/shares", controllers.HandleListShares)
	authed.Delete("/shares/:id", controllers.HandleUnshareFile)

	authed.Post("/payments", controllers.HandleCreatePayment)
	authed.Post("/payments/confirm", controllers.HandleConfirmPayment)
	authed.Get("/payments", controllers.HandleListPayments)

	authed.Post("/bot-tokens", controllers.HandleCreateBotToken)
	authed.Get("/bot-tokens", controllers.HandleListBotTokens)
	authed.Delete("/bot-tokens/:id", controllers.HandleDeleteBotToken)
	authed.Delete("/bot-tokens/:id/limit", controllers.HandleClearBotLimit)
}
