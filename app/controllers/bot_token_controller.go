package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/app/repository"
	"github.com/telecloudhq/telecloud/internal/pkg/middleware"
	"github.com/telecloudhq/telecloud/internal/pkg/ratelimit"
)

// HandleCreateBotToken issues a fresh bot credential. The secret is returned
// once in the response body and never again.
func HandleCreateBotToken(c *fiber.Ctx) error {
	token, err := models.NewBotToken(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "token generation failed"})
	}
	if err := repository.GetGlobalRepositories().BotToken.Create(token); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         token.ID,
		"token":      token.Token,
		"created_at": token.CreatedAt,
	})
}

// HandleListBotTokens lists the user's bot tokens without the secrets.
func HandleListBotTokens(c *fiber.Ctx) error {
	tokens, err := repository.GetGlobalRepositories().BotToken.ListByUserID(middleware.UserID(c))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(tokens)
}

// HandleDeleteBotToken revokes a bot credential.
func HandleDeleteBotToken(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	token, err := repos.BotToken.GetByID(c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if token.UserID != middleware.UserID(c) {
		return repoErrorResponse(c, repository.ErrNotFound)
	}
	if err := repos.BotToken.Delete(token.ID); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCheckBotToken resolves a raw bot token and reports its rate-limit
// state. Bots call this before operating on the channel.
func HandleCheckBotToken(c *fiber.Ctx) error {
	raw := c.Get("X-Bot-Token")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing X-Bot-Token header"})
	}

	repos := repository.GetGlobalRepositories()
	token, err := repos.BotToken.GetByToken(raw)
	if err != nil {
		return repoErrorResponse(c, err)
	}

	limited, err := ratelimit.IsLimited(repos.BotToken, token.ID, time.Now())
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if limited {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":              "rate limited",
			"rate_limited_until": token.RateLimitedUntil,
		})
	}
	return c.JSON(fiber.Map{
		"id":      token.ID,
		"user_id": token.UserID,
	})
}

// HandleReportBotLimit records a flood-wait a bot received from Telegram.
// The token is refused by /bot/check until the window passes.
func HandleReportBotLimit(c *fiber.Ctx) error {
	raw := c.Get("X-Bot-Token")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing X-Bot-Token header"})
	}
	retryAfter := c.QueryInt("retry_after", 60)
	if retryAfter <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "retry_after must be positive"})
	}

	repos := repository.GetGlobalRepositories()
	token, err := repos.BotToken.GetByToken(raw)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if err := ratelimit.Limit(repos.BotToken, token.ID, time.Duration(retryAfter)*time.Second); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"id":               token.ID,
		"rate_limited_for": retryAfter,
	})
}

// HandleClearBotLimit lets the owning user lift a rate-limit window early.
func HandleClearBotLimit(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	token, err := repos.BotToken.GetByID(c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if token.UserID != middleware.UserID(c) {
		return repoErrorResponse(c, repository.ErrNotFound)
	}
	if err := ratelimit.Clear(repos.BotToken, token.ID); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
