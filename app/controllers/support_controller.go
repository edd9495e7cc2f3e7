package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/app/repository"
)

type supportRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// HandleCreateSupportTicket stores a contact-form submission. Public route,
// no login required.
func HandleCreateSupportTicket(c *fiber.Ctx) error {
	var req supportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	ticket := &models.SupportTicket{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := repository.GetGlobalRepositories().Support.Create(ticket); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}
