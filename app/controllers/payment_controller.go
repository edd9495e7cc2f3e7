package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/app/repository"
	"github.com/telecloudhq/telecloud/internal/pkg/middleware"
)

type createPaymentRequest struct {
	Amount                   string `json:"amount"`
	Currency                 string `json:"currency"`
	Plan                     string `json:"plan"`
	CustomizationTitle       string `json:"customization_title"`
	CustomizationDescription string `json:"customization_description"`
	CustomizationLogo        string `json:"customization_logo"`
}

type confirmPaymentRequest struct {
	TxRef string `json:"tx_ref"`
}

// HandleCreatePayment opens a pending payment with a fresh tx_ref. The
// gateway redirect/checkout happens outside this service.
func HandleCreatePayment(c *fiber.Ctx) error {
	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	payment := &models.Payment{
		UserID:                   middleware.UserID(c),
		Amount:                   req.Amount,
		Currency:                 req.Currency,
		TxRef:                    "tc-" + uuid.NewString(),
		Plan:                     req.Plan,
		CustomizationTitle:       req.CustomizationTitle,
		CustomizationDescription: req.CustomizationDescription,
		CustomizationLogo:        req.CustomizationLogo,
	}
	if err := repository.GetGlobalRepositories().Payment.Create(payment); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// HandleConfirmPayment marks a payment done and activates the purchased plan
// on the owning user.
func HandleConfirmPayment(c *fiber.Ctx) error {
	var req confirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	repos := repository.GetGlobalRepositories()
	payment, err := repos.Payment.GetByTxRef(req.TxRef)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if payment.UserID != middleware.UserID(c) {
		return repoErrorResponse(c, repository.ErrNotFound)
	}
	if err := repos.Payment.MarkDone(payment.TxRef); err != nil {
		return repoErrorResponse(c, err)
	}

	if payment.Plan != "" {
		user, err := repos.User.GetByID(payment.UserID)
		if err != nil {
			return repoErrorResponse(c, err)
		}
		now := time.Now()
		user.IsSubscribedToPro = true
		user.SubscriptionDate = &now
		user.Plan = payment.Plan
		if err := repos.User.Update(user); err != nil {
			return repoErrorResponse(c, err)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListPayments returns the user's payment history.
func HandleListPayments(c *fiber.Ctx) error {
	payments, err := repository.GetGlobalRepositories().Payment.ListByUserID(middleware.UserID(c))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(payments)
}
