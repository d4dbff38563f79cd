package handlers

import (
	"server/internal/app"
	paymentController "server/internal/controllers/payment"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Handler
	controller paymentController.PaymentController
}

func NewPaymentHandler(app app.App, router fiber.Router) *PaymentHandler {
	log := logger.New("handlers").File("payment_handler")
	return &PaymentHandler{
		controller: *app.PaymentController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PaymentHandler) Register() {
	payments := h.router.Group("/payments")

	// Signed by the provider, not by a user session.
	payments.Post("/webhook", h.webhook)

	payments.Use(h.middleware.RequireAuth())
	payments.Post("/checkout", h.createCheckout)
	payments.Post("/confirm", h.confirm)
	payments.Get("/status/:formId", h.status)
}

func (h *PaymentHandler) createCheckout(c *fiber.Ctx) error {
	log := h.log.Function("createCheckout")
	user := c.Locals("user").(User)

	var request CreateCheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse checkout request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse checkout request"})
	}
	if request.FormID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "formId is required"})
	}

	url, err := h.controller.CreateCheckout(c.Context(), user, request.FormID)
	if err != nil {
		log.Er("failed to create checkout", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to start checkout, please try again"})
	}

	return c.JSON(fiber.Map{"message": "success", "url": url})
}

func (h *PaymentHandler) confirm(c *fiber.Ctx) error {
	log := h.log.Function("confirm")
	user := c.Locals("user").(User)

	var request ConfirmPaymentRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse confirm request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse confirm request"})
	}
	if request.SessionID == "" || request.FormID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "sessionId and formId are required"})
	}

	if err := h.controller.Confirm(c.Context(), user, request.SessionID, request.FormID); err != nil {
		log.Er("failed to confirm payment", err)
		return c.Status(fiber.StatusForbidden).
			JSON(fiber.Map{"message": "could not confirm payment"})
	}

	return c.JSON(fiber.Map{"message": "success", "paymentStatus": PaymentPaid})
}

func (h *PaymentHandler) status(c *fiber.Ctx) error {
	log := h.log.Function("status")
	user := c.Locals("user").(User)

	formID := c.Params("formId")
	if formID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "formId is required"})
	}

	paymentStatus, err := h.controller.Status(c.Context(), user, formID)
	if err != nil {
		log.Er("failed to get payment status", err)
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "application not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "paymentStatus": paymentStatus})
}

func (h *PaymentHandler) webhook(c *fiber.Ctx) error {
	log := h.log.Function("webhook")

	signature := c.Get("Stripe-Signature")
	if err := h.controller.HandleWebhook(c.Context(), c.Body(), signature); err != nil {
		log.Er("failed to handle webhook", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "webhook rejected"})
	}

	return c.JSON(fiber.Map{"message": "success"})
}
