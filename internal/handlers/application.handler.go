package handlers

import (
	"server/internal/app"
	applicationController "server/internal/controllers/application"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	Handler
	controller applicationController.ApplicationController
}

func NewApplicationHandler(app app.App, router fiber.Router) *ApplicationHandler {
	log := logger.New("handlers").File("application_handler")
	return &ApplicationHandler{
		controller: *app.ApplicationController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ApplicationHandler) Register() {
	applications := h.router.Group("/applications", h.middleware.RequireAuth())
	applications.Get("/draft", h.getDraft)
	applications.Put("/draft", h.saveDraft)
	applications.Post("/validate-step", h.validateStep)
	applications.Post("/submit", h.submit)
	applications.Get("/:id", h.getApplication)
}

func (h *ApplicationHandler) getDraft(c *fiber.Ctx) error {
	log := h.log.Function("getDraft")
	user := c.Locals("user").(User)

	application, record, err := h.controller.GetDraft(c.Context(), user.ID)
	if err != nil {
		log.Er("failed to load draft", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to load draft"})
	}

	if application == nil {
		return c.JSON(fiber.Map{"message": "success", "draft": nil})
	}

	return c.JSON(fiber.Map{
		"message": "success",
		"draft":   application,
		"values":  record,
	})
}

func (h *ApplicationHandler) saveDraft(c *fiber.Ctx) error {
	log := h.log.Function("saveDraft")
	user := c.Locals("user").(User)

	var request SaveDraftRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse save draft request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse save draft request"})
	}

	application, err := h.controller.SaveDraft(c.Context(), user.ID, request.Values)
	if err != nil {
		log.Er("failed to save draft", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to save draft"})
	}

	return c.JSON(fiber.Map{"message": "success", "draft": application})
}

func (h *ApplicationHandler) validateStep(c *fiber.Ctx) error {
	log := h.log.Function("validateStep")

	var request ValidateStepRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse validate step request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse validate step request"})
	}

	fieldErrors := h.controller.ValidateStep(request.Step, request.Values)
	return c.JSON(fiber.Map{
		"message": "success",
		"valid":   len(fieldErrors) == 0,
		"errors":  fieldErrors,
	})
}

func (h *ApplicationHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit")
	user := c.Locals("user").(User)

	var request SubmitRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse submit request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse submit request"})
	}

	application, fieldErrors, err := h.controller.Submit(c.Context(), user.ID, request.Values)
	if err != nil {
		log.Er("failed to submit application", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to submit application"})
	}

	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"message": "validation failed", "errors": fieldErrors})
	}

	return c.JSON(fiber.Map{"message": "success", "application": application})
}

func (h *ApplicationHandler) getApplication(c *fiber.Ctx) error {
	log := h.log.Function("getApplication")
	user := c.Locals("user").(User)

	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "application ID is required"})
	}

	application, err := h.controller.Get(c.Context(), user.ID, id)
	if err != nil {
		log.Er("failed to get application", err)
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "application not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "application": application})
}
