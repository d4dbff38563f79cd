package handlers

import (
	"fmt"
	"server/internal/app"
	renderController "server/internal/controllers/render"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RenderHandler struct {
	Handler
	controller renderController.RenderController
}

func NewRenderHandler(app app.App, router fiber.Router) *RenderHandler {
	log := logger.New("handlers").File("render_handler")
	return &RenderHandler{
		controller: *app.RenderController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RenderHandler) Register() {
	h.router.Get("/applications/:id/download", h.middleware.RequireAuth(), h.download)
}

func (h *RenderHandler) download(c *fiber.Ctx) error {
	log := h.log.Function("download")
	user := c.Locals("user").(User)

	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "application ID is required"})
	}

	filename, pdf, err := h.controller.Download(c.Context(), user, id)
	if err != nil {
		log.Er("failed to download pdf", err)
		return c.Status(fiber.StatusBadGateway).
			JSON(fiber.Map{"message": "failed to generate PDF, please try again"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
