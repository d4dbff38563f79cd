package handlers

import (
	"bytes"
	"server/internal/app"
	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Handler
	applicationRepo repositories.ApplicationRepository
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	log := logger.New("handlers").File("admin_handler")
	return &AdminHandler{
		applicationRepo: app.ApplicationRepo,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin", h.middleware.RequireAdmin())
	admin.Get("/applications.csv", h.exportApplications)
}

func (h *AdminHandler) exportApplications(c *fiber.Ctx) error {
	log := h.log.Function("exportApplications")

	applications, err := h.applicationRepo.GetSubmitted(c.Context())
	if err != nil {
		log.Er("failed to load submitted applications", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export applications"})
	}

	var buf bytes.Buffer
	if err := utils.WriteApplicationsCSV(&buf, applications); err != nil {
		log.Er("failed to write applications csv", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export applications"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.csv"`)
	return c.Send(buf.Bytes())
}
