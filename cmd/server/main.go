package main

import (
	"os"
	"os/signal"
	"syscall"

	"server/internal/app"
	"server/internal/handlers"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize app", err)
		os.Exit(1)
	}
	defer application.Close()

	if _, err := application.Database.Migrate(); err != nil {
		log.Er("failed to migrate database", err)
		os.Exit(1)
	}

	fiberApp := fiber.New(fiber.Config{
		AppName:      "n400-server",
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	fiberApp.Use(recover.New())

	if err := handlers.Router(fiberApp, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down")
		_ = fiberApp.Shutdown()
	}()

	log.Info("Starting server", "port", application.Config.ServerPort)
	if err := fiberApp.Listen(":" + application.Config.ServerPort); err != nil {
		log.Er("server stopped", err)
		os.Exit(1)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
