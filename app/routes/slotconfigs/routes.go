package slotconfigs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/routes/auth"
)

func SetupSlotConfigRoutes(app *fiber.App) {
	api := app.Group("/api/slot-configs")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListSlotConfigsAPI)
	api.Get("/year/:year", GetSlotConfigAPI)
	api.Post("/year/:year", SaveSlotConfigAPI)
}
