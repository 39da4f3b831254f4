package timetables

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/config"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/database"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/routes/auth"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/services"
)

func SetupTimetableRoutes(app *fiber.App) {
	pages := app.Group("/timetables")
	pages.Use(auth.AuthMiddleware)

	// Routes
	pages.Get("/", TimetableIndexPage)
	pages.Get("/:id/view", ViewTimetablePage)

	// API routes
	api := app.Group("/api/timetables")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListTimetablesAPI)
	api.Post("/", CreateTimetableAPI)
	api.Get("/:id", GetTimetableAPI)
	api.Delete("/:id", DeleteTimetableAPI)
	api.Post("/:id/entries", SaveTimetableAPI)
	api.Post("/:id/conflicts", CheckConflictsAPI)
	api.Get("/:id/export", ExportTimetableAPI)
}

func TimetableIndexPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	timetables, err := database.ListTimetables(config.GetDB(), 0, "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load timetables")
	}

	return c.Render("timetables/index", fiber.Map{
		"Title":       "Timetables - Timetable Magic",
		"CurrentPage": "timetables",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"timetables":  timetables,
	})
}

// ViewTimetablePage renders the read-only grid with merged lab cells.
func ViewTimetablePage(c *fiber.Ctx) error {
	timetableID := c.Params("id")
	if timetableID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Timetable ID is required")
	}

	db := config.GetDB()
	timetable, err := database.GetTimetableByID(db, timetableID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Timetable not found")
	}

	cfg, err := database.EffectiveSlotConfig(db, timetable.Year)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grid configuration")
	}

	grid := services.BuildGrid(cfg)
	dropped := services.ReconcileGrid(grid, timetable.Entries)
	rows := services.BuildRenderRows(grid)

	user := c.Locals("user").(*models.User)
	return c.Render("timetables/view", fiber.Map{
		"Title":        timetable.Name + " - Timetable Magic",
		"CurrentPage":  "timetables",
		"user":         user,
		"FirstName":    user.FirstName,
		"LastName":     user.LastName,
		"Email":        user.Email,
		"timetable":    timetable,
		"slots":        grid.Slots,
		"rows":         rows,
		"droppedCount": len(dropped),
	})
}
