package slotconfigs

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/config"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/database"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/services"
)

func ListSlotConfigsAPI(c *fiber.Ctx) error {
	configs, err := database.ListSlotConfigs(config.GetDB())
	if err != nil {
		log.Printf("Error listing slot configs: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch slot configurations"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"configs": configs,
	})
}

// GetSlotConfigAPI returns the grid configuration for a year. When no
// configuration has been saved, the built-in default for that year is
// returned with default=true.
func GetSlotConfigAPI(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 || year > models.MaxYear {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	cfg, err := database.GetSlotConfigByYear(config.GetDB(), year)
	if err != nil {
		log.Printf("Error fetching slot config for year %d: %v", year, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch slot configuration"})
	}

	if cfg == nil {
		return c.JSON(fiber.Map{
			"success": true,
			"config":  models.DefaultSlotConfig(year),
			"default": true,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"config":  cfg,
	})
}

func SaveSlotConfigAPI(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 || year > models.MaxYear {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	type SaveRequest struct {
		Days  []models.DayOfWeek `json:"days"`
		Slots []models.TimeSlot  `json:"slots"`
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if len(req.Days) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "At least one day is required"})
	}
	if len(req.Slots) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "At least one time slot is required"})
	}
	if err := ValidateConfig(req.Days, req.Slots); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	cfg := &models.SlotConfig{
		Year:  year,
		Days:  req.Days,
		Slots: req.Slots,
	}
	if err := database.SaveSlotConfig(config.GetDB(), cfg); err != nil {
		log.Printf("Error saving slot config for year %d: %v", year, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save slot configuration"})
	}

	// The new configuration reshapes every grid of this year, so any
	// cached copies built against the old one must go.
	timetables, err := database.ListTimetables(config.GetDB(), year, "")
	if err != nil {
		log.Printf("Error listing year %d timetables for cache invalidation: %v", year, err)
	} else {
		services.InvalidateYearGrids(c.Context(), config.GetRedis(), timetables)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Slot configuration saved successfully",
		"config":  cfg,
	})
}
