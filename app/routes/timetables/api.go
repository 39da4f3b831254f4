package timetables

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/config"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/database"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/services"
)

func ListTimetablesAPI(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year"))
	branch := c.Query("branch")

	timetables, err := database.ListTimetables(config.GetDB(), year, branch)
	if err != nil {
		log.Printf("Error listing timetables: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetables"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"timetables": timetables,
	})
}

func CreateTimetableAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Name   string `json:"name"`
		Year   int    `json:"year"`
		Branch string `json:"branch"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name == "" || req.Branch == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name and branch are required"})
	}
	if req.Year < 1 || req.Year > models.MaxYear {
		return c.Status(400).JSON(fiber.Map{"error": "Year must be between 1 and 6"})
	}

	timetable := &models.Timetable{
		Name:   req.Name,
		Year:   req.Year,
		Branch: req.Branch,
	}
	if err := database.CreateTimetable(config.GetDB(), timetable); err != nil {
		log.Printf("Error creating timetable: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create timetable"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":   true,
		"timetable": timetable,
	})
}

// GetTimetableAPI returns the reconciled grid for a timetable: the
// visible days and slots from the year's configuration, the placed
// entries, and any saved entries the current configuration no longer
// shows. Responses are served from the Redis cache when possible.
func GetTimetableAPI(c *fiber.Ctx) error {
	timetableID := c.Params("id")
	if timetableID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Timetable ID is required"})
	}

	if payload, ok := services.CachedGrid(c.Context(), config.GetRedis(), timetableID); ok {
		c.Set("Content-Type", "application/json")
		return c.Send(payload)
	}

	db := config.GetDB()
	timetable, err := database.GetTimetableByID(db, timetableID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Timetable not found"})
	}

	cfg, err := database.EffectiveSlotConfig(db, timetable.Year)
	if err != nil {
		log.Printf("Error loading slot config for year %d: %v", timetable.Year, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load grid configuration"})
	}

	grid := services.BuildGrid(cfg)
	dropped := services.ReconcileGrid(grid, timetable.Entries)
	timetable.Entries = nil

	response := fiber.Map{
		"success":   true,
		"timetable": timetable,
		"days":      grid.Days,
		"slots":     grid.Slots,
		"entries":   services.FlattenGrid(grid),
		"dropped":   dropped,
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to encode timetable"})
	}
	services.StoreGridCache(c.Context(), config.GetRedis(), timetableID, payload)

	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

// SaveTimetableAPI replaces a timetable's grid. Conflicting teacher
// assignments reject the save with 409 unless force=true, in which
// case the conflicts come back as warnings.
func SaveTimetableAPI(c *fiber.Ctx) error {
	timetableID := c.Params("id")
	if timetableID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Timetable ID is required"})
	}

	type SaveRequest struct {
		Entries []models.TimetableEntry `json:"entries"`
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing save request: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	timetable, err := database.GetTimetableByID(db, timetableID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Timetable not found"})
	}

	cfg, err := database.EffectiveSlotConfig(db, timetable.Year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load grid configuration"})
	}

	if err := ValidateEntries(cfg, req.Entries); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	others, err := database.GetOtherTimetables(db, timetableID)
	if err != nil {
		log.Printf("Error loading timetables for conflict scan: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check conflicts"})
	}

	conflicts := services.FindTeacherConflicts(req.Entries, others)
	force := c.Query("force") == "true"
	if len(conflicts) > 0 && !force {
		return c.Status(409).JSON(fiber.Map{
			"success":   false,
			"error":     "Teacher conflicts detected",
			"conflicts": conflicts,
		})
	}

	if err := database.SaveTimetableEntries(db, timetableID, req.Entries); err != nil {
		log.Printf("Error saving timetable %s: %v", timetableID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save timetable"})
	}

	services.InvalidateGridCache(c.Context(), config.GetRedis(), timetableID)

	log.Printf("Saved timetable %s with %d entries", timetableID, len(req.Entries))
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Timetable saved successfully",
		"conflicts": conflicts,
	})
}

// CheckConflictsAPI runs the conflict scan for a candidate grid
// without saving anything.
func CheckConflictsAPI(c *fiber.Ctx) error {
	timetableID := c.Params("id")
	if timetableID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Timetable ID is required"})
	}

	type CheckRequest struct {
		Entries []models.TimetableEntry `json:"entries"`
	}

	var req CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	others, err := database.GetOtherTimetables(config.GetDB(), timetableID)
	if err != nil {
		log.Printf("Error loading timetables for conflict scan: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check conflicts"})
	}

	conflicts := services.FindTeacherConflicts(req.Entries, others)
	return c.JSON(fiber.Map{
		"success":   true,
		"conflicts": conflicts,
	})
}

func DeleteTimetableAPI(c *fiber.Ctx) error {
	timetableID := c.Params("id")
	if timetableID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Timetable ID is required"})
	}

	if err := database.SoftDeleteTimetable(config.GetDB(), timetableID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete timetable"})
	}

	services.InvalidateGridCache(c.Context(), config.GetRedis(), timetableID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Timetable deleted successfully",
	})
}

// ListTeachersAPI returns the assignable teachers for the editor's
// subject and lab pickers.
func ListTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.ListTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	list := make([]fiber.Map, 0, len(teachers))
	for _, t := range teachers {
		list = append(list, fiber.Map{"id": t.ID, "name": t.FullName()})
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"teachers": list,
	})
}
