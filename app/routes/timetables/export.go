package timetables

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/config"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/database"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/services"
)

// ExportTimetableAPI streams the reconciled grid as an XLSX workbook.
// Lab blocks spanning several slots become merged cells, matching the
// viewer's rendering.
func ExportTimetableAPI(c *fiber.Ctx) error {
	timetableID := c.Params("id")
	if timetableID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Timetable ID is required"})
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

	grid := services.BuildGrid(cfg)
	services.ReconcileGrid(grid, timetable.Entries)
	rows := services.BuildRenderRows(grid)

	f := excelize.NewFile()
	sheetName := "Timetable"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Header row: day column + one column per slot
	f.SetCellValue(sheetName, "A1", "Day")
	for i, slot := range grid.Slots {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(sheetName, cell, slot.Label())
	}

	for rowIdx, row := range rows {
		excelRow := rowIdx + 2
		dayCell, _ := excelize.CoordinatesToCellName(1, excelRow)
		f.SetCellValue(sheetName, dayCell, string(row.Day))

		for colIdx, renderCell := range row.Cells {
			if renderCell.Continued {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(colIdx+2, excelRow)
			f.SetCellValue(sheetName, cell, CellText(renderCell.Entry))

			if renderCell.Span > 1 {
				endCell, _ := excelize.CoordinatesToCellName(colIdx+1+renderCell.Span, excelRow)
				if err := f.MergeCell(sheetName, cell, endCell); err != nil {
					log.Printf("Error merging lab cells %s:%s: %v", cell, endCell, err)
				}
			}
		}
	}

	fileName := fmt.Sprintf("timetable_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+fileName)

	if err := f.Write(c.Response().BodyWriter()); err != nil {
		log.Printf("Error writing workbook for %s: %v", timetableID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write Excel file"})
	}
	return nil
}
