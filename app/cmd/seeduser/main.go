package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/config"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/database"
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

func main() {
	email := flag.String("email", "", "editor account email")
	password := flag.String("password", "", "editor account password")
	firstName := flag.String("first-name", "Timetable", "first name")
	lastName := flag.String("last-name", "Editor", "last name")
	years := flag.Int("years", models.MaxYear, "number of years to seed slot configurations for")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: seeduser -email <email> -password <password>")
	}
	if *years < 1 || *years > models.MaxYear {
		log.Fatalf("Invalid -years %d, must be between 1 and %d", *years, models.MaxYear)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatalf("Error creating user: %v", err)
	}
	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)

	// Seed the built-in grid configuration for every year the APIs
	// accept so the editor starts with a sensible default.
	for year := 1; year <= *years; year++ {
		existing, err := database.GetSlotConfigByYear(db, year)
		if err != nil {
			log.Fatalf("Error checking slot config for year %d: %v", year, err)
		}
		if existing != nil {
			continue
		}
		if err := database.SaveSlotConfig(db, models.DefaultSlotConfig(year)); err != nil {
			log.Fatalf("Error seeding slot config for year %d: %v", year, err)
		}
		fmt.Printf("Seeded default slot configuration for year %d\n", year)
	}
}
