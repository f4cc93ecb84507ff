// seed/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/periscope-tudelft/periscope_api/seed/seeders"
	"github.com/periscope-tudelft/periscope_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, admin, moods, survey")
		dbPath   = flag.String("db", "", "Database path (overrides SQLITE_FILE env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("SQLITE_FILE")
		if databasePath == "" {
			databasePath = "periscope.db"
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	if err := services.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "admin":
		if err := mainSeeder.SeedAdminOnly(); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	case "moods":
		if err := mainSeeder.SeedMoodsOnly(); err != nil {
			log.Fatalf("Failed to seed moods: %v", err)
		}
	case "survey":
		if err := mainSeeder.SeedSurveyOnly(); err != nil {
			log.Fatalf("Failed to seed demo survey: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'admin', 'moods' or 'survey'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for the Periscope study backend

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, admin, moods, survey
  -db string
        Database path (overrides SQLITE_FILE environment variable)
  -help
        Show this help message

Environment Variables:
  SQLITE_FILE     - Default database path (default: periscope.db)
  ADMIN_CLIENT_ID - Client ID of the admin user (default: admin)
`)
}
