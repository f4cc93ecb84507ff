// export/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/periscope-tudelft/periscope_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		outPath    = flag.String("out", "prolific_export.csv", "Output CSV path, '-' for stdout")
		dbPath     = flag.String("db", "", "Sqlite database path (overrides SQLITE_FILE env var)")
		scenarioID = flag.Int("scenario", 0, "Restrict to one scenario and its topic's demographics")
	)
	flag.Parse()

	var scenario *int
	if *scenarioID > 0 {
		scenario = scenarioID
	}

	db, err := openDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	out := os.Stdout
	if *outPath != "-" {
		out, err = os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer out.Close()
	}

	exporter := services.NewProlificExporter(db)
	if err := exporter.WriteCSV(out, scenario); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if *outPath != "-" {
		log.Printf("Export written to %s", *outPath)
	}
}

func openDatabase(sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	if url := os.Getenv("DATABASE_URL"); url != "" && sqlitePath == "" {
		return gorm.Open(postgres.Open(url), cfg)
	}

	if sqlitePath == "" {
		sqlitePath = os.Getenv("SQLITE_FILE")
		if sqlitePath == "" {
			sqlitePath = "periscope.db"
		}
	}
	return gorm.Open(sqlite.Open(sqlitePath), cfg)
}
