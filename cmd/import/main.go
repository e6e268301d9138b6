// Command import loads a population JSON export into the SQLite store
// used when the server runs with DATA_SOURCE=sqlite.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jengzang/bcn-heatmap-go/internal/config"
	"github.com/jengzang/bcn-heatmap-go/internal/database"
	"github.com/jengzang/bcn-heatmap-go/internal/repository"
)

func main() {
	cfg := config.Load()

	in := flag.String("in", cfg.PopulationFile, "population JSON array")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatal("Failed to read input:", err)
	}

	records, err := repository.ParseRecords(data)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *in, err)
	}

	db, err := database.Open(database.Config{Path: *dbPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	n, err := repository.NewSQLiteRecordSource(db).ImportRecords(records)
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	log.Printf("Imported %d records from %s into %s", n, *in, *dbPath)
}
