// Cleanup job for permanently deleting patient records whose retention
// period has expired. Intended to run on a schedule (e.g. a nightly cron).
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/db"
	"github.com/vidasalud-clinic/admission-service/internal/patient"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report how many patients would be deleted without deleting them")
	flag.Parse()

	log.Println("Starting patient retention cleanup job")

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cleanupService := patient.NewCleanupService(database)

	count, err := cleanupService.GetExpiredPatientsCount(ctx)
	if err != nil {
		log.Fatalf("Failed to count expired patients: %v", err)
	}
	log.Printf("Found %d patients past the retention period", count)

	if *dryRun {
		log.Println("Dry run requested, no records deleted")
		return
	}

	if count == 0 {
		log.Println("Nothing to clean up")
		return
	}

	deleted, err := cleanupService.CleanupExpiredPatients(ctx)
	if err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Printf("✓ Cleanup job finished: %d patients permanently deleted", deleted)
}
