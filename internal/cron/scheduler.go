package cron

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/smis-portal/smis-back/internal/db"
)

// StartJobs schedules the daily activity summary. It logs how many records
// each table holds so operators can watch portal usage without a dashboard.
func StartJobs(store *db.Store) {
	c := cron.New()

	c.AddFunc("@daily", func() {
		counts, err := store.CountRecords(context.Background())
		if err != nil {
			log.Println("Failed to collect activity summary:", err)
			return
		}
		log.Printf("Activity summary: %d classes, %d materials, %d students, %d updates",
			counts.Classes, counts.Materials, counts.Students, counts.Updates)
	})

	c.Start()
}
