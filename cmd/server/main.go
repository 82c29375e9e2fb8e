package main

import (
    "context"
    "log"

    "github.com/joho/godotenv"

    "github.com/smis-portal/smis-back/internal/api"
    "github.com/smis-portal/smis-back/internal/config"
    "github.com/smis-portal/smis-back/internal/cron"
    "github.com/smis-portal/smis-back/internal/db"
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using system env")
    }

    cfg := config.Load()

    store, err := db.New(cfg.DBUrl)
    if err != nil {
        log.Fatalf("database setup failed: %v", err)
    }
    if err := store.SeedDefaultTeacher(context.Background(), cfg.DefaultUsername, cfg.DefaultPassword); err != nil {
        log.Fatalf("failed to provision default teacher: %v", err)
    }

    r := api.SetupRouter(cfg, store)

    // Start cron jobs
    cron.StartJobs(store)

    addr := ":" + cfg.AppPort
    log.Println("SMIS portal backend running on", addr)
    if err := r.Run(addr); err != nil {
        log.Fatal(err)
    }
}
