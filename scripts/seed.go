package main

import (
	"context"
	"log"
	"os"

	"github.com/aesthetics360/planstudio/internal/adapters/database"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/infrastructure/clients/postgres"
	"github.com/aesthetics360/planstudio/pkg/config"
)

// Seeds the catalogs table with the built-in defaults for the default
// tenant, plus a demo tenant with a customized practice profile. Run
// with RESET_DB=true to drop existing documents first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	_, err = pgClient.DB().ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS catalogs (
			tenant_id  TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		log.Fatalf("Failed to create catalogs table: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating catalogs before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE catalogs`); err != nil {
			log.Fatalf("Failed to reset catalogs: %v", err)
		}
	}

	catalogRepo := database.NewCatalogAdapter(pgClient)

	// 1. Default tenant gets an untouched copy of the defaults
	if err := catalogRepo.Save(ctx, "default", entities.DefaultCatalog()); err != nil {
		log.Fatalf("Failed to seed default tenant: %v", err)
	}
	log.Println("Seeded catalog for tenant: default")

	// 2. Demo tenant with a customized practice profile
	demo := entities.DefaultCatalog()
	demo.PracticeInfo.Name = "Demo Aesthetics Clinic"
	demo.PracticeInfo.Address = "12 Harley Street, London"
	demo.PracticeInfo.Phone = "+44 20 7946 0000"
	demo.PracticeInfo.Email = "hello@demo-aesthetics.example"
	if err := catalogRepo.Save(ctx, "demo", demo); err != nil {
		log.Fatalf("Failed to seed demo tenant: %v", err)
	}
	log.Println("Seeded catalog for tenant: demo")

	log.Println("Seeding complete")
}
