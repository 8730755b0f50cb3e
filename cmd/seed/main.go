package main

import (
	"context"
	"log"
	"time"

	"job-board/internal/config"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	r := seeder.Runner{Seeders: []seeder.Seeder{seeder.ListingSeeder{}}}
	if err := r.Run(ctx, db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("seeding finished")
}
