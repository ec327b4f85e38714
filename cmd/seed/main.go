package main

import (
	"context"
	"log"
	"os"

	"gorm.io/gorm"

	"reservabar/internal/auth"
	"reservabar/internal/config"
	"reservabar/internal/db"
	"reservabar/internal/model"
	"reservabar/internal/repository"
)

// Seeds the first admin user and the initial table layout. Replaces the
// original runtime schema-creation endpoint: provisioning happens out of
// band, never through the API.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Table{}, &model.Reservation{}, &model.Promotion{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	tableRepo := repository.NewTableRepository(gormDB)

	adminEmail := getEnv("ADMIN_EMAIL", "admin@reservabar.local")
	adminPassword := getEnv("ADMIN_PASSWORD", "changeme123")

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
	} else if err == gorm.ErrRecordNotFound {
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.User{
			Email:        adminEmail,
			PasswordHash: hash,
			FirstName:    "Admin",
			Role:         model.RoleAdmin,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminEmail)
	} else {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	seedTables := []model.Table{
		{TableNumber: "T1", Capacity: 2, IsAvailable: true, Location: "indoor"},
		{TableNumber: "T2", Capacity: 2, IsAvailable: true, Location: "indoor"},
		{TableNumber: "T3", Capacity: 4, IsAvailable: true, Location: "indoor"},
		{TableNumber: "T4", Capacity: 4, IsAvailable: true, Location: "terrace"},
		{TableNumber: "T5", Capacity: 6, IsAvailable: true, Location: "terrace"},
		{TableNumber: "T6", Capacity: 8, IsAvailable: true, Location: "terrace"},
	}

	created := 0
	for _, t := range seedTables {
		if _, err := tableRepo.FindByNumber(ctx, t.TableNumber); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up table %s: %v", t.TableNumber, err)
		}
		table := t
		if err := tableRepo.Create(ctx, &table); err != nil {
			log.Fatalf("Failed to create table %s: %v", t.TableNumber, err)
		}
		created++
	}
	log.Printf("Seeded %d tables", created)

	log.Println("Seed script completed")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
