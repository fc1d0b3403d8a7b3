package main

import (
	"context"
	"errors"
	"log"
	"time"

	"trineo/internal/config"
	"trineo/internal/database"
	"trineo/internal/models"
	"trineo/internal/services"
	"trineo/pkg/auth"

	"github.com/joho/godotenv"
)

// Seeds demo team members so a fresh database has a roster to exercise
// the team endpoints against. Safe to run repeatedly: existing emails are
// skipped.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	mongoDB, err := database.NewMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoDB.Close(ctx)

	if err := mongoDB.Initialize(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize MongoDB indexes: %v", err)
	}

	userService := services.NewUserService(mongoDB)

	demo := []struct {
		name     string
		email    string
		password string
	}{
		{"Anal", "anal@trineo.com", "anal@12345"},
		{"Fayiz", "fayiz@trineo.com", "fayiz@12345"},
		{"Noel", "noel@trineo.com", "noel@12345"},
	}

	for _, d := range demo {
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			log.Fatalf("❌ Failed to hash password for %s: %v", d.email, err)
		}

		user := models.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hash,
		}
		if err := userService.Create(ctx, &user); err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				log.Printf("⚠️  User %s already exists, skipping...", d.email)
				continue
			}
			log.Fatalf("❌ Failed to create user %s: %v", d.email, err)
		}
		log.Printf("✅ Created user: %s (%s)", d.name, d.email)
	}

	log.Println("✅ Seed complete")
}
