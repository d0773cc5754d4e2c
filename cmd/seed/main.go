package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/carhub-dev/carhub-api/config"
	"github.com/carhub-dev/carhub-api/internal/domain/entity"
	"github.com/carhub-dev/carhub-api/internal/domain/repository"
	"github.com/carhub-dev/carhub-api/internal/infrastructure/mongodb"
	"github.com/carhub-dev/carhub-api/pkg/helpers"
)

// seed inserts a demo account and a couple of listings for local development.
// Safe to run repeatedly; the duplicate email check makes it a no-op after the first run.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	users := mongodb.NewUserRepository(db)
	listings := mongodb.NewListingRepository(db)

	const demoEmail = "demo@carhub.dev"

	hash, err := helpers.HashPassword("demo12345")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	demo := &entity.User{
		Name:          "Demo Seller",
		Email:         demoEmail,
		ContactNumber: "+12025550123",
		Password:      hash,
	}
	if err := users.Create(ctx, demo); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Println("demo account already exists, skipping seed")
			return
		}
		log.Fatalf("failed to create demo account: %v", err)
	}
	log.Printf("created demo account %s (password demo12345)", demoEmail)

	seedListings := []*entity.Listing{
		{
			Title:       "2019 Toyota Corolla LE",
			Description: "Single owner, full service history, new tires. Clean title.",
			Tags:        []string{"toyota", "sedan", "automatic"},
			OwnerEmail:  demoEmail,
			Images:      []string{"https://storage.googleapis.com/carhub-demo/corolla-1.jpg"},
		},
		{
			Title:       "2016 Ford F-150 XLT",
			Description: "4x4 crew cab with towing package. Minor wear on the bed liner.",
			Tags:        []string{"ford", "truck", "4x4"},
			OwnerEmail:  demoEmail,
			Images: []string{
				"https://storage.googleapis.com/carhub-demo/f150-1.jpg",
				"https://storage.googleapis.com/carhub-demo/f150-2.jpg",
			},
		},
	}
	for _, l := range seedListings {
		if err := listings.Create(ctx, l); err != nil {
			log.Fatalf("failed to create listing %q: %v", l.Title, err)
		}
		log.Printf("created listing %q (%s)", l.Title, l.ID)
	}
	log.Println("seed complete")
}
