// Command main runs the database seeder for Fitlog.
package main

import (
	"context"
	"flag"
	"log"

	"fitlog/internal/bootstrap"
	"fitlog/internal/config"
	"fitlog/internal/database"
	"fitlog/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 20, "Number of users to create")
	numWorkouts := flag.Int("workouts", 12, "Number of workouts per user")
	password := flag.String("password", seed.DefaultPassword, "Password of every seeded user")
	days := flag.Int("days", 90, "Spread workout dates over this many past days")
	shouldClean := flag.Bool("clean", false, "Delete all users (and their workouts) before seeding")
	randomSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d workouts each, clean=%v\n", *numUsers, *numWorkouts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{Migrate: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	sum, err := seed.Seed(context.Background(), db, seed.Options{
		NumUsers:        *numUsers,
		WorkoutsPerUser: *numWorkouts,
		Password:        *password,
		BcryptCost:      cfg.BcryptCost,
		MaxDays:         *days,
		ShouldClean:     *shouldClean,
		RandomSeed:      *randomSeed,
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✨ Created %d users, %d sessions, %d strength sets, %d cardio entries.",
		sum.Users, sum.Sessions, sum.Sets, sum.Cardio)
	log.Printf("📧 All seeded users have the password: %s", *password)
}
