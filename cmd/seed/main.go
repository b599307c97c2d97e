package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/questa-app/questa-backend/internal/config"
	"github.com/questa-app/questa-backend/internal/db"
	"github.com/questa-app/questa-backend/internal/model"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Activity{},
		&model.Reward{},
		&model.ActivityCompletion{},
		&model.RewardRedemption{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	canSeed, err := shouldSeed(gdb)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("activities already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	activities := buildSeedActivities()
	rewards := buildSeedRewards()

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM activity_completions").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM reward_redemptions").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM activities").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM rewards").Error; err != nil {
			return err
		}
		if err := tx.Create(&activities).Error; err != nil {
			return err
		}
		return tx.Create(&rewards).Error
	})
	if err != nil {
		return fmt.Errorf("seed tx: %w", err)
	}

	log.Printf("seeded %d activities and %d rewards", len(activities), len(rewards))
	return nil
}

func shouldSeed(gdb *gorm.DB) (bool, error) {
	if strings.EqualFold(os.Getenv("FORCE_SEED"), "true") {
		return true, nil
	}
	var count int64
	if err := gdb.Model(&model.Activity{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count activities: %w", err)
	}
	return count == 0, nil
}

func buildSeedActivities() []model.Activity {
	return []model.Activity{
		{Title: "Morning run", Description: "Run at least 3km before work.", Points: 5, TimeHours: 1, Weather: 1, StarRating: 4.2},
		{Title: "Read a chapter", Description: "Read one chapter of any book.", Points: 2, TimeHours: 1, StarRating: 4.8},
		{Title: "Cook dinner at home", Description: "Skip takeout and cook something yourself.", Points: 3, TimeHours: 2, StarRating: 4.0},
		{Title: "Weekend hike", Description: "A half-day hike in good weather.", Points: 10, TimeHours: 5, Weather: 1, StarRating: 4.9},
		{Title: "Tidy the desk", Description: "", Points: 1, StarRating: 3.1},
	}
}

func buildSeedRewards() []model.Reward {
	return []model.Reward{
		{Title: "Movie night", PointsNeeded: 10},
		{Title: "Sleep in on Saturday", PointsNeeded: 15},
		{Title: "New book", PointsNeeded: 25},
		{Title: "Day trip", PointsNeeded: 50},
	}
}
