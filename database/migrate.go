// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"octofit/models"
)

// RunMigrations migrates the five resource collections and their indexes.
func RunMigrations(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Activity{},
		&models.LeaderboardEntry{},
		&models.Workout{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("✅ All migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	// Filter-endpoint lookups
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_fitness_level ON users(fitness_level)",
		"CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_leaderboard_rank ON leaderboard(rank ASC, total_points DESC)",
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
