package database

import (
	"context"
	"fmt"

	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seed loads the launch catalogue into an empty database. A database that
// already has projects is left untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.Project{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("counting projects: %w", err)
	}
	if existing > 0 {
		log.Info().Int64("projects", existing).Msg("Database already seeded")
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		projects := models.SeedProjects()
		if err := tx.Create(&projects).Error; err != nil {
			return fmt.Errorf("seeding projects: %w", err)
		}
		comments := models.SeedComments()
		if err := tx.Create(&comments).Error; err != nil {
			return fmt.Errorf("seeding comments: %w", err)
		}
		log.Info().Int("projects", len(projects)).Int("comments", len(comments)).Msg("Seeded database")
		return nil
	})
}
