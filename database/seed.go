package database

import (
	"fmt"

	"github.com/gharkhoj/gharkhoj-backend/models"
	"github.com/gharkhoj/gharkhoj-backend/price"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seed inserts sample builders and projects when the tables are empty.
// Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var builderCount int64
	if err := db.Model(&models.Builder{}).Count(&builderCount).Error; err != nil {
		return err
	}

	if builderCount == 0 {
		hq1, hq2 := "Mumbai", "Bengaluru"
		y1, y2 := 1998, 2004
		builders := []models.Builder{
			{Name: "Sahyadri Constructions", HQLocation: &hq1, EstablishedYear: &y1},
			{Name: "Nandi Developers", HQLocation: &hq2, EstablishedYear: &y2},
		}
		if err := db.Create(&builders).Error; err != nil {
			return err
		}
		log.Info().Msg("Builders seeded")
	}

	var projectCount int64
	if err := db.Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount > 0 {
		log.Info().Msg("Projects already seeded")
		return nil
	}

	var builders []models.Builder
	if err := db.Order("id asc").Limit(2).Find(&builders).Error; err != nil {
		return err
	}
	if len(builders) == 0 {
		return nil
	}

	locations := []string{"Pune", "Thane", "Whitefield", "Navi Mumbai", "Hinjewadi"}
	projects := make([]models.Project, 0, 50)
	for i := 1; i <= 50; i++ {
		rangeText := fmt.Sprintf("%dL-%dCr", 50+i, 1+i/10)
		bounds := price.ParseRange(rangeText)
		p := models.Project{
			BuilderID:   builders[(i-1)%len(builders)].ID,
			Name:        fmt.Sprintf("Greenfield Phase %d", i),
			Location:    locations[i%len(locations)],
			PriceRange:  &rangeText,
			PriceMinINR: bounds.Min,
			PriceMaxINR: bounds.Max,
			Status:      models.StatusOngoing,
		}
		projects = append(projects, p)
	}
	if err := db.Create(&projects).Error; err != nil {
		return err
	}

	log.Info().Int("projects", len(projects)).Msg("Projects seeded")
	return nil
}
