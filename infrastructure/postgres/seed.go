package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymrank/domain/models"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

// defaultCategories are the divisions a fresh database starts with.
var defaultCategories = []string{
	"INDIVIDUAL WOMEN - YOUTH TRIC - KIDS DEVELOPMENT",
	"INDIVIDUAL MEN - YOUTH",
	"MIXED PAIR - NATIONAL DEVELOPMENT",
	"INDIVIDUAL WOMEN - KIDS DEVELOPMENT",
	"MIXED PAIR - JUNIORS",
	"TRIO - NATIONAL DEVELOPMENT",
	"INDIVIDUAL WOMEN - JUNIORS",
	"INDIVIDUAL MEN - JUNIORS",
	"INDIVIDUAL WOMEN - NATIONAL DEVELOPMENT",
	"INDIVIDUAL MEN - KIDS DEVELOPMENT",
	"MIXED PAIR - YOUTH",
	"INDIVIDUAL MEN - NATIONAL DEVELOPMENT",
	"GROUP - YOUTH",
	"GROUP - JUNIORS",
	"INDIVIDUAL MEN - SENIORS",
	"TRIO - YOUTH",
	"TRIO - JUNIORS",
	"GROUP - KIDS DEVELOPMENT",
	"GROUP - NATIONAL DEVELOPMENT",
	"AEROBIC DANCE - YOUTH",
	"AEROBIC DANCE - JUNIORS",
}

func f(v float64) *float64 { return &v }

// SeedIfEmpty populates a brand-new database: the default category list, a
// few demo ranking rows, and the title/subtitle settings. Each block only
// runs when its table is empty, so an existing deployment is left alone.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) error {
	var catCount int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&catCount).Error; err != nil {
		return err
	}
	if catCount == 0 {
		categories := make([]*models.Category, len(defaultCategories))
		for i, name := range defaultCategories {
			categories[i] = &models.Category{
				ID:   uuid.New(),
				Slug: utils.Slugify(name),
				Name: name,
			}
		}
		if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
			return err
		}
		logger.Info("Seeded default categories", "count", len(categories))
	}

	var rankCount int64
	if err := db.WithContext(ctx).Model(&models.Ranking{}).Count(&rankCount).Error; err != nil {
		return err
	}
	if rankCount == 0 {
		var seniors models.Category
		err := db.WithContext(ctx).Where("slug = ?", "individual-men-seniors").First(&seniors).Error
		if err == nil {
			demo := []*models.Ranking{
				{CategoryID: seniors.ID, Position: "1", Competitor: "Ion Popescu", Club: "Steaua", Total: f(15.200)},
				{CategoryID: seniors.ID, Position: "2", Competitor: "Mihai Ionescu", Club: "Dinamo", Total: f(14.850)},
				{CategoryID: seniors.ID, Position: "3", Competitor: "Andrei Georgescu", Club: "CSM Cluj", Total: f(14.300)},
			}
			if err := db.WithContext(ctx).Create(&demo).Error; err != nil {
				return err
			}
			logger.Info("Seeded demo rankings", "category", seniors.Name, "count", len(demo))
		}
	}

	var titleCount int64
	if err := db.WithContext(ctx).Model(&models.Setting{}).Where("key = ?", "title").Count(&titleCount).Error; err != nil {
		return err
	}
	if titleCount == 0 {
		rows := []*models.Setting{
			{ID: uuid.New(), Key: "title", Value: models.DefaultSettings["title"]},
			{ID: uuid.New(), Key: "subtitle", Value: models.DefaultSettings["subtitle"]},
		}
		if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	return nil
}
