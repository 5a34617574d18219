package database

import (
	"skillswap/backend/internal/models"

	"gorm.io/gorm"
)

// defaultTaxonomy is the category -> skills catalog seeded on a fresh
// database so the unselected-skills listing has content before any admin
// tooling exists.
var defaultTaxonomy = map[string][]string{
	"Art":        {"Drawing", "Painting", "Photography", "Sculpting"},
	"Cooking":    {"Baking", "Grilling", "Meal Prep", "Pastry"},
	"Languages":  {"English", "French", "Japanese", "Spanish"},
	"Music":      {"Drums", "Guitar", "Piano", "Singing"},
	"Sports":     {"Climbing", "Running", "Swimming", "Yoga"},
	"Technology": {"Go", "JavaScript", "Python", "SQL"},
}

// Seed inserts the default skill taxonomy. It is idempotent: categories and
// skills already present are left untouched.
func Seed(db *gorm.DB) error {
	for categoryName, skillNames := range defaultTaxonomy {
		var category models.Category
		if err := db.Where(models.Category{Name: categoryName}).FirstOrCreate(&category).Error; err != nil {
			return err
		}

		for _, skillName := range skillNames {
			var skill models.Skill
			if err := db.Where(models.Skill{Name: skillName}).FirstOrCreate(&skill).Error; err != nil {
				return err
			}
			if err := db.Model(&category).Association("Skills").Append(&skill); err != nil {
				return err
			}
		}
	}
	return nil
}
