package models

import "gorm.io/gorm"

// Category is a node of the read-only skill taxonomy (e.g., "Art", "Music").
type Category struct {
	gorm.Model
	Name   string   `gorm:"size:100;uniqueIndex;not null"`
	Skills []*Skill `gorm:"many2many:category_skills;"`
}

// Skill is a teachable/learnable skill. A skill belongs to at least one
// category via the category_skills join table.
type Skill struct {
	gorm.Model
	Name string `gorm:"size:255;uniqueIndex;not null"`
}
