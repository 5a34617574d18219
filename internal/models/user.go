package models

import "gorm.io/gorm"

// User represents a registered member of the platform.
type User struct {
	gorm.Model
	Username       string `gorm:"size:255;uniqueIndex;not null"`
	Email          string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash   string `gorm:"size:255;not null" json:"-"`
	ProfilePicture string `gorm:"size:512"`
	PhoneNumber    string `gorm:"size:50"`
	Description    string
}
