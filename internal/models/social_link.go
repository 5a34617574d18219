package models

import "gorm.io/gorm"

// SocialLink is a user's link to an external platform profile. A user holds
// at most one link per platform.
type SocialLink struct {
	gorm.Model
	UserID   uint   `gorm:"not null;uniqueIndex:idx_user_platform"`
	Platform string `gorm:"size:100;not null;uniqueIndex:idx_user_platform"`
	URL      string `gorm:"size:512;not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
