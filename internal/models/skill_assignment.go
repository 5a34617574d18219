package models

import "time"

// SkillAssignment links a user to a skill they either want to learn or can
// teach. The primary key is a composite of (UserID, SkillID), so a user holds
// at most one row per skill and the roles are mutually exclusive: exactly one
// of IsLearning/IsTeaching is true for a given row.
//
// The priority columns are denormalized pointers kept identical across all of
// a user's rows; when set they must reference a skill present in the user's
// own assignment set.
type SkillAssignment struct {
	UserID               uint `gorm:"primaryKey"`
	SkillID              uint `gorm:"primaryKey"`
	IsLearning           bool `gorm:"not null"`
	IsTeaching           bool `gorm:"not null"`
	LearnPrioritySkillID *uint
	TeachPrioritySkillID *uint
	CreatedAt            time.Time
	UpdatedAt            time.Time

	User  User  `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Skill Skill `gorm:"foreignKey:SkillID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
