package models

import "time"

// Match is one directional row of a confirmed match. The relation is
// symmetric over the unordered pair {UserID, MatchID}: a match between A and
// B may be stored as (A,B), (B,A) or both, and unmatching removes every row
// for the pair in a single statement.
type Match struct {
	UserID    uint `gorm:"primaryKey"`
	MatchID   uint `gorm:"primaryKey"`
	CreatedAt time.Time

	User    User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Matched User `gorm:"foreignKey:MatchID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
