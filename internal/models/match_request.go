package models

import "time"

// MatchRequest is a directional pending request from one user to another.
// The composite primary key (SenderID, ReceiverID) allows at most one pending
// request per ordered pair; a sender can never equal its receiver.
type MatchRequest struct {
	SenderID   uint `gorm:"primaryKey"`
	ReceiverID uint `gorm:"primaryKey"`
	CreatedAt  time.Time

	Sender   User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Receiver User `gorm:"foreignKey:ReceiverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
