package models

import "time"

// Message is a single direct message between two users. Messages are created
// once and never edited or deleted; at least one of Text/Image is set.
type Message struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SenderID   uint   `gorm:"not null;index:idx_msg_sender" json:"senderId"`
	ReceiverID uint   `gorm:"not null;index:idx_msg_receiver" json:"receiverId"`
	Text       string `gorm:"type:text" json:"text"`
	Image      string `gorm:"type:text" json:"image"`

	// CreatedAt orders a conversation (ascending) and drives "most recent
	// partner" derivation (descending).
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
