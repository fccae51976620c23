package models

import "time"

// User represents an account in the system. The password column never leaves
// the storage/auth boundary; JSON encoding always omits it.
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FullName   string `gorm:"type:text;not null" json:"fullName"`
	Email      string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password   string `gorm:"type:text;not null" json:"-"`
	ProfilePic string `gorm:"type:text;default:''" json:"profilePic"`

	// ArchivedChats is the set of partner IDs this user has archived,
	// persisted as a JSONB array on the user row.
	ArchivedChats ArchivedSet `gorm:"type:jsonb;not null;default:'[]'" json:"archivedChats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile is the public view of a user, safe to return to other users.
type Profile struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profilePic"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile strips the credential and archive state from a user record.
func (u *User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// ChatPartner is a profile annotated with the viewer's archived flag.
// It is derived from the message table on demand and never persisted.
type ChatPartner struct {
	Profile
	IsArchived bool `json:"isArchived"`
}
