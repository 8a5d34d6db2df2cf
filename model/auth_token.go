package model

import "time"

// AuthToken is the opaque bearer token handed out on login. One token
// per user, created on first login and reused afterwards.
type AuthToken struct {
	Key       string    `gorm:"primaryKey;size:40" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
