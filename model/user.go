package model

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	UserName     string `gorm:"size:500" json:"user_name"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsStaff      bool   `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool   `gorm:"default:false" json:"is_superuser"`

	CreatedAt time.Time `json:"created_at"`

	SentRequests     []FriendRequest `gorm:"foreignKey:SenderID" json:"-"`
	ReceivedRequests []FriendRequest `gorm:"foreignKey:ReceiverID" json:"-"`
}

// UserSummary is the trimmed down user shape returned by search
// and friend listings
type UserSummary struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}
