package model

import "time"

type FriendRequestStatus string

const (
	StatusPending  FriendRequestStatus = "PENDING"
	StatusAccepted FriendRequestStatus = "ACCEPTED"
	StatusRejected FriendRequestStatus = "REJECTED"
)

// FriendRequest is a directed request from one user to another. Only
// one record may exist per (sender, receiver) pair, the reverse
// direction is a separate record.
type FriendRequest struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	SenderID   uint                `gorm:"not null;uniqueIndex:idx_sender_receiver" json:"sender_id"`
	ReceiverID uint                `gorm:"not null;uniqueIndex:idx_sender_receiver;index:idx_receiver_status" json:"receiver_id"`
	Status     FriendRequestStatus `gorm:"size:10;not null;default:'PENDING';index:idx_receiver_status" json:"status"`
	CreatedAt  time.Time           `json:"created_at"`

	Sender   User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender"`
	Receiver User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
}
