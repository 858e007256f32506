package models

import "time"

// Follower is one directed "follows" edge: UserFromID follows UserToID.
// Both columns must reference existing users.
type Follower struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserFromID uint      `json:"user_from_id" gorm:"not null;index"`
	UserToID   uint      `json:"user_to_id" gorm:"not null;index"`
	FollowedAt time.Time `json:"followed_at" gorm:"autoCreateTime"`
}

func (Follower) TableName() string {
	return "follower"
}
