package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follower represents a directed follow edge from one student to another.
// The composite unique index rejects duplicate edges at the store level.
type Follower struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FollowerID  uuid.UUID `json:"follower_id" gorm:"type:uuid;index;uniqueIndex:idx_follower_following;not null"`
	FollowingID uuid.UUID `json:"following_id" gorm:"type:uuid;uniqueIndex:idx_follower_following;not null"`
	BellEnabled bool      `json:"bell_enabled" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`

	Following *Student `json:"-" gorm:"foreignKey:FollowingID"`
}

func (f *Follower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FollowRequest creates a follow edge from the authenticated student.
type FollowRequest struct {
	FollowingID string `json:"following_id" validate:"required,uuid"`
}

// ToggleBellRequest flips the notification bell on an existing edge.
type ToggleBellRequest struct {
	BellEnabled *bool `json:"bell_enabled" validate:"required"`
}
