package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationTypeThreadComment = "thread_comment"
	NotificationTypeCommentReply  = "comment_reply"
	NotificationTypeFollow        = "follow"
	NotificationTypeMention       = "mention"
	NotificationTypeLike          = "like"
	NotificationTypeSystem        = "system"
)

// Reference types
const (
	ReferenceTypeThread     = "thread"
	ReferenceTypeComment    = "comment"
	ReferenceTypeResource   = "resource"
	ReferenceTypeCollection = "collection"
)

// Notification represents a notification delivered to a student. Immutable
// after creation except for IsRead.
type Notification struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	RecipientID   uuid.UUID  `json:"recipient_id" gorm:"type:uuid;index;not null"`
	SenderID      *uuid.UUID `json:"sender_id" gorm:"type:uuid;index"`
	Title         string     `json:"title" gorm:"size:255;not null"`
	Type          string     `json:"type" gorm:"size:30;index"`
	ReferenceID   *uuid.UUID `json:"reference_id" gorm:"type:uuid"` // thread or comment ID depending on type
	ReferenceType *string    `json:"reference_type" gorm:"size:20"`
	IsRead        bool       `json:"is_read" gorm:"default:false;index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"index"`

	Sender *Student `json:"-" gorm:"foreignKey:SenderID"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// CreateNotificationRequest carries the recognized fields for inserting a
// notification; anything else in the payload is dropped.
type CreateNotificationRequest struct {
	RecipientID   string `json:"recipient_id" validate:"required,uuid"`
	SenderID      string `json:"sender_id" validate:"omitempty,uuid"`
	Title         string `json:"title" validate:"required,max=255"`
	Type          string `json:"type" validate:"required,oneof=thread_comment comment_reply follow mention like system"`
	ReferenceID   string `json:"reference_id" validate:"omitempty,uuid"`
	ReferenceType string `json:"reference_type" validate:"omitempty,oneof=thread comment resource collection"`
}

// ListNotificationsQuery holds the optional list filters. Unset filters
// impose no constraint.
type ListNotificationsQuery struct {
	Type   string `query:"type" validate:"omitempty,oneof=thread_comment comment_reply follow mention like system"`
	IsRead *bool  `query:"is_read"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// RegisterDeviceTokenRequest stores the caller's FCM device token.
type RegisterDeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
