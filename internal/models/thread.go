package models

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a forum thread. Owned by the forum service; read here only to
// label grouped thread-comment notifications.
type Thread struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:uuid;index"`
	Title     string    `json:"title" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a comment within a thread, read here only to label grouped
// comment-reply notifications.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ThreadID  uuid.UUID `json:"thread_id" gorm:"type:uuid;index"`
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:uuid;index"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
