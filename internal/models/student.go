package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student represents a student identity. Identities are provisioned by the
// campus SSO service; this service only reads them.
type Student struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StudentCode string    `json:"student_code" gorm:"size:20;uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	FullName    string    `json:"full_name"`
	FCMToken    string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`

	Profile *Profile `json:"-" gorm:"foreignKey:StudentID"`
}

// Profile holds the optional public profile a student may set up.
type Profile struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StudentID   uuid.UUID `json:"student_id" gorm:"type:uuid;uniqueIndex;not null"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Sender is the public projection of a student attached to notification and
// follower responses.
type Sender struct {
	ID          uuid.UUID `json:"id"`
	StudentCode string    `json:"student_code"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
}

// ToSender builds the public projection. The display name falls back to the
// student code when no profile display name is set; the avatar stays null.
func (s *Student) ToSender() Sender {
	sender := Sender{
		ID:          s.ID,
		StudentCode: s.StudentCode,
		Email:       s.Email,
		DisplayName: s.StudentCode,
	}
	if s.Profile != nil {
		if s.Profile.DisplayName != "" {
			sender.DisplayName = s.Profile.DisplayName
		}
		if s.Profile.AvatarURL != "" {
			avatar := s.Profile.AvatarURL
			sender.AvatarURL = &avatar
		}
	}
	return sender
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
