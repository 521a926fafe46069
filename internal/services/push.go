package services

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
	"github.com/hoangtv-dev/studenthub-backend/internal/repositories"
)

// PushService sends push notifications via Firebase Cloud Messaging.
type PushService struct {
	client    *messaging.Client
	students  repositories.StudentRepository
	followers repositories.FollowerRepository
}

// NewPushService initializes the FCM client. Degrades to a no-op sender when
// no service account is configured or initialization fails (dev mode).
func NewPushService(serviceAccountPath string, students repositories.StudentRepository, followers repositories.FollowerRepository) *PushService {
	svc := &PushService{students: students, followers: followers}

	if serviceAccountPath == "" {
		log.Println("FCM: No service account configured, push notifications disabled")
		return svc
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountPath))
	if err != nil {
		log.Printf("FCM: Failed to initialize Firebase app: %v", err)
		return svc
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("FCM: Failed to get messaging client: %v", err)
		return svc
	}

	svc.client = client
	log.Println("FCM: Push notifications enabled")
	return svc
}

// NotifyRecipient pushes a freshly created notification to its recipient's
// device. No-op when push is unconfigured, the recipient has no device token,
// or the recipient muted the sender's bell.
func (p *PushService) NotifyRecipient(n *models.Notification) {
	if p.client == nil {
		return
	}
	if !p.bellEnabled(n.RecipientID, n.SenderID) {
		return
	}

	student, err := p.students.GetByID(n.RecipientID)
	if err != nil || student.FCMToken == "" {
		return
	}

	data := map[string]string{"type": n.Type}
	if n.ReferenceID != nil {
		data["reference_id"] = n.ReferenceID.String()
	}

	msg := &messaging.Message{
		Token: student.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
		},
		Data: data,
	}

	if _, err := p.client.Send(context.Background(), msg); err != nil {
		log.Printf("FCM: Failed to send to student %s: %v", n.RecipientID, err)
	}
}

// bellEnabled reports whether the recipient still wants pushes driven by this
// sender. Only an edge the recipient created toward the sender can mute them.
func (p *PushService) bellEnabled(recipientID uuid.UUID, senderID *uuid.UUID) bool {
	if senderID == nil {
		return true
	}
	edge, err := p.followers.GetByPair(recipientID, *senderID)
	if err != nil {
		return true
	}
	return edge.BellEnabled
}
