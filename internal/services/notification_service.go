package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
	"github.com/hoangtv-dev/studenthub-backend/internal/repositories"
)

const (
	deletedThreadLabel   = "Deleted Thread"
	deletedCommentLabel  = "Deleted Comment"
	commentPreviewLength = 50
)

// NotificationWithSender is a notification row shaped for responses, with the
// sender's public projection attached.
type NotificationWithSender struct {
	models.Notification
	Sender *models.Sender `json:"sender"`
}

// GroupedNotification aggregates the notifications sharing one reference
// entity. Derived on every read, never persisted.
type GroupedNotification struct {
	GroupKey        *uuid.UUID               `json:"group_key"`
	GroupLabel      string                   `json:"group_label"`
	Type            string                   `json:"type"`
	Count           int                      `json:"count"`
	Notifications   []NotificationWithSender `json:"notifications"`
	LatestCreatedAt time.Time                `json:"latest_created_at"`
	HasUnread       bool                     `json:"has_unread"`
}

// NotificationService implements notification reads, writes and grouping on
// top of the repositories.
type NotificationService struct {
	notifications repositories.NotificationRepository
	threads       repositories.ThreadRepository
	comments      repositories.CommentRepository
	push          *PushService
}

// NewNotificationService creates a new NotificationService. push may be nil.
func NewNotificationService(
	notifications repositories.NotificationRepository,
	threads repositories.ThreadRepository,
	comments repositories.CommentRepository,
	push *PushService,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		threads:       threads,
		comments:      comments,
		push:          push,
	}
}

// List returns the recipient's notifications newest-first, narrowed by the
// optional filters.
func (s *NotificationService) List(recipientID uuid.UUID, filters repositories.NotificationFilters) ([]NotificationWithSender, error) {
	rows, err := s.notifications.GetByRecipient(recipientID, filters)
	if err != nil {
		return nil, err
	}
	return withSenders(rows), nil
}

// GetByID returns the notification only when it belongs to the recipient.
func (s *NotificationService) GetByID(id, recipientID uuid.UUID) (*NotificationWithSender, error) {
	row, err := s.notifications.GetByID(id, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := NotificationWithSender{Notification: *row, Sender: senderOf(row)}
	return &resp, nil
}

// Create inserts a notification from the recognized request fields and
// dispatches a push to the recipient's device.
func (s *NotificationService) Create(req models.CreateNotificationRequest) (*models.Notification, error) {
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, err
	}
	notification := &models.Notification{
		RecipientID: recipientID,
		Title:       req.Title,
		Type:        req.Type,
	}
	if req.SenderID != "" {
		senderID, err := uuid.Parse(req.SenderID)
		if err != nil {
			return nil, err
		}
		notification.SenderID = &senderID
	}
	if req.ReferenceID != "" {
		referenceID, err := uuid.Parse(req.ReferenceID)
		if err != nil {
			return nil, err
		}
		notification.ReferenceID = &referenceID
	}
	if req.ReferenceType != "" {
		referenceType := req.ReferenceType
		notification.ReferenceType = &referenceType
	}

	if err := s.notifications.Create(notification); err != nil {
		return nil, err
	}

	if s.push != nil {
		go s.push.NotifyRecipient(notification)
	}
	return notification, nil
}

// MarkAsRead sets is_read on the recipient's notification and returns the
// updated row.
func (s *NotificationService) MarkAsRead(id, recipientID uuid.UUID) (*NotificationWithSender, error) {
	rows, err := s.notifications.MarkAsRead(id, recipientID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(id, recipientID)
}

// MarkAllAsRead marks every unread notification of the recipient as read.
func (s *NotificationService) MarkAllAsRead(recipientID uuid.UUID) error {
	return s.notifications.MarkAllAsRead(recipientID)
}

// Delete removes the recipient's notification.
func (s *NotificationService) Delete(id, recipientID uuid.UUID) error {
	rows, err := s.notifications.Delete(id, recipientID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every notification of the recipient.
func (s *NotificationService) DeleteAll(recipientID uuid.UUID) error {
	return s.notifications.DeleteAll(recipientID)
}

// UnreadCount counts the recipient's unread notifications.
func (s *NotificationService) UnreadCount(recipientID uuid.UUID) (int64, error) {
	return s.notifications.GetUnreadCount(recipientID)
}

// GroupedThreadComments groups the recipient's thread_comment notifications
// by thread, labelled with the thread title.
func (s *NotificationService) GroupedThreadComments(recipientID uuid.UUID) ([]GroupedNotification, error) {
	rows, err := s.notifications.GetByRecipientAndType(recipientID, models.NotificationTypeThreadComment)
	if err != nil {
		return nil, err
	}

	threads, err := s.threads.GetByIDs(referenceIDs(rows))
	if err != nil {
		return nil, err
	}

	return groupByReference(rows, models.NotificationTypeThreadComment, func(id *uuid.UUID) string {
		if id != nil {
			if thread, ok := threads[*id]; ok {
				return thread.Title
			}
		}
		return deletedThreadLabel
	}), nil
}

// GroupedCommentReplies groups the recipient's comment_reply notifications by
// parent comment, labelled with a preview of the comment content.
func (s *NotificationService) GroupedCommentReplies(recipientID uuid.UUID) ([]GroupedNotification, error) {
	rows, err := s.notifications.GetByRecipientAndType(recipientID, models.NotificationTypeCommentReply)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.GetByIDs(referenceIDs(rows))
	if err != nil {
		return nil, err
	}

	return groupByReference(rows, models.NotificationTypeCommentReply, func(id *uuid.UUID) string {
		if id != nil {
			if comment, ok := comments[*id]; ok && comment.Content != "" {
				return commentPreview(comment.Content)
			}
		}
		return deletedCommentLabel
	}), nil
}

// groupByReference folds newest-first rows into one group per distinct
// reference, preserving first-seen order. The latest timestamp is taken from
// the first member seen, which the input ordering guarantees is the newest.
// Rows without a reference collapse into a single group.
func groupByReference(rows []models.Notification, notificationType string, label func(*uuid.UUID) string) []GroupedNotification {
	var order []string
	index := make(map[string]*GroupedNotification)

	for _, n := range rows {
		key := ""
		if n.ReferenceID != nil {
			key = n.ReferenceID.String()
		}

		group, ok := index[key]
		if !ok {
			group = &GroupedNotification{
				GroupKey:        n.ReferenceID,
				GroupLabel:      label(n.ReferenceID),
				Type:            notificationType,
				LatestCreatedAt: n.CreatedAt,
			}
			index[key] = group
			order = append(order, key)
		}

		group.Count++
		group.Notifications = append(group.Notifications, NotificationWithSender{Notification: n, Sender: senderOf(&n)})
		if !n.IsRead {
			group.HasUnread = true
		}
	}

	groups := make([]GroupedNotification, 0, len(order))
	for _, key := range order {
		groups = append(groups, *index[key])
	}
	return groups
}

func commentPreview(content string) string {
	runes := []rune(content)
	if len(runes) > commentPreviewLength {
		runes = runes[:commentPreviewLength]
	}
	return string(runes) + "..."
}

func referenceIDs(rows []models.Notification) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, n := range rows {
		if n.ReferenceID != nil && !seen[*n.ReferenceID] {
			seen[*n.ReferenceID] = true
			ids = append(ids, *n.ReferenceID)
		}
	}
	return ids
}

func withSenders(rows []models.Notification) []NotificationWithSender {
	result := make([]NotificationWithSender, len(rows))
	for i, n := range rows {
		result[i] = NotificationWithSender{Notification: n, Sender: senderOf(&n)}
	}
	return result
}

func senderOf(n *models.Notification) *models.Sender {
	if n.Sender == nil {
		return nil
	}
	sender := n.Sender.ToSender()
	return &sender
}
