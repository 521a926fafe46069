package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

// NotificationFilters narrows a recipient's notification list. Zero values
// impose no constraint.
type NotificationFilters struct {
	Type   string
	IsRead *bool
	Limit  int
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByRecipient(recipientID uuid.UUID, filters NotificationFilters) ([]models.Notification, error)
	GetByRecipientAndType(recipientID uuid.UUID, notificationType string) ([]models.Notification, error)
	GetByID(id, recipientID uuid.UUID) (*models.Notification, error)
	MarkAsRead(id, recipientID uuid.UUID) (int64, error)
	MarkAllAsRead(recipientID uuid.UUID) error
	Delete(id, recipientID uuid.UUID) (int64, error)
	DeleteAll(recipientID uuid.UUID) error
	GetUnreadCount(recipientID uuid.UUID) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByRecipient(recipientID uuid.UUID, filters NotificationFilters) ([]models.Notification, error) {
	var notifications []models.Notification

	query := r.db.Preload("Sender.Profile").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.IsRead != nil {
		query = query.Where("is_read = ?", *filters.IsRead)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	err := query.Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) GetByRecipientAndType(recipientID uuid.UUID, notificationType string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Preload("Sender.Profile").
		Where("recipient_id = ? AND type = ?", recipientID, notificationType).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) GetByID(id, recipientID uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.Preload("Sender.Profile").
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *postgresNotificationRepository) MarkAsRead(id, recipientID uuid.UUID) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uuid.UUID) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Update("is_read", true).Error
}

func (r *postgresNotificationRepository) Delete(id, recipientID uuid.UUID) (int64, error) {
	res := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

func (r *postgresNotificationRepository) DeleteAll(recipientID uuid.UUID) error {
	return r.db.Where("recipient_id = ?", recipientID).Delete(&models.Notification{}).Error
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Count(&count).Error
	return count, err
}
