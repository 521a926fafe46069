package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A pooled second connection would see an empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.Student{},
		&models.Profile{},
		&models.Thread{},
		&models.Comment{},
		&models.Notification{},
		&models.Follower{},
	)
	if err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}
	return db
}

func seedNotification(t *testing.T, db *gorm.DB, recipientID uuid.UUID, notificationType string, isRead bool, createdAt time.Time) models.Notification {
	t.Helper()
	notification := models.Notification{
		RecipientID: recipientID,
		Title:       "seed",
		Type:        notificationType,
		IsRead:      isRead,
		CreatedAt:   createdAt,
	}
	if err := db.Create(&notification).Error; err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}
	return notification
}

func TestGetByRecipientFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	recipient := uuid.New()
	other := uuid.New()

	base := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	seedNotification(t, db, recipient, models.NotificationTypeFollow, false, base)
	seedNotification(t, db, recipient, models.NotificationTypeFollow, true, base.Add(time.Minute))
	seedNotification(t, db, recipient, models.NotificationTypeSystem, false, base.Add(2*time.Minute))
	seedNotification(t, db, other, models.NotificationTypeFollow, false, base.Add(3*time.Minute))

	all, err := repo.GetByRecipient(recipient, NotificationFilters{})
	if err != nil {
		t.Fatalf("GetByRecipient failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows scoped to recipient, got %d", len(all))
	}
	if all[0].Type != models.NotificationTypeSystem {
		t.Error("expected newest row first")
	}

	byType, err := repo.GetByRecipient(recipient, NotificationFilters{Type: models.NotificationTypeFollow})
	if err != nil {
		t.Fatalf("GetByRecipient(type) failed: %v", err)
	}
	if len(byType) != 2 {
		t.Errorf("type filter: want 2 rows, got %d", len(byType))
	}

	unread := false
	byRead, err := repo.GetByRecipient(recipient, NotificationFilters{Type: models.NotificationTypeFollow, IsRead: &unread})
	if err != nil {
		t.Fatalf("GetByRecipient(type+is_read) failed: %v", err)
	}
	if len(byRead) != 1 || byRead[0].IsRead {
		t.Errorf("combined filters: want 1 unread follow row, got %d", len(byRead))
	}

	limited, err := repo.GetByRecipient(recipient, NotificationFilters{Limit: 2})
	if err != nil {
		t.Fatalf("GetByRecipient(limit) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit filter: want 2 rows, got %d", len(limited))
	}
}

func TestMarkAsReadRowsAffected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	recipient := uuid.New()

	n := seedNotification(t, db, recipient, models.NotificationTypeSystem, false, time.Now())

	rows, err := repo.MarkAsRead(n.ID, uuid.New())
	if err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	if rows != 0 {
		t.Errorf("wrong recipient should match 0 rows, got %d", rows)
	}

	rows, err = repo.MarkAsRead(n.ID, recipient)
	if err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("owner should match 1 row, got %d", rows)
	}

	got, err := repo.GetByID(n.ID, recipient)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.IsRead {
		t.Error("notification should be read")
	}
}

func TestDeleteAllScopedToRecipient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	recipient := uuid.New()
	other := uuid.New()

	seedNotification(t, db, recipient, models.NotificationTypeSystem, false, time.Now())
	seedNotification(t, db, recipient, models.NotificationTypeSystem, true, time.Now())
	keep := seedNotification(t, db, other, models.NotificationTypeSystem, false, time.Now())

	if err := repo.DeleteAll(recipient); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}

	gone, err := repo.GetByRecipient(recipient, NotificationFilters{})
	if err != nil {
		t.Fatalf("GetByRecipient failed: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("expected recipient's rows removed, got %d", len(gone))
	}

	if _, err := repo.GetByID(keep.ID, other); err != nil {
		t.Errorf("other recipient's row should survive: %v", err)
	}
}

func TestGetUnreadCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	recipient := uuid.New()

	seedNotification(t, db, recipient, models.NotificationTypeSystem, false, time.Now())
	seedNotification(t, db, recipient, models.NotificationTypeSystem, false, time.Now())
	seedNotification(t, db, recipient, models.NotificationTypeSystem, true, time.Now())

	count, err := repo.GetUnreadCount(recipient)
	if err != nil {
		t.Fatalf("GetUnreadCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("want 2 unread, got %d", count)
	}

	if err := repo.MarkAllAsRead(recipient); err != nil {
		t.Fatalf("MarkAllAsRead failed: %v", err)
	}
	count, err = repo.GetUnreadCount(recipient)
	if err != nil {
		t.Fatalf("GetUnreadCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("want 0 unread after mark-all-read, got %d", count)
	}
}
