package repositories

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

func seedFollowerEdge(t *testing.T, db *gorm.DB, followerID, followingID uuid.UUID) models.Follower {
	t.Helper()
	edge := models.Follower{FollowerID: followerID, FollowingID: followingID, BellEnabled: true}
	if err := db.Create(&edge).Error; err != nil {
		t.Fatalf("failed to seed follow edge: %v", err)
	}
	return edge
}

func TestFollowerExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowerRepository(db)
	follower := uuid.New()
	following := uuid.New()

	exists, err := repo.Exists(follower, following)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("edge should not exist yet")
	}

	seedFollowerEdge(t, db, follower, following)

	exists, err = repo.Exists(follower, following)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("edge should exist")
	}

	exists, err = repo.Exists(following, follower)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("edges are directional")
	}
}

func TestFollowerUniqueIndex(t *testing.T) {
	db := setupTestDB(t)
	follower := uuid.New()
	following := uuid.New()

	seedFollowerEdge(t, db, follower, following)

	duplicate := models.Follower{FollowerID: follower, FollowingID: following, BellEnabled: true}
	if err := db.Create(&duplicate).Error; err == nil {
		t.Error("duplicate (follower_id, following_id) pair should violate the unique index")
	}
}

func TestUpdateBellRowsAffected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowerRepository(db)
	follower := uuid.New()
	following := uuid.New()

	rows, err := repo.UpdateBell(follower, following, false)
	if err != nil {
		t.Fatalf("UpdateBell failed: %v", err)
	}
	if rows != 0 {
		t.Errorf("missing edge should match 0 rows, got %d", rows)
	}

	seedFollowerEdge(t, db, follower, following)

	rows, err = repo.UpdateBell(follower, following, false)
	if err != nil {
		t.Fatalf("UpdateBell failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("existing edge should match 1 row, got %d", rows)
	}

	edge, err := repo.GetByPair(follower, following)
	if err != nil {
		t.Fatalf("GetByPair failed: %v", err)
	}
	if edge.BellEnabled {
		t.Error("bell should be persisted as disabled")
	}
}

func TestDeleteFollowerRowsAffected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowerRepository(db)
	follower := uuid.New()
	following := uuid.New()

	rows, err := repo.Delete(follower, following)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if rows != 0 {
		t.Errorf("missing edge should match 0 rows, got %d", rows)
	}

	seedFollowerEdge(t, db, follower, following)

	rows, err = repo.Delete(follower, following)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("existing edge should match 1 row, got %d", rows)
	}
}
