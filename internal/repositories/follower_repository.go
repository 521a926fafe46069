package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

// FollowerRepository defines the interface for follow-edge operations
type FollowerRepository interface {
	Create(follower *models.Follower) error
	Exists(followerID, followingID uuid.UUID) (bool, error)
	GetByPair(followerID, followingID uuid.UUID) (*models.Follower, error)
	Delete(followerID, followingID uuid.UUID) (int64, error)
	UpdateBell(followerID, followingID uuid.UUID, enabled bool) (int64, error)
	GetFollowing(followerID uuid.UUID) ([]models.Follower, error)
}

type postgresFollowerRepository struct {
	db *gorm.DB
}

func NewPostgresFollowerRepository(db *gorm.DB) FollowerRepository {
	return &postgresFollowerRepository{db: db}
}

func (r *postgresFollowerRepository) Create(follower *models.Follower) error {
	return r.db.Create(follower).Error
}

func (r *postgresFollowerRepository) Exists(followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postgresFollowerRepository) GetByPair(followerID, followingID uuid.UUID) (*models.Follower, error) {
	var follower models.Follower
	if err := r.db.Preload("Following.Profile").
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follower).Error; err != nil {
		return nil, err
	}
	return &follower, nil
}

func (r *postgresFollowerRepository) Delete(followerID, followingID uuid.UUID) (int64, error) {
	res := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follower{})
	return res.RowsAffected, res.Error
}

func (r *postgresFollowerRepository) UpdateBell(followerID, followingID uuid.UUID, enabled bool) (int64, error) {
	res := r.db.Model(&models.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Update("bell_enabled", enabled)
	return res.RowsAffected, res.Error
}

func (r *postgresFollowerRepository) GetFollowing(followerID uuid.UUID) ([]models.Follower, error) {
	var followers []models.Follower
	err := r.db.Preload("Following.Profile").
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Find(&followers).Error
	return followers, err
}
