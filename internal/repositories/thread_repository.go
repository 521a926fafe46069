package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

// ThreadRepository resolves the threads referenced by grouped notifications.
type ThreadRepository interface {
	GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Thread, error)
}

type postgresThreadRepository struct {
	db *gorm.DB
}

func NewPostgresThreadRepository(db *gorm.DB) ThreadRepository {
	return &postgresThreadRepository{db: db}
}

func (r *postgresThreadRepository) GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Thread, error) {
	result := make(map[uuid.UUID]models.Thread, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var threads []models.Thread
	if err := r.db.Where("id IN ?", ids).Find(&threads).Error; err != nil {
		return nil, err
	}
	for _, t := range threads {
		result[t.ID] = t
	}
	return result, nil
}
