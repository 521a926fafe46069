package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

// CommentRepository resolves the comments referenced by grouped notifications.
type CommentRepository interface {
	GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Comment, error)
}

type postgresCommentRepository struct {
	db *gorm.DB
}

func NewPostgresCommentRepository(db *gorm.DB) CommentRepository {
	return &postgresCommentRepository{db: db}
}

func (r *postgresCommentRepository) GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Comment, error) {
	result := make(map[uuid.UUID]models.Comment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var comments []models.Comment
	if err := r.db.Where("id IN ?", ids).Find(&comments).Error; err != nil {
		return nil, err
	}
	for _, c := range comments {
		result[c.ID] = c
	}
	return result, nil
}
