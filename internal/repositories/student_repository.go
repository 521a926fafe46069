package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

// StudentRepository defines the read surface this service needs over
// student identities.
type StudentRepository interface {
	GetByID(id uuid.UUID) (*models.Student, error)
	UpdateFCMToken(id uuid.UUID, token string) error
}

type postgresStudentRepository struct {
	db *gorm.DB
}

func NewPostgresStudentRepository(db *gorm.DB) StudentRepository {
	return &postgresStudentRepository{db: db}
}

func (r *postgresStudentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	if err := r.db.Preload("Profile").First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *postgresStudentRepository) UpdateFCMToken(id uuid.UUID, token string) error {
	return r.db.Model(&models.Student{}).Where("id = ?", id).Update("fcm_token", token).Error
}
