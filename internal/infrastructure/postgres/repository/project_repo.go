package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/mappers"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProjectRepository struct {
	DB *gorm.DB
}

func NewDefaultProjectRepository(db *gorm.DB) *DefaultProjectRepository {
	return &DefaultProjectRepository{DB: db}
}

func (r *DefaultProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var projectModel models.ProjectModel
	if err := r.DB.WithContext(ctx).First(&projectModel, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProject(&projectModel), nil
}

func (r *DefaultProjectRepository) UpdateStatus(ctx context.Context, projectID, statusID string) error {
	result := r.DB.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("id = ?", projectID).
		Update("status_id", statusID)
	if result.Error != nil {
		return fmt.Errorf("failed to update project status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
