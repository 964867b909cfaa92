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

// Status lookups back the name-to-id resolution in the status derivers. The
// tables hold seeded reference rows and are effectively immutable at runtime.

type DefaultActivityStatusRepository struct {
	DB *gorm.DB
}

func NewDefaultActivityStatusRepository(db *gorm.DB) *DefaultActivityStatusRepository {
	return &DefaultActivityStatusRepository{DB: db}
}

func (r *DefaultActivityStatusRepository) GetByName(ctx context.Context, name string) (*domain.ActivityStatus, error) {
	var statusModel models.ActivityStatusModel
	if err := r.DB.WithContext(ctx).First(&statusModel, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, err
	}
	return mappers.ToDomainActivityStatus(&statusModel), nil
}

func (r *DefaultActivityStatusRepository) List(ctx context.Context) ([]*domain.ActivityStatus, error) {
	var statusModels []models.ActivityStatusModel
	if err := r.DB.WithContext(ctx).Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity statuses: %w", err)
	}

	statuses := make([]*domain.ActivityStatus, len(statusModels))
	for i, statusModel := range statusModels {
		statuses[i] = mappers.ToDomainActivityStatus(&statusModel)
	}
	return statuses, nil
}

type DefaultProjectStatusRepository struct {
	DB *gorm.DB
}

func NewDefaultProjectStatusRepository(db *gorm.DB) *DefaultProjectStatusRepository {
	return &DefaultProjectStatusRepository{DB: db}
}

func (r *DefaultProjectStatusRepository) GetByName(ctx context.Context, name string) (*domain.ProjectStatus, error) {
	var statusModel models.ProjectStatusModel
	if err := r.DB.WithContext(ctx).First(&statusModel, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProjectStatus(&statusModel), nil
}

type DefaultEnquiryStatusRepository struct {
	DB *gorm.DB
}

func NewDefaultEnquiryStatusRepository(db *gorm.DB) *DefaultEnquiryStatusRepository {
	return &DefaultEnquiryStatusRepository{DB: db}
}

func (r *DefaultEnquiryStatusRepository) GetByName(ctx context.Context, name string) (*domain.EnquiryProcessStatus, error) {
	var statusModel models.EnquiryProcessStatusModel
	if err := r.DB.WithContext(ctx).First(&statusModel, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, err
	}
	return &domain.EnquiryProcessStatus{ID: statusModel.ID, Name: statusModel.Name}, nil
}
