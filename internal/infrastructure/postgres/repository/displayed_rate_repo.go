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

type DefaultDisplayedRateRepository struct {
	DB *gorm.DB
}

func NewDefaultDisplayedRateRepository(db *gorm.DB) *DefaultDisplayedRateRepository {
	return &DefaultDisplayedRateRepository{DB: db}
}

func (r *DefaultDisplayedRateRepository) Create(ctx context.Context, rate *domain.DisplayedRate) error {
	rateModel := mappers.ToGORMDisplayedRate(rate)
	if err := r.DB.WithContext(ctx).Create(rateModel).Error; err != nil {
		return fmt.Errorf("failed to create displayed rate: %w", err)
	}
	return nil
}

func (r *DefaultDisplayedRateRepository) GetByID(ctx context.Context, rateID string) (*domain.DisplayedRate, error) {
	var rateModel models.DisplayedRateModel
	if err := r.DB.WithContext(ctx).First(&rateModel, "id = ?", rateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisplayedRateNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDisplayedRate(&rateModel), nil
}

func (r *DefaultDisplayedRateRepository) List(ctx context.Context, filters domain.DisplayedRateFilters, page, limit int) ([]*domain.DisplayedRate, int64, error) {
	var rateModels []models.DisplayedRateModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.DisplayedRateModel{})

	if filters.AssociateID != "" {
		baseQuery = baseQuery.Where("displayed_rate_models.associate_id = ?", filters.AssociateID)
	}
	if filters.AssociateCompanyIDs != nil {
		baseQuery = baseQuery.Where("displayed_rate_models.associate_company_id IN (?)", filters.AssociateCompanyIDs)
	}
	if filters.Selected != nil {
		baseQuery = baseQuery.Where("displayed_rate_models.selected = ?", *filters.Selected)
	}
	if filters.ProductVariantIDs != nil {
		baseQuery = baseQuery.
			Joins("JOIN variant_rate_models ON displayed_rate_models.variant_rate_id = variant_rate_models.id").
			Where("variant_rate_models.product_variant_id IN (?)", filters.ProductVariantIDs)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count displayed rates: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("displayed_rate_models.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rateModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find displayed rates: %w", err)
	}

	rates := make([]*domain.DisplayedRate, len(rateModels))
	for i, rateModel := range rateModels {
		rates[i] = mappers.ToDomainDisplayedRate(&rateModel)
	}
	return rates, total, nil
}

func (r *DefaultDisplayedRateRepository) Delete(ctx context.Context, rateID string) error {
	result := r.DB.WithContext(ctx).Delete(&models.DisplayedRateModel{}, "id = ?", rateID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete displayed rate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDisplayedRateNotFound
	}
	return nil
}
