package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/mappers"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultVariantRateRepository struct {
	DB *gorm.DB
}

func NewDefaultVariantRateRepository(db *gorm.DB) *DefaultVariantRateRepository {
	return &DefaultVariantRateRepository{DB: db}
}

func (r *DefaultVariantRateRepository) Create(ctx context.Context, rate *domain.VariantRate) error {
	rateModel := mappers.ToGORMVariantRate(rate)
	if err := r.DB.WithContext(ctx).Create(rateModel).Error; err != nil {
		return fmt.Errorf("failed to create variant rate: %w", err)
	}
	return nil
}

func (r *DefaultVariantRateRepository) GetByID(ctx context.Context, rateID string) (*domain.VariantRate, error) {
	var rateModel models.VariantRateModel
	if err := r.DB.WithContext(ctx).First(&rateModel, "id = ?", rateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVariantRateNotFound
		}
		return nil, err
	}
	return mappers.ToDomainVariantRate(&rateModel), nil
}

func (r *DefaultVariantRateRepository) Update(ctx context.Context, rateID string, update *domain.VariantRateUpdate) error {
	fields := map[string]interface{}{}
	if update.Rate != nil {
		fields["rate"] = *update.Rate
	}
	if update.Commission != nil {
		fields["commission"] = *update.Commission
	}
	if update.DurationDays != nil {
		fields["duration_days"] = *update.DurationDays
	}
	if update.IsLive != nil {
		fields["is_live"] = *update.IsLive
	}
	if update.Selected != nil {
		fields["selected"] = *update.Selected
	}
	if update.AssociateID != nil {
		fields["associate_id"] = *update.AssociateID
	}
	if update.AssociateCompanyID != nil {
		fields["associate_company_id"] = *update.AssociateCompanyID
	}
	if update.ProductVariantID != nil {
		fields["product_variant_id"] = *update.ProductVariantID
	}
	if update.Tags != nil {
		fields["tags"] = pq.StringArray(update.Tags)
	}
	if update.LastEditTime != nil {
		fields["last_edit_time"] = *update.LastEditTime
	}
	if update.CoolingStartTime != nil {
		fields["cooling_start_time"] = *update.CoolingStartTime
	}
	if update.LastLiveAt != nil {
		fields["last_live_at"] = *update.LastLiveAt
	}
	if len(fields) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).
		Model(&models.VariantRateModel{}).
		Where("id = ?", rateID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update variant rate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVariantRateNotFound
	}
	return nil
}

func (r *DefaultVariantRateRepository) List(ctx context.Context, filters domain.VariantRateFilters, page, limit int) ([]*domain.VariantRate, int64, error) {
	var rateModels []models.VariantRateModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.VariantRateModel{})

	if filters.AssociateID != "" {
		baseQuery = baseQuery.Where("associate_id = ?", filters.AssociateID)
	}
	if filters.AssociateCompanyIDs != nil {
		baseQuery = baseQuery.Where("associate_company_id IN (?)", filters.AssociateCompanyIDs)
	}
	if filters.ProductVariantIDs != nil {
		baseQuery = baseQuery.Where("product_variant_id IN (?)", filters.ProductVariantIDs)
	}
	if filters.IsLive != nil {
		baseQuery = baseQuery.Where("is_live = ?", *filters.IsLive)
	}
	if filters.Selected != nil {
		baseQuery = baseQuery.Where("selected = ?", *filters.Selected)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count variant rates: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rateModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find variant rates: %w", err)
	}

	rates := make([]*domain.VariantRate, len(rateModels))
	for i, rateModel := range rateModels {
		rates[i] = mappers.ToDomainVariantRate(&rateModel)
	}
	return rates, total, nil
}

func (r *DefaultVariantRateRepository) Delete(ctx context.Context, rateID string) error {
	result := r.DB.WithContext(ctx).Delete(&models.VariantRateModel{}, "id = ?", rateID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete variant rate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVariantRateNotFound
	}
	return nil
}

// FindExpiredLive selects live rates whose window of duration_days since
// last_live_at has lapsed. Rates with a NULL last_live_at are never expired.
func (r *DefaultVariantRateRepository) FindExpiredLive(ctx context.Context, now time.Time) ([]*domain.VariantRate, error) {
	var rateModels []models.VariantRateModel
	err := r.DB.WithContext(ctx).
		Where("is_live = ?", true).
		Where("last_live_at IS NOT NULL").
		Where("last_live_at + make_interval(days => duration_days) < ?", now).
		Find(&rateModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired rates: %w", err)
	}

	rates := make([]*domain.VariantRate, len(rateModels))
	for i, rateModel := range rateModels {
		rates[i] = mappers.ToDomainVariantRate(&rateModel)
	}
	return rates, nil
}
