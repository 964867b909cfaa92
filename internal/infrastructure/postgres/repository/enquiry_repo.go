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

type DefaultEnquiryRepository struct {
	DB *gorm.DB
}

func NewDefaultEnquiryRepository(db *gorm.DB) *DefaultEnquiryRepository {
	return &DefaultEnquiryRepository{DB: db}
}

func (r *DefaultEnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	enquiryModel := mappers.ToGORMEnquiry(enquiry)
	if err := r.DB.WithContext(ctx).Create(enquiryModel).Error; err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}

func (r *DefaultEnquiryRepository) GetByID(ctx context.Context, enquiryID string) (*domain.Enquiry, error) {
	var enquiryModel models.EnquiryModel
	if err := r.DB.WithContext(ctx).First(&enquiryModel, "id = ?", enquiryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, err
	}
	return mappers.ToDomainEnquiry(&enquiryModel), nil
}

func (r *DefaultEnquiryRepository) List(ctx context.Context, filters domain.EnquiryFilters, page, limit int) ([]*domain.Enquiry, int64, error) {
	var enquiryModels []models.EnquiryModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.EnquiryModel{})

	if filters.ProductAssociateID != "" {
		baseQuery = baseQuery.Where("product_associate_id = ?", filters.ProductAssociateID)
	}
	if filters.MediatorAssociateID != "" {
		baseQuery = baseQuery.Where("mediator_associate_id = ?", filters.MediatorAssociateID)
	}
	if filters.StatusID != "" {
		baseQuery = baseQuery.Where("status_id = ?", filters.StatusID)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count enquiries: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&enquiryModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find enquiries: %w", err)
	}

	enquiries := make([]*domain.Enquiry, len(enquiryModels))
	for i, enquiryModel := range enquiryModels {
		enquiries[i] = mappers.ToDomainEnquiry(&enquiryModel)
	}
	return enquiries, total, nil
}

func (r *DefaultEnquiryRepository) Update(ctx context.Context, enquiryID string, update *domain.EnquiryUpdate) error {
	fields := map[string]interface{}{}
	if update.PhoneNumber != nil {
		fields["phone_number"] = *update.PhoneNumber
	}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.StatusID != nil {
		fields["status_id"] = *update.StatusID
	}
	if len(fields) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).
		Model(&models.EnquiryModel{}).
		Where("id = ?", enquiryID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update enquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEnquiryNotFound
	}
	return nil
}
