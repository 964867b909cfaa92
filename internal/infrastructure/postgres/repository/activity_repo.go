package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/mappers"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultActivityRepository struct {
	DB *gorm.DB
}

func NewDefaultActivityRepository(db *gorm.DB) *DefaultActivityRepository {
	return &DefaultActivityRepository{DB: db}
}

func (r *DefaultActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	activityModel := mappers.ToGORMActivity(activity)
	if err := r.DB.WithContext(ctx).Create(activityModel).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

func (r *DefaultActivityRepository) GetByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	var activityModel models.ActivityModel
	err := r.DB.WithContext(ctx).
		First(&activityModel, "id = ? AND is_deleted = ?", activityID, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return mappers.ToDomainActivity(&activityModel), nil
}

func (r *DefaultActivityRepository) Update(ctx context.Context, activityID string, update *domain.ActivityUpdate) error {
	fields := map[string]interface{}{}
	if update.ActivityManagerID != nil {
		fields["activity_manager_id"] = *update.ActivityManagerID
	}
	if update.CustomerID != nil {
		fields["customer_id"] = *update.CustomerID
	}
	if update.TypeID != nil {
		fields["type_id"] = *update.TypeID
	}
	if update.StatusID != nil {
		fields["status_id"] = *update.StatusID
	}
	if update.PreviousStatusID != nil {
		fields["previous_status_id"] = *update.PreviousStatusID
	}
	if update.ForecastDate != nil {
		fields["forecast_date"] = *update.ForecastDate
	}
	if update.ActualDate != nil {
		fields["actual_date"] = *update.ActualDate
	}
	if update.TargetOperationDate != nil {
		fields["target_operation_date"] = *update.TargetOperationDate
	}
	if update.TargetFinanceDate != nil {
		fields["target_finance_date"] = *update.TargetFinanceDate
	}
	if update.HoursSpent != nil {
		fields["hours_spent"] = *update.HoursSpent
	}
	if update.WorkerIDs != nil {
		fields["worker_ids"] = pq.StringArray(update.WorkerIDs)
	}
	if update.RejectionReasons != nil {
		fields["rejection_reasons"] = pq.StringArray(update.RejectionReasons)
	}
	if len(fields) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).
		Model(&models.ActivityModel{}).
		Where("id = ? AND is_deleted = ?", activityID, false).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *DefaultActivityRepository) ListByProjectID(ctx context.Context, projectID string) ([]*domain.Activity, error) {
	var activityModels []models.ActivityModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("created_at ASC").
		Find(&activityModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}

	activities := make([]*domain.Activity, len(activityModels))
	for i, activityModel := range activityModels {
		activities[i] = mappers.ToDomainActivity(&activityModel)
	}
	return activities, nil
}

func (r *DefaultActivityRepository) SoftDelete(ctx context.Context, activityID string) error {
	result := r.DB.WithContext(ctx).
		Model(&models.ActivityModel{}).
		Where("id = ? AND is_deleted = ?", activityID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}
