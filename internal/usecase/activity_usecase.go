package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/metrics"
	activitydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/activity"
)

type DefaultActivityUsecase struct {
	ActivityRepo domain.ActivityRepository
	StatusRepo   domain.ActivityStatusRepository
	StatusCache  domain.StatusCache
	ProjectSync  domain.ProjectStatusUsecase
	Metrics      *metrics.RateMetrics

	titleCode func() string
}

func NewDefaultActivityUsecase(
	activityRepo domain.ActivityRepository,
	statusRepo domain.ActivityStatusRepository,
	statusCache domain.StatusCache,
	projectSync domain.ProjectStatusUsecase,
	rateMetrics *metrics.RateMetrics) *DefaultActivityUsecase {

	titleCode, err := nanoid.CustomASCII("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", 8)
	if err != nil {
		log.Fatalf("failed to init activity title generator: %v", err)
	}

	return &DefaultActivityUsecase{
		ActivityRepo: activityRepo,
		StatusRepo:   statusRepo,
		StatusCache:  statusCache,
		ProjectSync:  projectSync,
		Metrics:      rateMetrics,
		titleCode:    titleCode,
	}
}

func (uc *DefaultActivityUsecase) CreateActivity(ctx context.Context, caller domain.Identity, input *activitydto.CreateActivityInput) (*domain.Activity, error) {
	if input.ProjectID == "" {
		return nil, domain.NewValidationError("project is required")
	}

	now := time.Now()
	activity := &domain.Activity{
		ID:                  uuid.NewString(),
		Title:               "ACT-" + uc.titleCode(),
		ProjectID:           input.ProjectID,
		ActivityManagerID:   input.ActivityManagerID,
		CustomerID:          input.CustomerID,
		TypeID:              input.TypeID,
		ForecastDate:        input.ForecastDate,
		ActualDate:          input.ActualDate,
		TargetOperationDate: input.TargetOperationDate,
		TargetFinanceDate:   input.TargetFinanceDate,
		HoursSpent:          input.HoursSpent,
		WorkerIDs:           input.WorkerIDs,
		RejectionReasons:    input.RejectionReasons,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	outcome := deriveActivityStatus(statusContext{
		merged:    activity,
		requested: input.Status,
		role:      caller.Role,
	})
	statusID, statusName, err := uc.resolveOutcome(ctx, outcome, activity)
	if err != nil {
		return nil, err
	}
	activity.StatusID = statusID

	if err := uc.ActivityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordActivityStatus(statusName)
	}
	return activity, nil
}

func (uc *DefaultActivityUsecase) GetActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	return uc.ActivityRepo.GetByID(ctx, activityID)
}

// UpdateActivity merges the patch over the stored activity, re-derives the
// status against the full context, and propagates the result to the owning
// project.
func (uc *DefaultActivityUsecase) UpdateActivity(ctx context.Context, caller domain.Identity, activityID string, input *activitydto.UpdateActivityInput) (*domain.Activity, error) {
	current, err := uc.ActivityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	merged := mergeActivity(current, input)
	outcome := deriveActivityStatus(statusContext{
		merged:    merged,
		requested: input.Status,
		unblock:   input.Unblock,
		role:      caller.Role,
	})
	statusID, statusName, err := uc.resolveOutcome(ctx, outcome, current)
	if err != nil {
		return nil, err
	}

	update := &domain.ActivityUpdate{
		ActivityManagerID:   input.ActivityManagerID,
		CustomerID:          input.CustomerID,
		TypeID:              input.TypeID,
		ForecastDate:        input.ForecastDate,
		ActualDate:          input.ActualDate,
		TargetOperationDate: input.TargetOperationDate,
		TargetFinanceDate:   input.TargetFinanceDate,
		HoursSpent:          input.HoursSpent,
		WorkerIDs:           input.WorkerIDs,
		RejectionReasons:    input.RejectionReasons,
	}
	if statusID != current.StatusID {
		// Keep the old status around so an admin unblock can restore it.
		previous := current.StatusID
		update.StatusID = &statusID
		update.PreviousStatusID = &previous
	}

	if err := uc.ActivityRepo.Update(ctx, activityID, update); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordActivityStatus(statusName)
	}

	if uc.ProjectSync != nil {
		if err := uc.ProjectSync.SyncProjectStatus(ctx, activityID); err != nil {
			return nil, err
		}
	}

	return uc.ActivityRepo.GetByID(ctx, activityID)
}

func (uc *DefaultActivityUsecase) DeleteActivity(ctx context.Context, caller domain.Identity, activityID string) error {
	if _, err := uc.ActivityRepo.GetByID(ctx, activityID); err != nil {
		return err
	}
	return uc.ActivityRepo.SoftDelete(ctx, activityID)
}

// resolveOutcome turns a derivation outcome into a status id: either the
// stored previousStatus, or a name resolved through the memoizing cache.
func (uc *DefaultActivityUsecase) resolveOutcome(ctx context.Context, outcome statusOutcome, current *domain.Activity) (string, string, error) {
	if outcome.usePrevious {
		if current.PreviousStatusID == "" {
			return "", "", domain.NewValidationError("activity %s has no previous status to restore", current.ID)
		}
		return current.PreviousStatusID, "previous", nil
	}
	id, err := uc.resolveStatusID(ctx, outcome.label)
	if err != nil {
		return "", "", err
	}
	return id, outcome.label, nil
}

func (uc *DefaultActivityUsecase) resolveStatusID(ctx context.Context, name string) (string, error) {
	if id, ok := uc.StatusCache.Get(name); ok {
		return id, nil
	}
	status, err := uc.StatusRepo.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	uc.StatusCache.Set(name, status.ID)
	return status.ID, nil
}
