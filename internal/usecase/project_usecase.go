package usecase

import (
	"context"
	"log/slog"

	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	publisher "github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/kafka"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/metrics"
)

type DefaultProjectStatusUsecase struct {
	ProjectRepo        domain.ProjectRepository
	ProjectStatusRepo  domain.ProjectStatusRepository
	ActivityRepo       domain.ActivityRepository
	ActivityStatusRepo domain.ActivityStatusRepository
	Publisher          domain.PublisherPort
	Metrics            *metrics.RateMetrics
}

func NewDefaultProjectStatusUsecase(
	projectRepo domain.ProjectRepository,
	projectStatusRepo domain.ProjectStatusRepository,
	activityRepo domain.ActivityRepository,
	activityStatusRepo domain.ActivityStatusRepository,
	pub domain.PublisherPort,
	rateMetrics *metrics.RateMetrics) *DefaultProjectStatusUsecase {

	return &DefaultProjectStatusUsecase{
		ProjectRepo:        projectRepo,
		ProjectStatusRepo:  projectStatusRepo,
		ActivityRepo:       activityRepo,
		ActivityStatusRepo: activityStatusRepo,
		Publisher:          pub,
		Metrics:            rateMetrics,
	}
}

// SyncProjectStatus re-derives a project's status from its activities.
//
// All-approved closes the project. Otherwise the suspended/blocked/open rules
// each issue their own status write; when a project has both suspended and
// blocked activities both writes fire and the blocked write wins. That
// multi-write behavior is intentional and mirrors the documented workflow.
func (uc *DefaultProjectStatusUsecase) SyncProjectStatus(ctx context.Context, activityID string) error {
	activity, err := uc.ActivityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}

	activities, err := uc.ActivityRepo.ListByProjectID(ctx, activity.ProjectID)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		return nil
	}

	statusNames, err := uc.activityStatusNames(ctx)
	if err != nil {
		return err
	}

	allApproved := true
	anySuspended := false
	anyBlocked := false
	for _, a := range activities {
		name := statusNames[a.StatusID]
		if name != domain.ActivityStatusApproved {
			allApproved = false
		}
		if name == domain.ActivityStatusSuspended {
			anySuspended = true
		}
		if name == domain.ActivityStatusBlocked {
			anyBlocked = true
		}
	}

	var finalStatus string
	if allApproved {
		if err := uc.writeProjectStatus(ctx, activity.ProjectID, domain.ProjectStatusClosed); err != nil {
			return err
		}
		finalStatus = domain.ProjectStatusClosed
	} else {
		if anySuspended {
			if err := uc.writeProjectStatus(ctx, activity.ProjectID, domain.ProjectStatusSuspended); err != nil {
				return err
			}
			finalStatus = domain.ProjectStatusSuspended
		}
		if anyBlocked {
			if err := uc.writeProjectStatus(ctx, activity.ProjectID, domain.ProjectStatusBlocked); err != nil {
				return err
			}
			finalStatus = domain.ProjectStatusBlocked
		}
		if !anySuspended && !anyBlocked {
			if err := uc.writeProjectStatus(ctx, activity.ProjectID, domain.ProjectStatusOpen); err != nil {
				return err
			}
			finalStatus = domain.ProjectStatusOpen
		}
	}

	uc.publishProjectEvent(activity.ProjectID, finalStatus)
	return nil
}

func (uc *DefaultProjectStatusUsecase) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return uc.ProjectRepo.GetByID(ctx, projectID)
}

func (uc *DefaultProjectStatusUsecase) writeProjectStatus(ctx context.Context, projectID, statusName string) error {
	status, err := uc.ProjectStatusRepo.GetByName(ctx, statusName)
	if err != nil {
		return err
	}
	if err := uc.ProjectRepo.UpdateStatus(ctx, projectID, status.ID); err != nil {
		return err
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordProjectStatus(statusName)
	}
	return nil
}

func (uc *DefaultProjectStatusUsecase) activityStatusNames(ctx context.Context) (map[string]string, error) {
	statuses, err := uc.ActivityStatusRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(statuses))
	for _, s := range statuses {
		names[s.ID] = s.Name
	}
	return names, nil
}

func (uc *DefaultProjectStatusUsecase) publishProjectEvent(projectID, status string) {
	if uc.Publisher == nil || status == "" {
		return
	}
	event := publisher.ProjectEvent{ProjectID: projectID, Status: status}
	if err := publisher.PublishProjectEvent(uc.Publisher, event); err != nil {
		slog.Error("failed to publish project event", "project_id", projectID, "status", status, "error", err.Error())
	}
}
