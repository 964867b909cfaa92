package mappers

import (
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
)

func ToDomainActivity(model *models.ActivityModel) *domain.Activity {
	return &domain.Activity{
		ID:                  model.ID,
		Title:               model.Title,
		ProjectID:           model.ProjectID,
		ActivityManagerID:   model.ActivityManagerID,
		CustomerID:          model.CustomerID,
		TypeID:              model.TypeID,
		StatusID:            model.StatusID,
		PreviousStatusID:    model.PreviousStatusID,
		ForecastDate:        model.ForecastDate,
		ActualDate:          model.ActualDate,
		TargetOperationDate: model.TargetOperationDate,
		TargetFinanceDate:   model.TargetFinanceDate,
		HoursSpent:          model.HoursSpent,
		WorkerIDs:           model.WorkerIDs,
		RejectionReasons:    model.RejectionReasons,
		IsDeleted:           model.IsDeleted,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMActivity(activity *domain.Activity) *models.ActivityModel {
	return &models.ActivityModel{
		ID:                  activity.ID,
		Title:               activity.Title,
		ProjectID:           activity.ProjectID,
		ActivityManagerID:   activity.ActivityManagerID,
		CustomerID:          activity.CustomerID,
		TypeID:              activity.TypeID,
		StatusID:            activity.StatusID,
		PreviousStatusID:    activity.PreviousStatusID,
		ForecastDate:        activity.ForecastDate,
		ActualDate:          activity.ActualDate,
		TargetOperationDate: activity.TargetOperationDate,
		TargetFinanceDate:   activity.TargetFinanceDate,
		HoursSpent:          activity.HoursSpent,
		WorkerIDs:           activity.WorkerIDs,
		RejectionReasons:    activity.RejectionReasons,
		IsDeleted:           activity.IsDeleted,
		CreatedAt:           activity.CreatedAt,
		UpdatedAt:           activity.UpdatedAt,
	}
}

func ToDomainActivityStatus(model *models.ActivityStatusModel) *domain.ActivityStatus {
	return &domain.ActivityStatus{ID: model.ID, Name: model.Name}
}

func ToDomainProject(model *models.ProjectModel) *domain.Project {
	return &domain.Project{
		ID:         model.ID,
		Title:      model.Title,
		CustomerID: model.CustomerID,
		StatusID:   model.StatusID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToDomainProjectStatus(model *models.ProjectStatusModel) *domain.ProjectStatus {
	return &domain.ProjectStatus{ID: model.ID, Name: model.Name}
}
