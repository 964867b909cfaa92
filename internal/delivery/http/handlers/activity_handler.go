package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http/middleware"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
	activitydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/activity"
)

type ActivityHandler struct {
	usecase   domain.ActivityUsecase
	errLogger logger.ErrorEventLogger
}

func NewActivityHandler(uc domain.ActivityUsecase, errLogger logger.ErrorEventLogger) *ActivityHandler {
	return &ActivityHandler{usecase: uc, errLogger: errLogger}
}

type createActivityRequest struct {
	ProjectID           string     `json:"project_id" binding:"required"`
	ActivityManagerID   string     `json:"activity_manager_id"`
	CustomerID          string     `json:"customer_id"`
	TypeID              string     `json:"type_id"`
	Status              string     `json:"status"`
	ForecastDate        *time.Time `json:"forecast_date"`
	ActualDate          *time.Time `json:"actual_date"`
	TargetOperationDate *time.Time `json:"target_operation_date"`
	TargetFinanceDate   *time.Time `json:"target_finance_date"`
	HoursSpent          float64    `json:"hours_spent"`
	WorkerIDs           []string   `json:"worker_ids"`
	RejectionReasons    []string   `json:"rejection_reasons"`
}

type updateActivityRequest struct {
	ActivityManagerID   *string    `json:"activity_manager_id"`
	CustomerID          *string    `json:"customer_id"`
	TypeID              *string    `json:"type_id"`
	Status              string     `json:"status"`
	Unblock             bool       `json:"unblock"`
	ForecastDate        *time.Time `json:"forecast_date"`
	ActualDate          *time.Time `json:"actual_date"`
	TargetOperationDate *time.Time `json:"target_operation_date"`
	TargetFinanceDate   *time.Time `json:"target_finance_date"`
	HoursSpent          *float64   `json:"hours_spent"`
	WorkerIDs           []string   `json:"worker_ids"`
	RejectionReasons    []string   `json:"rejection_reasons"`
}

func toActivityOutput(activity *domain.Activity) *activitydto.ActivityOutput {
	return &activitydto.ActivityOutput{
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
		CreatedAt:           activity.CreatedAt,
		UpdatedAt:           activity.UpdatedAt,
	}
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	caller := middleware.CallerIdentity(c)
	activity, err := h.usecase.CreateActivity(c.Request.Context(), caller, &activitydto.CreateActivityInput{
		ProjectID:           req.ProjectID,
		ActivityManagerID:   req.ActivityManagerID,
		CustomerID:          req.CustomerID,
		TypeID:              req.TypeID,
		Status:              req.Status,
		ForecastDate:        req.ForecastDate,
		ActualDate:          req.ActualDate,
		TargetOperationDate: req.TargetOperationDate,
		TargetFinanceDate:   req.TargetFinanceDate,
		HoursSpent:          req.HoursSpent,
		WorkerIDs:           req.WorkerIDs,
		RejectionReasons:    req.RejectionReasons,
	})
	if err != nil {
		respondError(c, h.errLogger, "activity", err)
		return
	}
	c.JSON(http.StatusCreated, toActivityOutput(activity))
}

func (h *ActivityHandler) GetByID(c *gin.Context) {
	activity, err := h.usecase.GetActivityByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.errLogger, "activity", err)
		return
	}
	c.JSON(http.StatusOK, toActivityOutput(activity))
}

func (h *ActivityHandler) Update(c *gin.Context) {
	var req updateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	caller := middleware.CallerIdentity(c)
	activity, err := h.usecase.UpdateActivity(c.Request.Context(), caller, c.Param("id"), &activitydto.UpdateActivityInput{
		ActivityManagerID:   req.ActivityManagerID,
		CustomerID:          req.CustomerID,
		TypeID:              req.TypeID,
		Status:              req.Status,
		Unblock:             req.Unblock,
		ForecastDate:        req.ForecastDate,
		ActualDate:          req.ActualDate,
		TargetOperationDate: req.TargetOperationDate,
		TargetFinanceDate:   req.TargetFinanceDate,
		HoursSpent:          req.HoursSpent,
		WorkerIDs:           req.WorkerIDs,
		RejectionReasons:    req.RejectionReasons,
	})
	if err != nil {
		respondError(c, h.errLogger, "activity", err)
		return
	}
	c.JSON(http.StatusOK, toActivityOutput(activity))
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	if err := h.usecase.DeleteActivity(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, h.errLogger, "activity", err)
		return
	}
	c.Status(http.StatusNoContent)
}
