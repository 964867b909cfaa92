package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
)

type ProjectHandler struct {
	usecase   domain.ProjectStatusUsecase
	errLogger logger.ErrorEventLogger
}

func NewProjectHandler(uc domain.ProjectStatusUsecase, errLogger logger.ErrorEventLogger) *ProjectHandler {
	return &ProjectHandler{usecase: uc, errLogger: errLogger}
}

type projectResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CustomerID string    `json:"customer_id"`
	StatusID   string    `json:"status_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.usecase.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.errLogger, "project", err)
		return
	}
	c.JSON(http.StatusOK, projectResponse{
		ID:         project.ID,
		Title:      project.Title,
		CustomerID: project.CustomerID,
		StatusID:   project.StatusID,
		CreatedAt:  project.CreatedAt,
		UpdatedAt:  project.UpdatedAt,
	})
}
