package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http/middleware"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
	ratedto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/rate"
)

type DisplayedRateHandler struct {
	usecase   domain.DisplayedRateUsecase
	errLogger logger.ErrorEventLogger
}

func NewDisplayedRateHandler(uc domain.DisplayedRateUsecase, errLogger logger.ErrorEventLogger) *DisplayedRateHandler {
	return &DisplayedRateHandler{usecase: uc, errLogger: errLogger}
}

type createDisplayedRateRequest struct {
	VariantRateID string  `json:"variant_rate_id" binding:"required"`
	AssociateID   string  `json:"associate_id" binding:"required"`
	Commission    float64 `json:"commission"`
	Selected      bool    `json:"selected"`
}

func (h *DisplayedRateHandler) Create(c *gin.Context) {
	var req createDisplayedRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	caller := middleware.CallerIdentity(c)
	output, err := h.usecase.CreateDisplayedRate(c.Request.Context(), caller, &ratedto.CreateDisplayedRateInput{
		VariantRateID: req.VariantRateID,
		AssociateID:   req.AssociateID,
		Commission:    req.Commission,
		Selected:      req.Selected,
	})
	if err != nil {
		respondError(c, h.errLogger, "displayed_rate", err)
		return
	}
	c.JSON(http.StatusCreated, output)
}

func (h *DisplayedRateHandler) List(c *gin.Context) {
	input := &ratedto.ListDisplayedRatesInput{
		AssociateID:          c.Query("associate_id"),
		AssociateCompanyName: c.Query("associate_company"),
		Product:              c.Query("product"),
		SubCategory:          c.Query("sub_category"),
		Selected:             queryBool(c, "selected"),
		Page:                 queryInt(c, "page"),
		Limit:                queryInt(c, "limit"),
	}

	viewer := middleware.CallerIdentity(c)
	output, err := h.usecase.GetDisplayedRates(c.Request.Context(), viewer, input)
	if err != nil {
		respondError(c, h.errLogger, "displayed_rate", err)
		return
	}
	c.JSON(http.StatusOK, output)
}
