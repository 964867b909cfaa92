package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http/middleware"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
	ratedto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/rate"
)

type VariantRateHandler struct {
	usecase   domain.VariantRateUsecase
	errLogger logger.ErrorEventLogger
}

func NewVariantRateHandler(uc domain.VariantRateUsecase, errLogger logger.ErrorEventLogger) *VariantRateHandler {
	return &VariantRateHandler{usecase: uc, errLogger: errLogger}
}

type createVariantRateRequest struct {
	ProductVariantID string   `json:"product_variant_id" binding:"required"`
	AssociateID      string   `json:"associate_id" binding:"required"`
	Rate             float64  `json:"rate" binding:"required"`
	Commission       float64  `json:"commission"`
	DurationDays     int      `json:"duration_days"`
	IsLive           bool     `json:"is_live"`
	Selected         bool     `json:"selected"`
	Tags             []string `json:"tags"`
	StateID          string   `json:"state_id"`
	DistrictID       string   `json:"district_id"`
	DivisionID       string   `json:"division_id"`
	PincodeEntryID   string   `json:"pincode_entry_id"`
}

type updateVariantRateRequest struct {
	Rate             *float64 `json:"rate"`
	Commission       *float64 `json:"commission"`
	DurationDays     *int     `json:"duration_days"`
	IsLive           *bool    `json:"is_live"`
	Selected         *bool    `json:"selected"`
	AssociateID      *string  `json:"associate_id"`
	ProductVariantID *string  `json:"product_variant_id"`
	Tags             []string `json:"tags"`
}

func (h *VariantRateHandler) Create(c *gin.Context) {
	var req createVariantRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	caller := middleware.CallerIdentity(c)
	output, err := h.usecase.CreateVariantRate(c.Request.Context(), caller, &ratedto.CreateVariantRateInput{
		ProductVariantID: req.ProductVariantID,
		AssociateID:      req.AssociateID,
		Rate:             req.Rate,
		Commission:       req.Commission,
		DurationDays:     req.DurationDays,
		IsLive:           req.IsLive,
		Selected:         req.Selected,
		Tags:             req.Tags,
		StateID:          req.StateID,
		DistrictID:       req.DistrictID,
		DivisionID:       req.DivisionID,
		PincodeEntryID:   req.PincodeEntryID,
	})
	if err != nil {
		respondError(c, h.errLogger, "variant_rate", err)
		return
	}
	c.JSON(http.StatusCreated, output)
}

func (h *VariantRateHandler) GetByID(c *gin.Context) {
	viewer := middleware.CallerIdentity(c)
	output, err := h.usecase.GetVariantRateByID(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, h.errLogger, "variant_rate", err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *VariantRateHandler) List(c *gin.Context) {
	input := &ratedto.ListVariantRatesInput{
		AssociateID:          c.Query("associate_id"),
		AssociateCompanyName: c.Query("associate_company"),
		Product:              c.Query("product"),
		SubCategory:          c.Query("sub_category"),
		IsLive:               queryBool(c, "is_live"),
		Selected:             queryBool(c, "selected"),
		DateFrom:             queryTime(c, "date_from"),
		DateTo:               queryTime(c, "date_to"),
		Page:                 queryInt(c, "page"),
		Limit:                queryInt(c, "limit"),
	}

	viewer := middleware.CallerIdentity(c)
	output, err := h.usecase.GetVariantRates(c.Request.Context(), viewer, input)
	if err != nil {
		respondError(c, h.errLogger, "variant_rate", err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *VariantRateHandler) Update(c *gin.Context) {
	var req updateVariantRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	caller := middleware.CallerIdentity(c)
	output, err := h.usecase.UpdateVariantRate(c.Request.Context(), caller, c.Param("id"), &ratedto.UpdateVariantRateInput{
		Rate:             req.Rate,
		Commission:       req.Commission,
		DurationDays:     req.DurationDays,
		IsLive:           req.IsLive,
		Selected:         req.Selected,
		AssociateID:      req.AssociateID,
		ProductVariantID: req.ProductVariantID,
		Tags:             req.Tags,
	})
	if err != nil {
		respondError(c, h.errLogger, "variant_rate", err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *VariantRateHandler) Delete(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	if err := h.usecase.DeleteVariantRate(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, h.errLogger, "variant_rate", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func queryBool(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func queryTime(c *gin.Context, key string) time.Time {
	v, err := time.Parse(time.RFC3339, c.Query(key))
	if err != nil {
		return time.Time{}
	}
	return v
}
