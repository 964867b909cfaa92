package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http/middleware"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
	enquirydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/enquiry"
)

type EnquiryHandler struct {
	usecase   domain.EnquiryUsecase
	errLogger logger.ErrorEventLogger
}

func NewEnquiryHandler(uc domain.EnquiryUsecase, errLogger logger.ErrorEventLogger) *EnquiryHandler {
	return &EnquiryHandler{usecase: uc, errLogger: errLogger}
}

type createEnquiryRequest struct {
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Name          string `json:"name" binding:"required"`
	VariantRateID string `json:"variant_rate_id" binding:"required"`
	DisplayRateID string `json:"display_rate_id"`
	StatusName    string `json:"status"`
}

type updateEnquiryRequest struct {
	PhoneNumber *string `json:"phone_number"`
	Name        *string `json:"name"`
	StatusName  string  `json:"status"`
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	caller := middleware.CallerIdentity(c)
	output, err := h.usecase.CreateEnquiry(c.Request.Context(), caller, &enquirydto.CreateEnquiryInput{
		PhoneNumber:   req.PhoneNumber,
		Name:          req.Name,
		VariantRateID: req.VariantRateID,
		DisplayRateID: req.DisplayRateID,
		StatusName:    req.StatusName,
	})
	if err != nil {
		respondError(c, h.errLogger, "enquiry", err)
		return
	}
	c.JSON(http.StatusCreated, output)
}

func (h *EnquiryHandler) GetByID(c *gin.Context) {
	viewer := middleware.CallerIdentity(c)
	output, err := h.usecase.GetEnquiryByID(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, h.errLogger, "enquiry", err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *EnquiryHandler) List(c *gin.Context) {
	input := &enquirydto.ListEnquiriesInput{
		ProductAssociateID:  c.Query("product_associate_id"),
		MediatorAssociateID: c.Query("mediator_associate_id"),
		StatusID:            c.Query("status_id"),
		DateFrom:            queryTime(c, "date_from"),
		DateTo:              queryTime(c, "date_to"),
		Page:                queryInt(c, "page"),
		Limit:               queryInt(c, "limit"),
	}

	viewer := middleware.CallerIdentity(c)
	output, err := h.usecase.GetEnquiries(c.Request.Context(), viewer, input)
	if err != nil {
		respondError(c, h.errLogger, "enquiry", err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *EnquiryHandler) Update(c *gin.Context) {
	var req updateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	caller := middleware.CallerIdentity(c)
	output, err := h.usecase.UpdateEnquiry(c.Request.Context(), caller, c.Param("id"), &enquirydto.UpdateEnquiryInput{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		StatusName:  req.StatusName,
	})
	if err != nil {
		respondError(c, h.errLogger, "enquiry", err)
		return
	}
	c.JSON(http.StatusOK, output)
}
