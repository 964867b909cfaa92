package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	publisher "github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/kafka"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/metrics"
	enquirydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/enquiry"
)

type DefaultEnquiryUsecase struct {
	EnquiryRepo   domain.EnquiryRepository
	RateRepo      domain.VariantRateRepository
	DisplayedRepo domain.DisplayedRateRepository
	StatusRepo    domain.EnquiryStatusRepository
	Publisher     domain.PublisherPort
	Metrics       *metrics.RateMetrics
}

func NewDefaultEnquiryUsecase(
	enquiryRepo domain.EnquiryRepository,
	rateRepo domain.VariantRateRepository,
	displayedRepo domain.DisplayedRateRepository,
	statusRepo domain.EnquiryStatusRepository,
	pub domain.PublisherPort,
	rateMetrics *metrics.RateMetrics) *DefaultEnquiryUsecase {

	return &DefaultEnquiryUsecase{
		EnquiryRepo:   enquiryRepo,
		RateRepo:      rateRepo,
		DisplayedRepo: displayedRepo,
		StatusRepo:    statusRepo,
		Publisher:     pub,
		Metrics:       rateMetrics,
	}
}

// CreateEnquiry freezes the pricing of the referenced rates onto the enquiry.
// The snapshot is taken exactly once; later edits to the source rates never
// change what this enquiry stores.
func (uc *DefaultEnquiryUsecase) CreateEnquiry(ctx context.Context, caller domain.Identity, input *enquirydto.CreateEnquiryInput) (*enquirydto.EnquiryOutput, error) {
	if input.VariantRateID == "" {
		return nil, domain.NewValidationError("variantRate is required")
	}

	variantRate, err := uc.RateRepo.GetByID(ctx, input.VariantRateID)
	if err != nil {
		return nil, domain.NewValidationError("variantRate %s could not be resolved", input.VariantRateID)
	}
	if variantRate.AssociateID == "" {
		return nil, domain.NewValidationError("variantRate %s has no associate", input.VariantRateID)
	}

	now := time.Now()
	enquiry := &domain.Enquiry{
		ID:                 uuid.NewString(),
		PhoneNumber:        input.PhoneNumber,
		Name:               input.Name,
		Rate:               variantRate.Rate,
		Commission:         variantRate.Commission,
		VariantRateID:      variantRate.ID,
		ProductVariantID:   variantRate.ProductVariantID,
		ProductAssociateID: variantRate.AssociateID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// The mediator source is optional: an unresolvable displayRate leaves the
	// mediator fields empty rather than failing the enquiry.
	if input.DisplayRateID != "" {
		displayed, err := uc.DisplayedRepo.GetByID(ctx, input.DisplayRateID)
		if err == nil && displayed.AssociateID != "" {
			enquiry.DisplayRateID = displayed.ID
			enquiry.MediatorCommission = displayed.Commission
			enquiry.MediatorAssociateID = displayed.AssociateID
		}
	}

	if input.StatusName != "" {
		status, err := uc.StatusRepo.GetByName(ctx, input.StatusName)
		if err != nil {
			return nil, domain.NewValidationError("Invalid status name")
		}
		enquiry.StatusID = status.ID
	}

	if err := uc.EnquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordEnquiryCreated()
	}
	uc.publishEnquiryEvent(enquiry)

	return uc.toOutput(caller, enquiry), nil
}

func (uc *DefaultEnquiryUsecase) GetEnquiryByID(ctx context.Context, viewer domain.Identity, enquiryID string) (*enquirydto.EnquiryOutput, error) {
	enquiry, err := uc.EnquiryRepo.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	return uc.toOutput(viewer, enquiry), nil
}

func (uc *DefaultEnquiryUsecase) GetEnquiries(ctx context.Context, viewer domain.Identity, input *enquirydto.ListEnquiriesInput) (*enquirydto.ListEnquiriesOutput, error) {
	page, limit := normalizePagination(input.Page, input.Limit)

	filters := domain.EnquiryFilters{
		ProductAssociateID:  input.ProductAssociateID,
		MediatorAssociateID: input.MediatorAssociateID,
		StatusID:            input.StatusID,
		DateFrom:            input.DateFrom,
		DateTo:              input.DateTo,
	}

	enquiries, total, err := uc.EnquiryRepo.List(ctx, filters, page, limit)
	if err != nil {
		return nil, err
	}

	outputs := make([]*enquirydto.EnquiryOutput, len(enquiries))
	for i, enquiry := range enquiries {
		outputs[i] = uc.toOutput(viewer, enquiry)
	}

	return &enquirydto.ListEnquiriesOutput{
		Enquiries: outputs,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}, nil
}

func (uc *DefaultEnquiryUsecase) UpdateEnquiry(ctx context.Context, caller domain.Identity, enquiryID string, input *enquirydto.UpdateEnquiryInput) (*enquirydto.EnquiryOutput, error) {
	if _, err := uc.EnquiryRepo.GetByID(ctx, enquiryID); err != nil {
		return nil, err
	}

	update := &domain.EnquiryUpdate{
		PhoneNumber: input.PhoneNumber,
		Name:        input.Name,
	}
	if input.StatusName != "" {
		status, err := uc.StatusRepo.GetByName(ctx, input.StatusName)
		if err != nil {
			return nil, domain.NewValidationError("Invalid status name")
		}
		update.StatusID = &status.ID
	}

	if err := uc.EnquiryRepo.Update(ctx, enquiryID, update); err != nil {
		return nil, err
	}

	enquiry, err := uc.EnquiryRepo.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	return uc.toOutput(caller, enquiry), nil
}

func (uc *DefaultEnquiryUsecase) toOutput(viewer domain.Identity, enquiry *domain.Enquiry) *enquirydto.EnquiryOutput {
	rate, commission, mediatorCommission := MaskEnquiry(viewer, enquiry)

	return &enquirydto.EnquiryOutput{
		ID:                  enquiry.ID,
		PhoneNumber:         enquiry.PhoneNumber,
		Name:                enquiry.Name,
		Rate:                rate,
		Commission:          commission,
		MediatorCommission:  mediatorCommission,
		VariantRateID:       enquiry.VariantRateID,
		DisplayRateID:       enquiry.DisplayRateID,
		ProductVariantID:    enquiry.ProductVariantID,
		ProductAssociateID:  enquiry.ProductAssociateID,
		MediatorAssociateID: enquiry.MediatorAssociateID,
		StatusID:            enquiry.StatusID,
		CreatedAt:           enquiry.CreatedAt,
	}
}

func (uc *DefaultEnquiryUsecase) publishEnquiryEvent(enquiry *domain.Enquiry) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.EnquiryEvent{
		EnquiryID:          enquiry.ID,
		VariantRateID:      enquiry.VariantRateID,
		ProductAssociateID: enquiry.ProductAssociateID,
		Rate:               enquiry.Rate,
	}
	if err := publisher.PublishEnquiryEvent(uc.Publisher, event); err != nil {
		slog.Error("failed to publish enquiry event", "enquiry_id", enquiry.ID, "error", err.Error())
	}
}
