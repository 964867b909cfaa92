package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	ratedto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/rate"
)

type DefaultDisplayedRateUsecase struct {
	DisplayedRepo domain.DisplayedRateRepository
	RateRepo      domain.VariantRateRepository
	CatalogRepo   domain.CatalogRepository
}

func NewDefaultDisplayedRateUsecase(
	displayedRepo domain.DisplayedRateRepository,
	rateRepo domain.VariantRateRepository,
	catalogRepo domain.CatalogRepository) *DefaultDisplayedRateUsecase {

	return &DefaultDisplayedRateUsecase{
		DisplayedRepo: displayedRepo,
		RateRepo:      rateRepo,
		CatalogRepo:   catalogRepo,
	}
}

func (uc *DefaultDisplayedRateUsecase) CreateDisplayedRate(ctx context.Context, caller domain.Identity, input *ratedto.CreateDisplayedRateInput) (*ratedto.DisplayedRateOutput, error) {
	if input.VariantRateID == "" {
		return nil, domain.NewValidationError("variantRate is required")
	}
	if input.AssociateID == "" {
		return nil, domain.NewValidationError("associate is required")
	}

	base, err := uc.RateRepo.GetByID(ctx, input.VariantRateID)
	if err != nil {
		return nil, err
	}
	associate, err := uc.CatalogRepo.GetAssociateByID(ctx, input.AssociateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	displayed := &domain.DisplayedRate{
		ID:                 uuid.NewString(),
		VariantRateID:      base.ID,
		AssociateID:        associate.ID,
		AssociateCompanyID: associate.CompanyID,
		Commission:         input.Commission,
		Selected:           input.Selected,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.DisplayedRepo.Create(ctx, displayed); err != nil {
		return nil, err
	}

	return uc.toOutput(caller, displayed, base), nil
}

func (uc *DefaultDisplayedRateUsecase) GetDisplayedRates(ctx context.Context, viewer domain.Identity, input *ratedto.ListDisplayedRatesInput) (*ratedto.ListDisplayedRatesOutput, error) {
	page, limit := normalizePagination(input.Page, input.Limit)

	filters := domain.DisplayedRateFilters{
		AssociateID: input.AssociateID,
		Selected:    input.Selected,
	}

	if input.AssociateCompanyName != "" {
		companyIDs, err := resolveCompanyIDs(ctx, uc.CatalogRepo, input.AssociateCompanyName)
		if err != nil {
			return nil, err
		}
		if len(companyIDs) == 0 {
			return &ratedto.ListDisplayedRatesOutput{Rates: []*ratedto.DisplayedRateOutput{}, Page: page, Limit: limit}, nil
		}
		filters.AssociateCompanyIDs = companyIDs
	}
	variantIDs, empty, err := resolveVariantIDs(ctx, uc.CatalogRepo, input.Product, input.SubCategory)
	if err != nil {
		return nil, err
	}
	if empty {
		return &ratedto.ListDisplayedRatesOutput{Rates: []*ratedto.DisplayedRateOutput{}, Page: page, Limit: limit}, nil
	}
	filters.ProductVariantIDs = variantIDs

	displayed, total, err := uc.DisplayedRepo.List(ctx, filters, page, limit)
	if err != nil {
		return nil, err
	}

	outputs := make([]*ratedto.DisplayedRateOutput, 0, len(displayed))
	for _, dr := range displayed {
		base, err := uc.RateRepo.GetByID(ctx, dr.VariantRateID)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, uc.toOutput(viewer, dr, base))
	}

	return &ratedto.ListDisplayedRatesOutput{
		Rates: outputs,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (uc *DefaultDisplayedRateUsecase) toOutput(viewer domain.Identity, displayed *domain.DisplayedRate, base *domain.VariantRate) *ratedto.DisplayedRateOutput {
	view := MaskDisplayedRate(viewer, displayed.AssociateID, base.Rate, base.Commission, displayed.Commission)

	return &ratedto.DisplayedRateOutput{
		ID:            displayed.ID,
		VariantRateID: displayed.VariantRateID,
		AssociateID:   displayed.AssociateID,
		Rate:          view.Rate,
		Commission:    view.Commission,
		Selected:      displayed.Selected,
		CreatedAt:     displayed.CreatedAt,
	}
}
