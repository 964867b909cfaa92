package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	publisher "github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/kafka"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/metrics"
	ratedto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/rate"
)

type DefaultVariantRateUsecase struct {
	RateRepo      domain.VariantRateRepository
	CatalogRepo   domain.CatalogRepository
	Publisher     domain.PublisherPort
	Metrics       *metrics.RateMetrics
	CoolingPeriod time.Duration
}

func NewDefaultVariantRateUsecase(
	rateRepo domain.VariantRateRepository,
	catalogRepo domain.CatalogRepository,
	pub domain.PublisherPort,
	rateMetrics *metrics.RateMetrics) *DefaultVariantRateUsecase {

	return &DefaultVariantRateUsecase{
		RateRepo:      rateRepo,
		CatalogRepo:   catalogRepo,
		Publisher:     pub,
		Metrics:       rateMetrics,
		CoolingPeriod: DefaultCoolingPeriod,
	}
}

func (uc *DefaultVariantRateUsecase) CreateVariantRate(ctx context.Context, caller domain.Identity, input *ratedto.CreateVariantRateInput) (*ratedto.VariantRateOutput, error) {
	if input.ProductVariantID == "" {
		return nil, domain.NewValidationError("productVariant is required")
	}
	if input.AssociateID == "" {
		return nil, domain.NewValidationError("associate is required")
	}

	associate, err := uc.CatalogRepo.GetAssociateByID(ctx, input.AssociateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rate := &domain.VariantRate{
		ID:                 uuid.NewString(),
		ProductVariantID:   input.ProductVariantID,
		AssociateID:        associate.ID,
		AssociateCompanyID: associate.CompanyID,
		Rate:               input.Rate,
		Commission:         input.Commission,
		DurationDays:       input.DurationDays,
		IsLive:             input.IsLive,
		Selected:           input.Selected,
		Tags:               input.Tags,
		StateID:            input.StateID,
		DistrictID:         input.DistrictID,
		DivisionID:         input.DivisionID,
		PincodeEntryID:     input.PincodeEntryID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if rate.DurationDays <= 0 {
		rate.DurationDays = domain.DefaultDurationDays
	}
	// lastLiveAt is set exactly once, the first time the rate goes live.
	if rate.IsLive {
		rate.LastLiveAt = &now
	}

	if err := uc.RateRepo.Create(ctx, rate); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordRateCreated()
	}
	uc.publishRateEvent(rate, "created", false)

	return uc.toOutput(caller, rate, false), nil
}

func (uc *DefaultVariantRateUsecase) GetVariantRateByID(ctx context.Context, viewer domain.Identity, rateID string) (*ratedto.VariantRateOutput, error) {
	rate, err := uc.RateRepo.GetByID(ctx, rateID)
	if err != nil {
		return nil, err
	}
	return uc.toOutput(viewer, rate, false), nil
}

func (uc *DefaultVariantRateUsecase) GetVariantRates(ctx context.Context, viewer domain.Identity, input *ratedto.ListVariantRatesInput) (*ratedto.ListVariantRatesOutput, error) {
	page, limit := normalizePagination(input.Page, input.Limit)

	filters, empty, err := uc.resolveVariantRateFilters(ctx, input)
	if err != nil {
		return nil, err
	}
	if empty {
		return &ratedto.ListVariantRatesOutput{Rates: []*ratedto.VariantRateOutput{}, Page: page, Limit: limit}, nil
	}

	rates, total, err := uc.RateRepo.List(ctx, filters, page, limit)
	if err != nil {
		return nil, err
	}

	outputs := make([]*ratedto.VariantRateOutput, len(rates))
	for i, rate := range rates {
		outputs[i] = uc.toOutput(viewer, rate, false)
	}

	return &ratedto.ListVariantRatesOutput{
		Rates: outputs,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// UpdateVariantRate runs the edit-cooldown state machine before writing. The
// read-then-write is best-effort: two concurrent edits on the same rate can
// both pass the check, which is an accepted consistency level.
func (uc *DefaultVariantRateUsecase) UpdateVariantRate(ctx context.Context, caller domain.Identity, rateID string, input *ratedto.UpdateVariantRateInput) (*ratedto.VariantRateOutput, error) {
	rate, err := uc.RateRepo.GetByID(ctx, rateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	decision := DecideRateEdit(rate, now, uc.CoolingPeriod)
	if !decision.Allowed {
		if !caller.IsAdmin() {
			if uc.Metrics != nil {
				uc.Metrics.RecordRateEdit("rejected")
			}
			return nil, &domain.CooldownError{RateID: rate.ID, NextEditAt: decision.NextEditAt}
		}
		// Admins bypass the lock; their edit starts a fresh cycle.
		decision = EditDecision{Allowed: true}
	}

	update := &domain.VariantRateUpdate{
		Rate:         input.Rate,
		Commission:   input.Commission,
		DurationDays: input.DurationDays,
		Selected:     input.Selected,
		Tags:         input.Tags,
	}
	if input.ProductVariantID != nil {
		update.ProductVariantID = input.ProductVariantID
	}
	if input.AssociateID != nil && *input.AssociateID != rate.AssociateID {
		// associateCompany always follows the associate.
		associate, err := uc.CatalogRepo.GetAssociateByID(ctx, *input.AssociateID)
		if err != nil {
			return nil, err
		}
		update.AssociateID = &associate.ID
		update.AssociateCompanyID = &associate.CompanyID
	}

	// Non-admin cooling edits are drafts and never live; a non-admin edit that
	// starts a new cycle always goes live. Admins keep whatever they sent.
	var finalLive bool
	switch {
	case caller.IsAdmin():
		finalLive = rate.IsLive
		if input.IsLive != nil {
			finalLive = *input.IsLive
			update.IsLive = input.IsLive
		}
	case decision.CoolingEdit:
		finalLive = false
		update.IsLive = &finalLive
	default:
		finalLive = true
		update.IsLive = &finalLive
	}
	if finalLive && rate.LastLiveAt == nil {
		update.LastLiveAt = &now
	}

	update.CoolingStartTime = &now
	if !decision.CoolingEdit {
		update.LastEditTime = &now
	}

	if err := uc.RateRepo.Update(ctx, rate.ID, update); err != nil {
		return nil, err
	}

	updated, err := uc.RateRepo.GetByID(ctx, rate.ID)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		if decision.CoolingEdit {
			uc.Metrics.RecordRateEdit("cooling")
		} else {
			uc.Metrics.RecordRateEdit("allowed")
		}
	}
	uc.publishRateEvent(updated, "updated", decision.CoolingEdit)

	return uc.toOutput(caller, updated, decision.CoolingEdit), nil
}

func (uc *DefaultVariantRateUsecase) DeleteVariantRate(ctx context.Context, caller domain.Identity, rateID string) error {
	if _, err := uc.RateRepo.GetByID(ctx, rateID); err != nil {
		return err
	}
	return uc.RateRepo.Delete(ctx, rateID)
}

// DeactivateExpiredRates is the hourly sweep: every live rate whose live
// window has lapsed goes back to isLive=false. One bad record never aborts
// the rest of the sweep, and rerunning the sweep is a no-op.
func (uc *DefaultVariantRateUsecase) DeactivateExpiredRates(ctx context.Context) error {
	start := time.Now()
	expired, err := uc.RateRepo.FindExpiredLive(ctx, start)
	if err != nil {
		return err
	}

	live := false
	for _, rate := range expired {
		if err := uc.RateRepo.Update(ctx, rate.ID, &domain.VariantRateUpdate{IsLive: &live}); err != nil {
			slog.Error("rate expiry sweep: failed to deactivate rate",
				"rate_id", rate.ID, "error", err.Error())
			continue
		}
		if uc.Metrics != nil {
			uc.Metrics.RecordRateDeactivated()
		}
		rate.IsLive = false
		uc.publishRateEvent(rate, "deactivated", false)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordSweepDuration(time.Since(start).Seconds())
	}
	return nil
}

func (uc *DefaultVariantRateUsecase) resolveVariantRateFilters(ctx context.Context, input *ratedto.ListVariantRatesInput) (domain.VariantRateFilters, bool, error) {
	filters := domain.VariantRateFilters{
		AssociateID: input.AssociateID,
		IsLive:      input.IsLive,
		Selected:    input.Selected,
		DateFrom:    input.DateFrom,
		DateTo:      input.DateTo,
	}

	if input.AssociateCompanyName != "" {
		companyIDs, err := resolveCompanyIDs(ctx, uc.CatalogRepo, input.AssociateCompanyName)
		if err != nil {
			return filters, false, err
		}
		if len(companyIDs) == 0 {
			return filters, true, nil
		}
		filters.AssociateCompanyIDs = companyIDs
	}

	variantIDs, empty, err := resolveVariantIDs(ctx, uc.CatalogRepo, input.Product, input.SubCategory)
	if err != nil {
		return filters, false, err
	}
	if empty {
		return filters, true, nil
	}
	filters.ProductVariantIDs = variantIDs

	return filters, false, nil
}

// resolveCompanyIDs matches a human-entered company name against the stored
// companies after normalizing both sides.
func resolveCompanyIDs(ctx context.Context, catalog domain.CatalogRepository, name string) ([]string, error) {
	companies, err := catalog.ListAssociateCompanies(ctx)
	if err != nil {
		return nil, err
	}

	wanted := NormalizeName(name)
	var ids []string
	for _, company := range companies {
		if NormalizeName(company.Name) == wanted {
			ids = append(ids, company.ID)
		}
	}
	return ids, nil
}

// resolveVariantIDs narrows product / subCategory name filters down to the
// set of matching product variant ids. The second return value reports that a
// filter was given but nothing matches, so the listing is empty.
func resolveVariantIDs(ctx context.Context, catalog domain.CatalogRepository, productName, subCategoryName string) ([]string, bool, error) {
	var byProduct, bySubCategory []string

	if productName != "" {
		products, err := catalog.ListProducts(ctx)
		if err != nil {
			return nil, false, err
		}
		wanted := NormalizeName(productName)
		var productIDs []string
		for _, p := range products {
			if NormalizeName(p.Name) == wanted {
				productIDs = append(productIDs, p.ID)
			}
		}
		if len(productIDs) == 0 {
			return nil, true, nil
		}
		byProduct, err = catalog.ListVariantIDsByProductIDs(ctx, productIDs)
		if err != nil {
			return nil, false, err
		}
		if len(byProduct) == 0 {
			return nil, true, nil
		}
	}

	if subCategoryName != "" {
		subCategories, err := catalog.ListSubCategories(ctx)
		if err != nil {
			return nil, false, err
		}
		wanted := NormalizeName(subCategoryName)
		var subCategoryIDs []string
		for _, sc := range subCategories {
			if NormalizeName(sc.Name) == wanted {
				subCategoryIDs = append(subCategoryIDs, sc.ID)
			}
		}
		if len(subCategoryIDs) == 0 {
			return nil, true, nil
		}
		bySubCategory, err = catalog.ListVariantIDsBySubCategoryIDs(ctx, subCategoryIDs)
		if err != nil {
			return nil, false, err
		}
		if len(bySubCategory) == 0 {
			return nil, true, nil
		}
	}

	if byProduct != nil && bySubCategory != nil {
		both := intersect(byProduct, bySubCategory)
		return both, len(both) == 0, nil
	}
	if byProduct != nil {
		return byProduct, false, nil
	}
	if bySubCategory != nil {
		return bySubCategory, false, nil
	}
	return nil, false, nil
}

func (uc *DefaultVariantRateUsecase) toOutput(viewer domain.Identity, rate *domain.VariantRate, coolingEdit bool) *ratedto.VariantRateOutput {
	view := MaskVariantRate(viewer, rate.AssociateID, rate.Rate, rate.Commission)

	return &ratedto.VariantRateOutput{
		ID:                 rate.ID,
		ProductVariantID:   rate.ProductVariantID,
		AssociateID:        rate.AssociateID,
		AssociateCompanyID: rate.AssociateCompanyID,
		Rate:               view.Rate,
		Commission:         view.Commission,
		DurationDays:       rate.DurationDays,
		IsLive:             rate.IsLive,
		Selected:           rate.Selected,
		Tags:               rate.Tags,
		CoolingEdit:        coolingEdit,
		LastEditTime:       rate.LastEditTime,
		LastLiveAt:         rate.LastLiveAt,
		CreatedAt:          rate.CreatedAt,
		UpdatedAt:          rate.UpdatedAt,
	}
}

func (uc *DefaultVariantRateUsecase) publishRateEvent(rate *domain.VariantRate, action string, coolingEdit bool) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.RateEvent{
		RateID:      rate.ID,
		AssociateID: rate.AssociateID,
		Action:      action,
		Rate:        rate.Rate,
		IsLive:      rate.IsLive,
		CoolingEdit: coolingEdit,
	}
	if err := publisher.PublishRateEvent(uc.Publisher, event); err != nil {
		slog.Error("failed to publish rate event", "rate_id", rate.ID, "action", action, "error", err.Error())
	}
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	var out []string
	for _, v := range b {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}
