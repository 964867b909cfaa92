package domain

import (
	"context"
	"time"

	ratedto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/rate"
)

// DisplayedRate is an associate-specific markup layered on top of a live
// VariantRate, used when one associate resells another's rate.
type DisplayedRate struct {
	ID                 string
	VariantRateID      string
	AssociateID        string
	AssociateCompanyID string
	Commission         float64
	Selected           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type DisplayedRateFilters struct {
	AssociateID         string
	AssociateCompanyIDs []string
	ProductVariantIDs   []string
	Selected            *bool
}

type DisplayedRateRepository interface {
	Create(ctx context.Context, rate *DisplayedRate) error
	GetByID(ctx context.Context, rateID string) (*DisplayedRate, error)
	// List returns displayed rates together with their underlying variant rates.
	List(ctx context.Context, filters DisplayedRateFilters, page, limit int) ([]*DisplayedRate, int64, error)
	Delete(ctx context.Context, rateID string) error
}

type DisplayedRateUsecase interface {
	CreateDisplayedRate(ctx context.Context, caller Identity, input *ratedto.CreateDisplayedRateInput) (*ratedto.DisplayedRateOutput, error)
	GetDisplayedRates(ctx context.Context, viewer Identity, input *ratedto.ListDisplayedRatesInput) (*ratedto.ListDisplayedRatesOutput, error)
}
