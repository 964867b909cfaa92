package domain

import (
	"context"
	"time"

	ratedto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/rate"
)

// VariantRate is a priced offer for a product variant, owned by an associate.
// lastEditTime/coolingStartTime carry the edit-cooldown state; concurrent edits
// are best-effort read-then-write, not linearized.
type VariantRate struct {
	ID                 string
	ProductVariantID   string
	AssociateID        string
	AssociateCompanyID string
	Rate               float64
	Commission         float64
	DurationDays       int
	IsLive             bool
	Selected           bool
	Tags               []string
	StateID            string
	DistrictID         string
	DivisionID         string
	PincodeEntryID     string
	HiddenDraftOfID    string
	LastEditTime       *time.Time
	CoolingStartTime   *time.Time
	LastLiveAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultDurationDays applies when a rate is created without a duration.
const DefaultDurationDays = 1

func (r *VariantRate) Duration() time.Duration {
	days := r.DurationDays
	if days <= 0 {
		days = DefaultDurationDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// LiveExpired reports whether the rate's live window has lapsed.
func (r *VariantRate) LiveExpired(now time.Time) bool {
	if !r.IsLive || r.LastLiveAt == nil {
		return false
	}
	return r.LastLiveAt.Add(r.Duration()).Before(now)
}

// VariantRateFilters are the resolved listing filters applied by the repository.
// AssociateCompanyIDs and ProductVariantIDs are produced by the usecase-level
// name resolution; an empty non-nil slice means "nothing matches".
type VariantRateFilters struct {
	AssociateID         string
	AssociateCompanyIDs []string
	ProductVariantIDs   []string
	IsLive              *bool
	Selected            *bool
	DateFrom            time.Time
	DateTo              time.Time
}

// VariantRateUpdate is a partial update; nil fields are left untouched.
type VariantRateUpdate struct {
	Rate               *float64
	Commission         *float64
	DurationDays       *int
	IsLive             *bool
	Selected           *bool
	AssociateID        *string
	AssociateCompanyID *string
	ProductVariantID   *string
	Tags               []string
	LastEditTime       *time.Time
	CoolingStartTime   *time.Time
	LastLiveAt         *time.Time
}

type VariantRateRepository interface {
	Create(ctx context.Context, rate *VariantRate) error
	Update(ctx context.Context, rateID string, update *VariantRateUpdate) error
	GetByID(ctx context.Context, rateID string) (*VariantRate, error)
	List(ctx context.Context, filters VariantRateFilters, page, limit int) ([]*VariantRate, int64, error)
	Delete(ctx context.Context, rateID string) error
	FindExpiredLive(ctx context.Context, now time.Time) ([]*VariantRate, error)
}

type VariantRateUsecase interface {
	CreateVariantRate(ctx context.Context, caller Identity, input *ratedto.CreateVariantRateInput) (*ratedto.VariantRateOutput, error)
	GetVariantRateByID(ctx context.Context, viewer Identity, rateID string) (*ratedto.VariantRateOutput, error)
	GetVariantRates(ctx context.Context, viewer Identity, input *ratedto.ListVariantRatesInput) (*ratedto.ListVariantRatesOutput, error)
	UpdateVariantRate(ctx context.Context, caller Identity, rateID string, input *ratedto.UpdateVariantRateInput) (*ratedto.VariantRateOutput, error)
	DeleteVariantRate(ctx context.Context, caller Identity, rateID string) error
	DeactivateExpiredRates(ctx context.Context) error
}
