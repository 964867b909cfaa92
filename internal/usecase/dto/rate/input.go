package ratedto

import "time"

type CreateVariantRateInput struct {
	ProductVariantID string
	AssociateID      string
	Rate             float64
	Commission       float64
	DurationDays     int
	IsLive           bool
	Selected         bool
	Tags             []string
	StateID          string
	DistrictID       string
	DivisionID       string
	PincodeEntryID   string
}

// UpdateVariantRateInput carries a partial patch; nil pointers leave the
// stored value untouched.
type UpdateVariantRateInput struct {
	Rate             *float64
	Commission       *float64
	DurationDays     *int
	IsLive           *bool
	Selected         *bool
	AssociateID      *string
	ProductVariantID *string
	Tags             []string
}

// ListVariantRatesInput holds raw listing filters as entered by the caller.
// AssociateCompanyName, Product and SubCategory are human-entered names and are
// resolved to id sets before querying.
type ListVariantRatesInput struct {
	AssociateID          string
	AssociateCompanyName string
	Product              string
	SubCategory          string
	IsLive               *bool
	Selected             *bool
	DateFrom             time.Time
	DateTo               time.Time
	Page                 int
	Limit                int
}

type CreateDisplayedRateInput struct {
	VariantRateID string
	AssociateID   string
	Commission    float64
	Selected      bool
}

type ListDisplayedRatesInput struct {
	AssociateID          string
	AssociateCompanyName string
	Product              string
	SubCategory          string
	Selected             *bool
	Page                 int
	Limit                int
}
