package ratedto

import "time"

// VariantRateOutput is the caller-facing view of a variant rate after the
// visibility rules ran. Commission is nil whenever the viewer is not entitled
// to see the margin.
type VariantRateOutput struct {
	ID                 string     `json:"id"`
	ProductVariantID   string     `json:"product_variant_id"`
	AssociateID        string     `json:"associate_id"`
	AssociateCompanyID string     `json:"associate_company_id,omitempty"`
	Rate               float64    `json:"rate"`
	Commission         *float64   `json:"commission,omitempty"`
	DurationDays       int        `json:"duration_days"`
	IsLive             bool       `json:"is_live"`
	Selected           bool       `json:"selected"`
	Tags               []string   `json:"tags,omitempty"`
	CoolingEdit        bool       `json:"cooling_edit,omitempty"`
	LastEditTime       *time.Time `json:"last_edit_time,omitempty"`
	LastLiveAt         *time.Time `json:"last_live_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ListVariantRatesOutput struct {
	Rates []*VariantRateOutput `json:"rates"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

type DisplayedRateOutput struct {
	ID            string    `json:"id"`
	VariantRateID string    `json:"variant_rate_id"`
	AssociateID   string    `json:"associate_id"`
	Rate          float64   `json:"rate"`
	Commission    *float64  `json:"commission,omitempty"`
	Selected      bool      `json:"selected"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListDisplayedRatesOutput struct {
	Rates []*DisplayedRateOutput `json:"rates"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}
