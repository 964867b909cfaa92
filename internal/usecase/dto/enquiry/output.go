package enquirydto

import "time"

type EnquiryOutput struct {
	ID                  string    `json:"id"`
	PhoneNumber         string    `json:"phone_number"`
	Name                string    `json:"name"`
	Rate                float64   `json:"rate"`
	Commission          *float64  `json:"commission,omitempty"`
	MediatorCommission  *float64  `json:"mediator_commission,omitempty"`
	VariantRateID       string    `json:"variant_rate_id"`
	DisplayRateID       string    `json:"display_rate_id,omitempty"`
	ProductVariantID    string    `json:"product_variant_id"`
	ProductAssociateID  string    `json:"product_associate_id"`
	MediatorAssociateID string    `json:"mediator_associate_id,omitempty"`
	StatusID            string    `json:"status_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type ListEnquiriesOutput struct {
	Enquiries []*EnquiryOutput `json:"enquiries"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	Limit     int              `json:"limit"`
}
