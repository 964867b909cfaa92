package domain

import (
	"context"
	"time"

	enquirydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/enquiry"
)

// Enquiry is a customer price inquiry. Rate, Commission and MediatorCommission
// are frozen at creation from the source rates and never recomputed.
type Enquiry struct {
	ID                  string
	PhoneNumber         string
	Name                string
	Rate                float64
	Commission          float64
	MediatorCommission  float64
	VariantRateID       string
	DisplayRateID       string
	ProductVariantID    string
	ProductAssociateID  string
	MediatorAssociateID string
	StatusID            string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type EnquiryFilters struct {
	ProductAssociateID  string
	MediatorAssociateID string
	StatusID            string
	DateFrom            time.Time
	DateTo              time.Time
}

// EnquiryUpdate never carries the frozen pricing fields.
type EnquiryUpdate struct {
	PhoneNumber *string
	Name        *string
	StatusID    *string
}

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *Enquiry) error
	GetByID(ctx context.Context, enquiryID string) (*Enquiry, error)
	List(ctx context.Context, filters EnquiryFilters, page, limit int) ([]*Enquiry, int64, error)
	Update(ctx context.Context, enquiryID string, update *EnquiryUpdate) error
}

type EnquiryUsecase interface {
	CreateEnquiry(ctx context.Context, caller Identity, input *enquirydto.CreateEnquiryInput) (*enquirydto.EnquiryOutput, error)
	GetEnquiryByID(ctx context.Context, viewer Identity, enquiryID string) (*enquirydto.EnquiryOutput, error)
	GetEnquiries(ctx context.Context, viewer Identity, input *enquirydto.ListEnquiriesInput) (*enquirydto.ListEnquiriesOutput, error)
	UpdateEnquiry(ctx context.Context, caller Identity, enquiryID string, input *enquirydto.UpdateEnquiryInput) (*enquirydto.EnquiryOutput, error)
}
