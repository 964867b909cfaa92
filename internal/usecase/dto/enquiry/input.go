package enquirydto

import "time"

type CreateEnquiryInput struct {
	PhoneNumber   string
	Name          string
	VariantRateID string
	DisplayRateID string
	StatusName    string
}

// UpdateEnquiryInput never touches the frozen pricing fields. StatusName is
// resolved against the enquiry process statuses by name.
type UpdateEnquiryInput struct {
	PhoneNumber *string
	Name        *string
	StatusName  string
}

type ListEnquiriesInput struct {
	ProductAssociateID  string
	MediatorAssociateID string
	StatusID            string
	DateFrom            time.Time
	DateTo              time.Time
	Page                int
	Limit               int
}
