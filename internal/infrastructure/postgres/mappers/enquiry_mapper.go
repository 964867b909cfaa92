package mappers

import (
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
)

func ToDomainEnquiry(model *models.EnquiryModel) *domain.Enquiry {
	return &domain.Enquiry{
		ID:                  model.ID,
		PhoneNumber:         model.PhoneNumber,
		Name:                model.Name,
		Rate:                model.Rate,
		Commission:          model.Commission,
		MediatorCommission:  model.MediatorCommission,
		VariantRateID:       model.VariantRateID,
		DisplayRateID:       model.DisplayRateID,
		ProductVariantID:    model.ProductVariantID,
		ProductAssociateID:  model.ProductAssociateID,
		MediatorAssociateID: model.MediatorAssociateID,
		StatusID:            model.StatusID,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMEnquiry(enquiry *domain.Enquiry) *models.EnquiryModel {
	return &models.EnquiryModel{
		ID:                  enquiry.ID,
		PhoneNumber:         enquiry.PhoneNumber,
		Name:                enquiry.Name,
		Rate:                enquiry.Rate,
		Commission:          enquiry.Commission,
		MediatorCommission:  enquiry.MediatorCommission,
		VariantRateID:       enquiry.VariantRateID,
		DisplayRateID:       enquiry.DisplayRateID,
		ProductVariantID:    enquiry.ProductVariantID,
		ProductAssociateID:  enquiry.ProductAssociateID,
		MediatorAssociateID: enquiry.MediatorAssociateID,
		StatusID:            enquiry.StatusID,
		CreatedAt:           enquiry.CreatedAt,
		UpdatedAt:           enquiry.UpdatedAt,
	}
}
