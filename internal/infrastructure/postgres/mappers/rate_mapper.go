package mappers

import (
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
)

func ToDomainVariantRate(model *models.VariantRateModel) *domain.VariantRate {
	return &domain.VariantRate{
		ID:                 model.ID,
		ProductVariantID:   model.ProductVariantID,
		AssociateID:        model.AssociateID,
		AssociateCompanyID: model.AssociateCompanyID,
		Rate:               model.Rate,
		Commission:         model.Commission,
		DurationDays:       model.DurationDays,
		IsLive:             model.IsLive,
		Selected:           model.Selected,
		Tags:               model.Tags,
		StateID:            model.StateID,
		DistrictID:         model.DistrictID,
		DivisionID:         model.DivisionID,
		PincodeEntryID:     model.PincodeEntryID,
		HiddenDraftOfID:    model.HiddenDraftOfID,
		LastEditTime:       model.LastEditTime,
		CoolingStartTime:   model.CoolingStartTime,
		LastLiveAt:         model.LastLiveAt,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMVariantRate(rate *domain.VariantRate) *models.VariantRateModel {
	return &models.VariantRateModel{
		ID:                 rate.ID,
		ProductVariantID:   rate.ProductVariantID,
		AssociateID:        rate.AssociateID,
		AssociateCompanyID: rate.AssociateCompanyID,
		Rate:               rate.Rate,
		Commission:         rate.Commission,
		DurationDays:       rate.DurationDays,
		IsLive:             rate.IsLive,
		Selected:           rate.Selected,
		Tags:               rate.Tags,
		StateID:            rate.StateID,
		DistrictID:         rate.DistrictID,
		DivisionID:         rate.DivisionID,
		PincodeEntryID:     rate.PincodeEntryID,
		HiddenDraftOfID:    rate.HiddenDraftOfID,
		LastEditTime:       rate.LastEditTime,
		CoolingStartTime:   rate.CoolingStartTime,
		LastLiveAt:         rate.LastLiveAt,
		CreatedAt:          rate.CreatedAt,
		UpdatedAt:          rate.UpdatedAt,
	}
}

func ToDomainDisplayedRate(model *models.DisplayedRateModel) *domain.DisplayedRate {
	return &domain.DisplayedRate{
		ID:                 model.ID,
		VariantRateID:      model.VariantRateID,
		AssociateID:        model.AssociateID,
		AssociateCompanyID: model.AssociateCompanyID,
		Commission:         model.Commission,
		Selected:           model.Selected,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMDisplayedRate(rate *domain.DisplayedRate) *models.DisplayedRateModel {
	return &models.DisplayedRateModel{
		ID:                 rate.ID,
		VariantRateID:      rate.VariantRateID,
		AssociateID:        rate.AssociateID,
		AssociateCompanyID: rate.AssociateCompanyID,
		Commission:         rate.Commission,
		Selected:           rate.Selected,
		CreatedAt:          rate.CreatedAt,
		UpdatedAt:          rate.UpdatedAt,
	}
}
