package usecase

import (
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

// RateView is the (rate, commission) pair a viewer is entitled to see.
// A nil Commission means the field is withheld from the response entirely.
type RateView struct {
	Rate       float64
	Commission *float64
}

type rateMaskRule struct {
	matches func(viewer domain.Identity, ownerID string) bool
	apply   func(rate, commission float64) RateView
}

// variantRateMaskRules is evaluated top to bottom; the first matching rule
// wins. The last rule is a catch-all. Masking is a read-side transform only,
// the persisted record is never touched.
var variantRateMaskRules = []rateMaskRule{
	{
		// Admins see the raw rate and the margin.
		matches: func(viewer domain.Identity, _ string) bool { return viewer.IsAdmin() },
		apply: func(rate, commission float64) RateView {
			return RateView{Rate: rate, Commission: float64Ptr(commission)}
		},
	},
	{
		// The owning associate sees their own base rate; the margin stays a
		// separate concern and is not folded in.
		matches: func(viewer domain.Identity, ownerID string) bool { return viewer.Owns(ownerID) },
		apply: func(rate, _ float64) RateView {
			return RateView{Rate: rate}
		},
	},
	{
		// Everyone else (other roles, other associates, anonymous) gets the
		// margin folded into the displayed rate and stripped from the response.
		matches: func(domain.Identity, string) bool { return true },
		apply: func(rate, commission float64) RateView {
			return RateView{Rate: rate + commission}
		},
	},
}

// MaskVariantRate computes the rate view a caller is entitled to see for a
// variant rate owned by ownerID.
func MaskVariantRate(viewer domain.Identity, ownerID string, rate, commission float64) RateView {
	for _, rule := range variantRateMaskRules {
		if rule.matches(viewer, ownerID) {
			return rule.apply(rate, commission)
		}
	}
	return RateView{}
}

// MaskDisplayedRate computes the two-tier view of a displayed rate: the base
// variant rate plus the variant owner's commission, plus the reseller's own
// markup unless the viewer is that reseller. Non-admin viewers get the markup
// zeroed in the response.
func MaskDisplayedRate(viewer domain.Identity, resellerID string, baseRate, variantCommission, displayedCommission float64) RateView {
	view := RateView{Rate: baseRate + variantCommission}
	if !viewer.Owns(resellerID) {
		view.Rate += displayedCommission
	}
	if viewer.IsAdmin() {
		view.Commission = float64Ptr(displayedCommission)
	} else {
		view.Commission = float64Ptr(0)
	}
	return view
}

// MaskEnquiry applies the enquiry read-path masking: viewers other than the
// product associate and admins see the commission folded into the rate, and
// only admins see the commission fields at all.
func MaskEnquiry(viewer domain.Identity, enquiry *domain.Enquiry) (rate float64, commission, mediatorCommission *float64) {
	rate = enquiry.Rate
	if !viewer.IsAdmin() && viewer.UserID != enquiry.ProductAssociateID {
		rate += enquiry.Commission
	}
	if viewer.IsAdmin() {
		commission = float64Ptr(enquiry.Commission)
		mediatorCommission = float64Ptr(enquiry.MediatorCommission)
	}
	return rate, commission, mediatorCommission
}

func float64Ptr(v float64) *float64 {
	return &v
}
