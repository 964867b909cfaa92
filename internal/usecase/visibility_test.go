package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

func TestMaskVariantRate(t *testing.T) {
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	owner := domain.Identity{UserID: "assoc-1", Role: domain.RoleAssociate}
	otherAssociate := domain.Identity{UserID: "assoc-2", Role: domain.RoleAssociate}
	customer := domain.Identity{UserID: "cust-1", Role: domain.RoleCustomer}
	anonymous := domain.Identity{}

	tests := []struct {
		name           string
		viewer         domain.Identity
		wantRate       float64
		wantCommission *float64
	}{
		{"admin sees raw rate and commission", admin, 100, float64Ptr(7)},
		{"owner sees own base rate without folding", owner, 100, nil},
		{"other associate gets folded rate", otherAssociate, 107, nil},
		{"customer gets folded rate", customer, 107, nil},
		{"anonymous gets folded rate", anonymous, 107, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := MaskVariantRate(tt.viewer, "assoc-1", 100, 7)
			require.Equal(t, tt.wantRate, view.Rate)
			if tt.wantCommission == nil {
				require.Nil(t, view.Commission)
			} else {
				require.NotNil(t, view.Commission)
				require.Equal(t, *tt.wantCommission, *view.Commission)
			}
		})
	}
}

func TestMaskDisplayedRate(t *testing.T) {
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	reseller := domain.Identity{UserID: "reseller-1", Role: domain.RoleAssociate}
	customer := domain.Identity{UserID: "cust-1", Role: domain.RoleCustomer}

	// base 100, variant owner's commission 7, reseller markup 5
	t.Run("customer sees both tiers folded, markup zeroed in response", func(t *testing.T) {
		view := MaskDisplayedRate(customer, "reseller-1", 100, 7, 5)
		require.Equal(t, 112.0, view.Rate)
		require.NotNil(t, view.Commission)
		require.Equal(t, 0.0, *view.Commission)
	})

	t.Run("reseller does not pay their own markup", func(t *testing.T) {
		view := MaskDisplayedRate(reseller, "reseller-1", 100, 7, 5)
		require.Equal(t, 107.0, view.Rate)
	})

	t.Run("admin sees the markup", func(t *testing.T) {
		view := MaskDisplayedRate(admin, "reseller-1", 100, 7, 5)
		require.NotNil(t, view.Commission)
		require.Equal(t, 5.0, *view.Commission)
	})
}

func TestMaskEnquiry(t *testing.T) {
	enquiry := &domain.Enquiry{
		Rate:               200,
		Commission:         10,
		MediatorCommission: 4,
		ProductAssociateID: "assoc-1",
	}

	t.Run("admin sees frozen fields unfolded", func(t *testing.T) {
		rate, commission, mediator := MaskEnquiry(domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}, enquiry)
		require.Equal(t, 200.0, rate)
		require.NotNil(t, commission)
		require.Equal(t, 10.0, *commission)
		require.NotNil(t, mediator)
		require.Equal(t, 4.0, *mediator)
	})

	t.Run("product associate sees base rate, no commission fields", func(t *testing.T) {
		rate, commission, mediator := MaskEnquiry(domain.Identity{UserID: "assoc-1", Role: domain.RoleAssociate}, enquiry)
		require.Equal(t, 200.0, rate)
		require.Nil(t, commission)
		require.Nil(t, mediator)
	})

	t.Run("everyone else sees folded rate", func(t *testing.T) {
		rate, commission, _ := MaskEnquiry(domain.Identity{UserID: "cust-1", Role: domain.RoleCustomer}, enquiry)
		require.Equal(t, 210.0, rate)
		require.Nil(t, commission)
	})
}
