package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	ratedto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/rate"
)

func newRateUsecaseForTest() (*DefaultVariantRateUsecase, *fakeRateRepo, *fakeCatalogRepo, *fakePublisher) {
	rateRepo := newFakeRateRepo()
	catalogRepo := newFakeCatalogRepo()
	pub := &fakePublisher{}
	uc := NewDefaultVariantRateUsecase(rateRepo, catalogRepo, pub, nil)
	return uc, rateRepo, catalogRepo, pub
}

func seedAssociate(catalog *fakeCatalogRepo, id, companyID string) {
	catalog.associates[id] = &domain.Associate{ID: id, Name: "Associate " + id, CompanyID: companyID}
}

func TestCreateVariantRate(t *testing.T) {
	ctx := context.Background()
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	t.Run("company is derived from the associate", func(t *testing.T) {
		uc, repo, catalog, _ := newRateUsecaseForTest()
		seedAssociate(catalog, "assoc-1", "company-1")

		out, err := uc.CreateVariantRate(ctx, admin, &ratedto.CreateVariantRateInput{
			ProductVariantID: "variant-1",
			AssociateID:      "assoc-1",
			Rate:             100,
			Commission:       7,
			IsLive:           true,
		})
		require.NoError(t, err)
		require.Equal(t, "company-1", out.AssociateCompanyID)

		stored, err := repo.GetByID(ctx, out.ID)
		require.NoError(t, err)
		require.Equal(t, "company-1", stored.AssociateCompanyID)
		require.NotNil(t, stored.LastLiveAt)
		require.Equal(t, domain.DefaultDurationDays, stored.DurationDays)
	})

	t.Run("rate created not live has no live window start", func(t *testing.T) {
		uc, repo, catalog, _ := newRateUsecaseForTest()
		seedAssociate(catalog, "assoc-1", "company-1")

		out, err := uc.CreateVariantRate(ctx, admin, &ratedto.CreateVariantRateInput{
			ProductVariantID: "variant-1",
			AssociateID:      "assoc-1",
			Rate:             100,
		})
		require.NoError(t, err)

		stored, err := repo.GetByID(ctx, out.ID)
		require.NoError(t, err)
		require.Nil(t, stored.LastLiveAt)
	})

	t.Run("unknown associate fails", func(t *testing.T) {
		uc, _, _, _ := newRateUsecaseForTest()
		_, err := uc.CreateVariantRate(ctx, admin, &ratedto.CreateVariantRateInput{
			ProductVariantID: "variant-1",
			AssociateID:      "nobody",
			Rate:             100,
		})
		require.ErrorIs(t, err, domain.ErrAssociateNotFound)
	})

	t.Run("missing variant is a validation error", func(t *testing.T) {
		uc, _, _, _ := newRateUsecaseForTest()
		_, err := uc.CreateVariantRate(ctx, admin, &ratedto.CreateVariantRateInput{AssociateID: "assoc-1", Rate: 1})
		require.True(t, domain.IsValidation(err))
	})
}

func TestUpdateVariantRateCooldown(t *testing.T) {
	ctx := context.Background()
	owner := domain.Identity{UserID: "assoc-1", Role: domain.RoleAssociate}
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	seedRate := func(repo *fakeRateRepo, lastEdit, coolingStart *time.Time, isLive bool) *domain.VariantRate {
		rate := &domain.VariantRate{
			ID:               "rate-1",
			ProductVariantID: "variant-1",
			AssociateID:      "assoc-1",
			Rate:             100,
			Commission:       7,
			DurationDays:     1,
			IsLive:           isLive,
			LastEditTime:     lastEdit,
			CoolingStartTime: coolingStart,
		}
		repo.rates[rate.ID] = rate
		return rate
	}

	t.Run("edit inside cooling window is a draft and goes off live", func(t *testing.T) {
		uc, repo, _, _ := newRateUsecaseForTest()
		edited := time.Now().Add(-5 * time.Minute)
		seedRate(repo, &edited, &edited, true)

		newRate := 110.0
		out, err := uc.UpdateVariantRate(ctx, owner, "rate-1", &ratedto.UpdateVariantRateInput{Rate: &newRate})
		require.NoError(t, err)
		require.True(t, out.CoolingEdit)
		require.False(t, out.IsLive)

		stored, _ := repo.GetByID(ctx, "rate-1")
		require.Equal(t, 110.0, stored.Rate)
		// a cooling edit does not move the substantive edit marker
		require.True(t, stored.LastEditTime.Equal(edited))
	})

	t.Run("edit outside window and inside cycle is rejected with next edit time", func(t *testing.T) {
		uc, repo, _, _ := newRateUsecaseForTest()
		edited := time.Now().Add(-2 * time.Hour)
		seedRate(repo, &edited, &edited, true)

		newRate := 110.0
		_, err := uc.UpdateVariantRate(ctx, owner, "rate-1", &ratedto.UpdateVariantRateInput{Rate: &newRate})
		require.True(t, domain.IsCooldown(err))

		var ce *domain.CooldownError
		require.ErrorAs(t, err, &ce)
		require.True(t, ce.NextEditAt.Equal(edited.Add(24*time.Hour)))

		stored, _ := repo.GetByID(ctx, "rate-1")
		require.Equal(t, 100.0, stored.Rate)
	})

	t.Run("admin bypasses the lock and starts a fresh cycle", func(t *testing.T) {
		uc, repo, _, _ := newRateUsecaseForTest()
		edited := time.Now().Add(-2 * time.Hour)
		seedRate(repo, &edited, &edited, true)

		newRate := 120.0
		out, err := uc.UpdateVariantRate(ctx, admin, "rate-1", &ratedto.UpdateVariantRateInput{Rate: &newRate})
		require.NoError(t, err)
		require.False(t, out.CoolingEdit)

		stored, _ := repo.GetByID(ctx, "rate-1")
		require.Equal(t, 120.0, stored.Rate)
		require.True(t, stored.LastEditTime.After(edited))
	})

	t.Run("associate edit shortly after an admin edit is a cooling edit", func(t *testing.T) {
		uc, repo, _, _ := newRateUsecaseForTest()
		edited := time.Now().Add(-time.Minute)
		seedRate(repo, &edited, &edited, true)

		newRate := 130.0
		out, err := uc.UpdateVariantRate(ctx, owner, "rate-1", &ratedto.UpdateVariantRateInput{Rate: &newRate})
		require.NoError(t, err)
		require.True(t, out.CoolingEdit)

		stored, _ := repo.GetByID(ctx, "rate-1")
		require.True(t, stored.LastEditTime.Equal(edited))
	})

	t.Run("edit after a full cycle goes live and moves the edit marker", func(t *testing.T) {
		uc, repo, _, _ := newRateUsecaseForTest()
		edited := time.Now().Add(-25 * time.Hour)
		seedRate(repo, &edited, &edited, false)

		newRate := 140.0
		out, err := uc.UpdateVariantRate(ctx, owner, "rate-1", &ratedto.UpdateVariantRateInput{Rate: &newRate})
		require.NoError(t, err)
		require.False(t, out.CoolingEdit)
		require.True(t, out.IsLive)

		stored, _ := repo.GetByID(ctx, "rate-1")
		require.True(t, stored.IsLive)
		require.NotNil(t, stored.LastLiveAt)
		require.True(t, stored.LastEditTime.After(edited))
	})
}

func TestDeactivateExpiredRates(t *testing.T) {
	ctx := context.Background()

	t.Run("expired live rates go off live, fresh ones stay", func(t *testing.T) {
		uc, repo, _, pub := newRateUsecaseForTest()
		expiredAt := time.Now().Add(-48 * time.Hour)
		freshAt := time.Now().Add(-1 * time.Hour)
		repo.rates["expired"] = &domain.VariantRate{ID: "expired", AssociateID: "assoc-1", DurationDays: 1, IsLive: true, LastLiveAt: &expiredAt}
		repo.rates["fresh"] = &domain.VariantRate{ID: "fresh", AssociateID: "assoc-1", DurationDays: 1, IsLive: true, LastLiveAt: &freshAt}
		repo.rates["never-live"] = &domain.VariantRate{ID: "never-live", AssociateID: "assoc-1", DurationDays: 1}

		require.NoError(t, uc.DeactivateExpiredRates(ctx))

		require.False(t, repo.rates["expired"].IsLive)
		require.True(t, repo.rates["fresh"].IsLive)
		require.Len(t, pub.published, 1)
	})

	t.Run("rerunning the sweep is a no-op", func(t *testing.T) {
		uc, repo, _, pub := newRateUsecaseForTest()
		expiredAt := time.Now().Add(-48 * time.Hour)
		repo.rates["expired"] = &domain.VariantRate{ID: "expired", AssociateID: "assoc-1", DurationDays: 1, IsLive: true, LastLiveAt: &expiredAt}

		require.NoError(t, uc.DeactivateExpiredRates(ctx))
		require.NoError(t, uc.DeactivateExpiredRates(ctx))
		require.Len(t, pub.published, 1)
	})
}

func TestGetVariantRatesFilters(t *testing.T) {
	ctx := context.Background()
	viewer := domain.Identity{UserID: "cust-1", Role: domain.RoleCustomer}

	seedCatalog := func(catalog *fakeCatalogRepo) {
		catalog.companies = []*domain.AssociateCompany{
			{ID: "company-1", Name: "Obaol Exports"},
			{ID: "company-2", Name: "Other Trading"},
		}
		catalog.products = []*domain.Product{{ID: "product-1", Name: "Cardamom"}}
		catalog.subCategories = []*domain.SubCategory{{ID: "sub-1", Name: "Green", ProductID: "product-1"}}
		catalog.variants = []*domain.ProductVariant{
			{ID: "variant-1", ProductID: "product-1", SubCategoryID: "sub-1"},
			{ID: "variant-2", ProductID: "product-1", SubCategoryID: "sub-2"},
		}
	}

	t.Run("company name filter is normalized before matching", func(t *testing.T) {
		uc, repo, catalog, _ := newRateUsecaseForTest()
		seedCatalog(catalog)
		repo.rates["r1"] = &domain.VariantRate{ID: "r1", AssociateID: "assoc-1", AssociateCompanyID: "company-1", ProductVariantID: "variant-1"}
		repo.rates["r2"] = &domain.VariantRate{ID: "r2", AssociateID: "assoc-2", AssociateCompanyID: "company-2", ProductVariantID: "variant-1"}

		out, err := uc.GetVariantRates(ctx, viewer, &ratedto.ListVariantRatesInput{AssociateCompanyName: "  obaol_EXPORTS "})
		require.NoError(t, err)
		require.Len(t, out.Rates, 1)
		require.Equal(t, "r1", out.Rates[0].ID)
	})

	t.Run("unknown company name short-circuits to an empty page", func(t *testing.T) {
		uc, repo, catalog, _ := newRateUsecaseForTest()
		seedCatalog(catalog)
		repo.rates["r1"] = &domain.VariantRate{ID: "r1", AssociateCompanyID: "company-1"}

		out, err := uc.GetVariantRates(ctx, viewer, &ratedto.ListVariantRatesInput{AssociateCompanyName: "nobody"})
		require.NoError(t, err)
		require.Empty(t, out.Rates)
		require.Zero(t, out.Total)
	})

	t.Run("product and subCategory filters intersect", func(t *testing.T) {
		uc, repo, catalog, _ := newRateUsecaseForTest()
		seedCatalog(catalog)
		repo.rates["r1"] = &domain.VariantRate{ID: "r1", ProductVariantID: "variant-1"}
		repo.rates["r2"] = &domain.VariantRate{ID: "r2", ProductVariantID: "variant-2"}

		out, err := uc.GetVariantRates(ctx, viewer, &ratedto.ListVariantRatesInput{Product: "cardamom", SubCategory: "green"})
		require.NoError(t, err)
		require.Len(t, out.Rates, 1)
		require.Equal(t, "r1", out.Rates[0].ID)
	})

	t.Run("pagination defaults apply", func(t *testing.T) {
		uc, _, catalog, _ := newRateUsecaseForTest()
		seedCatalog(catalog)

		out, err := uc.GetVariantRates(ctx, viewer, &ratedto.ListVariantRatesInput{})
		require.NoError(t, err)
		require.Equal(t, 1, out.Page)
		require.Equal(t, 10, out.Limit)
	})
}
