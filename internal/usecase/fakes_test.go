package usecase

import (
	"context"
	"time"

	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

// In-memory fakes backing the usecase tests. They keep the same not-found
// semantics as the postgres repositories.

type fakeRateRepo struct {
	rates map[string]*domain.VariantRate
}

func newFakeRateRepo() *fakeRateRepo {
	return &fakeRateRepo{rates: map[string]*domain.VariantRate{}}
}

func (r *fakeRateRepo) Create(_ context.Context, rate *domain.VariantRate) error {
	copied := *rate
	r.rates[rate.ID] = &copied
	return nil
}

func (r *fakeRateRepo) GetByID(_ context.Context, rateID string) (*domain.VariantRate, error) {
	rate, ok := r.rates[rateID]
	if !ok {
		return nil, domain.ErrVariantRateNotFound
	}
	copied := *rate
	return &copied, nil
}

func (r *fakeRateRepo) Update(_ context.Context, rateID string, update *domain.VariantRateUpdate) error {
	rate, ok := r.rates[rateID]
	if !ok {
		return domain.ErrVariantRateNotFound
	}
	if update.Rate != nil {
		rate.Rate = *update.Rate
	}
	if update.Commission != nil {
		rate.Commission = *update.Commission
	}
	if update.DurationDays != nil {
		rate.DurationDays = *update.DurationDays
	}
	if update.IsLive != nil {
		rate.IsLive = *update.IsLive
	}
	if update.Selected != nil {
		rate.Selected = *update.Selected
	}
	if update.AssociateID != nil {
		rate.AssociateID = *update.AssociateID
	}
	if update.AssociateCompanyID != nil {
		rate.AssociateCompanyID = *update.AssociateCompanyID
	}
	if update.ProductVariantID != nil {
		rate.ProductVariantID = *update.ProductVariantID
	}
	if update.Tags != nil {
		rate.Tags = update.Tags
	}
	if update.LastEditTime != nil {
		t := *update.LastEditTime
		rate.LastEditTime = &t
	}
	if update.CoolingStartTime != nil {
		t := *update.CoolingStartTime
		rate.CoolingStartTime = &t
	}
	if update.LastLiveAt != nil {
		t := *update.LastLiveAt
		rate.LastLiveAt = &t
	}
	return nil
}

func (r *fakeRateRepo) List(_ context.Context, filters domain.VariantRateFilters, page, limit int) ([]*domain.VariantRate, int64, error) {
	var out []*domain.VariantRate
	for _, rate := range r.rates {
		if filters.AssociateID != "" && rate.AssociateID != filters.AssociateID {
			continue
		}
		if filters.AssociateCompanyIDs != nil && !containsString(filters.AssociateCompanyIDs, rate.AssociateCompanyID) {
			continue
		}
		if filters.ProductVariantIDs != nil && !containsString(filters.ProductVariantIDs, rate.ProductVariantID) {
			continue
		}
		if filters.IsLive != nil && rate.IsLive != *filters.IsLive {
			continue
		}
		if filters.Selected != nil && rate.Selected != *filters.Selected {
			continue
		}
		copied := *rate
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRateRepo) Delete(_ context.Context, rateID string) error {
	if _, ok := r.rates[rateID]; !ok {
		return domain.ErrVariantRateNotFound
	}
	delete(r.rates, rateID)
	return nil
}

func (r *fakeRateRepo) FindExpiredLive(_ context.Context, now time.Time) ([]*domain.VariantRate, error) {
	var out []*domain.VariantRate
	for _, rate := range r.rates {
		if rate.LiveExpired(now) {
			copied := *rate
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeDisplayedRepo struct {
	rates map[string]*domain.DisplayedRate
}

func newFakeDisplayedRepo() *fakeDisplayedRepo {
	return &fakeDisplayedRepo{rates: map[string]*domain.DisplayedRate{}}
}

func (r *fakeDisplayedRepo) Create(_ context.Context, rate *domain.DisplayedRate) error {
	copied := *rate
	r.rates[rate.ID] = &copied
	return nil
}

func (r *fakeDisplayedRepo) GetByID(_ context.Context, rateID string) (*domain.DisplayedRate, error) {
	rate, ok := r.rates[rateID]
	if !ok {
		return nil, domain.ErrDisplayedRateNotFound
	}
	copied := *rate
	return &copied, nil
}

func (r *fakeDisplayedRepo) List(_ context.Context, filters domain.DisplayedRateFilters, page, limit int) ([]*domain.DisplayedRate, int64, error) {
	var out []*domain.DisplayedRate
	for _, rate := range r.rates {
		if filters.AssociateID != "" && rate.AssociateID != filters.AssociateID {
			continue
		}
		if filters.Selected != nil && rate.Selected != *filters.Selected {
			continue
		}
		copied := *rate
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDisplayedRepo) Delete(_ context.Context, rateID string) error {
	if _, ok := r.rates[rateID]; !ok {
		return domain.ErrDisplayedRateNotFound
	}
	delete(r.rates, rateID)
	return nil
}

type fakeEnquiryRepo struct {
	enquiries map[string]*domain.Enquiry
}

func newFakeEnquiryRepo() *fakeEnquiryRepo {
	return &fakeEnquiryRepo{enquiries: map[string]*domain.Enquiry{}}
}

func (r *fakeEnquiryRepo) Create(_ context.Context, enquiry *domain.Enquiry) error {
	copied := *enquiry
	r.enquiries[enquiry.ID] = &copied
	return nil
}

func (r *fakeEnquiryRepo) GetByID(_ context.Context, enquiryID string) (*domain.Enquiry, error) {
	enquiry, ok := r.enquiries[enquiryID]
	if !ok {
		return nil, domain.ErrEnquiryNotFound
	}
	copied := *enquiry
	return &copied, nil
}

func (r *fakeEnquiryRepo) List(_ context.Context, filters domain.EnquiryFilters, page, limit int) ([]*domain.Enquiry, int64, error) {
	var out []*domain.Enquiry
	for _, enquiry := range r.enquiries {
		if filters.ProductAssociateID != "" && enquiry.ProductAssociateID != filters.ProductAssociateID {
			continue
		}
		copied := *enquiry
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEnquiryRepo) Update(_ context.Context, enquiryID string, update *domain.EnquiryUpdate) error {
	enquiry, ok := r.enquiries[enquiryID]
	if !ok {
		return domain.ErrEnquiryNotFound
	}
	if update.PhoneNumber != nil {
		enquiry.PhoneNumber = *update.PhoneNumber
	}
	if update.Name != nil {
		enquiry.Name = *update.Name
	}
	if update.StatusID != nil {
		enquiry.StatusID = *update.StatusID
	}
	return nil
}

type fakeActivityRepo struct {
	activities map[string]*domain.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: map[string]*domain.Activity{}}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *domain.Activity) error {
	copied := *activity
	r.activities[activity.ID] = &copied
	return nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, activityID string) (*domain.Activity, error) {
	activity, ok := r.activities[activityID]
	if !ok || activity.IsDeleted {
		return nil, domain.ErrActivityNotFound
	}
	copied := *activity
	return &copied, nil
}

func (r *fakeActivityRepo) Update(_ context.Context, activityID string, update *domain.ActivityUpdate) error {
	activity, ok := r.activities[activityID]
	if !ok || activity.IsDeleted {
		return domain.ErrActivityNotFound
	}
	if update.ActivityManagerID != nil {
		activity.ActivityManagerID = *update.ActivityManagerID
	}
	if update.CustomerID != nil {
		activity.CustomerID = *update.CustomerID
	}
	if update.TypeID != nil {
		activity.TypeID = *update.TypeID
	}
	if update.StatusID != nil {
		activity.StatusID = *update.StatusID
	}
	if update.PreviousStatusID != nil {
		activity.PreviousStatusID = *update.PreviousStatusID
	}
	if update.ForecastDate != nil {
		activity.ForecastDate = update.ForecastDate
	}
	if update.ActualDate != nil {
		activity.ActualDate = update.ActualDate
	}
	if update.TargetOperationDate != nil {
		activity.TargetOperationDate = update.TargetOperationDate
	}
	if update.TargetFinanceDate != nil {
		activity.TargetFinanceDate = update.TargetFinanceDate
	}
	if update.HoursSpent != nil {
		activity.HoursSpent = *update.HoursSpent
	}
	if update.WorkerIDs != nil {
		activity.WorkerIDs = update.WorkerIDs
	}
	if update.RejectionReasons != nil {
		activity.RejectionReasons = update.RejectionReasons
	}
	return nil
}

func (r *fakeActivityRepo) ListByProjectID(_ context.Context, projectID string) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for _, activity := range r.activities {
		if activity.ProjectID != projectID || activity.IsDeleted {
			continue
		}
		copied := *activity
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeActivityRepo) SoftDelete(_ context.Context, activityID string) error {
	activity, ok := r.activities[activityID]
	if !ok || activity.IsDeleted {
		return domain.ErrActivityNotFound
	}
	activity.IsDeleted = true
	return nil
}

type fakeActivityStatusRepo struct {
	byName map[string]string // name -> id
}

func newFakeActivityStatusRepo() *fakeActivityStatusRepo {
	repo := &fakeActivityStatusRepo{byName: map[string]string{}}
	for i, name := range []string{
		domain.ActivityStatusNoTarget,
		domain.ActivityStatusToBePlanned,
		domain.ActivityStatusToBeAssigned,
		domain.ActivityStatusSubmitted,
		domain.ActivityStatusApproved,
		domain.ActivityStatusRejected,
		domain.ActivityStatusSuspended,
		domain.ActivityStatusBlocked,
		domain.ActivityStatusInProgress,
	} {
		repo.byName[name] = "activity-status-" + string(rune('a'+i))
	}
	return repo
}

func (r *fakeActivityStatusRepo) id(name string) string {
	return r.byName[name]
}

func (r *fakeActivityStatusRepo) GetByName(_ context.Context, name string) (*domain.ActivityStatus, error) {
	id, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}
	return &domain.ActivityStatus{ID: id, Name: name}, nil
}

func (r *fakeActivityStatusRepo) List(_ context.Context) ([]*domain.ActivityStatus, error) {
	var out []*domain.ActivityStatus
	for name, id := range r.byName {
		out = append(out, &domain.ActivityStatus{ID: id, Name: name})
	}
	return out, nil
}

type fakeProjectRepo struct {
	projects map[string]*domain.Project
	writes   []string // status ids in write order
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*domain.Project{}}
}

func (r *fakeProjectRepo) GetByID(_ context.Context, projectID string) (*domain.Project, error) {
	project, ok := r.projects[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) UpdateStatus(_ context.Context, projectID, statusID string) error {
	project, ok := r.projects[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	project.StatusID = statusID
	r.writes = append(r.writes, statusID)
	return nil
}

type fakeProjectStatusRepo struct {
	byName map[string]string
}

func newFakeProjectStatusRepo() *fakeProjectStatusRepo {
	return &fakeProjectStatusRepo{byName: map[string]string{
		domain.ProjectStatusOpen:      "project-status-open",
		domain.ProjectStatusClosed:    "project-status-closed",
		domain.ProjectStatusSuspended: "project-status-suspended",
		domain.ProjectStatusBlocked:   "project-status-blocked",
	}}
}

func (r *fakeProjectStatusRepo) id(name string) string {
	return r.byName[name]
}

func (r *fakeProjectStatusRepo) GetByName(_ context.Context, name string) (*domain.ProjectStatus, error) {
	id, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}
	return &domain.ProjectStatus{ID: id, Name: name}, nil
}

type fakeEnquiryStatusRepo struct {
	byName map[string]string
}

func newFakeEnquiryStatusRepo() *fakeEnquiryStatusRepo {
	return &fakeEnquiryStatusRepo{byName: map[string]string{
		"New":       "enquiry-status-new",
		"In Review": "enquiry-status-in-review",
	}}
}

func (r *fakeEnquiryStatusRepo) GetByName(_ context.Context, name string) (*domain.EnquiryProcessStatus, error) {
	id, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}
	return &domain.EnquiryProcessStatus{ID: id, Name: name}, nil
}

type fakeCatalogRepo struct {
	associates    map[string]*domain.Associate
	companies     []*domain.AssociateCompany
	products      []*domain.Product
	subCategories []*domain.SubCategory
	variants      []*domain.ProductVariant
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{associates: map[string]*domain.Associate{}}
}

func (r *fakeCatalogRepo) GetAssociateByID(_ context.Context, associateID string) (*domain.Associate, error) {
	associate, ok := r.associates[associateID]
	if !ok {
		return nil, domain.ErrAssociateNotFound
	}
	return associate, nil
}

func (r *fakeCatalogRepo) ListAssociateCompanies(_ context.Context) ([]*domain.AssociateCompany, error) {
	return r.companies, nil
}

func (r *fakeCatalogRepo) ListProducts(_ context.Context) ([]*domain.Product, error) {
	return r.products, nil
}

func (r *fakeCatalogRepo) ListSubCategories(_ context.Context) ([]*domain.SubCategory, error) {
	return r.subCategories, nil
}

func (r *fakeCatalogRepo) ListVariantIDsByProductIDs(_ context.Context, productIDs []string) ([]string, error) {
	var ids []string
	for _, v := range r.variants {
		if containsString(productIDs, v.ProductID) {
			ids = append(ids, v.ID)
		}
	}
	return ids, nil
}

func (r *fakeCatalogRepo) ListVariantIDsBySubCategoryIDs(_ context.Context, subCategoryIDs []string) ([]string, error) {
	var ids []string
	for _, v := range r.variants {
		if containsString(subCategoryIDs, v.SubCategoryID) {
			ids = append(ids, v.ID)
		}
	}
	return ids, nil
}

type fakePublisher struct {
	published []domain.Message
}

func (p *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	p.published = append(p.published, msgs...)
	return nil
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
