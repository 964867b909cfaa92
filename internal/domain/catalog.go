package domain

import "context"

// Reference entities owned by the thin CRUD modules upstream. The engines only
// read them: associate-company derivation and name-based listing filters.

type Associate struct {
	ID        string
	Name      string
	CompanyID string
}

type AssociateCompany struct {
	ID   string
	Name string
}

type Product struct {
	ID   string
	Name string
}

type SubCategory struct {
	ID        string
	Name      string
	ProductID string
}

type ProductVariant struct {
	ID            string
	Name          string
	ProductID     string
	SubCategoryID string
}

type EnquiryProcessStatus struct {
	ID   string
	Name string
}

type CatalogRepository interface {
	GetAssociateByID(ctx context.Context, associateID string) (*Associate, error)
	ListAssociateCompanies(ctx context.Context) ([]*AssociateCompany, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	ListSubCategories(ctx context.Context) ([]*SubCategory, error)
	ListVariantIDsByProductIDs(ctx context.Context, productIDs []string) ([]string, error)
	ListVariantIDsBySubCategoryIDs(ctx context.Context, subCategoryIDs []string) ([]string, error)
}

type EnquiryStatusRepository interface {
	GetByName(ctx context.Context, name string) (*EnquiryProcessStatus, error)
}
