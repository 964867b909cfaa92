package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultCatalogRepository reads the reference entities owned by the upstream
// CRUD modules: associates, companies, products, sub categories and variants.
type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func (r *DefaultCatalogRepository) GetAssociateByID(ctx context.Context, associateID string) (*domain.Associate, error) {
	var associateModel models.AssociateModel
	if err := r.DB.WithContext(ctx).First(&associateModel, "id = ?", associateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssociateNotFound
		}
		return nil, err
	}
	return &domain.Associate{
		ID:        associateModel.ID,
		Name:      associateModel.Name,
		CompanyID: associateModel.CompanyID,
	}, nil
}

func (r *DefaultCatalogRepository) ListAssociateCompanies(ctx context.Context) ([]*domain.AssociateCompany, error) {
	var companyModels []models.AssociateCompanyModel
	if err := r.DB.WithContext(ctx).Find(&companyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list associate companies: %w", err)
	}

	companies := make([]*domain.AssociateCompany, len(companyModels))
	for i, companyModel := range companyModels {
		companies[i] = &domain.AssociateCompany{ID: companyModel.ID, Name: companyModel.Name}
	}
	return companies, nil
}

func (r *DefaultCatalogRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	if err := r.DB.WithContext(ctx).Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*domain.Product, len(productModels))
	for i, productModel := range productModels {
		products[i] = &domain.Product{ID: productModel.ID, Name: productModel.Name}
	}
	return products, nil
}

func (r *DefaultCatalogRepository) ListSubCategories(ctx context.Context) ([]*domain.SubCategory, error) {
	var subCategoryModels []models.SubCategoryModel
	if err := r.DB.WithContext(ctx).Find(&subCategoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sub categories: %w", err)
	}

	subCategories := make([]*domain.SubCategory, len(subCategoryModels))
	for i, subCategoryModel := range subCategoryModels {
		subCategories[i] = &domain.SubCategory{
			ID:        subCategoryModel.ID,
			Name:      subCategoryModel.Name,
			ProductID: subCategoryModel.ProductID,
		}
	}
	return subCategories, nil
}

func (r *DefaultCatalogRepository) ListVariantIDsByProductIDs(ctx context.Context, productIDs []string) ([]string, error) {
	var variantIDs []string
	err := r.DB.WithContext(ctx).
		Model(&models.ProductVariantModel{}).
		Where("product_id IN (?)", productIDs).
		Pluck("id", &variantIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list variant ids by products: %w", err)
	}
	return variantIDs, nil
}

func (r *DefaultCatalogRepository) ListVariantIDsBySubCategoryIDs(ctx context.Context, subCategoryIDs []string) ([]string, error) {
	var variantIDs []string
	err := r.DB.WithContext(ctx).
		Model(&models.ProductVariantModel{}).
		Where("sub_category_id IN (?)", subCategoryIDs).
		Pluck("id", &variantIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list variant ids by sub categories: %w", err)
	}
	return variantIDs, nil
}
