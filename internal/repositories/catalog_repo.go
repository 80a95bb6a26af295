package repositories

import (
	"gatequote/internal/models"
)

// CatalogRepository defines the interface for catalog data access. The
// Get methods return entities in catalog order.
type CatalogRepository interface {
	GetProducts() ([]models.Product, error)
	GetCategories() ([]models.Category, error)
	GetWarrantyOptions() ([]models.WarrantyOption, error)
	GetPaymentOptions() ([]models.PaymentOption, error)
	CreateProduct(product *models.Product) error
	CreateCategory(category *models.Category) error
	CreateWarrantyOption(option *models.WarrantyOption) error
	CreatePaymentOption(option *models.PaymentOption) error
}

// LoadCatalog reads the full catalog from the repository and assembles the
// immutable aggregate the quotation core consumes.
func LoadCatalog(repo CatalogRepository) (*models.Catalog, error) {
	products, err := repo.GetProducts()
	if err != nil {
		return nil, err
	}
	categories, err := repo.GetCategories()
	if err != nil {
		return nil, err
	}
	warranties, err := repo.GetWarrantyOptions()
	if err != nil {
		return nil, err
	}
	payments, err := repo.GetPaymentOptions()
	if err != nil {
		return nil, err
	}
	return models.NewCatalog(products, categories, warranties, payments), nil
}
