package repositories

import (
	"fmt"

	"gatequote/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// AutoMigrate creates or updates the catalog tables.
func (r *GORMCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.WarrantyOption{},
		&models.PaymentOption{},
	)
}

// GetProducts retrieves all products in catalog order.
func (r *GORMCatalogRepository) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("sort_order").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetCategories retrieves all categories in catalog order.
func (r *GORMCatalogRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetWarrantyOptions retrieves all warranty options in catalog order.
func (r *GORMCatalogRepository) GetWarrantyOptions() ([]models.WarrantyOption, error) {
	var warranties []models.WarrantyOption
	if err := r.db.Order("sort_order").Find(&warranties).Error; err != nil {
		return nil, fmt.Errorf("failed to get warranty options: %w", err)
	}
	return warranties, nil
}

// GetPaymentOptions retrieves all payment options in catalog order.
func (r *GORMCatalogRepository) GetPaymentOptions() ([]models.PaymentOption, error) {
	var payments []models.PaymentOption
	if err := r.db.Order("sort_order").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get payment options: %w", err)
	}
	return payments, nil
}

// CreateProduct creates a new product. The sort order is assigned from the
// current table size when unset.
func (r *GORMCatalogRepository) CreateProduct(product *models.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product ID is required")
	}
	if err := r.assignSortOrder(&models.Product{}, &product.SortOrder); err != nil {
		return err
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// CreateCategory creates a new category.
func (r *GORMCatalogRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		return fmt.Errorf("category ID is required")
	}
	if err := r.assignSortOrder(&models.Category{}, &category.SortOrder); err != nil {
		return err
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateWarrantyOption creates a new warranty option.
func (r *GORMCatalogRepository) CreateWarrantyOption(option *models.WarrantyOption) error {
	if option.ID == "" {
		return fmt.Errorf("warranty option ID is required")
	}
	if err := r.assignSortOrder(&models.WarrantyOption{}, &option.SortOrder); err != nil {
		return err
	}
	if err := r.db.Create(option).Error; err != nil {
		return fmt.Errorf("failed to create warranty option: %w", err)
	}
	return nil
}

// CreatePaymentOption creates a new payment option.
func (r *GORMCatalogRepository) CreatePaymentOption(option *models.PaymentOption) error {
	if option.ID == "" {
		return fmt.Errorf("payment option ID is required")
	}
	if err := r.assignSortOrder(&models.PaymentOption{}, &option.SortOrder); err != nil {
		return err
	}
	if err := r.db.Create(option).Error; err != nil {
		return fmt.Errorf("failed to create payment option: %w", err)
	}
	return nil
}

func (r *GORMCatalogRepository) assignSortOrder(model interface{}, sortOrder *int) error {
	if *sortOrder != 0 {
		return nil
	}
	var count int64
	if err := r.db.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows for sort order: %w", err)
	}
	*sortOrder = int(count)
	return nil
}
