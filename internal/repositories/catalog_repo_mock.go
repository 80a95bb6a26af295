package repositories

import (
	"fmt"
	"sync"

	"gatequote/internal/models"
)

// MockCatalogRepository is an in-memory implementation of
// CatalogRepository. Entities are returned in insertion order, which is the
// catalog order.
type MockCatalogRepository struct {
	products   []models.Product
	categories []models.Category
	warranties []models.WarrantyOption
	payments   []models.PaymentOption
	mu         sync.RWMutex
}

// NewMockCatalogRepository creates a new instance of MockCatalogRepository.
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{}
}

// GetProducts returns all products in insertion order.
func (r *MockCatalogRepository) GetProducts() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Product(nil), r.products...), nil
}

// GetCategories returns all categories in insertion order.
func (r *MockCatalogRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Category(nil), r.categories...), nil
}

// GetWarrantyOptions returns all warranty options in insertion order.
func (r *MockCatalogRepository) GetWarrantyOptions() ([]models.WarrantyOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.WarrantyOption(nil), r.warranties...), nil
}

// GetPaymentOptions returns all payment options in insertion order.
func (r *MockCatalogRepository) GetPaymentOptions() ([]models.PaymentOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.PaymentOption(nil), r.payments...), nil
}

// CreateProduct adds a new product.
func (r *MockCatalogRepository) CreateProduct(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		return fmt.Errorf("product ID is required")
	}
	for i := range r.products {
		if r.products[i].ID == product.ID {
			return fmt.Errorf("product with ID %s already exists", product.ID)
		}
	}
	product.SortOrder = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

// CreateCategory adds a new category.
func (r *MockCatalogRepository) CreateCategory(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		return fmt.Errorf("category ID is required")
	}
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			return fmt.Errorf("category with ID %s already exists", category.ID)
		}
	}
	category.SortOrder = len(r.categories)
	r.categories = append(r.categories, *category)
	return nil
}

// CreateWarrantyOption adds a new warranty option.
func (r *MockCatalogRepository) CreateWarrantyOption(option *models.WarrantyOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if option.ID == "" {
		return fmt.Errorf("warranty option ID is required")
	}
	for i := range r.warranties {
		if r.warranties[i].ID == option.ID {
			return fmt.Errorf("warranty option with ID %s already exists", option.ID)
		}
	}
	option.SortOrder = len(r.warranties)
	r.warranties = append(r.warranties, *option)
	return nil
}

// CreatePaymentOption adds a new payment option.
func (r *MockCatalogRepository) CreatePaymentOption(option *models.PaymentOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if option.ID == "" {
		return fmt.Errorf("payment option ID is required")
	}
	for i := range r.payments {
		if r.payments[i].ID == option.ID {
			return fmt.Errorf("payment option with ID %s already exists", option.ID)
		}
	}
	option.SortOrder = len(r.payments)
	r.payments = append(r.payments, *option)
	return nil
}
