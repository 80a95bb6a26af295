package models

import "gorm.io/gorm"

// Product represents a single configurable catalog item, such as a barrier
// gate or an access controller board.
type Product struct {
	ID              string   `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Name            string   `json:"name" validate:"required,min=3,max=150"`
	Description     string   `json:"description" validate:"omitempty,max=500"`
	Details         []string `json:"details" gorm:"serializer:json"`
	UnitPrice       float64  `json:"unit_price" validate:"gte=0"`
	DefaultQuantity int      `json:"default_quantity" validate:"gte=0"`
	MinQuantity     int      `json:"min_quantity" validate:"gte=0"`
	MaxQuantity     *int     `json:"max_quantity,omitempty"`
	CategoryID      string   `json:"category" gorm:"index;type:varchar(64)" validate:"required"`
	Required        bool     `json:"required"`
	SortOrder       int      `json:"-" gorm:"index"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Category groups related products. A required category must have at least
// one of its required products selected before a quotation can proceed.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Name        string `json:"name" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Required    bool   `json:"required"`
	SortOrder   int    `json:"-" gorm:"index"`
	gorm.Model
}

// WarrantyOption is a flat-priced warranty tier added once to a quotation.
// A price of 0 means the tier is included at no extra cost.
type WarrantyOption struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Name        string  `json:"name" validate:"required,min=3,max=150"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price" validate:"gte=0"`
	SortOrder   int     `json:"-" gorm:"index"`
	gorm.Model
}

// PaymentType identifies the financing arithmetic to apply to a quotation.
type PaymentType string

const (
	PaymentOneOff PaymentType = "one-off"
	PaymentLease  PaymentType = "lease"
	PaymentRental PaymentType = "rental"
)

// PaymentOption describes one financing plan. TermMonths and
// DepositPercentage are only meaningful for lease and rental plans; a
// one-off plan ignores them.
type PaymentOption struct {
	ID                string      `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Name              string      `json:"name" validate:"required,min=3,max=150"`
	Description       string      `json:"description" validate:"omitempty,max=500"`
	Type              PaymentType `json:"type" gorm:"type:varchar(16)" validate:"required,oneof=one-off lease rental"`
	Multiplier        float64     `json:"multiplier" validate:"gt=0"`
	TermMonths        int         `json:"term_months,omitempty" validate:"gte=0"`
	DepositPercentage float64     `json:"deposit_percentage,omitempty" validate:"gte=0,lte=100"`
	Features          []string    `json:"features,omitempty" gorm:"serializer:json"`
	SortOrder         int         `json:"-" gorm:"index"`
	gorm.Model
}

// Catalog is the immutable configuration data set the quotation core
// consumes: all products, categories, warranty tiers and payment plans,
// loaded once at startup and shared read-only across sessions.
type Catalog struct {
	Products   []Product        `json:"products"`
	Categories []Category       `json:"categories"`
	Warranties []WarrantyOption `json:"warranty_options"`
	Payments   []PaymentOption  `json:"payment_options"`

	productByID  map[string]*Product
	categoryByID map[string]*Category
	warrantyByID map[string]*WarrantyOption
	paymentByID  map[string]*PaymentOption
	ordered      []*Product
}

// NewCatalog builds a catalog aggregate with lookup indexes. The product
// iteration order used for line-item enumeration follows the category order
// first, then product order within each category; products referencing an
// unknown category are appended last.
func NewCatalog(products []Product, categories []Category, warranties []WarrantyOption, payments []PaymentOption) *Catalog {
	c := &Catalog{
		Products:     products,
		Categories:   categories,
		Warranties:   warranties,
		Payments:     payments,
		productByID:  make(map[string]*Product, len(products)),
		categoryByID: make(map[string]*Category, len(categories)),
		warrantyByID: make(map[string]*WarrantyOption, len(warranties)),
		paymentByID:  make(map[string]*PaymentOption, len(payments)),
	}

	for i := range products {
		c.productByID[products[i].ID] = &c.Products[i]
	}
	for i := range categories {
		c.categoryByID[categories[i].ID] = &c.Categories[i]
	}
	for i := range warranties {
		c.warrantyByID[warranties[i].ID] = &c.Warranties[i]
	}
	for i := range payments {
		c.paymentByID[payments[i].ID] = &c.Payments[i]
	}

	c.ordered = make([]*Product, 0, len(products))
	seen := make(map[string]bool, len(products))
	for i := range c.Categories {
		for j := range c.Products {
			if c.Products[j].CategoryID == c.Categories[i].ID {
				c.ordered = append(c.ordered, &c.Products[j])
				seen[c.Products[j].ID] = true
			}
		}
	}
	for j := range c.Products {
		if !seen[c.Products[j].ID] {
			c.ordered = append(c.ordered, &c.Products[j])
		}
	}

	return c
}

// ProductByID returns the product with the given ID, or nil if the catalog
// does not contain it.
func (c *Catalog) ProductByID(id string) *Product {
	return c.productByID[id]
}

// CategoryByID returns the category with the given ID, or nil.
func (c *Catalog) CategoryByID(id string) *Category {
	return c.categoryByID[id]
}

// WarrantyByID returns the warranty option with the given ID, or nil.
func (c *Catalog) WarrantyByID(id string) *WarrantyOption {
	return c.warrantyByID[id]
}

// PaymentByID returns the payment option with the given ID, or nil.
func (c *Catalog) PaymentByID(id string) *PaymentOption {
	return c.paymentByID[id]
}

// OrderedProducts returns all products in catalog iteration order, grouped
// by category.
func (c *Catalog) OrderedProducts() []*Product {
	return c.ordered
}

// ProductsInCategory returns the products belonging to the given category,
// in catalog order.
func (c *Catalog) ProductsInCategory(categoryID string) []*Product {
	var out []*Product
	for _, p := range c.ordered {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}
