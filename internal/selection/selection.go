// Package selection tracks the quantities a user has chosen for each
// catalog product during one configuration session.
package selection

import (
	"fmt"

	"gatequote/internal/models"
)

// Outcome classifies the result of a quantity-change intent.
type Outcome string

const (
	// Applied means the requested quantity was stored as-is.
	Applied Outcome = "applied"
	// Clamped means the requested quantity was outside the product's
	// bounds and the nearest bound was stored instead.
	Clamped Outcome = "clamped"
	// Rejected means the request was invalid and the selection is
	// unchanged.
	Rejected Outcome = "rejected"
)

// QuantityChange reports what a SetQuantity call did, so the presentation
// layer can decide whether to surface clamping to the user.
type QuantityChange struct {
	Outcome   Outcome `json:"outcome"`
	ProductID string  `json:"product_id"`
	Requested int     `json:"requested"`
	Applied   int     `json:"applied"`
	Reason    string  `json:"reason,omitempty"`
}

// Entry is one selected product with a positive quantity.
type Entry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Selection maps product ids to chosen quantities. Ids not present count as
// quantity zero. A new selection starts from each product's default
// quantity; quantities change only through SetQuantity and are never pruned.
type Selection struct {
	catalog    *models.Catalog
	quantities map[string]int
}

// New creates a selection over the given catalog, pre-populated with every
// product's default quantity.
func New(catalog *models.Catalog) *Selection {
	s := &Selection{
		catalog:    catalog,
		quantities: make(map[string]int, len(catalog.Products)),
	}
	for i := range catalog.Products {
		s.quantities[catalog.Products[i].ID] = catalog.Products[i].DefaultQuantity
	}
	return s
}

// SetQuantity stores a quantity for a product. Negative quantities are
// rejected. Quantities outside a known product's min/max bounds are clamped
// to the nearest bound. Unknown product ids are stored unchanged; pricing
// skips them, so a stale selection referencing a removed product is
// harmless.
func (s *Selection) SetQuantity(productID string, quantity int) QuantityChange {
	change := QuantityChange{
		ProductID: productID,
		Requested: quantity,
	}

	if quantity < 0 {
		change.Outcome = Rejected
		change.Applied = s.Quantity(productID)
		change.Reason = "quantity must be a non-negative integer"
		return change
	}

	applied := quantity
	change.Outcome = Applied
	if product := s.catalog.ProductByID(productID); product != nil {
		if applied < product.MinQuantity {
			applied = product.MinQuantity
			change.Outcome = Clamped
			change.Reason = fmt.Sprintf("minimum quantity is %d", product.MinQuantity)
		}
		if product.MaxQuantity != nil && applied > *product.MaxQuantity {
			applied = *product.MaxQuantity
			change.Outcome = Clamped
			change.Reason = fmt.Sprintf("maximum quantity is %d", *product.MaxQuantity)
		}
	}

	s.quantities[productID] = applied
	change.Applied = applied
	return change
}

// Quantity returns the stored quantity for a product, or zero if none.
func (s *Selection) Quantity(productID string) int {
	return s.quantities[productID]
}

// Items returns a copy of the full product→quantity mapping.
func (s *Selection) Items() map[string]int {
	items := make(map[string]int, len(s.quantities))
	for id, qty := range s.quantities {
		items[id] = qty
	}
	return items
}

// Entries returns the selected products with quantity above zero, in
// catalog iteration order so line items group consistently by category.
// Quantities stored for unknown product ids are not enumerable and are
// omitted.
func (s *Selection) Entries() []Entry {
	var entries []Entry
	for _, product := range s.catalog.OrderedProducts() {
		if qty := s.quantities[product.ID]; qty > 0 {
			entries = append(entries, Entry{ProductID: product.ID, Quantity: qty})
		}
	}
	return entries
}

// RequiredCategoriesSatisfied reports whether every required category that
// contains at least one required product has such a product selected.
// Categories without required products trivially pass.
func (s *Selection) RequiredCategoriesSatisfied() bool {
	return len(s.MissingRequiredCategories()) == 0
}

// MissingRequiredCategories returns the required categories whose required
// products are all unselected, for user-facing gate failure messages.
func (s *Selection) MissingRequiredCategories() []*models.Category {
	var missing []*models.Category
	for i := range s.catalog.Categories {
		category := &s.catalog.Categories[i]
		if !category.Required {
			continue
		}
		hasRequired := false
		satisfied := false
		for _, product := range s.catalog.ProductsInCategory(category.ID) {
			if !product.Required {
				continue
			}
			hasRequired = true
			if s.quantities[product.ID] > 0 {
				satisfied = true
				break
			}
		}
		if hasRequired && !satisfied {
			missing = append(missing, category)
		}
	}
	return missing
}
