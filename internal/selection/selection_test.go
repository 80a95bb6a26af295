package selection_test

import (
	"testing"

	"gatequote/internal/models"
	"gatequote/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *models.Catalog {
	maxCards := 10000
	return models.NewCatalog(
		[]models.Product{
			{ID: "controller-board", Name: "Access Controller Board", UnitPrice: 900, MinQuantity: 0, DefaultQuantity: 0, Required: true, CategoryID: "controller"},
			{ID: "barrier-gate", Name: "Heavy Duty Barrier Gate", UnitPrice: 2400, MinQuantity: 1, DefaultQuantity: 4, Required: true, CategoryID: "barrier"},
			{ID: "push-button", Name: "Barrier Push Button", UnitPrice: 50, DefaultQuantity: 4, CategoryID: "button"},
			{ID: "card-bw-one", Name: "UHF RFID Access Card", UnitPrice: 15, DefaultQuantity: 1000, MaxQuantity: &maxCards, CategoryID: "accessCard"},
		},
		[]models.Category{
			{ID: "controller", Name: "Access Controller", Required: true},
			{ID: "barrier", Name: "Barrier Gate", Required: true},
			{ID: "button", Name: "Control Buttons"},
			{ID: "accessCard", Name: "Access Cards"},
		},
		nil, nil,
	)
}

func TestNewStartsFromDefaultQuantities(t *testing.T) {
	sel := selection.New(testCatalog())

	assert.Equal(t, 0, sel.Quantity("controller-board"))
	assert.Equal(t, 4, sel.Quantity("barrier-gate"))
	assert.Equal(t, 1000, sel.Quantity("card-bw-one"))
	assert.Equal(t, 0, sel.Quantity("no-such-product"))
}

func TestSetQuantityApplied(t *testing.T) {
	sel := selection.New(testCatalog())

	change := sel.SetQuantity("push-button", 6)
	assert.Equal(t, selection.Applied, change.Outcome)
	assert.Equal(t, 6, change.Applied)
	assert.Equal(t, 6, sel.Quantity("push-button"))
}

func TestSetQuantityIdempotent(t *testing.T) {
	sel := selection.New(testCatalog())

	first := sel.SetQuantity("push-button", 6)
	second := sel.SetQuantity("push-button", 6)

	assert.Equal(t, first, second)
	assert.Equal(t, 6, sel.Quantity("push-button"))
}

func TestSetQuantityClampsToBounds(t *testing.T) {
	sel := selection.New(testCatalog())

	// Below the minimum: clamped up.
	change := sel.SetQuantity("barrier-gate", 0)
	assert.Equal(t, selection.Clamped, change.Outcome)
	assert.Equal(t, 1, change.Applied)
	assert.Contains(t, change.Reason, "minimum")
	assert.Equal(t, 1, sel.Quantity("barrier-gate"))

	// Above the maximum: clamped down.
	change = sel.SetQuantity("card-bw-one", 50000)
	assert.Equal(t, selection.Clamped, change.Outcome)
	assert.Equal(t, 10000, change.Applied)
	assert.Contains(t, change.Reason, "maximum")
	assert.Equal(t, 10000, sel.Quantity("card-bw-one"))
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	sel := selection.New(testCatalog())
	sel.SetQuantity("push-button", 6)

	change := sel.SetQuantity("push-button", -1)
	assert.Equal(t, selection.Rejected, change.Outcome)
	assert.Equal(t, 6, change.Applied)
	assert.Equal(t, 6, sel.Quantity("push-button"), "rejected change must leave the selection untouched")
}

func TestSetQuantityStoresUnknownProduct(t *testing.T) {
	sel := selection.New(testCatalog())

	change := sel.SetQuantity("discontinued-cam", 3)
	assert.Equal(t, selection.Applied, change.Outcome)
	assert.Equal(t, 3, sel.Quantity("discontinued-cam"))

	// Unknown ids are stored but never enumerated as line items.
	for _, entry := range sel.Entries() {
		assert.NotEqual(t, "discontinued-cam", entry.ProductID)
	}
}

func TestEntriesFollowCatalogOrder(t *testing.T) {
	sel := selection.New(testCatalog())
	sel.SetQuantity("controller-board", 1)
	sel.SetQuantity("push-button", 2)

	entries := sel.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "controller-board", entries[0].ProductID)
	assert.Equal(t, "barrier-gate", entries[1].ProductID)
	assert.Equal(t, "push-button", entries[2].ProductID)
	assert.Equal(t, "card-bw-one", entries[3].ProductID)
}

func TestRequiredCategories(t *testing.T) {
	sel := selection.New(testCatalog())

	// barrier-gate defaults to 4, controller-board to 0: the controller
	// category is the one left unsatisfied.
	missing := sel.MissingRequiredCategories()
	require.Len(t, missing, 1)
	assert.Equal(t, "controller", missing[0].ID)
	assert.False(t, sel.RequiredCategoriesSatisfied())

	sel.SetQuantity("controller-board", 1)
	assert.True(t, sel.RequiredCategoriesSatisfied())
	assert.Empty(t, sel.MissingRequiredCategories())
}

func TestCategoriesWithoutRequiredProductsPass(t *testing.T) {
	catalog := models.NewCatalog(
		[]models.Product{
			{ID: "router", Name: "4G Gigabit Router", CategoryID: "other", DefaultQuantity: 0},
		},
		[]models.Category{
			{ID: "other", Name: "Other Equipment", Required: true},
		},
		nil, nil,
	)

	sel := selection.New(catalog)
	assert.True(t, sel.RequiredCategoriesSatisfied(), "a required category with no required products trivially passes")
}
