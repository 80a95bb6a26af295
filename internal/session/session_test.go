package session_test

import (
	"regexp"
	"testing"

	"gatequote/internal/models"
	"gatequote/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *models.Catalog {
	return models.NewCatalog(
		[]models.Product{
			{ID: "controller-board", Name: "Access Controller Board", UnitPrice: 900, DefaultQuantity: 0, Required: true, CategoryID: "controller"},
			{ID: "local-server", Name: "Local Access Server", UnitPrice: 1200, DefaultQuantity: 0, Required: true, CategoryID: "controller"},
			{ID: "barrier-gate", Name: "Heavy Duty Barrier Gate", UnitPrice: 2400, DefaultQuantity: 0, CategoryID: "barrier"},
		},
		[]models.Category{
			{ID: "controller", Name: "Access Controller", Required: true},
			{ID: "barrier", Name: "Barrier Gate"},
		},
		[]models.WarrantyOption{
			{ID: "standard", Name: "Standard Warranty", Price: 0},
			{ID: "extended-2", Name: "Extended Warranty (2 Years)", Price: 2500},
		},
		[]models.PaymentOption{
			{ID: "one-off", Name: "One-time Purchase", Type: models.PaymentOneOff, Multiplier: 1},
			{ID: "lease", Name: "Lease to Own", Type: models.PaymentLease, Multiplier: 1.15, TermMonths: 24, DepositPercentage: 10},
			{ID: "rental", Name: "Rental", Type: models.PaymentRental, Multiplier: 0.7, TermMonths: 12, DepositPercentage: 15},
		},
	)
}

func fillProjectInfo(s *session.Session) {
	name := "Sunway Residensi Phase 2"
	location := "Petaling Jaya, Selangor"
	contact := "Aisha Rahman"
	phone := "+60 12-345 6789"
	email := "aisha@sunwayresidensi.com"
	s.UpdateProjectInfo(models.ProjectInfoPatch{
		Name:         &name,
		Location:     &location,
		ContactName:  &contact,
		ContactPhone: &phone,
		ContactEmail: &email,
	})
}

func selectStandardSet(s *session.Session) {
	s.SetQuantity("controller-board", 1)
	s.SetQuantity("local-server", 1)
	s.SetQuantity("barrier-gate", 4)
}

func TestNewSessionDefaults(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 0)

	assert.Equal(t, session.StageSelecting, s.Stage())
	assert.Equal(t, "standard", s.WarrantyID())
	assert.Equal(t, "one-off", s.PaymentID())
	assert.Nil(t, s.Quotation())
	assert.InDelta(t, 0.0, s.BasePrice(), 1e-9)
}

func TestNextStepGatedByRequiredCategories(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)

	result := s.NextStep()
	assert.False(t, result.Moved)
	assert.Equal(t, session.StageSelecting, result.Stage)
	assert.Equal(t, session.RequiredCategoriesMessage, result.Message)
	assert.Equal(t, session.StageSelecting, s.Stage())

	s.SetQuantity("controller-board", 1)
	result = s.NextStep()
	assert.True(t, result.Moved)
	assert.Equal(t, session.StageEnteringInfo, s.Stage())
}

func TestNextStepGatedByProjectInfo(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)

	result := s.NextStep()
	assert.False(t, result.Moved)
	assert.Equal(t, session.StageEnteringInfo, s.Stage())
	assert.Len(t, result.FieldErrors, 5)
	assert.Nil(t, s.Quotation())
}

func TestNextStepWithInvalidEmailSurfacesSingleError(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)

	fillProjectInfo(s)
	badEmail := "not-an-email"
	s.UpdateProjectInfo(models.ProjectInfoPatch{ContactEmail: &badEmail})

	result := s.NextStep()
	assert.False(t, result.Moved)
	assert.Equal(t, session.StageEnteringInfo, s.Stage())
	assert.Len(t, result.FieldErrors, 1)
	assert.Equal(t, "Please enter a valid email address", result.FieldErrors["contact_email"])
}

func TestUpdateProjectInfoClearsErrorsForFixedFields(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)
	require.False(t, s.NextStep().Moved)
	require.Len(t, s.FieldErrors(), 5)

	name := "Sunway Residensi Phase 2"
	s.UpdateProjectInfo(models.ProjectInfoPatch{Name: &name})

	assert.Len(t, s.FieldErrors(), 4)
	assert.NotContains(t, s.FieldErrors(), "name")
}

func TestUpdateProjectInfoKeepsErrorsForStillInvalidFields(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)
	require.False(t, s.NextStep().Moved)
	require.Equal(t, "Contact email is required", s.FieldErrors()["contact_email"])

	// A non-empty but malformed value keeps the field flagged, with the
	// message for the rule it currently fails.
	badEmail := "not-an-email"
	s.UpdateProjectInfo(models.ProjectInfoPatch{ContactEmail: &badEmail})
	assert.Equal(t, "Please enter a valid email address", s.FieldErrors()["contact_email"])

	goodEmail := "aisha@sunway.example.com"
	s.UpdateProjectInfo(models.ProjectInfoPatch{ContactEmail: &goodEmail})
	assert.NotContains(t, s.FieldErrors(), "contact_email")
}

func TestQuotationSnapshot(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)
	fillProjectInfo(s)

	result := s.NextStep()
	require.True(t, result.Moved)
	assert.Equal(t, session.StageReviewing, s.Stage())

	q := s.Quotation()
	require.NotNil(t, q)
	assert.Regexp(t, regexp.MustCompile(`^QT-\d{4}-\d{4}$`), q.Number)
	assert.Equal(t, q.IssueDate.AddDate(0, 0, 30), q.ValidUntil)
	assert.InDelta(t, 11700.0, q.BasePrice, 1e-9)
	assert.InDelta(t, 11700.0, q.TotalPrice, 1e-9)
	assert.Equal(t, "standard", q.WarrantyID)
	assert.Equal(t, "one-off", q.PaymentID)
	assert.Equal(t, "Aisha Rahman", q.ProjectInfo.ContactName)

	// Line items come out in catalog order.
	require.Len(t, q.Lines, 3)
	assert.Equal(t, "controller-board", q.Lines[0].ProductID)
	assert.Equal(t, "local-server", q.Lines[1].ProductID)
	assert.Equal(t, "barrier-gate", q.Lines[2].ProductID)
	assert.InDelta(t, 9600.0, q.Lines[2].LineTotal, 1e-9)

	// One-off breakdown: everything upfront.
	assert.InDelta(t, 11700.0, q.Breakdown.Deposit, 1e-9)
	assert.Nil(t, q.Breakdown.MonthlyPayment)
}

func TestQuotationWithRentalPlan(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	s.SelectPayment("rental")
	require.True(t, s.NextStep().Moved)
	fillProjectInfo(s)
	require.True(t, s.NextStep().Moved)

	q := s.Quotation()
	require.NotNil(t, q)
	assert.InDelta(t, 11700.0, q.BasePrice, 1e-9)
	assert.InDelta(t, 8190.0, q.TotalPrice, 1e-9)
	require.NotNil(t, q.Breakdown.MonthlyPayment)
	assert.InDelta(t, 477.75, *q.Breakdown.MonthlyPayment, 1e-9)
	assert.InDelta(t, 1228.50, q.Breakdown.Deposit, 1e-9)
}

func TestQuotationIsASnapshot(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)
	fillProjectInfo(s)
	require.True(t, s.NextStep().Moved)

	q := s.Quotation()
	require.NotNil(t, q)

	// Changing inputs afterwards must not touch the generated snapshot.
	s.SetQuantity("barrier-gate", 10)
	s.SelectWarranty("extended-2")

	assert.InDelta(t, 11700.0, q.BasePrice, 1e-9)
	assert.Equal(t, 4, q.Items["barrier-gate"])
	assert.Equal(t, "standard", q.WarrantyID)
	assert.Same(t, q, s.Quotation())
}

func TestPreviousStepDiscardsQuotation(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)
	fillProjectInfo(s)
	require.True(t, s.NextStep().Moved)

	first := s.Quotation()
	require.NotNil(t, first)

	result := s.PreviousStep()
	assert.True(t, result.Moved)
	assert.Equal(t, session.StageEnteringInfo, s.Stage())
	assert.Nil(t, s.Quotation())

	// A fresh quotation is generated on re-entry.
	require.True(t, s.NextStep().Moved)
	second := s.Quotation()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestPreviousStepAtSelectingIsNoOp(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)

	result := s.PreviousStep()
	assert.False(t, result.Moved)
	assert.Equal(t, session.StageSelecting, s.Stage())
}

func TestNextStepAtReviewingIsNoOp(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)
	require.True(t, s.NextStep().Moved)
	fillProjectInfo(s)
	require.True(t, s.NextStep().Moved)

	result := s.NextStep()
	assert.False(t, result.Moved)
	assert.Equal(t, session.StageReviewing, s.Stage())
	assert.NotNil(t, s.Quotation())
}

func TestDerivedPricesFollowSelections(t *testing.T) {
	s := session.New("sess-1", testCatalog(), 30)
	selectStandardSet(s)

	assert.InDelta(t, 11700.0, s.BasePrice(), 1e-9)
	assert.InDelta(t, 11700.0, s.TotalPrice(), 1e-9)

	s.SelectWarranty("extended-2")
	assert.InDelta(t, 14200.0, s.BasePrice(), 1e-9)

	s.SelectPayment("lease")
	assert.InDelta(t, 14200.0*1.15, s.TotalPrice(), 1e-9)

	b := s.Breakdown()
	require.NotNil(t, b.MonthlyPayment)
	assert.InDelta(t, b.TotalCost, b.Deposit+*b.MonthlyPayment*float64(*b.TermMonths), 1e-6)

	// Unknown ids degrade to neutral pricing rather than failing.
	s.SelectWarranty("no-such-warranty")
	s.SelectPayment("no-such-plan")
	assert.InDelta(t, 11700.0, s.BasePrice(), 1e-9)
	assert.InDelta(t, 11700.0, s.TotalPrice(), 1e-9)
}
