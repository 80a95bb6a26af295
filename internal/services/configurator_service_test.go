package services

import (
	"testing"

	"gatequote/internal/models"
	"gatequote/internal/selection"
	"gatequote/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishQuotationGenerated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func testCatalog() *models.Catalog {
	maxGate := 4
	products := []models.Product{
		{ID: "barrier-gate", Name: "Barrier Gate", UnitPrice: 5000, DefaultQuantity: 1, MinQuantity: 1, MaxQuantity: &maxGate, CategoryID: "gates"},
		{ID: "controller-board", Name: "Controller Board", UnitPrice: 1200, DefaultQuantity: 1, MinQuantity: 1, CategoryID: "controllers", Required: true},
	}
	categories := []models.Category{
		{ID: "gates", Name: "Gates"},
		{ID: "controllers", Name: "Controllers", Required: true},
	}
	warranties := []models.WarrantyOption{
		{ID: "standard", Name: "Standard Warranty", Duration: "1 year", Price: 0},
	}
	payments := []models.PaymentOption{
		{ID: "one-off", Name: "One-off Purchase", Type: models.PaymentOneOff, Multiplier: 1},
		{ID: "rental", Name: "Rental Plan", Type: models.PaymentRental, Multiplier: 0.7, TermMonths: 12, DepositPercentage: 15},
	}
	return models.NewCatalog(products, categories, warranties, payments)
}

func completeFirstStage(t *testing.T, svc *ConfiguratorService, sessionID string) {
	t.Helper()

	result, err := svc.NextStep(sessionID)
	assert.NoError(t, err)
	assert.True(t, result.Moved)
	assert.Equal(t, session.StageEnteringInfo, result.Stage)

	sess, err := svc.GetSession(sessionID)
	assert.NoError(t, err)
	name := "Warehouse Gate Upgrade"
	location := "Lot 12, Jalan Industri"
	contact := "Aminah Binti Yusof"
	phone := "+60 12-345 6789"
	email := "aminah@example.com"
	sess.UpdateProjectInfo(models.ProjectInfoPatch{
		Name:         &name,
		Location:     &location,
		ContactName:  &contact,
		ContactPhone: &phone,
		ContactEmail: &email,
	})
}

func TestCreateAndGetSession(t *testing.T) {
	svc := NewConfiguratorService(testCatalog(), nil, 0)

	sess := svc.CreateSession()
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, session.StageSelecting, sess.Stage())

	got, err := svc.GetSession(sess.ID)
	assert.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestGetSessionNotFound(t *testing.T) {
	svc := NewConfiguratorService(testCatalog(), nil, 0)

	_, err := svc.GetSession("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEndSession(t *testing.T) {
	svc := NewConfiguratorService(testCatalog(), nil, 0)
	sess := svc.CreateSession()

	assert.NoError(t, svc.EndSession(sess.ID))
	_, err := svc.GetSession(sess.ID)
	assert.Error(t, err)

	assert.Error(t, svc.EndSession(sess.ID))
}

func TestSetQuantityThroughService(t *testing.T) {
	svc := NewConfiguratorService(testCatalog(), nil, 0)
	sess := svc.CreateSession()

	change, err := svc.SetQuantity(sess.ID, "barrier-gate", 2)
	assert.NoError(t, err)
	assert.Equal(t, selection.Applied, change.Outcome)
	assert.Equal(t, 2, sess.Quantity("barrier-gate"))

	_, err = svc.SetQuantity("missing", "barrier-gate", 2)
	assert.Error(t, err)
}

func TestNextStepPublishesQuotation(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishQuotationGenerated", mock.Anything).Return(nil)

	svc := NewConfiguratorService(testCatalog(), publisher, 0)
	sess := svc.CreateSession()
	completeFirstStage(t, svc, sess.ID)

	result, err := svc.NextStep(sess.ID)
	assert.NoError(t, err)
	assert.True(t, result.Moved)
	assert.Equal(t, session.StageReviewing, result.Stage)

	publisher.AssertNumberOfCalls(t, "PublishQuotationGenerated", 1)
	event := publisher.Calls[0].Arguments.Get(0).(map[string]interface{})
	assert.Equal(t, "quotation.generated", event["event"])
	assert.Equal(t, sess.ID, event["session_id"])
	assert.Equal(t, "aminah@example.com", event["contact_email"])
	assert.InDelta(t, 6200.0, event["total_price"].(float64), 0.001)
	assert.Same(t, sess.Quotation(), event["quotation"])
}

func TestNextStepBlockedDoesNotPublish(t *testing.T) {
	publisher := new(MockPublisher)

	svc := NewConfiguratorService(testCatalog(), publisher, 0)
	sess := svc.CreateSession()
	completeFirstStage(t, svc, sess.ID)

	// Leave a required field blank again so the transition is refused.
	empty := ""
	sess.UpdateProjectInfo(models.ProjectInfoPatch{ContactEmail: &empty})

	result, err := svc.NextStep(sess.ID)
	assert.NoError(t, err)
	assert.False(t, result.Moved)
	publisher.AssertNotCalled(t, "PublishQuotationGenerated", mock.Anything)
}

func TestPublishFailureDoesNotBlockReview(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishQuotationGenerated", mock.Anything).Return(assert.AnError)

	svc := NewConfiguratorService(testCatalog(), publisher, 0)
	sess := svc.CreateSession()
	completeFirstStage(t, svc, sess.ID)

	result, err := svc.NextStep(sess.ID)
	assert.NoError(t, err)
	assert.True(t, result.Moved)
	assert.NotNil(t, sess.Quotation())
}

func TestNilPublisherSkipsDispatch(t *testing.T) {
	svc := NewConfiguratorService(testCatalog(), nil, 0)
	sess := svc.CreateSession()
	completeFirstStage(t, svc, sess.ID)

	result, err := svc.NextStep(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, session.StageReviewing, result.Stage)
	assert.NotNil(t, sess.Quotation())
}

func TestPreviousStepThroughService(t *testing.T) {
	svc := NewConfiguratorService(testCatalog(), nil, 0)
	sess := svc.CreateSession()
	completeFirstStage(t, svc, sess.ID)

	result, err := svc.PreviousStep(sess.ID)
	assert.NoError(t, err)
	assert.True(t, result.Moved)
	assert.Equal(t, session.StageSelecting, result.Stage)
}
