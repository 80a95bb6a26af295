// Package session implements the three-stage configuration workflow:
// component selection, project information capture, and quotation review.
// One Session owns all mutable state for one configuration, from creation
// to discard; the catalog it reads is shared and immutable.
package session

import (
	"time"

	"gatequote/internal/models"
	"gatequote/internal/pricing"
	"gatequote/internal/selection"
	"gatequote/internal/validation"
)

// Stage is the current workflow position.
type Stage int

const (
	StageSelecting Stage = iota + 1
	StageEnteringInfo
	StageReviewing
)

func (s Stage) String() string {
	switch s {
	case StageSelecting:
		return "selecting"
	case StageEnteringInfo:
		return "entering-info"
	case StageReviewing:
		return "reviewing"
	}
	return "unknown"
}

// MarshalText renders the stage name in JSON payloads.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RequiredCategoriesMessage is surfaced when the selection stage cannot be
// completed because a required category has no required product selected.
const RequiredCategoriesMessage = "Please select at least one required product from each required category."

// StepResult reports the outcome of a navigation intent.
type StepResult struct {
	Moved       bool                   `json:"moved"`
	Stage       Stage                  `json:"stage"`
	Message     string                 `json:"message,omitempty"`
	FieldErrors validation.FieldErrors `json:"field_errors,omitempty"`
}

// Session is one configuration workflow instance. All operations are
// synchronous and complete before the next intent; the session expects a
// single caller and does no locking of its own.
type Session struct {
	ID string

	catalog      *models.Catalog
	sel          *selection.Selection
	warrantyID   string
	paymentID    string
	projectInfo  models.ProjectInfo
	fieldErrors  validation.FieldErrors
	stage        Stage
	quotation    *models.Quotation
	validityDays int
}

// New creates a session at the selection stage. The selection starts from
// catalog default quantities, and the first warranty and payment options
// are preselected, mirroring how the configurator presents them.
func New(id string, catalog *models.Catalog, validityDays int) *Session {
	if validityDays <= 0 {
		validityDays = pricing.DefaultValidityDays
	}
	s := &Session{
		ID:           id,
		catalog:      catalog,
		sel:          selection.New(catalog),
		stage:        StageSelecting,
		validityDays: validityDays,
	}
	if len(catalog.Warranties) > 0 {
		s.warrantyID = catalog.Warranties[0].ID
	}
	if len(catalog.Payments) > 0 {
		s.paymentID = catalog.Payments[0].ID
	}
	return s
}

// Stage returns the current workflow stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// SetQuantity forwards a quantity-change intent to the selection.
func (s *Session) SetQuantity(productID string, quantity int) selection.QuantityChange {
	return s.sel.SetQuantity(productID, quantity)
}

// Quantity returns the selected quantity for a product.
func (s *Session) Quantity(productID string) int {
	return s.sel.Quantity(productID)
}

// Entries returns the selected line items in catalog order.
func (s *Session) Entries() []selection.Entry {
	return s.sel.Entries()
}

// SelectWarranty stores the chosen warranty id. An id the catalog does not
// know simply prices as zero; the choice itself is never an error.
func (s *Session) SelectWarranty(warrantyID string) {
	s.warrantyID = warrantyID
}

// SelectPayment stores the chosen payment plan id.
func (s *Session) SelectPayment(paymentID string) {
	s.paymentID = paymentID
}

// WarrantyID returns the currently selected warranty id.
func (s *Session) WarrantyID() string {
	return s.warrantyID
}

// PaymentID returns the currently selected payment plan id.
func (s *Session) PaymentID() string {
	return s.paymentID
}

// UpdateProjectInfo merges a partial update into the project info, then
// reconciles the errors reported by the last failed forward attempt: a field
// that now validates drops its error, a field that still fails keeps the
// current message. Fields never flagged stay silent until the next forward
// attempt.
func (s *Session) UpdateProjectInfo(patch models.ProjectInfoPatch) {
	s.projectInfo = patch.Apply(s.projectInfo)

	if len(s.fieldErrors) == 0 {
		return
	}
	current := validation.ProjectInfo(s.projectInfo)
	for key := range s.fieldErrors {
		if msg, still := current[key]; still {
			s.fieldErrors[key] = msg
		} else {
			delete(s.fieldErrors, key)
		}
	}
}

// ProjectInfo returns the current project info.
func (s *Session) ProjectInfo() models.ProjectInfo {
	return s.projectInfo
}

// FieldErrors returns the per-field errors from the last failed forward
// attempt out of the information stage.
func (s *Session) FieldErrors() validation.FieldErrors {
	return s.fieldErrors
}

// BasePrice is the selection total plus warranty price, before any payment
// plan multiplier.
func (s *Session) BasePrice() float64 {
	return pricing.BaseTotal(s.sel.Items(), s.warrantyPrice(), s.catalog)
}

// TotalPrice is the base price after the selected payment plan's
// multiplier.
func (s *Session) TotalPrice() float64 {
	return pricing.Total(s.sel.Items(), s.warrantyPrice(), s.catalog, s.paymentMultiplier())
}

// Breakdown returns the financing split of the current total under the
// selected payment plan.
func (s *Session) Breakdown() models.PaymentBreakdown {
	return pricing.Breakdown(s.TotalPrice(), s.catalog.PaymentByID(s.paymentID))
}

// Quotation returns the finalized quotation, or nil while none has been
// generated.
func (s *Session) Quotation() *models.Quotation {
	return s.quotation
}

// NextStep attempts the forward transition. Leaving the selection stage is
// gated by the required-category check; leaving the information stage is
// gated by project info validation and, on success, snapshots the
// quotation. The state does not change on a failed attempt.
func (s *Session) NextStep() StepResult {
	switch s.stage {
	case StageSelecting:
		if !s.sel.RequiredCategoriesSatisfied() {
			return StepResult{Stage: s.stage, Message: RequiredCategoriesMessage}
		}
		s.stage = StageEnteringInfo
		return StepResult{Moved: true, Stage: s.stage}

	case StageEnteringInfo:
		errs := validation.ProjectInfo(s.projectInfo)
		if len(errs) > 0 {
			s.fieldErrors = errs
			return StepResult{Stage: s.stage, FieldErrors: errs}
		}
		s.fieldErrors = nil
		s.quotation = s.buildQuotation()
		s.stage = StageReviewing
		return StepResult{Moved: true, Stage: s.stage}
	}

	return StepResult{Stage: s.stage}
}

// PreviousStep moves one stage back. It is never guarded; moving away from
// the review stage discards the generated quotation.
func (s *Session) PreviousStep() StepResult {
	switch s.stage {
	case StageEnteringInfo:
		s.stage = StageSelecting
		return StepResult{Moved: true, Stage: s.stage}
	case StageReviewing:
		s.quotation = nil
		s.stage = StageEnteringInfo
		return StepResult{Moved: true, Stage: s.stage}
	}
	return StepResult{Stage: s.stage}
}

func (s *Session) warrantyPrice() float64 {
	if w := s.catalog.WarrantyByID(s.warrantyID); w != nil {
		return w.Price
	}
	return 0
}

func (s *Session) paymentMultiplier() float64 {
	if p := s.catalog.PaymentByID(s.paymentID); p != nil {
		return p.Multiplier
	}
	return 1
}

func (s *Session) buildQuotation() *models.Quotation {
	now := time.Now()

	entries := s.sel.Entries()
	lines := make([]models.QuotationLine, 0, len(entries))
	for _, entry := range entries {
		product := s.catalog.ProductByID(entry.ProductID)
		lines = append(lines, models.QuotationLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			CategoryID:  product.CategoryID,
			Quantity:    entry.Quantity,
			UnitPrice:   product.UnitPrice,
			LineTotal:   product.UnitPrice * float64(entry.Quantity),
		})
	}

	q := &models.Quotation{
		Number:      pricing.GenerateQuotationNumber(),
		IssueDate:   now,
		ValidUntil:  pricing.ValidUntil(now, s.validityDays),
		ProjectInfo: s.projectInfo,
		Items:       s.sel.Items(),
		Lines:       lines,
		WarrantyID:  s.warrantyID,
		PaymentID:   s.paymentID,
		BasePrice:   s.BasePrice(),
		TotalPrice:  s.TotalPrice(),
	}
	if w := s.catalog.WarrantyByID(s.warrantyID); w != nil {
		q.WarrantyName = w.Name
	}
	if p := s.catalog.PaymentByID(s.paymentID); p != nil {
		q.PaymentName = p.Name
	}
	q.Breakdown = pricing.Breakdown(q.TotalPrice, s.catalog.PaymentByID(s.paymentID))
	return q
}
