package services

import (
	"fmt"
	"log"
	"sync"

	"gatequote/internal/models"
	"gatequote/internal/selection"
	"gatequote/internal/session"

	"github.com/google/uuid"
)

// Publisher hands quotation-generated events to the dispatch queue. It is
// satisfied by *rabbitmq.Client.
type Publisher interface {
	PublishQuotationGenerated(event map[string]interface{}) error
}

// ConfiguratorService owns the configuration sessions and hands finalized
// quotations over to the dispatch collaborator. The catalog it serves is
// immutable and shared across all sessions.
type ConfiguratorService struct {
	catalog      *models.Catalog
	publisher    Publisher
	validityDays int

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewConfiguratorService creates a new ConfiguratorService. The publisher
// may be nil, in which case generated quotations are not dispatched.
func NewConfiguratorService(catalog *models.Catalog, publisher Publisher, validityDays int) *ConfiguratorService {
	return &ConfiguratorService{
		catalog:      catalog,
		publisher:    publisher,
		validityDays: validityDays,
		sessions:     make(map[string]*session.Session),
	}
}

// Catalog returns the shared catalog.
func (s *ConfiguratorService) Catalog() *models.Catalog {
	return s.catalog
}

// CreateSession starts a new configuration session.
func (s *ConfiguratorService) CreateSession() *session.Session {
	sess := session.New(uuid.New().String(), s.catalog, s.validityDays)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	log.Printf("Configuration session %s created", sess.ID)
	return sess
}

// GetSession returns the session with the given id.
func (s *ConfiguratorService) GetSession(id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session with ID %s not found", id)
	}
	return sess, nil
}

// EndSession discards the session with the given id.
func (s *ConfiguratorService) EndSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session with ID %s not found", id)
	}
	delete(s.sessions, id)
	log.Printf("Configuration session %s ended", id)
	return nil
}

// SetQuantity forwards a quantity-change intent to the session.
func (s *ConfiguratorService) SetQuantity(sessionID, productID string, quantity int) (selection.QuantityChange, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return selection.QuantityChange{}, err
	}
	return sess.SetQuantity(productID, quantity), nil
}

// NextStep attempts the forward transition for a session. When the session
// enters the review stage, the freshly generated quotation is published for
// dispatch.
func (s *ConfiguratorService) NextStep(sessionID string) (session.StepResult, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return session.StepResult{}, err
	}

	result := sess.NextStep()
	if result.Moved && result.Stage == session.StageReviewing {
		s.publishQuotation(sess)
	}
	return result, nil
}

// PreviousStep moves a session one stage back.
func (s *ConfiguratorService) PreviousStep(sessionID string) (session.StepResult, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return session.StepResult{}, err
	}
	return sess.PreviousStep(), nil
}

// publishQuotation hands the finalized quotation to the dispatch
// collaborator. Dispatch failure never affects the session: the quotation
// stays available for review regardless.
func (s *ConfiguratorService) publishQuotation(sess *session.Session) {
	quotation := sess.Quotation()
	if quotation == nil {
		return
	}
	if s.publisher == nil {
		log.Println("Quotation publisher is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"event":            "quotation.generated",
		"session_id":       sess.ID,
		"quotation_number": quotation.Number,
		"contact_email":    quotation.ProjectInfo.ContactEmail,
		"total_price":      quotation.TotalPrice,
		"quotation":        quotation,
	}

	if err := s.publisher.PublishQuotationGenerated(event); err != nil {
		log.Printf("Warning: Failed to publish quotation event for %s: %v", quotation.Number, err)
		return
	}
	log.Printf("Successfully published quotation event for %s", quotation.Number)
}
