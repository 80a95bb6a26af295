package handlers

import (
	"log"

	"gatequote/internal/models"
	"gatequote/internal/services"
	"gatequote/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles HTTP requests for configuration sessions.
type SessionHandler struct {
	service *services.ConfiguratorService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service *services.ConfiguratorService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// RegisterRoutes registers the session routes with the Fiber app.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/sessions")
	sessionRoutes.Post("/", h.HandleCreateSession)
	sessionRoutes.Get("/:id", h.HandleGetSession)
	sessionRoutes.Delete("/:id", h.HandleEndSession)
	sessionRoutes.Put("/:id/quantity", h.HandleSetQuantity)
	sessionRoutes.Put("/:id/warranty", h.HandleSelectWarranty)
	sessionRoutes.Put("/:id/payment", h.HandleSelectPayment)
	sessionRoutes.Put("/:id/project-info", h.HandleUpdateProjectInfo)
	sessionRoutes.Post("/:id/next", h.HandleNextStep)
	sessionRoutes.Post("/:id/previous", h.HandlePreviousStep)
	sessionRoutes.Get("/:id/quotation", h.HandleGetQuotation)
}

// sessionView is the response shape shared by all session endpoints.
func sessionView(sess *session.Session) fiber.Map {
	return fiber.Map{
		"id":           sess.ID,
		"stage":        sess.Stage(),
		"items":        sess.Entries(),
		"warranty_id":  sess.WarrantyID(),
		"payment_id":   sess.PaymentID(),
		"project_info": sess.ProjectInfo(),
		"field_errors": sess.FieldErrors(),
		"base_price":   sess.BasePrice(),
		"total_price":  sess.TotalPrice(),
		"breakdown":    sess.Breakdown(),
	}
}

func sessionNotFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Session with ID " + id + " not found",
	})
}

// HandleCreateSession starts a new configuration session.
func (h *SessionHandler) HandleCreateSession(c *fiber.Ctx) error {
	sess := h.service.CreateSession()
	return c.Status(fiber.StatusCreated).JSON(sessionView(sess))
}

// HandleGetSession returns the current state of a session.
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	sess, err := h.service.GetSession(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	return c.JSON(sessionView(sess))
}

// HandleEndSession discards a session.
func (h *SessionHandler) HandleEndSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if err := h.service.EndSession(sessionID); err != nil {
		return sessionNotFound(c, sessionID)
	}
	return c.JSON(fiber.Map{
		"message": "Session ended",
	})
}

// HandleSetQuantity applies a quantity-change intent and reports how it was
// resolved: applied as requested, clamped to the product's limits, or
// rejected without touching the selection.
func (h *SessionHandler) HandleSetQuantity(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var request struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Printf("Error parsing quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if request.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}

	change, err := h.service.SetQuantity(sessionID, request.ProductID, request.Quantity)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}

	sess, err := h.service.GetSession(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	return c.JSON(fiber.Map{
		"change":  change,
		"session": sessionView(sess),
	})
}

// HandleSelectWarranty records the chosen warranty tier.
func (h *SessionHandler) HandleSelectWarranty(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var request struct {
		WarrantyID string `json:"warranty_id"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Printf("Error parsing warranty request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sess, err := h.service.GetSession(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	sess.SelectWarranty(request.WarrantyID)
	return c.JSON(sessionView(sess))
}

// HandleSelectPayment records the chosen payment plan.
func (h *SessionHandler) HandleSelectPayment(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var request struct {
		PaymentID string `json:"payment_id"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Printf("Error parsing payment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sess, err := h.service.GetSession(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	sess.SelectPayment(request.PaymentID)
	return c.JSON(sessionView(sess))
}

// HandleUpdateProjectInfo merges a partial project-info update into the
// session. Fields absent from the body are left untouched.
func (h *SessionHandler) HandleUpdateProjectInfo(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var patch models.ProjectInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing project info request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sess, err := h.service.GetSession(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	sess.UpdateProjectInfo(patch)
	return c.JSON(sessionView(sess))
}

// HandleNextStep attempts the forward stage transition. A refused transition
// returns 422 carrying the gate message and any field errors.
func (h *SessionHandler) HandleNextStep(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	result, err := h.service.NextStep(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	if !result.Moved {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	return c.JSON(result)
}

// HandlePreviousStep moves the session one stage back.
func (h *SessionHandler) HandlePreviousStep(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	result, err := h.service.PreviousStep(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	return c.JSON(result)
}

// HandleGetQuotation returns the quotation generated when the session
// entered the review stage.
func (h *SessionHandler) HandleGetQuotation(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	sess, err := h.service.GetSession(sessionID)
	if err != nil {
		return sessionNotFound(c, sessionID)
	}
	quotation := sess.Quotation()
	if quotation == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "No quotation has been generated for this session yet",
		})
	}
	return c.JSON(quotation)
}
