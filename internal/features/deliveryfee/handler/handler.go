package handler

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"delivery-fees/internal/core/logger"
	"delivery-fees/internal/features/deliveryfee/domain"
	"delivery-fees/internal/features/deliveryfee/ports"
	"delivery-fees/internal/features/deliveryfee/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminKeyHeader carries the shared admin key.
const AdminKeyHeader = "X-Admin-Key"

// FeeHandler handles HTTP requests for delivery fee parameters and quotes.
type FeeHandler struct {
	service  ports.FeeService
	adminKey string
}

// NewFeeHandler creates a new FeeHandler. adminKey is ADMIN_API_KEY, which
// config requires to be non-blank; an empty key still never matches.
func NewFeeHandler(service ports.FeeService, adminKey string) *FeeHandler {
	return &FeeHandler{
		service:  service,
		adminKey: adminKey,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Field names the rejected input, for validation errors.
	Field string `json:"field,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// QuoteRequest represents the request body for pricing a delivery.
type QuoteRequest struct {
	// Distance is the trip distance in km.
	Distance *float64 `json:"distance"`
	// Weight is the package weight in kg.
	Weight *float64 `json:"weight"`
	// Weather is one of normal, rainy, extreme.
	Weather string `json:"weather"`
	// ParametersVersion is the version returned earlier in the checkout session. Optional.
	ParametersVersion string `json:"parametersVersion,omitempty"`
}

// GetParameters handles GET /delivery-fee/parameters.
// @Summary Get current fee parameters
// @Description Returns the delivery fee parameters currently in effect and their version.
// @Tags DeliveryFee
// @Produce json
// @Success 200 {object} domain.VersionedParameters
// @Router /delivery-fee/parameters [get]
func (h *FeeHandler) GetParameters(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Parameters(c.Context()))
}

// UpdateParameters handles PATCH /delivery-fee/parameters.
// @Summary Update fee parameters
// @Description Merges the provided fields onto the current parameters. Omitted fields keep their value; unknown fields are rejected.
// @Tags DeliveryFee
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param parameters body domain.ParameterPatch true "Fields to change"
// @Success 200 {object} domain.DeliveryFeeParameters
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /delivery-fee/parameters [patch]
func (h *FeeHandler) UpdateParameters(c *fiber.Ctx) error {
	var patch domain.ParameterPatch
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return h.respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
	}

	params, err := h.service.UpdateParameters(c.Context(), h.isAdmin(c), patch)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(params)
}

// ResetParameters handles POST /delivery-fee/parameters/reset.
// @Summary Restore default fee parameters
// @Description Replaces the current parameters with the factory defaults.
// @Tags DeliveryFee
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} domain.DeliveryFeeParameters
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /delivery-fee/parameters/reset [post]
func (h *FeeHandler) ResetParameters(c *fiber.Ctx) error {
	params, err := h.service.ResetParameters(c.Context(), h.isAdmin(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(params)
}

// Quote handles POST /delivery-fee/quote.
// @Summary Price a delivery
// @Description Computes the itemized delivery fee and returns it with the parameters and version used.
// @Tags DeliveryFee
// @Accept json
// @Produce json
// @Param quote body QuoteRequest true "Delivery details"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} ErrorResponse
// @Router /delivery-fee/quote [post]
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return h.respondError(c, http.StatusBadRequest, "Invalid request body", "")
	}

	if req.Distance == nil {
		return h.respondError(c, http.StatusBadRequest, "distance is required", domain.FieldDistance)
	}
	if req.Weight == nil {
		return h.respondError(c, http.StatusBadRequest, "weight is required", domain.FieldWeight)
	}

	weather, err := domain.ParseWeather(req.Weather)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	quote, err := h.service.Quote(c.Context(), domain.QuoteRequest{
		Distance:          *req.Distance,
		Weight:            *req.Weight,
		Weather:           weather,
		ParametersVersion: req.ParametersVersion,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(quote)
}

func (h *FeeHandler) isAdmin(c *fiber.Ctx) bool {
	if h.adminKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Get(AdminKeyHeader)), []byte(h.adminKey)) == 1
}

func (h *FeeHandler) handleServiceError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return h.respondError(c, http.StatusBadRequest, verr.Error(), verr.Field)
	case errors.Is(err, service.ErrAdminRequired):
		return h.respondError(c, http.StatusForbidden, "Admin privileges required", "")
	case errors.Is(err, service.ErrPersistence):
		logger.Get().Error("Fee parameters not persisted", zap.String("ray_id", rayID(c)), zap.Error(err))
		return h.respondError(c, http.StatusServiceUnavailable, "Fee parameters could not be saved; settings unchanged", "")
	default:
		logger.Get().Error("Delivery fee request failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return h.respondError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}

func (h *FeeHandler) respondError(c *fiber.Ctx, status int, message, field string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		Field:   field,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
