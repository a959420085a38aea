// Package handler contains the HTTP handlers of the checkout API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/application/dto"
	"github.com/hapkiduki/checkout-go/internal/application/port"
	"github.com/hapkiduki/checkout-go/internal/domain/domainerror"
	"github.com/hapkiduki/checkout-go/internal/domain/repository"
	"github.com/hapkiduki/checkout-go/pkg/logger"
)

// MsgProcessingError is returned for failures the client cannot act on.
const MsgProcessingError = "error processing purchase"

// Error codes of the quote endpoint.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// CheckoutService is the application service behind the handler.
type CheckoutService interface {
	FinalizePurchase(ctx context.Context, cartID, customerID uuid.UUID) (*dto.PurchaseResult, error)
	Quote(ctx context.Context, cartID, customerID uuid.UUID) (*dto.QuoteResult, error)
}

// CheckoutHandler serves the purchase endpoints.
type CheckoutHandler struct {
	service CheckoutService
	log     port.Logger
	version string
}

// NewCheckoutHandler creates a CheckoutHandler.
//
// Parameters:
//   - service: checkout application service
//   - log: logger for unexpected failures
//   - version: API version reported in response metadata
//
// Returns:
//   - *CheckoutHandler: the handler
func NewCheckoutHandler(service CheckoutService, log port.Logger, version string) *CheckoutHandler {
	return &CheckoutHandler{service: service, log: log, version: version}
}

// Routes mounts the checkout endpoints on r.
func (h *CheckoutHandler) Routes(r chi.Router) {
	r.Post("/finalize", h.Finalize)
	r.Get("/carts/{cartID}/quote", h.Quote)
}

// Finalize handles POST /finalize?cartId=&customerId=.
//
// Responses carry a dto.PurchaseResult:
//   - 200 on success
//   - 400 for malformed ids, invalid carts and unknown customers or carts
//   - 409 when stock or payment refuse the purchase
//   - 500 for anything else, with a generic message
func (h *CheckoutHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseUUIDParam(r.URL.Query().Get("cartId"), "cartId")
	if err != nil {
		h.writePurchaseFailure(w, r, http.StatusBadRequest, err.Error())
		return
	}
	customerID, err := parseUUIDParam(r.URL.Query().Get("customerId"), "customerId")
	if err != nil {
		h.writePurchaseFailure(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.FinalizePurchase(r.Context(), cartID, customerID)
	if err != nil {
		status, message := h.classify(r.Context(), err)
		if status == http.StatusInternalServerError {
			message = MsgProcessingError
		}
		h.writePurchaseFailure(w, r, status, message)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// Quote handles GET /carts/{cartID}/quote?customerId= and returns the
// pricing breakdown in the standard envelope.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseUUIDParam(chi.URLParam(r, "cartID"), "cartID")
	if err != nil {
		h.writeEnvelopeError(w, r, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}
	customerID, err := parseUUIDParam(r.URL.Query().Get("customerId"), "customerId")
	if err != nil {
		h.writeEnvelopeError(w, r, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	quote, err := h.service.Quote(r.Context(), cartID, customerID)
	if err != nil {
		status, message := h.classify(r.Context(), err)
		code := CodeInvalidInput
		switch {
		case status == http.StatusInternalServerError:
			code, message = CodeInternal, MsgProcessingError
		case status == http.StatusConflict:
			code = CodeConflict
		case repository.IsNotFoundError(err):
			code = CodeNotFound
		}
		h.writeEnvelopeError(w, r, status, code, message)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(quote).WithMeta(h.meta(r)))
}

// classify maps a service error to an HTTP status and client message.
func (h *CheckoutHandler) classify(ctx context.Context, err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrCustomerNotFound):
		return http.StatusBadRequest, repository.ErrCustomerNotFound.Error()
	case errors.Is(err, repository.ErrCartNotFound):
		return http.StatusBadRequest, repository.ErrCartNotFound.Error()
	case domainerror.IsInvalidInput(err):
		return http.StatusBadRequest, domainMessage(err)
	case domainerror.IsConflict(err):
		return http.StatusConflict, domainMessage(err)
	default:
		h.log.WithContext(ctx).Error("Checkout request failed", "error", err)
		return http.StatusInternalServerError, err.Error()
	}
}

func (h *CheckoutHandler) writePurchaseFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, dto.PurchaseResult{Success: false, Message: message})
}

func (h *CheckoutHandler) writeEnvelopeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, dto.NewErrorResponse[any](code, message).WithMeta(h.meta(r)))
}

func (h *CheckoutHandler) meta(r *http.Request) dto.ResponseMeta {
	return dto.ResponseMeta{
		RequestID: logger.RequestIDFromContext(r.Context()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	}
}

// domainMessage returns the client-facing message of a domain error.
func domainMessage(err error) string {
	var de *domainerror.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

func parseUUIDParam(raw, name string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domainerror.InvalidInput("%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerror.InvalidInput("invalid %s: %s", name, raw)
	}
	return id, nil
}
