package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "hvacworks/internal/adapter/http/dto/request"
	response "hvacworks/internal/adapter/http/dto/response"
	"hvacworks/internal/usecase"
	"hvacworks/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles HTTP requests for collecting payment on saved
// quotes.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateBySnapshotID creates and processes a payment for the saved quote in
// the path. The body may carry a raw provider payload, optionally wrapped in
// {"provider_payload": ..., "deposit_amount": ...}.
func (h *PaymentHandler) CreateBySnapshotID(c *gin.Context) {
	snapshotID := c.Param("snapshot_id")
	log.Printf("[payment][handler] create start snapshot_id=%s", snapshotID)

	providerPayload, deposit, err := readPaymentBody(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload snapshot_id=%s err=%v", snapshotID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), snapshotID, providerPayload, deposit)
	if err != nil {
		log.Printf("[payment][handler] create failed snapshot_id=%s err=%v", snapshotID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success snapshot_id=%s payment_id=%s status=%s", snapshotID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetBySnapshotID returns the latest payment for a saved quote.
func (h *PaymentHandler) GetBySnapshotID(c *gin.Context) {
	snapshotID := c.Param("snapshot_id")

	payments, err := h.usecase.ListBySnapshotID(c.Request.Context(), snapshotID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// readPaymentBody accepts either the wrapped PaymentCreateRequest envelope
// or a bare provider payload, mirroring what integrations actually send.
func readPaymentBody(c *gin.Context) (json.RawMessage, *decimal.Decimal, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil, nil
	}
	if !json.Valid(raw) {
		return nil, nil, errors.New("request body is not valid json")
	}

	var envelope request.PaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if len(envelope.ProviderPayload) > 0 || envelope.DepositAmount != nil {
			payload := envelope.ProviderPayload
			if len(strings.TrimSpace(string(payload))) == 0 || strings.TrimSpace(string(payload)) == "null" {
				payload = json.RawMessage("{}")
			}
			return payload, envelope.ResolveDeposit(), nil
		}
	}

	return json.RawMessage(raw), nil, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentSnapshotID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidProviderPayload),
		errors.Is(err, usecase.ErrInvalidDepositOverride),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "Quote snapshot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSnapshotNotApproved):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_APPROVED", "Quote snapshot not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
