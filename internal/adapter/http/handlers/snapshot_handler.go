package handlers

import (
	"context"
	"errors"
	"net/http"

	request "hvacworks/internal/adapter/http/dto/request"
	response "hvacworks/internal/adapter/http/dto/response"
	"hvacworks/internal/domain/entities"
	"hvacworks/internal/usecase"
	"hvacworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSnapshotPayload = pkg.NewDomainErrorSimple("INVALID_SNAPSHOT_INPUT", "Invalid snapshot payload", http.StatusBadRequest)
)

// SnapshotHandler handles saving drafts as immutable quote records and the
// snapshot status lifecycle.

type SnapshotHandler struct {
	usecase usecase.IQuoteSnapshotUseCase
}

func NewSnapshotHandler(uc usecase.IQuoteSnapshotUseCase) *SnapshotHandler {
	return &SnapshotHandler{usecase: uc}
}

// Save freezes a draft into a numbered saved quote.
func (h *SnapshotHandler) Save(c *gin.Context) {
	var payload request.SaveSnapshotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSnapshotPayload.HTTPStatus, errInvalidSnapshotPayload.ToHTTPError())
		return
	}

	customer := entities.CustomerInfo{
		Name:    payload.Customer.Name,
		Address: payload.Customer.Address,
		Phone:   payload.Customer.Phone,
		Email:   payload.Customer.Email,
	}

	s, err := h.usecase.Save(c.Request.Context(), c.Param("id"), customer, payload.ResolveDeposit())
	if err != nil {
		appErr := mapSnapshotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(s))
}

// GetByID returns one saved quote.
func (h *SnapshotHandler) GetByID(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSnapshotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(s))
}

func (h *SnapshotHandler) Approve(c *gin.Context) {
	h.patchStatusByRequest(c, h.usecase.ApproveByID)
}

func (h *SnapshotHandler) Reject(c *gin.Context) {
	h.patchStatusByRequest(c, h.usecase.RejectByID)
}

func (h *SnapshotHandler) Cancel(c *gin.Context) {
	h.patchStatusByRequest(c, h.usecase.CancelByID)
}

func (h *SnapshotHandler) patchStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.QuoteSnapshot, error),
) {
	var payload request.SnapshotActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSnapshotPayload.HTTPStatus, errInvalidSnapshotPayload.ToHTTPError())
		return
	}

	id := payload.ResolveSnapshotID()
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	s, err := updater(c.Request.Context(), id)
	if err != nil {
		appErr := mapSnapshotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(s))
}

func mapSnapshotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidSnapshotID),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidDeposit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "Quote snapshot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSnapshotNotPending):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_PENDING", "Quote snapshot already resolved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
