package handlers

import (
	"errors"
	"net/http"

	request "hvacworks/internal/adapter/http/dto/request"
	response "hvacworks/internal/adapter/http/dto/response"
	"hvacworks/internal/domain/entities"
	"hvacworks/internal/usecase"
	"hvacworks/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote drafts and the line-item /
// pricing-knob mutations of the quote builder.

type QuoteHandler struct {
	usecase usecase.IQuoteBuilderUseCase
}

func NewQuoteHandler(uc usecase.IQuoteBuilderUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateDraft opens an empty working quote.
func (h *QuoteHandler) CreateDraft(c *gin.Context) {
	q, b, err := h.usecase.CreateDraft(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q, b))
}

// GetDraft returns a draft with its freshly computed breakdown.
func (h *QuoteHandler) GetDraft(c *gin.Context) {
	q, b, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, b))
}

// DiscardDraft deletes a working quote.
func (h *QuoteHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddLineItem resolves a catalog item, freezes its discounted unit price and
// appends it to the draft.
func (h *QuoteHandler) AddLineItem(c *gin.Context) {
	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, b, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), payload.ResolveCategory(), payload.ResolveName(), payload.ResolveQuantity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q, b))
}

// UpdateLineItem rescales one line's quantity.
func (h *QuoteHandler) UpdateLineItem(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, b, err := h.usecase.UpdateLineItemQuantity(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ResolveQuantity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, b))
}

// RemoveLineItem deletes one line; removing an already absent line succeeds.
func (h *QuoteHandler) RemoveLineItem(c *gin.Context) {
	q, b, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, b))
}

// UpdateKnobs applies a partial update of labor and percentage inputs.
func (h *QuoteHandler) UpdateKnobs(c *gin.Context) {
	var payload request.UpdateQuoteKnobsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, b, err := h.usecase.UpdateKnobs(c.Request.Context(), c.Param("id"), toQuoteKnobs(payload))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, b))
}

func toQuoteKnobs(payload request.UpdateQuoteKnobsRequest) usecase.QuoteKnobs {
	knobs := usecase.QuoteKnobs{}
	if payload.LaborHours != nil {
		d := decimal.NewFromFloat(*payload.LaborHours)
		knobs.LaborHours = &d
	}
	if payload.LaborRate != nil {
		d := decimal.NewFromFloat(*payload.LaborRate)
		knobs.LaborRate = &d
	}
	if payload.LaborMode != nil {
		mode := entities.LaborMode(*payload.LaborMode)
		knobs.LaborMode = &mode
	}
	if payload.TaxPercent != nil {
		d := decimal.NewFromFloat(*payload.TaxPercent)
		knobs.TaxPercent = &d
	}
	if payload.Adjustments != nil {
		adjustments := make([]entities.Adjustment, 0, len(*payload.Adjustments))
		for _, adj := range *payload.Adjustments {
			adjustments = append(adjustments, entities.Adjustment{
				Name:    adj.Name,
				Kind:    entities.AdjustmentKind(adj.Kind),
				Percent: decimal.NewFromFloat(adj.Percent),
			})
		}
		knobs.Adjustments = &adjustments
	}
	return knobs
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidLineItemID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPercentage),
		errors.Is(err, usecase.ErrInvalidLaborHours),
		errors.Is(err, usecase.ErrInvalidLaborRate),
		errors.Is(err, usecase.ErrInvalidLaborMode),
		errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
