package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hvacworks/internal/adapter/http/handlers/mocks"
	"hvacworks/internal/domain/entities"
	"hvacworks/internal/domain/pricing"
	"hvacworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleQuote(id string) entities.Quote {
	now := time.Now().UTC()
	return entities.Quote{
		ID: id,
		Items: []entities.LineItem{{
			ID:        "li-1",
			Category:  "furnaces",
			Name:      "Gas Furnace 60k BTU",
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.RequireFromString("1200.00"),
			LineTotal: decimal.RequireFromString("1200.00"),
		}},
		LaborMode: entities.LaborModeManual,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func sampleBreakdown() pricing.Breakdown {
	return pricing.Breakdown{
		MaterialsSubtotal: decimal.RequireFromString("1200.00"),
		PreTax:            decimal.RequireFromString("1200.00"),
		Total:             decimal.RequireFromString("1200.00"),
	}
}

func TestQuoteHandler_CreateDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateDraft)

		uc.EXPECT().CreateDraft(gomock.Any()).Return(sampleQuote("q-1"), sampleBreakdown(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "q-1" {
			t.Fatalf("expected id q-1, got %v", body["id"])
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateDraft)

		uc.EXPECT().CreateDraft(gomock.Any()).Return(entities.Quote{}, pricing.Breakdown{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetDraft)

		uc.EXPECT().GetDraft(gomock.Any(), "q-404").Return(entities.Quote{}, pricing.Breakdown{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetDraft)

		uc.EXPECT().GetDraft(gomock.Any(), "q-1").Return(sampleQuote("q-1"), sampleBreakdown(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Breakdown struct {
				Total float64 `json:"total"`
			} `json:"breakdown"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Breakdown.Total != 1200 {
			t.Fatalf("expected total 1200, got %v", body.Breakdown.Total)
		}
	})
}

func TestQuoteHandler_DiscardDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:id", h.DiscardDraft)

		uc.EXPECT().DiscardDraft(gomock.Any(), "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_AddLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown catalog item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "q-1", "furnaces", "No Such Unit", gomock.Any()).
			Return(entities.Quote{}, pricing.Breakdown{}, usecase.ErrCatalogItemNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/items", bytes.NewBufferString(`{"category":"furnaces","name":"No Such Unit","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "q-1", "furnaces", "Gas Furnace 60k BTU", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, qty decimal.Decimal) (entities.Quote, pricing.Breakdown, error) {
				if !qty.Equal(decimal.NewFromInt(2)) {
					t.Fatalf("expected quantity 2, got %s", qty)
				}
				return sampleQuote("q-1"), sampleBreakdown(), nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/items", bytes.NewBufferString(`{"category":"furnaces","name":"Gas Furnace 60k BTU","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("zero quantity rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/items/:item_id", h.UpdateLineItem)

		uc.EXPECT().UpdateLineItemQuantity(gomock.Any(), "q-1", "li-1", gomock.Any()).
			Return(entities.Quote{}, pricing.Breakdown{}, usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/items/li-1", bytes.NewBufferString(`{"quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("line item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/items/:item_id", h.UpdateLineItem)

		uc.EXPECT().UpdateLineItemQuantity(gomock.Any(), "q-1", "li-404", gomock.Any()).
			Return(entities.Quote{}, pricing.Breakdown{}, usecase.ErrLineItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/items/li-404", bytes.NewBufferString(`{"quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_RemoveLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:id/items/:item_id", h.RemoveLineItem)

		uc.EXPECT().RemoveLineItem(gomock.Any(), "q-1", "li-1").Return(sampleQuote("q-1"), sampleBreakdown(), nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1/items/li-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateKnobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("maps payload to knobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id", h.UpdateKnobs)

		uc.EXPECT().UpdateKnobs(gomock.Any(), "q-1", gomock.AssignableToTypeOf(usecase.QuoteKnobs{})).
			DoAndReturn(func(_ context.Context, _ string, knobs usecase.QuoteKnobs) (entities.Quote, pricing.Breakdown, error) {
				if knobs.LaborRate == nil || !knobs.LaborRate.Equal(decimal.NewFromInt(95)) {
					t.Fatalf("expected labor rate 95, got %+v", knobs.LaborRate)
				}
				if knobs.Adjustments == nil || len(*knobs.Adjustments) != 1 {
					t.Fatalf("expected one adjustment, got %+v", knobs.Adjustments)
				}
				if (*knobs.Adjustments)[0].Kind != entities.AdjustmentAdditive {
					t.Fatalf("expected additive kind, got %s", (*knobs.Adjustments)[0].Kind)
				}
				if knobs.LaborHours != nil || knobs.TaxPercent != nil {
					t.Fatalf("expected untouched knobs to stay nil")
				}
				return sampleQuote("q-1"), sampleBreakdown(), nil
			})

		body := `{"labor_rate":95,"adjustments":[{"name":"overhead","kind":"additive","percent":15}]}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteBuilderUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id", h.UpdateKnobs)

		uc.EXPECT().UpdateKnobs(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Quote{}, pricing.Breakdown{}, usecase.ErrInvalidPercentage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"tax_percent":400}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
