package response

import (
	"time"

	"github.com/shopspring/decimal"

	"hvacworks/internal/domain/entities"
	"hvacworks/internal/domain/pricing"
)

// Monetary values are rounded to 2 decimal places here and nowhere else;
// internal arithmetic stays unrounded.

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

type LineItemResponse struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type AppliedAdjustmentResponse struct {
	Name    string  `json:"name"`
	Kind    string  `json:"kind"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

type BreakdownResponse struct {
	MaterialsSubtotal float64                     `json:"materials_subtotal"`
	LaborHours        float64                     `json:"labor_hours"`
	LaborCost         float64                     `json:"labor_cost"`
	Adjustments       []AppliedAdjustmentResponse `json:"adjustments"`
	TaxAmount         float64                     `json:"tax_amount"`
	Total             float64                     `json:"total"`
	Currency          string                      `json:"currency"`
}

type QuoteResponse struct {
	ID         string             `json:"id"`
	Items      []LineItemResponse `json:"items"`
	LaborHours float64            `json:"labor_hours"`
	LaborRate  float64            `json:"labor_rate"`
	LaborMode  string             `json:"labor_mode"`
	TaxPercent float64            `json:"tax_percent"`
	Breakdown  BreakdownResponse  `json:"breakdown"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ID:        it.ID,
			Category:  it.Category,
			Name:      it.Name,
			Quantity:  it.Quantity.InexactFloat64(),
			UnitPrice: money(it.UnitPrice),
			LineTotal: money(it.LineTotal),
		})
	}
	return out
}

func fromAppliedAdjustments(applied []entities.AppliedAdjustment) []AppliedAdjustmentResponse {
	out := make([]AppliedAdjustmentResponse, 0, len(applied))
	for _, adj := range applied {
		out = append(out, AppliedAdjustmentResponse{
			Name:    adj.Name,
			Kind:    string(adj.Kind),
			Percent: adj.Percent.InexactFloat64(),
			Amount:  money(adj.Amount),
		})
	}
	return out
}

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		MaterialsSubtotal: money(b.MaterialsSubtotal),
		LaborHours:        b.LaborHours.InexactFloat64(),
		LaborCost:         money(b.LaborCost),
		Adjustments:       fromAppliedAdjustments(b.Adjustments),
		TaxAmount:         money(b.TaxAmount),
		Total:             money(b.Total),
		Currency:          "CAD",
	}
}

func FromQuote(q entities.Quote, b pricing.Breakdown) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		Items:      fromLineItems(q.Items),
		LaborHours: q.LaborHours.InexactFloat64(),
		LaborRate:  money(q.LaborRate),
		LaborMode:  string(q.LaborMode),
		TaxPercent: q.TaxPercent.InexactFloat64(),
		Breakdown:  FromBreakdown(b),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

type SnapshotResponse struct {
	ID          string             `json:"id"`
	QuoteNumber string             `json:"quote_number"`
	DraftID     string             `json:"draft_id"`
	Customer    CustomerResponse   `json:"customer"`
	Items       []LineItemResponse `json:"items"`
	LaborHours  float64            `json:"labor_hours"`
	LaborRate   float64            `json:"labor_rate"`
	TaxPercent  float64            `json:"tax_percent"`
	Breakdown   BreakdownResponse  `json:"breakdown"`

	DepositAmount *float64 `json:"deposit_amount,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func FromSnapshot(s entities.QuoteSnapshot) SnapshotResponse {
	res := SnapshotResponse{
		ID:          s.ID,
		QuoteNumber: s.QuoteNumber,
		DraftID:     s.DraftID,
		Customer: CustomerResponse{
			Name:    s.Customer.Name,
			Address: s.Customer.Address,
			Phone:   s.Customer.Phone,
			Email:   s.Customer.Email,
		},
		Items:      fromLineItems(s.Items),
		LaborHours: s.LaborHours.InexactFloat64(),
		LaborRate:  money(s.LaborRate),
		TaxPercent: s.TaxPercent.InexactFloat64(),
		Breakdown: BreakdownResponse{
			MaterialsSubtotal: money(s.MaterialsSubtotal),
			LaborHours:        s.LaborHours.InexactFloat64(),
			LaborCost:         money(s.LaborCost),
			Adjustments:       fromAppliedAdjustments(s.AppliedAdjustments),
			TaxAmount:         money(s.TaxAmount),
			Total:             money(s.Total),
			Currency:          "CAD",
		},
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.DepositAmount != nil {
		deposit := money(*s.DepositAmount)
		res.DepositAmount = &deposit
	}
	return res
}
