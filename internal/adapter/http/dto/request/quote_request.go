package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AddLineItemRequest adds one catalog item to a draft. Quantity is decimal
// because ductwork and pipe are sold by the foot.
type AddLineItemRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

func (r AddLineItemRequest) ResolveCategory() string {
	return strings.TrimSpace(r.Category)
}

func (r AddLineItemRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r AddLineItemRequest) ResolveQuantity() decimal.Decimal {
	return decimal.NewFromFloat(r.Quantity)
}

// UpdateLineItemRequest rescales one line.
type UpdateLineItemRequest struct {
	Quantity float64 `json:"quantity" binding:"required"`
}

func (r UpdateLineItemRequest) ResolveQuantity() decimal.Decimal {
	return decimal.NewFromFloat(r.Quantity)
}

// AdjustmentRequest is one step of the pricing pipeline as sent by clients.
type AdjustmentRequest struct {
	Name    string  `json:"name" binding:"required"`
	Kind    string  `json:"kind" binding:"required"`
	Percent float64 `json:"percent"`
}

// UpdateQuoteKnobsRequest is a partial update of a draft's pricing inputs;
// absent fields are left untouched.
type UpdateQuoteKnobsRequest struct {
	LaborHours  *float64             `json:"labor_hours"`
	LaborRate   *float64             `json:"labor_rate"`
	LaborMode   *string              `json:"labor_mode"`
	Adjustments *[]AdjustmentRequest `json:"adjustments"`
	TaxPercent  *float64             `json:"tax_percent"`
}

// CustomerInfoRequest identifies the customer on a saved quote.
type CustomerInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SaveSnapshotRequest freezes a draft into an immutable saved quote.
// DepositAmount, when present, is recorded as the partial-payment amount to
// collect instead of the full total.
type SaveSnapshotRequest struct {
	Customer      CustomerInfoRequest `json:"customer" binding:"required"`
	DepositAmount *float64            `json:"deposit_amount"`
}

func (r SaveSnapshotRequest) ResolveDeposit() *decimal.Decimal {
	if r.DepositAmount == nil {
		return nil
	}
	d := decimal.NewFromFloat(*r.DepositAmount)
	return &d
}

// SnapshotActionRequest drives approve/reject/cancel transitions.
type SnapshotActionRequest struct {
	SnapshotID string `json:"snapshot_id" binding:"required"`
}

func (r SnapshotActionRequest) ResolveSnapshotID() string {
	return strings.TrimSpace(r.SnapshotID)
}
