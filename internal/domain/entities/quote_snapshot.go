package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotStatus represents the lifecycle of a saved quote.
//
// A snapshot starts pending and moves to exactly one terminal state through
// customer action; payment collection requires approved.

type SnapshotStatus string

const (
	SnapshotStatusPending   SnapshotStatus = "pending"
	SnapshotStatusApproved  SnapshotStatus = "approved"
	SnapshotStatusRejected  SnapshotStatus = "rejected"
	SnapshotStatusCancelled SnapshotStatus = "cancelled"
)

// CustomerInfo identifies the customer a saved quote was issued to.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// QuoteSnapshot is the immutable historical record written when a draft is
// saved. Items, knob values and computed totals are frozen at save time;
// only Status and UpdatedAt change afterwards.
//
// Storage model (DynamoDB):
//   - PK: id
//   - QuoteNumber is carried for display and reconciliation, not as a key.
type QuoteSnapshot struct {
	ID          string       `json:"id"`
	QuoteNumber string       `json:"quote_number"`
	DraftID     string       `json:"draft_id"`
	Customer    CustomerInfo `json:"customer"`

	Items       []LineItem      `json:"items"`
	LaborHours  decimal.Decimal `json:"labor_hours"`
	LaborRate   decimal.Decimal `json:"labor_rate"`
	Adjustments []Adjustment    `json:"adjustments"`
	TaxPercent  decimal.Decimal `json:"tax_percent"`

	MaterialsSubtotal  decimal.Decimal     `json:"materials_subtotal"`
	LaborCost          decimal.Decimal     `json:"labor_cost"`
	AppliedAdjustments []AppliedAdjustment `json:"applied_adjustments"`
	TaxAmount          decimal.Decimal     `json:"tax_amount"`
	Total              decimal.Decimal     `json:"total"`

	// DepositAmount, when set, replaces Total as the amount handed to the
	// payment gateway.
	DepositAmount *decimal.Decimal `json:"deposit_amount,omitempty"`

	Status    SnapshotStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ChargeAmount is the amount payment collection should request: the deposit
// override when present, the full total otherwise.
func (s QuoteSnapshot) ChargeAmount() decimal.Decimal {
	if s.DepositAmount != nil {
		return *s.DepositAmount
	}
	return s.Total
}
