package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentKind tags how a percentage adjustment is applied to the running
// pre-tax amount.

type AdjustmentKind string

const (
	// AdjustmentAdditive adds percent-of-running-amount (overhead, markup).
	AdjustmentAdditive AdjustmentKind = "additive"
	// AdjustmentSubtractive subtracts percent-of-running-amount (discount).
	AdjustmentSubtractive AdjustmentKind = "subtractive"
)

// Adjustment is one configured step of the pricing pipeline, applied in
// declared order after materials and labor.
type Adjustment struct {
	Name    string          `json:"name"`
	Kind    AdjustmentKind  `json:"kind"`
	Percent decimal.Decimal `json:"percent"`
}

// AppliedAdjustment is an Adjustment plus the amount it contributed when the
// pipeline ran.
type AppliedAdjustment struct {
	Name    string          `json:"name"`
	Kind    AdjustmentKind  `json:"kind"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// LaborMode selects where a draft's labor hours come from.

type LaborMode string

const (
	// LaborModeManual uses hours exactly as entered.
	LaborModeManual LaborMode = "manual"
	// LaborModeAutoSum derives hours from catalog reference labor hours
	// scaled by each line's quantity.
	LaborModeAutoSum LaborMode = "auto_sum"
)

// LineItem is one quantity-scaled cost entry of a quote.
//
// UnitPrice is captured when the item is added (catalog list price times the
// category multiplier) and never re-resolved; later catalog or multiplier
// changes do not touch existing lines.
type LineItem struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
	RefLaborHours decimal.Decimal `json:"ref_labor_hours"`
}

// Quote is a working (draft) quote owned by a single editing session.
//
// Storage model (DynamoDB):
//   - PK: id
//
// All derived values (line totals aside) live in pricing.Breakdown and are
// recomputed from these source fields on every read.
type Quote struct {
	ID          string          `json:"id"`
	Items       []LineItem      `json:"items"`
	LaborHours  decimal.Decimal `json:"labor_hours"`
	LaborRate   decimal.Decimal `json:"labor_rate"`
	LaborMode   LaborMode       `json:"labor_mode"`
	Adjustments []Adjustment    `json:"adjustments"`
	TaxPercent  decimal.Decimal `json:"tax_percent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AppendItem adds a line item at the end of the sequence.
func (q *Quote) AppendItem(it LineItem) {
	q.Items = append(q.Items, it)
}

// UpdateItemQuantity rescales one line's total, keeping its frozen unit
// price. Returns false when the id is not present.
func (q *Quote) UpdateItemQuantity(itemID string, quantity decimal.Decimal) bool {
	for i := range q.Items {
		if q.Items[i].ID == itemID {
			q.Items[i].Quantity = quantity
			q.Items[i].LineTotal = q.Items[i].UnitPrice.Mul(quantity)
			return true
		}
	}
	return false
}

// RemoveItem deletes a line item by id. Removing an absent id is a no-op.
func (q *Quote) RemoveItem(itemID string) {
	for i := range q.Items {
		if q.Items[i].ID == itemID {
			q.Items = append(q.Items[:i], q.Items[i+1:]...)
			return
		}
	}
}

// EffectiveLaborHours resolves labor hours per the draft's labor mode.
func (q *Quote) EffectiveLaborHours() decimal.Decimal {
	if q.LaborMode != LaborModeAutoSum {
		return q.LaborHours
	}
	sum := decimal.Zero
	for _, it := range q.Items {
		sum = sum.Add(it.RefLaborHours.Mul(it.Quantity))
	}
	return sum
}
