// Package pricing computes quote totals. It is pure: no I/O, no clock, no
// external calls. Inputs are assumed validated at the mutation boundary;
// the only error it can return is a violated internal invariant.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"hvacworks/internal/domain/entities"
)

// ErrInvariantViolation signals a negative subtotal or total, which cannot
// happen with validated inputs. It is surfaced, never clamped.
var ErrInvariantViolation = errors.New("pricing invariant violation")

var hundred = decimal.NewFromInt(100)

// Breakdown contains all intermediate and roll-up values of one computation.
// Values are unrounded; rounding happens once, at presentation.
type Breakdown struct {
	MaterialsSubtotal decimal.Decimal
	LaborHours        decimal.Decimal
	LaborCost         decimal.Decimal
	Adjustments       []entities.AppliedAdjustment
	PreTax            decimal.Decimal
	TaxAmount         decimal.Decimal
	Total             decimal.Decimal
}

// Compute runs the adjustment pipeline over a draft's current state:
//
//	running = Σ lineTotal + laborHours × laborRate
//	for each adjustment, in declared order:
//	    amount = running × percent/100
//	    running ± amount (additive adds, subtractive subtracts)
//	tax on the post-adjustment amount, total = running + tax
//
// The declared order is load-bearing: each percentage compounds on the
// running amount left by the previous step.
func Compute(q entities.Quote) (Breakdown, error) {
	materials := decimal.Zero
	for _, it := range q.Items {
		materials = materials.Add(it.LineTotal)
	}

	hours := q.EffectiveLaborHours()
	labor := hours.Mul(q.LaborRate)
	running := materials.Add(labor)

	applied := make([]entities.AppliedAdjustment, 0, len(q.Adjustments))
	for _, adj := range q.Adjustments {
		amount := running.Mul(adj.Percent).Div(hundred)
		switch adj.Kind {
		case entities.AdjustmentSubtractive:
			running = running.Sub(amount)
		default:
			running = running.Add(amount)
		}
		applied = append(applied, entities.AppliedAdjustment{
			Name:    adj.Name,
			Kind:    adj.Kind,
			Percent: adj.Percent,
			Amount:  amount,
		})
	}

	tax := running.Mul(q.TaxPercent).Div(hundred)
	total := running.Add(tax)

	if materials.IsNegative() || total.IsNegative() {
		return Breakdown{}, ErrInvariantViolation
	}

	return Breakdown{
		MaterialsSubtotal: materials,
		LaborHours:        hours,
		LaborCost:         labor,
		Adjustments:       applied,
		PreTax:            running,
		TaxAmount:         tax,
		Total:             total,
	}, nil
}

// ContractorAdjustments is the overhead-then-markup pipeline used by the
// contractor estimator.
func ContractorAdjustments(overheadPercent, markupPercent decimal.Decimal) []entities.Adjustment {
	return []entities.Adjustment{
		{Name: "overhead", Kind: entities.AdjustmentAdditive, Percent: overheadPercent},
		{Name: "markup", Kind: entities.AdjustmentAdditive, Percent: markupPercent},
	}
}

// MaterialAdjustments is the discount-only pipeline used by the material
// estimator.
func MaterialAdjustments(discountPercent decimal.Decimal) []entities.Adjustment {
	return []entities.Adjustment{
		{Name: "discount", Kind: entities.AdjustmentSubtractive, Percent: discountPercent},
	}
}
