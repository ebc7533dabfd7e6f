package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hvacworks/internal/domain/entities"
	"hvacworks/internal/domain/pricing"
	"hvacworks/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrLineItemNotFound    = errors.New("line item not found")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidLineItemID   = errors.New("invalid line item id")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrInvalidPercentage   = errors.New("percentage must be between 0 and 100")
	ErrInvalidLaborRate    = errors.New("labor rate must not be negative")
	ErrInvalidLaborHours   = errors.New("labor hours must not be negative")
	ErrInvalidLaborMode    = errors.New("invalid labor mode")
	ErrInvalidAdjustment   = errors.New("invalid adjustment")
)

// QuoteKnobs carries a partial update of a draft's pricing inputs. Nil
// fields are left untouched.
type QuoteKnobs struct {
	LaborHours  *decimal.Decimal
	LaborRate   *decimal.Decimal
	LaborMode   *entities.LaborMode
	Adjustments *[]entities.Adjustment
	TaxPercent  *decimal.Decimal
}

// IQuoteBuilderUseCase exposes the quote builder operations: draft lifecycle,
// line item mutation and pricing knob edits. Every read returns the draft
// together with its freshly computed breakdown.

type IQuoteBuilderUseCase interface {
	CreateDraft(ctx context.Context) (entities.Quote, pricing.Breakdown, error)
	GetDraft(ctx context.Context, id string) (entities.Quote, pricing.Breakdown, error)
	DiscardDraft(ctx context.Context, id string) error
	AddLineItem(ctx context.Context, draftID, category, name string, quantity decimal.Decimal) (entities.Quote, pricing.Breakdown, error)
	UpdateLineItemQuantity(ctx context.Context, draftID, itemID string, quantity decimal.Decimal) (entities.Quote, pricing.Breakdown, error)
	RemoveLineItem(ctx context.Context, draftID, itemID string) (entities.Quote, pricing.Breakdown, error)
	UpdateKnobs(ctx context.Context, draftID string, knobs QuoteKnobs) (entities.Quote, pricing.Breakdown, error)
}

type QuoteBuilderUseCase struct {
	repo        interfaces.IQuoteDraftRepository
	catalog     *entities.Catalog
	multipliers entities.MultiplierTable
}

var _ IQuoteBuilderUseCase = (*QuoteBuilderUseCase)(nil)

// NewQuoteBuilderUseCase wires the builder with its catalog and multiplier
// table. Both are injected so tests can run against synthetic tables.
func NewQuoteBuilderUseCase(repo interfaces.IQuoteDraftRepository, catalog *entities.Catalog, multipliers entities.MultiplierTable) *QuoteBuilderUseCase {
	return &QuoteBuilderUseCase{repo: repo, catalog: catalog, multipliers: multipliers}
}

func (u *QuoteBuilderUseCase) CreateDraft(ctx context.Context) (entities.Quote, pricing.Breakdown, error) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		Items:       []entities.LineItem{},
		LaborMode:   entities.LaborModeManual,
		Adjustments: []entities.Adjustment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}
	return withBreakdown(created)
}

func (u *QuoteBuilderUseCase) GetDraft(ctx context.Context, id string) (entities.Quote, pricing.Breakdown, error) {
	q, err := u.loadDraft(ctx, id)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}
	return withBreakdown(q)
}

func (u *QuoteBuilderUseCase) DiscardDraft(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	return u.repo.Delete(ctx, id)
}

func (u *QuoteBuilderUseCase) AddLineItem(ctx context.Context, draftID, category, name string, quantity decimal.Decimal) (entities.Quote, pricing.Breakdown, error) {
	// Rejecting rather than clamping: a non-positive quantity is a caller
	// bug, and silent clamping hides it. Fractional quantities stay legal
	// because duct and pipe are sold by the foot.
	if !quantity.IsPositive() {
		return entities.Quote{}, pricing.Breakdown{}, ErrInvalidQuantity
	}

	q, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}

	catalogItem, ok := u.catalog.Item(category, name)
	if !ok {
		return entities.Quote{}, pricing.Breakdown{}, ErrCatalogItemNotFound
	}

	// Unit price is frozen here; the multiplier table is never consulted
	// again for this line.
	unitPrice := catalogItem.UnitPrice.Mul(u.multipliers.Resolve(category))
	q.AppendItem(entities.LineItem{
		ID:            uuid.NewString(),
		Category:      category,
		Name:          name,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		LineTotal:     unitPrice.Mul(quantity),
		RefLaborHours: catalogItem.LaborHours,
	})

	return u.saveDraft(ctx, q)
}

func (u *QuoteBuilderUseCase) UpdateLineItemQuantity(ctx context.Context, draftID, itemID string, quantity decimal.Decimal) (entities.Quote, pricing.Breakdown, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Quote{}, pricing.Breakdown{}, ErrInvalidLineItemID
	}
	if !quantity.IsPositive() {
		return entities.Quote{}, pricing.Breakdown{}, ErrInvalidQuantity
	}

	q, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}
	if !q.UpdateItemQuantity(itemID, quantity) {
		return entities.Quote{}, pricing.Breakdown{}, ErrLineItemNotFound
	}
	return u.saveDraft(ctx, q)
}

func (u *QuoteBuilderUseCase) RemoveLineItem(ctx context.Context, draftID, itemID string) (entities.Quote, pricing.Breakdown, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Quote{}, pricing.Breakdown{}, ErrInvalidLineItemID
	}

	q, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}
	// Idempotent: removing an id that is already gone succeeds.
	q.RemoveItem(itemID)
	return u.saveDraft(ctx, q)
}

func (u *QuoteBuilderUseCase) UpdateKnobs(ctx context.Context, draftID string, knobs QuoteKnobs) (entities.Quote, pricing.Breakdown, error) {
	if err := validateKnobs(knobs); err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}

	q, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}

	if knobs.LaborHours != nil {
		q.LaborHours = *knobs.LaborHours
	}
	if knobs.LaborRate != nil {
		q.LaborRate = *knobs.LaborRate
	}
	if knobs.LaborMode != nil {
		q.LaborMode = *knobs.LaborMode
	}
	if knobs.Adjustments != nil {
		q.Adjustments = *knobs.Adjustments
	}
	if knobs.TaxPercent != nil {
		q.TaxPercent = *knobs.TaxPercent
	}

	return u.saveDraft(ctx, q)
}

func (u *QuoteBuilderUseCase) loadDraft(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteBuilderUseCase) saveDraft(ctx context.Context, q entities.Quote) (entities.Quote, pricing.Breakdown, error) {
	q.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}
	return withBreakdown(saved)
}

func withBreakdown(q entities.Quote) (entities.Quote, pricing.Breakdown, error) {
	b, err := pricing.Compute(q)
	if err != nil {
		return entities.Quote{}, pricing.Breakdown{}, err
	}
	return q, b, nil
}

func validateKnobs(knobs QuoteKnobs) error {
	if knobs.LaborHours != nil && knobs.LaborHours.IsNegative() {
		return ErrInvalidLaborHours
	}
	if knobs.LaborRate != nil && knobs.LaborRate.IsNegative() {
		return ErrInvalidLaborRate
	}
	if knobs.LaborMode != nil {
		switch *knobs.LaborMode {
		case entities.LaborModeManual, entities.LaborModeAutoSum:
		default:
			return ErrInvalidLaborMode
		}
	}
	if knobs.TaxPercent != nil {
		if err := validatePercent(*knobs.TaxPercent); err != nil {
			return err
		}
	}
	if knobs.Adjustments != nil {
		for _, adj := range *knobs.Adjustments {
			if strings.TrimSpace(adj.Name) == "" {
				return ErrInvalidAdjustment
			}
			switch adj.Kind {
			case entities.AdjustmentAdditive, entities.AdjustmentSubtractive:
			default:
				return ErrInvalidAdjustment
			}
			if err := validatePercent(adj.Percent); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePercent(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidPercentage
	}
	return nil
}
