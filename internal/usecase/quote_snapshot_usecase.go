package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hvacworks/internal/domain/entities"
	"hvacworks/internal/domain/pricing"
	"hvacworks/internal/usecase/interfaces"
)

var (
	ErrSnapshotNotFound    = errors.New("quote snapshot not found")
	ErrInvalidSnapshotID   = errors.New("invalid snapshot id")
	ErrInvalidCustomerName = errors.New("customer name is required")
	ErrInvalidDeposit      = errors.New("deposit must be positive and no greater than the quote total")
	ErrSnapshotNotPending  = errors.New("quote snapshot is not pending")
)

// IQuoteSnapshotUseCase saves drafts as immutable records and drives the
// snapshot status lifecycle.
//
// Operations:
//   - Save       => freeze a draft into a numbered, customer-addressed record
//   - Approve / Reject / Cancel => pending-only status transitions
//   - GetByID

type IQuoteSnapshotUseCase interface {
	Save(ctx context.Context, draftID string, customer entities.CustomerInfo, deposit *decimal.Decimal) (entities.QuoteSnapshot, error)
	ApproveByID(ctx context.Context, id string) (entities.QuoteSnapshot, error)
	RejectByID(ctx context.Context, id string) (entities.QuoteSnapshot, error)
	CancelByID(ctx context.Context, id string) (entities.QuoteSnapshot, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSnapshot, error)
}

type QuoteSnapshotUseCase struct {
	repo      interfaces.IQuoteSnapshotRepository
	draftRepo interfaces.IQuoteDraftRepository
}

var _ IQuoteSnapshotUseCase = (*QuoteSnapshotUseCase)(nil)

func NewQuoteSnapshotUseCase(repo interfaces.IQuoteSnapshotRepository, draftRepo interfaces.IQuoteDraftRepository) *QuoteSnapshotUseCase {
	return &QuoteSnapshotUseCase{repo: repo, draftRepo: draftRepo}
}

func (u *QuoteSnapshotUseCase) Save(ctx context.Context, draftID string, customer entities.CustomerInfo, deposit *decimal.Decimal) (entities.QuoteSnapshot, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.QuoteSnapshot{}, ErrInvalidQuoteID
	}
	if strings.TrimSpace(customer.Name) == "" {
		return entities.QuoteSnapshot{}, ErrInvalidCustomerName
	}

	draft, err := u.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}
	if draft.ID == "" {
		return entities.QuoteSnapshot{}, ErrQuoteNotFound
	}

	breakdown, err := pricing.Compute(draft)
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}

	if deposit != nil {
		if !deposit.IsPositive() || deposit.GreaterThan(breakdown.Total) {
			return entities.QuoteSnapshot{}, ErrInvalidDeposit
		}
	}

	now := time.Now().UTC()
	s := entities.QuoteSnapshot{
		ID:          uuid.NewString(),
		QuoteNumber: newQuoteNumber(now),
		DraftID:     draft.ID,
		Customer:    customer,

		Items:       draft.Items,
		LaborHours:  breakdown.LaborHours,
		LaborRate:   draft.LaborRate,
		Adjustments: draft.Adjustments,
		TaxPercent:  draft.TaxPercent,

		MaterialsSubtotal:  breakdown.MaterialsSubtotal,
		LaborCost:          breakdown.LaborCost,
		AppliedAdjustments: breakdown.Adjustments,
		TaxAmount:          breakdown.TaxAmount,
		Total:              breakdown.Total,

		DepositAmount: deposit,
		Status:        entities.SnapshotStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, s)
}

func (u *QuoteSnapshotUseCase) ApproveByID(ctx context.Context, id string) (entities.QuoteSnapshot, error) {
	return u.transition(ctx, id, entities.SnapshotStatusApproved)
}

func (u *QuoteSnapshotUseCase) RejectByID(ctx context.Context, id string) (entities.QuoteSnapshot, error) {
	return u.transition(ctx, id, entities.SnapshotStatusRejected)
}

func (u *QuoteSnapshotUseCase) CancelByID(ctx context.Context, id string) (entities.QuoteSnapshot, error) {
	return u.transition(ctx, id, entities.SnapshotStatusCancelled)
}

func (u *QuoteSnapshotUseCase) transition(ctx context.Context, id string, status entities.SnapshotStatus) (entities.QuoteSnapshot, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}
	if s.Status != entities.SnapshotStatusPending {
		return entities.QuoteSnapshot{}, ErrSnapshotNotPending
	}

	updated, err := u.repo.UpdateStatusByID(ctx, s.ID, status)
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}
	if updated.ID == "" {
		return entities.QuoteSnapshot{}, ErrSnapshotNotFound
	}
	return updated, nil
}

func (u *QuoteSnapshotUseCase) GetByID(ctx context.Context, id string) (entities.QuoteSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteSnapshot{}, ErrInvalidSnapshotID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}
	if s.ID == "" {
		return entities.QuoteSnapshot{}, ErrSnapshotNotFound
	}
	return s, nil
}

// newQuoteNumber generates display numbers like Q-20250114-1a2b3c4d.
func newQuoteNumber(now time.Time) string {
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), uuid.NewString()[:8])
}
