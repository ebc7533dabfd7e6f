package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hvacworks/internal/domain/entities"
	mock_interfaces "hvacworks/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pricedDraft(id string) entities.Quote {
	q := testDraft(id)
	q.AppendItem(entities.LineItem{
		ID:        "li-1",
		Category:  "furnaces",
		Name:      "Gas Furnace 60k BTU",
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.RequireFromString("1000.00"),
		LineTotal: decimal.RequireFromString("1000.00"),
	})
	q.LaborHours = decimal.NewFromInt(5)
	q.LaborRate = decimal.NewFromInt(100)
	q.Adjustments = []entities.Adjustment{
		{Name: "overhead", Kind: entities.AdjustmentAdditive, Percent: decimal.NewFromInt(15)},
		{Name: "markup", Kind: entities.AdjustmentAdditive, Percent: decimal.NewFromInt(20)},
	}
	q.TaxPercent = decimal.NewFromInt(5)
	return q
}

func TestQuoteSnapshotUseCase_Save(t *testing.T) {
	t.Run("invalid draft id", func(t *testing.T) {
		uc := NewQuoteSnapshotUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "  ", entities.CustomerInfo{Name: "Pat"}, nil)
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		uc := NewQuoteSnapshotUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "q-1", entities.CustomerInfo{Name: "   "}, nil)
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("draft not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		draftRepo := mock_interfaces.NewMockIQuoteDraftRepository(ctrl)
		uc := NewQuoteSnapshotUseCase(nil, draftRepo)

		draftRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Save(context.Background(), "q-1", entities.CustomerInfo{Name: "Pat"}, nil)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("deposit above total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		draftRepo := mock_interfaces.NewMockIQuoteDraftRepository(ctrl)
		uc := NewQuoteSnapshotUseCase(nil, draftRepo)

		draftRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedDraft("q-1"), nil)

		deposit := decimal.NewFromInt(999999)
		_, err := uc.Save(context.Background(), "q-1", entities.CustomerInfo{Name: "Pat"}, &deposit)
		if !errors.Is(err, ErrInvalidDeposit) {
			t.Fatalf("expected ErrInvalidDeposit, got %v", err)
		}
	})

	t.Run("non-positive deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		draftRepo := mock_interfaces.NewMockIQuoteDraftRepository(ctrl)
		uc := NewQuoteSnapshotUseCase(nil, draftRepo)

		draftRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedDraft("q-1"), nil)

		deposit := decimal.Zero
		_, err := uc.Save(context.Background(), "q-1", entities.CustomerInfo{Name: "Pat"}, &deposit)
		if !errors.Is(err, ErrInvalidDeposit) {
			t.Fatalf("expected ErrInvalidDeposit, got %v", err)
		}
	})

	t.Run("freezes draft with computed totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		draftRepo := mock_interfaces.NewMockIQuoteDraftRepository(ctrl)
		uc := NewQuoteSnapshotUseCase(repo, draftRepo)

		draftRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedDraft("q-1"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSnapshot{})).DoAndReturn(
			func(_ context.Context, s entities.QuoteSnapshot) (entities.QuoteSnapshot, error) {
				if s.ID == "" {
					t.Fatalf("expected generated id")
				}
				if !strings.HasPrefix(s.QuoteNumber, "Q-"+time.Now().UTC().Format("20060102")+"-") {
					t.Fatalf("unexpected quote number %q", s.QuoteNumber)
				}
				if s.Status != entities.SnapshotStatusPending {
					t.Fatalf("expected pending status, got %s", s.Status)
				}
				// 1000 materials + 500 labor = 1500; +15% = 1725; +20% = 2070;
				// tax 5% = 103.50; total 2173.50
				if !s.Total.Equal(decimal.RequireFromString("2173.50")) {
					t.Fatalf("expected total 2173.50, got %s", s.Total)
				}
				if !s.TaxAmount.Equal(decimal.RequireFromString("103.50")) {
					t.Fatalf("expected tax 103.50, got %s", s.TaxAmount)
				}
				if len(s.AppliedAdjustments) != 2 {
					t.Fatalf("expected two applied adjustments, got %d", len(s.AppliedAdjustments))
				}
				return s, nil
			},
		)

		s, err := uc.Save(context.Background(), "q-1", entities.CustomerInfo{Name: "Pat", Address: "12 Birch Rd"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Customer.Name != "Pat" {
			t.Fatalf("expected customer Pat, got %s", s.Customer.Name)
		}
	})

	t.Run("records valid deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		draftRepo := mock_interfaces.NewMockIQuoteDraftRepository(ctrl)
		uc := NewQuoteSnapshotUseCase(repo, draftRepo)

		draftRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedDraft("q-1"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSnapshot{})).DoAndReturn(
			func(_ context.Context, s entities.QuoteSnapshot) (entities.QuoteSnapshot, error) {
				if s.DepositAmount == nil || !s.DepositAmount.Equal(decimal.NewFromInt(500)) {
					t.Fatalf("expected deposit 500, got %+v", s.DepositAmount)
				}
				if !s.ChargeAmount().Equal(decimal.NewFromInt(500)) {
					t.Fatalf("expected charge amount 500, got %s", s.ChargeAmount())
				}
				return s, nil
			},
		)

		deposit := decimal.NewFromInt(500)
		if _, err := uc.Save(context.Background(), "q-1", entities.CustomerInfo{Name: "Pat"}, &deposit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteSnapshotUseCase_StatusTransitions(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteSnapshotUseCase, ctx context.Context, id string) (entities.QuoteSnapshot, error)
		status entities.SnapshotStatus
	}{
		{name: "approve", call: (*QuoteSnapshotUseCase).ApproveByID, status: entities.SnapshotStatusApproved},
		{name: "reject", call: (*QuoteSnapshotUseCase).RejectByID, status: entities.SnapshotStatusRejected},
		{name: "cancel", call: (*QuoteSnapshotUseCase).CancelByID, status: entities.SnapshotStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewQuoteSnapshotUseCase(nil, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidSnapshotID) {
				t.Fatalf("expected ErrInvalidSnapshotID, got %v", err)
			}
		})

		t.Run(tc.name+" not pending", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
			uc := NewQuoteSnapshotUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.QuoteSnapshot{ID: "s-1", Status: entities.SnapshotStatusApproved}, nil)

			_, err := tc.call(uc, context.Background(), "s-1")
			if !errors.Is(err, ErrSnapshotNotPending) {
				t.Fatalf("expected ErrSnapshotNotPending, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
			uc := NewQuoteSnapshotUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.QuoteSnapshot{ID: "s-1", Status: entities.SnapshotStatusPending}, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "s-1", tc.status).Return(entities.QuoteSnapshot{ID: "s-1", Status: tc.status}, nil)

			s, err := tc.call(uc, context.Background(), "s-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Status != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, s.Status)
			}
		})
	}
}

func TestQuoteSnapshotUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		uc := NewQuoteSnapshotUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.QuoteSnapshot{}, nil)

		_, err := uc.GetByID(context.Background(), "s-1")
		if !errors.Is(err, ErrSnapshotNotFound) {
			t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		uc := NewQuoteSnapshotUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.QuoteSnapshot{ID: "s-1"}, nil)

		s, err := uc.GetByID(context.Background(), " s-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "s-1" {
			t.Fatalf("expected s-1, got %s", s.ID)
		}
	})
}
