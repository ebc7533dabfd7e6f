package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hvacworks/internal/domain/entities"
	mock_interfaces "hvacworks/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func approvedSnapshot(id string) entities.QuoteSnapshot {
	return entities.QuoteSnapshot{
		ID:          id,
		QuoteNumber: "Q-20250114-1a2b3c4d",
		Status:      entities.SnapshotStatusApproved,
		Total:       decimal.RequireFromString("2173.50"),
	}
}

func TestPaymentUseCase_CreateAndApprove(t *testing.T) {
	t.Run("invalid snapshot id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "   ", nil, nil)
		if !errors.Is(err, ErrInvalidPaymentSnapshotID) {
			t.Fatalf("expected ErrInvalidPaymentSnapshotID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, nil, gateway)

		_, err := uc.CreateAndApprove(context.Background(), "s-1", json.RawMessage("{not json"), nil)
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("snapshot not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, snapshotRepo, gateway)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.QuoteSnapshot{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil)
		if !errors.Is(err, ErrSnapshotNotFound) {
			t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("snapshot not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, snapshotRepo, gateway)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.QuoteSnapshot{ID: "s-1", Status: entities.SnapshotStatusPending}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil)
		if !errors.Is(err, ErrSnapshotNotApproved) {
			t.Fatalf("expected ErrSnapshotNotApproved, got %v", err)
		}
	})

	t.Run("deposit override above total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, snapshotRepo, gateway)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(approvedSnapshot("s-1"), nil)

		override := decimal.NewFromInt(999999)
		_, err := uc.CreateAndApprove(context.Background(), "s-1", nil, &override)
		if !errors.Is(err, ErrInvalidDepositOverride) {
			t.Fatalf("expected ErrInvalidDepositOverride, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, snapshotRepo, gateway)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(approvedSnapshot("s-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, snapshotRepo, gateway)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(approvedSnapshot("s-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("charges snapshot total and stamps payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, snapshotRepo, gateway)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(approvedSnapshot("s-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["external_reference"] != "s-1" {
					t.Fatalf("expected external_reference s-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 2173.5 {
					t.Fatalf("expected transaction_amount 2173.5, got %v", m["transaction_amount"])
				}
				return "12345", "approved", json.RawMessage(`{"id":12345,"status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "12345" || p.SnapshotID != "s-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if !p.Amount.Equal(decimal.RequireFromString("2173.50")) {
					t.Fatalf("expected amount 2173.50, got %s", p.Amount)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved status, got %s", p.Status)
				}
				return p, nil
			},
		)

		p, err := uc.CreateAndApprove(context.Background(), "s-1", json.RawMessage(`{"payment_method_id":"pix"}`), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Date.IsZero() {
			t.Fatalf("expected payment date")
		}
	})

	t.Run("snapshot deposit drives the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, snapshotRepo, gateway)

		s := approvedSnapshot("s-1")
		deposit := decimal.NewFromInt(500)
		s.DepositAmount = &deposit
		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(s, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("9", "approved", json.RawMessage(`{"id":9}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if !p.Amount.Equal(decimal.NewFromInt(500)) {
					t.Fatalf("expected amount 500, got %s", p.Amount)
				}
				return p, nil
			},
		)

		if _, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, snapshotRepo, gateway)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(approvedSnapshot("s-1"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			},
		)

		p, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" || p.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.ProviderPayload["status_detail"] != "accredited" {
			t.Fatalf("expected mock status_detail, got %v", p.ProviderPayload["status_detail"])
		}
	})

	t.Run("mock mode works without a configured gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		snapshotRepo := mock_interfaces.NewMockIQuoteSnapshotRepository(ctrl)
		uc := NewPaymentUseCase(repo, snapshotRepo, nil)

		snapshotRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(approvedSnapshot("s-1"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			},
		)

		p, err := uc.CreateAndApprove(context.Background(), "s-1", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" || p.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1"}, nil)

		p, err := uc.GetByID(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-1" {
			t.Fatalf("expected p-1, got %s", p.ID)
		}
	})
}

func TestPaymentUseCase_ListBySnapshotID(t *testing.T) {
	t.Run("invalid snapshot id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.ListBySnapshotID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentSnapshotID) {
			t.Fatalf("expected ErrInvalidPaymentSnapshotID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListBySnapshotID(gomock.Any(), "s-1").Return([]entities.Payment{{ID: "p-1"}, {ID: "p-2"}}, nil)

		payments, err := uc.ListBySnapshotID(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 2 {
			t.Fatalf("expected two payments, got %d", len(payments))
		}
	})
}
