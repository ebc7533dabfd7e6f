package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hvacworks/internal/domain/entities"
	"hvacworks/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrInvalidPaymentSnapshotID    = errors.New("invalid snapshot_id")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidProviderPayload      = errors.New("invalid payment provider payload")
	ErrInvalidDepositOverride      = errors.New("deposit override must be positive and no greater than the quote total")
	ErrSnapshotNotApproved         = errors.New("quote snapshot not approved")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates "collect payment for a saved quote".
//
// The charge amount is authoritative on our side: the deposit override from
// the request when given, the snapshot's own deposit when saved with one,
// the full total otherwise. Whatever the caller put in the provider payload
// is overwritten.

type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, snapshotID string, providerPayload json.RawMessage, depositOverride *decimal.Decimal) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListBySnapshotID(ctx context.Context, snapshotID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	snapshotRepo interfaces.IQuoteSnapshotRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, snapshotRepo interfaces.IQuoteSnapshotRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, snapshotRepo: snapshotRepo, gateway: gateway}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, snapshotID string, providerPayload json.RawMessage, depositOverride *decimal.Decimal) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-and-approve start snapshot_id=%q payload_len=%d", snapshotID, len(providerPayload))
	snapshotID = strings.TrimSpace(snapshotID)
	if snapshotID == "" {
		return entities.Payment{}, ErrInvalidPaymentSnapshotID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		log.Printf("[payment][usecase] invalid payload (not-json) snapshot_id=%s", snapshotID)
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil && !isPaymentGatewayMockEnabled() {
		log.Printf("[payment][usecase] gateway not configured snapshot_id=%s", snapshotID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	s, err := u.snapshotRepo.GetByID(ctx, snapshotID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading snapshot snapshot_id=%s err=%v", snapshotID, err)
		return entities.Payment{}, err
	}
	if s.ID == "" {
		log.Printf("[payment][usecase] snapshot not found snapshot_id=%s", snapshotID)
		return entities.Payment{}, ErrSnapshotNotFound
	}
	if s.Status != entities.SnapshotStatusApproved {
		log.Printf("[payment][usecase] snapshot not approved snapshot_id=%s status=%s", snapshotID, s.Status)
		return entities.Payment{}, ErrSnapshotNotApproved
	}

	amount := s.ChargeAmount()
	if depositOverride != nil {
		if !depositOverride.IsPositive() || depositOverride.GreaterThan(s.Total) {
			return entities.Payment{}, ErrInvalidDepositOverride
		}
		amount = *depositOverride
	}
	log.Printf("[payment][usecase] snapshot loaded snapshot_id=%s quote_number=%s amount=%s", snapshotID, s.QuoteNumber, amount)

	providerPayload = u.enrichPayload(providerPayload, s, amount)

	providerPaymentID, providerStatus, providerResp, err := u.collect(ctx, providerPayload, s, amount)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed snapshot_id=%s err=%v", snapshotID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success snapshot_id=%s provider_payment_id=%s provider_status=%s", snapshotID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed snapshot_id=%s err=%v", snapshotID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		SnapshotID:         snapshotID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed snapshot_id=%s payment_id=%s err=%v", snapshotID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success snapshot_id=%s payment_id=%s status=%s", snapshotID, created.ID, created.Status)
	return created, nil
}

// enrichPayload stamps linkage and the authoritative amount into the gateway
// payload. The provider sees a 2-decimal amount; this is the presentation
// boundary where rounding is allowed.
func (u *PaymentUseCase) enrichPayload(payload json.RawMessage, s entities.QuoteSnapshot, amount decimal.Decimal) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return payload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = s.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quote %s", s.QuoteNumber)
	}
	reqMap["transaction_amount"] = amount.Round(2).InexactFloat64()

	b, err := json.Marshal(reqMap)
	if err != nil {
		return payload
	}
	return b
}

func (u *PaymentUseCase) collect(ctx context.Context, payload json.RawMessage, s entities.QuoteSnapshot, amount decimal.Decimal) (string, string, json.RawMessage, error) {
	if !isPaymentGatewayMockEnabled() {
		return u.gateway.CreatePayment(ctx, payload)
	}

	log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway snapshot_id=%s", s.ID)
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = s.ID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount.Round(2).InexactFloat64()
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListBySnapshotID(ctx context.Context, snapshotID string) ([]entities.Payment, error) {
	snapshotID = strings.TrimSpace(snapshotID)
	if snapshotID == "" {
		return nil, ErrInvalidPaymentSnapshotID
	}
	return u.repo.ListBySnapshotID(ctx, snapshotID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
