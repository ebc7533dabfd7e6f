package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment records one payment collected against a saved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (snapshot_id-index): snapshot_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original response body (JSON) for audit.
//   - ProviderPayload is an optional parsed representation for debugging.
type Payment struct {
	ID         string          `json:"id"`
	SnapshotID string          `json:"snapshot_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Status     PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
