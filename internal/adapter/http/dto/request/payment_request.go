package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentCreateRequest is the payload for the "create and process payment"
// route.
//
// `provider_payload` is forwarded to the gateway as-is (raw JSON) to support
// varying Mercado Pago schemas; `deposit_amount` overrides the charge amount
// for partial collection.

type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
	DepositAmount   *float64        `json:"deposit_amount"`
}

func (r PaymentCreateRequest) ResolveDeposit() *decimal.Decimal {
	if r.DepositAmount == nil {
		return nil
	}
	d := decimal.NewFromFloat(*r.DepositAmount)
	return &d
}
