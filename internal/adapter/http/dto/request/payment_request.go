package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentRequest is the payload for charging a job phase.
//
// `mp_payload` is forwarded to Mercado Pago as-is (raw JSON) apart from the
// amount and reference, which the ledger decides. A bare Mercado Pago body
// without the envelope is accepted too.
type PaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// RecordTransactionRequest is a payment confirmed outside the charge flow,
// e.g. a provider callback. platform_fee defaults to zero.
type RecordTransactionRequest struct {
	Type              string           `json:"type" binding:"required,oneof=deposit intermediate final_payment"`
	Amount            *decimal.Decimal `json:"amount" binding:"required"`
	PlatformFee       *decimal.Decimal `json:"platform_fee"`
	Status            string           `json:"status" binding:"required,oneof=pending completed"`
	ProviderPaymentID string           `json:"provider_payment_id"`
}

func (r RecordTransactionRequest) ResolvePlatformFee() decimal.Decimal {
	if r.PlatformFee == nil {
		return decimal.Zero
	}
	return *r.PlatformFee
}
