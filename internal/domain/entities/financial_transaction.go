package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit      TransactionType = "deposit"
	TransactionTypeIntermediate TransactionType = "intermediate"
	TransactionTypeFinalPayment TransactionType = "final_payment"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeIntermediate, TransactionTypeFinalPayment:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

func (s TransactionStatus) Valid() bool {
	return s == TransactionStatusPending || s == TransactionStatusCompleted
}

// FinancialTransaction is one row of a job's append-only payment ledger.
//
// Storage model (DynamoDB):
//   - PK: job_id, SK: id
//
// Rows are written by the payment confirmation flow and never updated.
// For deposits, Amount already includes PlatformFee.
type FinancialTransaction struct {
	ID                string            `json:"id"`
	JobID             string            `json:"job_id"`
	Type              TransactionType   `json:"type"`
	Amount            decimal.Decimal   `json:"amount"`
	PlatformFee       decimal.Decimal   `json:"platform_fee"`
	Status            TransactionStatus `json:"status"`
	ProviderPaymentID string            `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

func (t FinancialTransaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}
