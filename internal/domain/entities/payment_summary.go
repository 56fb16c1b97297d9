package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentPattern is the percentage split shown to users. The values are
// fixed display constants and never feed balance arithmetic.
type PaymentPattern struct {
	Deposit      int `json:"deposit"`
	Intermediate int `json:"intermediate"`
	Final        int `json:"final"`
}

var (
	PatternTwoPhase   = PaymentPattern{Deposit: 50, Final: 50}
	PatternThreePhase = PaymentPattern{Deposit: 50, Intermediate: 30, Final: 20}
)

func (p PaymentPattern) String() string {
	if p.Intermediate == 0 {
		return fmt.Sprintf("%d/%d", p.Deposit, p.Final)
	}
	return fmt.Sprintf("%d/%d/%d", p.Deposit, p.Intermediate, p.Final)
}

// PaymentSummary is the reconciled view of a job's ledger. It is derived on
// every read and never persisted.
type PaymentSummary struct {
	QuotedPrice     decimal.Decimal `json:"quoted_price"`
	DepositNet      decimal.Decimal `json:"deposit_net"`
	Fee             decimal.Decimal `json:"fee"`
	Intermediate    decimal.Decimal `json:"intermediate"`
	Final           decimal.Decimal `json:"final"`
	TotalWithFee    decimal.Decimal `json:"total_with_fee"`
	TotalWithoutFee decimal.Decimal `json:"total_without_fee"`
	BalanceDue      decimal.Decimal `json:"balance_due"`

	HasDeposit          bool `json:"has_deposit"`
	HasIntermediate     bool `json:"has_intermediate"`
	HasFinal            bool `json:"has_final"`
	PendingIntermediate bool `json:"pending_intermediate"`

	Pattern PaymentPattern `json:"pattern"`
}

// IsSettled reports whether the ledger covers the quoted price exactly.
func (s PaymentSummary) IsSettled() bool {
	return s.BalanceDue.IsZero()
}
