package ledger

import (
	"job_engagement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PhaseCharge is what the payment flow asks the provider to collect.
type PhaseCharge struct {
	Net         decimal.Decimal
	PlatformFee decimal.Decimal
}

// Gross is the amount charged to the customer.
func (c PhaseCharge) Gross() decimal.Decimal {
	return c.Net.Add(c.PlatformFee)
}

var (
	hundred             = decimal.NewFromInt(100)
	depositPercent      = decimal.NewFromInt(int64(entities.PatternThreePhase.Deposit))
	intermediatePercent = decimal.NewFromInt(int64(entities.PatternThreePhase.Intermediate))
)

// ExpectedDeposit is half of the quoted price plus the platform fee on it.
func ExpectedDeposit(quotedPrice, feeRate decimal.Decimal) PhaseCharge {
	net := quotedPrice.Mul(depositPercent).Div(hundred).Round(2)
	return PhaseCharge{Net: net, PlatformFee: net.Mul(feeRate).Round(2)}
}

func ExpectedIntermediate(quotedPrice decimal.Decimal) PhaseCharge {
	return PhaseCharge{Net: quotedPrice.Mul(intermediatePercent).Div(hundred).Round(2), PlatformFee: decimal.Zero}
}

// ExpectedFinal is whatever remains, independent of the display pattern.
func ExpectedFinal(s entities.PaymentSummary) PhaseCharge {
	return PhaseCharge{Net: s.BalanceDue, PlatformFee: decimal.Zero}
}
