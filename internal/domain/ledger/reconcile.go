// Package ledger turns a job's transaction history into a payment summary.
//
// Everything here is pure: no clock, no I/O, no logging.
package ledger

import (
	"job_engagement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Reconcile sums the completed rows of a job's ledger.
//
// Duplicate deposit and intermediate rows are summed. A second completed
// final payment, a negative balance or a malformed row yields an
// *InconsistencyError and no summary.
func Reconcile(jobID string, quotedPrice decimal.Decimal, txs []entities.FinancialTransaction) (entities.PaymentSummary, error) {
	s := entities.PaymentSummary{
		QuotedPrice:  quotedPrice,
		DepositNet:   decimal.Zero,
		Fee:          decimal.Zero,
		Intermediate: decimal.Zero,
		Final:        decimal.Zero,
	}

	finals := 0
	for _, tx := range txs {
		if err := checkRow(jobID, tx); err != nil {
			return entities.PaymentSummary{}, err
		}

		if tx.Type == entities.TransactionTypeIntermediate && tx.Status == entities.TransactionStatusPending {
			s.PendingIntermediate = true
		}
		if !tx.IsCompleted() {
			continue
		}

		switch tx.Type {
		case entities.TransactionTypeDeposit:
			s.DepositNet = s.DepositNet.Add(tx.Amount.Sub(tx.PlatformFee))
			s.Fee = s.Fee.Add(tx.PlatformFee)
			s.HasDeposit = true
		case entities.TransactionTypeIntermediate:
			s.Intermediate = s.Intermediate.Add(tx.Amount)
			s.HasIntermediate = true
		case entities.TransactionTypeFinalPayment:
			finals++
			if finals > 1 {
				return entities.PaymentSummary{}, &InconsistencyError{JobID: jobID, TransactionID: tx.ID, Reason: "more than one completed final payment"}
			}
			s.Final = s.Final.Add(tx.Amount)
			s.HasFinal = true
		}
	}

	s.TotalWithoutFee = s.DepositNet.Add(s.Intermediate).Add(s.Final)
	s.TotalWithFee = s.TotalWithoutFee.Add(s.Fee)
	s.BalanceDue = quotedPrice.Sub(s.TotalWithoutFee)
	if s.BalanceDue.IsNegative() {
		return entities.PaymentSummary{}, &InconsistencyError{JobID: jobID, Reason: "balance due is negative: " + s.BalanceDue.String()}
	}

	s.Pattern = entities.PatternTwoPhase
	if s.HasIntermediate {
		s.Pattern = entities.PatternThreePhase
	}
	return s, nil
}

func checkRow(jobID string, tx entities.FinancialTransaction) error {
	switch {
	case tx.JobID != jobID:
		return &InconsistencyError{JobID: jobID, TransactionID: tx.ID, Reason: "transaction belongs to job " + tx.JobID}
	case !tx.Type.Valid():
		return &InconsistencyError{JobID: jobID, TransactionID: tx.ID, Reason: "unknown transaction type " + string(tx.Type)}
	case !tx.Status.Valid():
		return &InconsistencyError{JobID: jobID, TransactionID: tx.ID, Reason: "unknown transaction status " + string(tx.Status)}
	case tx.Amount.IsNegative(), tx.PlatformFee.IsNegative():
		return &InconsistencyError{JobID: jobID, TransactionID: tx.ID, Reason: "negative amount"}
	case tx.PlatformFee.GreaterThan(tx.Amount):
		return &InconsistencyError{JobID: jobID, TransactionID: tx.ID, Reason: "platform fee exceeds amount"}
	}
	return nil
}
