package interfaces

import (
	"context"
	"errors"

	"job_engagement/internal/domain/entities"
)

var ErrTransactionExists = errors.New("transaction already recorded")

// ITransactionRepository is the append-only payment ledger.
//
// Append is used only by the payment confirmation flow; rows are never
// updated or removed.
type ITransactionRepository interface {
	Append(ctx context.Context, tx entities.FinancialTransaction) (entities.FinancialTransaction, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.FinancialTransaction, error)
}
