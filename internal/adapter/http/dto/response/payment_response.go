package response

import (
	"time"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase"
)

type TransactionResponse struct {
	TransactionID     string    `json:"transaction_id"`
	JobID             string    `json:"job_id"`
	Type              string    `json:"type"`
	Amount            string    `json:"amount"`
	PlatformFee       string    `json:"platform_fee"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromTransaction(t entities.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     t.ID,
		JobID:             t.JobID,
		Type:              string(t.Type),
		Amount:            t.Amount.String(),
		PlatformFee:       t.PlatformFee.String(),
		Status:            string(t.Status),
		ProviderPaymentID: t.ProviderPaymentID,
		CreatedAt:         t.CreatedAt,
	}
}

func FromTransactions(txs []entities.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, FromTransaction(t))
	}
	return out
}

// PaymentResponse is the ledger row written plus the job state it led to.
type PaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	TransitionResponse
}

func FromPayment(r usecase.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Transaction:        FromTransaction(r.Transaction),
		TransitionResponse: FromTransition(r.TransitionResult),
	}
}
