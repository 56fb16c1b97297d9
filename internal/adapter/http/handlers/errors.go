package handlers

import (
	"errors"
	"net/http"

	"job_engagement/internal/domain/engagement"
	"job_engagement/internal/usecase"
	"job_engagement/internal/usecase/interfaces"
	"job_engagement/pkg"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errActorMissing      = pkg.NewDomainErrorSimple("ACTOR_REQUIRED", "Actor headers are required", http.StatusUnauthorized)
)

func mapJobError(err error) *pkg.AppError {
	var rej *engagement.Rejection
	if errors.As(err, &rej) {
		return mapRejection(rej)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_ACTOR", "Actor not allowed for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobStatusConflict):
		return pkg.NewDomainErrorSimple("JOB_STATUS_CONFLICT", "Job was modified by another request, reload and retry", http.StatusConflict)
	case errors.Is(err, engagement.ErrLedgerInconsistency):
		return errLedgerInconsistency(err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapRejection keeps the machine's message: it names the rule that was
// broken and is safe to show.
func mapRejection(rej *engagement.Rejection) *pkg.AppError {
	switch rej.Kind {
	case engagement.KindValidation:
		return pkg.NewDomainError("VALIDATION_ERROR", rej.Message, rej, http.StatusBadRequest)
	case engagement.KindForbidden:
		return pkg.NewDomainError("FORBIDDEN", rej.Message, rej, http.StatusForbidden)
	case engagement.KindIllegalTransition:
		return pkg.NewDomainError("ILLEGAL_TRANSITION", rej.Message, rej, http.StatusConflict)
	case engagement.KindPreconditionNotMet:
		return pkg.NewDomainError("PRECONDITION_NOT_MET", rej.Message, rej, http.StatusPreconditionFailed)
	case engagement.KindLedgerInconsistency:
		return errLedgerInconsistency(rej)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", rej, http.StatusInternalServerError)
	}
}

func errLedgerInconsistency(err error) *pkg.AppError {
	return pkg.NewDomainError("LEDGER_INCONSISTENCY", "The payment ledger of this job is inconsistent and needs review", err, http.StatusInternalServerError)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhase), errors.Is(err, usecase.ErrInvalidTransaction),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment rejected by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrTransactionExists):
		return pkg.NewDomainErrorSimple("TRANSACTION_EXISTS", "Transaction already recorded", http.StatusConflict)
	default:
		return mapJobError(err)
	}
}
