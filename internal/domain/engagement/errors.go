package engagement

import (
	"errors"
	"fmt"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/domain/ledger"
)

// Kind classifies why a transition was refused.
type Kind int

const (
	KindUnknown Kind = iota
	// KindIllegalTransition: the operation is not valid from the current
	// status, including terminal statuses and repeated operations.
	KindIllegalTransition
	// KindValidation: the payload breaks a domain rule.
	KindValidation
	// KindLedgerInconsistency: the ledger cannot be reconciled.
	KindLedgerInconsistency
	// KindPreconditionNotMet: the status allows the operation but the
	// ledger or job fields do not.
	KindPreconditionNotMet
	// KindForbidden: the actor is not a party allowed to perform it.
	KindForbidden
)

var (
	ErrIllegalTransition   = errors.New("illegal transition")
	ErrValidation          = errors.New("validation error")
	ErrLedgerInconsistency = ledger.ErrInconsistent
	ErrPreconditionNotMet  = errors.New("precondition not met")
	ErrForbidden           = errors.New("actor not allowed")
)

func (k Kind) String() string {
	switch k {
	case KindIllegalTransition:
		return "illegal_transition"
	case KindValidation:
		return "validation"
	case KindLedgerInconsistency:
		return "ledger_inconsistency"
	case KindPreconditionNotMet:
		return "precondition_not_met"
	case KindForbidden:
		return "forbidden"
	}
	return "unknown"
}

func (k Kind) sentinel() error {
	switch k {
	case KindIllegalTransition:
		return ErrIllegalTransition
	case KindValidation:
		return ErrValidation
	case KindLedgerInconsistency:
		return ErrLedgerInconsistency
	case KindPreconditionNotMet:
		return ErrPreconditionNotMet
	case KindForbidden:
		return ErrForbidden
	}
	return nil
}

// Rejection is returned for every refused operation. The snapshot the
// operation was called with is left untouched.
type Rejection struct {
	Kind    Kind
	Op      string
	Status  entities.JobStatus
	Message string
	Err     error

	// Summary is set when the ledger reconciled before the refusal.
	Summary *entities.PaymentSummary
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s (status %s): %s", r.Op, r.Status, r.Message)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

func (r *Rejection) Is(target error) bool {
	s := r.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of a *Rejection anywhere in err's chain.
func KindOf(err error) Kind {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Kind
	}
	return KindUnknown
}
