package engagement

import (
	"errors"
	"strings"

	"job_engagement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	customerOnly = []entities.ActorRole{entities.ActorCustomer}
	companyOnly  = []entities.ActorRole{entities.ActorCompany}
	systemOnly   = []entities.ActorRole{entities.ActorSystem}
	eitherParty  = []entities.ActorRole{entities.ActorCustomer, entities.ActorCompany}
)

// SelectCompany assigns the company that will quote the job. The status
// does not change.
func (m *Machine) SelectCompany(snap Snapshot, actor entities.Actor, companyID string) (Outcome, error) {
	companyID = strings.TrimSpace(companyID)
	return m.run(snap, actor, transition{
		op:     OpSelectCompany,
		from:   []entities.JobStatus{entities.JobStatusPending},
		to:     entities.JobStatusPending,
		actors: customerOnly,
		validate: func() error {
			if companyID == "" {
				return errors.New("company id is required")
			}
			return nil
		},
		require: func(job entities.Job, _ entities.PaymentSummary) error {
			if job.HasCompany() {
				return errors.New("a company is already selected")
			}
			return nil
		},
		apply: func(job *entities.Job) {
			job.CompanyID = companyID
		},
	})
}

// SubmitQuote sets the quoted price. It is only legal from pending, and an
// onsite-required job must have its fee settled first.
func (m *Machine) SubmitQuote(snap Snapshot, actor entities.Actor, price decimal.Decimal) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpSubmitQuote,
		from:   []entities.JobStatus{entities.JobStatusPending},
		to:     entities.JobStatusPriceSet,
		actors: companyOnly,
		validate: func() error {
			if !price.IsPositive() {
				return errors.New("quoted price must be positive")
			}
			return nil
		},
		require: func(job entities.Job, _ entities.PaymentSummary) error {
			if len(snap.Ledger) > 0 {
				return errors.New("quoted price is immutable once payments exist")
			}
			if job.RequiresOnsiteVisit && !job.OnsiteFeePaid {
				return errors.New("onsite fee has not been settled")
			}
			return nil
		},
		apply: func(job *entities.Job) {
			job.QuotedPrice = price
		},
	})
}

// AcceptQuote moves the job to awaiting_payment. The deposit is posted
// later by the payment confirmation flow.
func (m *Machine) AcceptQuote(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpAcceptQuote,
		from:   []entities.JobStatus{entities.JobStatusPriceSet},
		to:     entities.JobStatusAwaitingPayment,
		actors: customerOnly,
	})
}

// DeclineQuote ends the job. The declining side is the actor; a company
// must say why.
func (m *Machine) DeclineQuote(snap Snapshot, actor entities.Actor, reason string) (Outcome, error) {
	reason = strings.TrimSpace(reason)
	to := entities.JobStatusDeclinedByCustomer
	if actor.Role == entities.ActorCompany {
		to = entities.JobStatusDeclinedByCompany
	}

	return m.run(snap, actor, transition{
		op:     OpDeclineQuote,
		from:   []entities.JobStatus{entities.JobStatusPriceSet},
		to:     to,
		actors: eitherParty,
		validate: func() error {
			if actor.Role == entities.ActorCompany && reason == "" {
				return errors.New("a reason is required when the company declines")
			}
			return nil
		},
		apply: func(job *entities.Job) {
			job.DeclineReason = reason
		},
	})
}
