package engagement

import (
	"errors"
	"time"

	"job_engagement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// The onsite fee is paid outside the platform. The customer's claim is
// recorded as-is and only the company's confirmation reopens quoting; no
// ledger row is ever involved.

// RequestOnsiteFee asks the customer for the site visit fee on a job
// created as requiring a visit.
func (m *Machine) RequestOnsiteFee(snap Snapshot, actor entities.Actor, amount decimal.Decimal) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpRequestOnsiteFee,
		from:   []entities.JobStatus{entities.JobStatusPending},
		to:     entities.JobStatusOnsiteFeeRequested,
		actors: companyOnly,
		validate: func() error {
			if !amount.IsPositive() {
				return errors.New("onsite fee must be positive")
			}
			return nil
		},
		require: func(job entities.Job, _ entities.PaymentSummary) error {
			if !job.RequiresOnsiteVisit {
				return errors.New("job does not require an onsite visit")
			}
			if job.OnsiteFeePaid {
				return errors.New("onsite fee already settled")
			}
			return nil
		},
		apply: func(job *entities.Job) {
			job.OnsiteFeeAmount = decimal.NullDecimal{Decimal: amount, Valid: true}
		},
	})
}

// ClaimOnsiteFeePaid records the customer's statement that the fee was
// transferred at the given time.
func (m *Machine) ClaimOnsiteFeePaid(snap Snapshot, actor entities.Actor, at time.Time) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpClaimOnsiteFeePaid,
		from:   []entities.JobStatus{entities.JobStatusOnsiteFeeRequested},
		to:     entities.JobStatusOnsiteFeePendingConfirmation,
		actors: customerOnly,
		validate: func() error {
			if at.IsZero() {
				return errors.New("payment time is required")
			}
			return nil
		},
		apply: func(job *entities.Job) {
			paidAt := at.UTC()
			job.OnsiteFeePaid = true
			job.OnsiteFeePaidAt = &paidAt
		},
	})
}

func (m *Machine) ConfirmOnsiteFeeReceived(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpConfirmOnsiteFeeReceived,
		from:   []entities.JobStatus{entities.JobStatusOnsiteFeePendingConfirmation},
		to:     entities.JobStatusPending,
		actors: companyOnly,
	})
}

func (m *Machine) DeclineOnsiteFee(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpDeclineOnsiteFee,
		from:   []entities.JobStatus{entities.JobStatusOnsiteFeeRequested},
		to:     entities.JobStatusDeclined,
		actors: customerOnly,
	})
}
