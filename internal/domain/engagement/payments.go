package engagement

import (
	"errors"
	"fmt"

	"job_engagement/internal/domain/entities"
)

func (m *Machine) ConfirmDepositReceived(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpConfirmDepositReceived,
		from:   []entities.JobStatus{entities.JobStatusAwaitingPayment},
		to:     entities.JobStatusDepositPaid,
		actors: systemOnly,
		require: func(_ entities.Job, s entities.PaymentSummary) error {
			if !s.HasDeposit {
				return errors.New("no completed deposit in the ledger")
			}
			return nil
		},
	})
}

// RequestIntermediatePayment asks for the optional 30% materials payment.
// It is refused once any intermediate row exists, pending or completed.
func (m *Machine) RequestIntermediatePayment(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpRequestIntermediatePayment,
		from:   []entities.JobStatus{entities.JobStatusDepositPaid},
		to:     entities.JobStatusWorkOngoing,
		actors: companyOnly,
		require: func(_ entities.Job, s entities.PaymentSummary) error {
			if s.HasIntermediate || s.PendingIntermediate {
				return errors.New("an intermediate payment already exists")
			}
			return nil
		},
	})
}

func (m *Machine) ConfirmIntermediateReceived(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpConfirmIntermediateReceived,
		from:   []entities.JobStatus{entities.JobStatusWorkOngoing},
		to:     entities.JobStatusIntermediatePaid,
		actors: systemOnly,
		require: func(_ entities.Job, s entities.PaymentSummary) error {
			if !s.HasIntermediate {
				return errors.New("no completed intermediate payment in the ledger")
			}
			return nil
		},
	})
}

func (m *Machine) MarkWorkCompleted(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpMarkWorkCompleted,
		from:   []entities.JobStatus{entities.JobStatusDepositPaid, entities.JobStatusIntermediatePaid},
		to:     entities.JobStatusWorkCompleted,
		actors: companyOnly,
	})
}

// ApproveWork closes the job. The final payment must already be in the
// ledger and must leave nothing due; otherwise the rejection's Summary
// carries the balance still owed.
func (m *Machine) ApproveWork(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpApproveWork,
		from:   []entities.JobStatus{entities.JobStatusWorkCompleted, entities.JobStatusWorkRectified},
		to:     entities.JobStatusCompleted,
		actors: customerOnly,
		require: func(_ entities.Job, s entities.PaymentSummary) error {
			if !s.HasFinal {
				return fmt.Errorf("final payment of %s has not been received", s.BalanceDue.StringFixed(2))
			}
			if !s.IsSettled() {
				return fmt.Errorf("balance of %s is still due", s.BalanceDue.StringFixed(2))
			}
			return nil
		},
		apply: func(job *entities.Job) {
			job.DisputeReason = ""
		},
	})
}
