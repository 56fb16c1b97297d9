package engagement

import (
	"testing"
	"time"

	"job_engagement/internal/domain/entities"
)

func TestOnsiteFeeProtocol(t *testing.T) {
	m := NewMachine()
	job := jobAt(entities.JobStatusPending, 0)
	job.RequiresOnsiteVisit = true

	_, err := m.RequestOnsiteFee(Snapshot{Job: job}, company, amount(0))
	mustReject(t, err, KindValidation)

	out, err := m.RequestOnsiteFee(Snapshot{Job: job}, company, amount(15000))
	o := mustOutcome(t, out, err, entities.JobStatusOnsiteFeeRequested)
	if !o.Job.RequiresOnsiteVisit || !o.Job.OnsiteFeeAmount.Valid || !o.Job.OnsiteFeeAmount.Decimal.Equal(amount(15000)) {
		t.Fatalf("expected onsite fee 15000 to be recorded, got %+v", o.Job.OnsiteFeeAmount)
	}

	_, err = m.ClaimOnsiteFeePaid(Snapshot{Job: o.Job}, customer, time.Time{})
	mustReject(t, err, KindValidation)

	paidAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	out, err = m.ClaimOnsiteFeePaid(Snapshot{Job: o.Job}, customer, paidAt)
	o = mustOutcome(t, out, err, entities.JobStatusOnsiteFeePendingConfirmation)
	if !o.Job.OnsiteFeePaid || o.Job.OnsiteFeePaidAt == nil || !o.Job.OnsiteFeePaidAt.Equal(paidAt) {
		t.Fatalf("expected claim to be recorded")
	}
	if o.Job.OnsiteFeePaidAt.Location() != time.UTC {
		t.Fatalf("expected claim time in UTC")
	}

	out, err = m.ConfirmOnsiteFeeReceived(Snapshot{Job: o.Job}, company)
	o = mustOutcome(t, out, err, entities.JobStatusPending)

	_, err = m.RequestOnsiteFee(Snapshot{Job: o.Job}, company, amount(100))
	mustReject(t, err, KindPreconditionNotMet)

	out, err = m.SubmitQuote(Snapshot{Job: o.Job}, company, amount(300000))
	o = mustOutcome(t, out, err, entities.JobStatusPriceSet)
	if !o.Summary.TotalWithFee.IsZero() {
		t.Fatalf("onsite fee must never enter the ledger, got %s", o.Summary.TotalWithFee)
	}
}

func TestRequestOnsiteFeeNeedsVisitFlag(t *testing.T) {
	m := NewMachine()
	job := jobAt(entities.JobStatusPending, 0)

	_, err := m.RequestOnsiteFee(Snapshot{Job: job}, company, amount(15000))
	rej := mustReject(t, err, KindPreconditionNotMet)
	if rej.Status != entities.JobStatusPending {
		t.Fatalf("expected rejection at pending, got %s", rej.Status)
	}
}

func TestSubmitQuoteBlockedUntilOnsiteFeeSettled(t *testing.T) {
	m := NewMachine()
	job := jobAt(entities.JobStatusPending, 0)
	job.RequiresOnsiteVisit = true

	_, err := m.SubmitQuote(Snapshot{Job: job}, company, amount(100))
	mustReject(t, err, KindPreconditionNotMet)
}

func TestDeclineOnsiteFee(t *testing.T) {
	m := NewMachine()
	job := jobAt(entities.JobStatusOnsiteFeeRequested, 0)

	_, err := m.DeclineOnsiteFee(Snapshot{Job: job}, company)
	mustReject(t, err, KindForbidden)

	out, err := m.DeclineOnsiteFee(Snapshot{Job: job}, customer)
	o := mustOutcome(t, out, err, entities.JobStatusDeclined)
	if !o.Job.Status.IsTerminal() {
		t.Fatalf("declined must be terminal")
	}
}

func TestClaimMustBeConfirmedByCompany(t *testing.T) {
	m := NewMachine()
	job := jobAt(entities.JobStatusOnsiteFeePendingConfirmation, 0)

	_, err := m.ConfirmOnsiteFeeReceived(Snapshot{Job: job}, customer)
	mustReject(t, err, KindForbidden)
	_, err = m.ConfirmOnsiteFeeReceived(Snapshot{Job: job}, system)
	mustReject(t, err, KindForbidden)
}
