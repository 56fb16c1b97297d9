package engagement

import (
	"errors"
	"testing"

	"job_engagement/internal/domain/entities"
)

func TestDepositRoundTrip(t *testing.T) {
	m := NewMachine()
	snap := Snapshot{
		Job:    jobAt(entities.JobStatusAwaitingPayment, 100000),
		Ledger: []entities.FinancialTransaction{completed("t1", entities.TransactionTypeDeposit, 55000, 5000)},
	}

	out, err := m.ConfirmDepositReceived(snap, system)
	o := mustOutcome(t, out, err, entities.JobStatusDepositPaid)

	s := o.Summary
	if !s.DepositNet.Equal(amount(50000)) || !s.Fee.Equal(amount(5000)) || !s.BalanceDue.Equal(amount(50000)) {
		t.Fatalf("unexpected summary: net=%s fee=%s due=%s", s.DepositNet, s.Fee, s.BalanceDue)
	}
	if s.Pattern.String() != "50/50" {
		t.Fatalf("expected 50/50, got %s", s.Pattern)
	}
}

func TestIntermediatePaymentPath(t *testing.T) {
	m := NewMachine()
	job := jobAt(entities.JobStatusDepositPaid, 200000)
	txs := []entities.FinancialTransaction{completed("t1", entities.TransactionTypeDeposit, 110000, 10000)}

	out, err := m.RequestIntermediatePayment(Snapshot{Job: job, Ledger: txs}, company)
	o := mustOutcome(t, out, err, entities.JobStatusWorkOngoing)

	txs = append(txs, completed("t2", entities.TransactionTypeIntermediate, 60000, 0))
	out, err = m.ConfirmIntermediateReceived(Snapshot{Job: o.Job, Ledger: txs}, system)
	o = mustOutcome(t, out, err, entities.JobStatusIntermediatePaid)

	if !o.Summary.BalanceDue.Equal(amount(40000)) {
		t.Fatalf("expected balance_due 40000, got %s", o.Summary.BalanceDue)
	}
	if o.Summary.Pattern.String() != "50/30/20" {
		t.Fatalf("expected 50/30/20, got %s", o.Summary.Pattern)
	}
}

func TestCompanyDeclineNeedsReason(t *testing.T) {
	m := NewMachine()
	snap := Snapshot{Job: jobAt(entities.JobStatusPriceSet, 150000)}

	_, err := m.DeclineQuote(snap, company, "")
	mustReject(t, err, KindValidation)
	_, err = m.DeclineQuote(snap, company, "   ")
	mustReject(t, err, KindValidation)

	out, err := m.DeclineQuote(snap, company, "price too low")
	o := mustOutcome(t, out, err, entities.JobStatusDeclinedByCompany)
	if !o.Job.Status.IsTerminal() {
		t.Fatalf("expected terminal status")
	}
	if o.Job.DeclineReason != "price too low" {
		t.Fatalf("expected reason to be recorded, got %q", o.Job.DeclineReason)
	}

	after := Snapshot{Job: o.Job}
	calls := map[string]func() (Outcome, error){
		"accept":    func() (Outcome, error) { return m.AcceptQuote(after, customer) },
		"decline":   func() (Outcome, error) { return m.DeclineQuote(after, customer, "") },
		"quote":     func() (Outcome, error) { return m.SubmitQuote(after, company, amount(1)) },
		"complete":  func() (Outcome, error) { return m.MarkWorkCompleted(after, company) },
		"approve":   func() (Outcome, error) { return m.ApproveWork(after, customer) },
		"dispute":   func() (Outcome, error) { return m.ReportIssue(after, customer, "long enough reason") },
		"onsite":    func() (Outcome, error) { return m.RequestOnsiteFee(after, company, amount(100)) },
		"deposit":   func() (Outcome, error) { return m.ConfirmDepositReceived(after, system) },
		"rectified": func() (Outcome, error) { return m.MarkRectified(after, company) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			_, err := call()
			mustReject(t, err, KindIllegalTransition)
		})
	}
}

func TestCustomerDeclineNeedsNoReason(t *testing.T) {
	m := NewMachine()
	out, err := m.DeclineQuote(Snapshot{Job: jobAt(entities.JobStatusPriceSet, 150000)}, customer, "")
	mustOutcome(t, out, err, entities.JobStatusDeclinedByCustomer)
}

func TestDisputeLoop(t *testing.T) {
	m := NewMachine()
	txs := []entities.FinancialTransaction{
		completed("t1", entities.TransactionTypeDeposit, 55000, 5000),
		completed("t2", entities.TransactionTypeFinalPayment, 50000, 0),
	}
	job := jobAt(entities.JobStatusWorkCompleted, 100000)

	out, err := m.ReportIssue(Snapshot{Job: job, Ledger: txs}, customer, "paint peeling after one day")
	o := mustOutcome(t, out, err, entities.JobStatusWorkDisputed)
	if o.Job.DisputeReason != "paint peeling after one day" {
		t.Fatalf("unexpected reason %q", o.Job.DisputeReason)
	}

	out, err = m.MarkRectified(Snapshot{Job: o.Job, Ledger: txs}, company)
	o = mustOutcome(t, out, err, entities.JobStatusWorkRectified)
	if o.Job.DisputeReason != "paint peeling after one day" {
		t.Fatalf("rectification must keep the reason, got %q", o.Job.DisputeReason)
	}

	out, err = m.ReportIssue(Snapshot{Job: o.Job, Ledger: txs}, customer, "still peeling")
	o = mustOutcome(t, out, err, entities.JobStatusWorkDisputed)
	if o.Job.DisputeReason != "still peeling" {
		t.Fatalf("expected overwritten reason, got %q", o.Job.DisputeReason)
	}

	out, err = m.MarkRectified(Snapshot{Job: o.Job, Ledger: txs}, company)
	o = mustOutcome(t, out, err, entities.JobStatusWorkRectified)

	out, err = m.ApproveWork(Snapshot{Job: o.Job, Ledger: txs}, customer)
	mustOutcome(t, out, err, entities.JobStatusCompleted)
}

func TestDuplicateFinalPaymentIsInconsistent(t *testing.T) {
	m := NewMachine()
	snap := Snapshot{
		Job: jobAt(entities.JobStatusWorkCompleted, 100000),
		Ledger: []entities.FinancialTransaction{
			completed("t1", entities.TransactionTypeDeposit, 55000, 5000),
			completed("t2", entities.TransactionTypeFinalPayment, 25000, 0),
			completed("t3", entities.TransactionTypeFinalPayment, 25000, 0),
		},
	}

	_, err := m.ApproveWork(snap, customer)
	r := mustReject(t, err, KindLedgerInconsistency)
	if !errors.Is(err, ErrLedgerInconsistency) {
		t.Fatalf("expected ErrLedgerInconsistency")
	}
	if errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("ledger inconsistency must not look like an illegal transition")
	}
	if r.Summary != nil {
		t.Fatalf("no summary can be reported for an inconsistent ledger")
	}

	if _, err := Summarize(snap); !errors.Is(err, ErrLedgerInconsistency) {
		t.Fatalf("expected Summarize to fail too, got %v", err)
	}
}

// Every legal path that ends in completed settles the quoted price exactly.
func TestCompletedPathsSettleQuotedPrice(t *testing.T) {
	m := NewMachine()

	paths := []struct {
		name         string
		intermediate bool
		dispute      bool
	}{
		{name: "two phase"},
		{name: "three phase", intermediate: true},
		{name: "three phase with dispute", intermediate: true, dispute: true},
		{name: "two phase with dispute", dispute: true},
	}

	for _, p := range paths {
		t.Run(p.name, func(t *testing.T) {
			job := jobAt(entities.JobStatusPending, 0)
			var txs []entities.FinancialTransaction
			step := func(call func(Snapshot) (Outcome, error), want entities.JobStatus) {
				t.Helper()
				out, err := call(Snapshot{Job: job, Ledger: txs})
				job = mustOutcome(t, out, err, want).Job
			}

			step(func(s Snapshot) (Outcome, error) { return m.SubmitQuote(s, company, amount(200000)) }, entities.JobStatusPriceSet)
			step(func(s Snapshot) (Outcome, error) { return m.AcceptQuote(s, customer) }, entities.JobStatusAwaitingPayment)
			txs = append(txs, completed("dep", entities.TransactionTypeDeposit, 110000, 10000))
			step(func(s Snapshot) (Outcome, error) { return m.ConfirmDepositReceived(s, system) }, entities.JobStatusDepositPaid)

			if p.intermediate {
				step(func(s Snapshot) (Outcome, error) { return m.RequestIntermediatePayment(s, company) }, entities.JobStatusWorkOngoing)
				txs = append(txs, completed("mid", entities.TransactionTypeIntermediate, 60000, 0))
				step(func(s Snapshot) (Outcome, error) { return m.ConfirmIntermediateReceived(s, system) }, entities.JobStatusIntermediatePaid)
			}

			step(func(s Snapshot) (Outcome, error) { return m.MarkWorkCompleted(s, company) }, entities.JobStatusWorkCompleted)
			if p.dispute {
				step(func(s Snapshot) (Outcome, error) { return m.ReportIssue(s, customer, "the gate is crooked") }, entities.JobStatusWorkDisputed)
				step(func(s Snapshot) (Outcome, error) { return m.MarkRectified(s, company) }, entities.JobStatusWorkRectified)
			}

			summary, err := Summarize(Snapshot{Job: job, Ledger: txs})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			txs = append(txs, completed("fin", entities.TransactionTypeFinalPayment, summary.BalanceDue.IntPart(), 0))

			out, err := m.ApproveWork(Snapshot{Job: job, Ledger: txs}, customer)
			o := mustOutcome(t, out, err, entities.JobStatusCompleted)
			if !o.Summary.TotalWithoutFee.Equal(amount(200000)) {
				t.Fatalf("expected total_without_fee 200000, got %s", o.Summary.TotalWithoutFee)
			}
		})
	}
}
