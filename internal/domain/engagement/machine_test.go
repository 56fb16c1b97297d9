package engagement

import (
	"errors"
	"testing"

	"job_engagement/internal/domain/entities"
)

func TestIllegalTransitionIsIdempotent(t *testing.T) {
	m := NewMachine()
	snap := Snapshot{Job: jobAt(entities.JobStatusCompleted, 100000)}

	_, first := m.AcceptQuote(snap, customer)
	_, second := m.AcceptQuote(snap, customer)
	mustReject(t, first, KindIllegalTransition)
	if first.Error() != second.Error() {
		t.Fatalf("expected identical rejections, got %q and %q", first, second)
	}
	if snap.Job.Status != entities.JobStatusCompleted {
		t.Fatalf("snapshot must not change")
	}
}

func TestRepeatedOperationIsIllegal(t *testing.T) {
	m := NewMachine()
	out, err := m.AcceptQuote(Snapshot{Job: jobAt(entities.JobStatusPriceSet, 1000)}, customer)
	o := mustOutcome(t, out, err, entities.JobStatusAwaitingPayment)

	_, err = m.AcceptQuote(Snapshot{Job: o.Job}, customer)
	mustReject(t, err, KindIllegalTransition)
}

func TestTerminalStatusesRefuseEverything(t *testing.T) {
	m := NewMachine()
	for _, status := range []entities.JobStatus{
		entities.JobStatusCompleted,
		entities.JobStatusDeclined,
		entities.JobStatusDeclinedByCustomer,
		entities.JobStatusDeclinedByCompany,
	} {
		t.Run(string(status), func(t *testing.T) {
			snap := Snapshot{Job: jobAt(status, 1000)}
			if _, err := m.SubmitQuote(snap, company, amount(10)); !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("expected ErrIllegalTransition, got %v", err)
			}
			if _, err := m.SelectCompany(snap, customer, "comp-2"); !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("expected ErrIllegalTransition, got %v", err)
			}
		})
	}
}

func TestUnknownStatusIsIllegal(t *testing.T) {
	m := NewMachine()
	_, err := m.AcceptQuote(Snapshot{Job: jobAt("archived", 1000)}, customer)
	mustReject(t, err, KindIllegalTransition)
}

func TestActorChecks(t *testing.T) {
	m := NewMachine()
	priceSet := Snapshot{Job: jobAt(entities.JobStatusPriceSet, 1000)}

	tests := []struct {
		name string
		call func() (Outcome, error)
		kind Kind
	}{
		{
			name: "company cannot accept a quote",
			call: func() (Outcome, error) { return m.AcceptQuote(priceSet, company) },
			kind: KindForbidden,
		},
		{
			name: "another customer cannot accept",
			call: func() (Outcome, error) {
				return m.AcceptQuote(priceSet, entities.Actor{Role: entities.ActorCustomer, ID: "cust-2"})
			},
			kind: KindForbidden,
		},
		{
			name: "customer without id is refused",
			call: func() (Outcome, error) {
				return m.AcceptQuote(priceSet, entities.Actor{Role: entities.ActorCustomer})
			},
			kind: KindForbidden,
		},
		{
			name: "another company cannot quote",
			call: func() (Outcome, error) {
				return m.SubmitQuote(Snapshot{Job: jobAt(entities.JobStatusPending, 0)},
					entities.Actor{Role: entities.ActorCompany, ID: "comp-2"}, amount(10))
			},
			kind: KindForbidden,
		},
		{
			name: "customer cannot confirm a deposit",
			call: func() (Outcome, error) {
				return m.ConfirmDepositReceived(Snapshot{Job: jobAt(entities.JobStatusAwaitingPayment, 1000)}, customer)
			},
			kind: KindForbidden,
		},
		{
			name: "system cannot approve work",
			call: func() (Outcome, error) {
				return m.ApproveWork(Snapshot{Job: jobAt(entities.JobStatusWorkCompleted, 1000)}, system)
			},
			kind: KindForbidden,
		},
		{
			name: "company actor on a job without a company",
			call: func() (Outcome, error) {
				job := jobAt(entities.JobStatusPending, 0)
				job.CompanyID = ""
				return m.SubmitQuote(Snapshot{Job: job}, company, amount(10))
			},
			kind: KindPreconditionNotMet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			mustReject(t, err, tt.kind)
		})
	}
}

func TestStatusIsCheckedBeforeActor(t *testing.T) {
	m := NewMachine()
	_, err := m.AcceptQuote(Snapshot{Job: jobAt(entities.JobStatusPending, 0)}, company)
	mustReject(t, err, KindIllegalTransition)
}

func TestLedgerIsCheckedBeforeStatus(t *testing.T) {
	m := NewMachine()
	snap := Snapshot{
		Job: jobAt(entities.JobStatusCompleted, 100),
		Ledger: []entities.FinancialTransaction{
			completed("t1", entities.TransactionTypeDeposit, 500, 0),
		},
	}
	_, err := m.AcceptQuote(snap, company)
	mustReject(t, err, KindLedgerInconsistency)
}

func TestSelectCompany(t *testing.T) {
	m := NewMachine()
	job := jobAt(entities.JobStatusPending, 0)
	job.CompanyID = ""

	_, err := m.SelectCompany(Snapshot{Job: job}, customer, "  ")
	mustReject(t, err, KindValidation)

	out, err := m.SelectCompany(Snapshot{Job: job}, customer, "comp-9")
	o := mustOutcome(t, out, err, entities.JobStatusPending)
	if o.Job.CompanyID != "comp-9" {
		t.Fatalf("expected company comp-9, got %q", o.Job.CompanyID)
	}
	if o.Changed() {
		t.Fatalf("selecting a company does not change status")
	}
	if len(o.Intents) != 1 || o.Intents[0].Category != entities.NotificationCompanySelected {
		t.Fatalf("expected a company_selected intent, got %+v", o.Intents)
	}

	_, err = m.SelectCompany(Snapshot{Job: o.Job}, customer, "comp-10")
	mustReject(t, err, KindPreconditionNotMet)
}

func TestSubmitQuote(t *testing.T) {
	m := NewMachine()
	snap := Snapshot{Job: jobAt(entities.JobStatusPending, 0)}

	for _, price := range []int64{0, -5} {
		_, err := m.SubmitQuote(snap, company, amount(price))
		mustReject(t, err, KindValidation)
	}

	withLedger := snap
	withLedger.Ledger = []entities.FinancialTransaction{pending("t1", entities.TransactionTypeIntermediate, 0)}
	_, err := m.SubmitQuote(withLedger, company, amount(100))
	mustReject(t, err, KindPreconditionNotMet)

	out, err := m.SubmitQuote(snap, company, amount(100))
	o := mustOutcome(t, out, err, entities.JobStatusPriceSet)
	if !o.Job.QuotedPrice.Equal(amount(100)) || !o.Summary.BalanceDue.Equal(amount(100)) {
		t.Fatalf("expected summary against the new price, got %s", o.Summary.BalanceDue)
	}
	if !snap.Job.QuotedPrice.IsZero() {
		t.Fatalf("snapshot must not change")
	}
}

func TestConfirmDepositNeedsCompletedDeposit(t *testing.T) {
	m := NewMachine()
	snap := Snapshot{
		Job:    jobAt(entities.JobStatusAwaitingPayment, 1000),
		Ledger: []entities.FinancialTransaction{pending("t1", entities.TransactionTypeDeposit, 550)},
	}
	r := mustReject(t, func() error { _, err := m.ConfirmDepositReceived(snap, system); return err }(), KindPreconditionNotMet)
	if r.Summary == nil || r.Summary.HasDeposit {
		t.Fatalf("expected a summary without deposit, got %+v", r.Summary)
	}
}

func TestIntermediateRequestedOnce(t *testing.T) {
	m := NewMachine()
	deposit := completed("t1", entities.TransactionTypeDeposit, 110, 10)

	for name, row := range map[string]entities.FinancialTransaction{
		"pending":   pending("t2", entities.TransactionTypeIntermediate, 60),
		"completed": completed("t2", entities.TransactionTypeIntermediate, 60, 0),
	} {
		t.Run(name, func(t *testing.T) {
			snap := Snapshot{
				Job:    jobAt(entities.JobStatusDepositPaid, 200),
				Ledger: []entities.FinancialTransaction{deposit, row},
			}
			_, err := m.RequestIntermediatePayment(snap, company)
			mustReject(t, err, KindPreconditionNotMet)
		})
	}
}

func TestApproveWorkRequiresSettlement(t *testing.T) {
	m := NewMachine()
	deposit := completed("t1", entities.TransactionTypeDeposit, 55000, 5000)

	_, err := m.ApproveWork(Snapshot{
		Job:    jobAt(entities.JobStatusWorkCompleted, 100000),
		Ledger: []entities.FinancialTransaction{deposit},
	}, customer)
	r := mustReject(t, err, KindPreconditionNotMet)
	if r.Summary == nil || !r.Summary.BalanceDue.Equal(amount(50000)) {
		t.Fatalf("expected balance_due 50000 on the rejection")
	}

	_, err = m.ApproveWork(Snapshot{
		Job:    jobAt(entities.JobStatusWorkCompleted, 100000),
		Ledger: []entities.FinancialTransaction{deposit, completed("t2", entities.TransactionTypeFinalPayment, 30000, 0)},
	}, customer)
	mustReject(t, err, KindPreconditionNotMet)
}

func TestMarkWorkCompletedSources(t *testing.T) {
	m := NewMachine()
	for _, status := range []entities.JobStatus{entities.JobStatusDepositPaid, entities.JobStatusIntermediatePaid} {
		out, err := m.MarkWorkCompleted(Snapshot{Job: jobAt(status, 100)}, company)
		o := mustOutcome(t, out, err, entities.JobStatusWorkCompleted)
		if len(o.Intents) == 0 || o.Intents[0].RecipientRole != entities.ActorCustomer {
			t.Fatalf("expected the customer to be notified, got %+v", o.Intents)
		}
	}

	_, err := m.MarkWorkCompleted(Snapshot{Job: jobAt(entities.JobStatusWorkOngoing, 100)}, company)
	mustReject(t, err, KindIllegalTransition)
}

func TestKindOf(t *testing.T) {
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Fatalf("expected KindUnknown")
	}
	err := &Rejection{Kind: KindForbidden, Op: OpAcceptQuote}
	if KindOf(err) != KindForbidden || !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden rejection")
	}
	if KindForbidden.String() != "forbidden" {
		t.Fatalf("unexpected kind name %s", KindForbidden)
	}
}
