package ledger

import (
	"errors"
	"testing"

	"job_engagement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func tx(id string, typ entities.TransactionType, amount, fee int64, status entities.TransactionStatus) entities.FinancialTransaction {
	return entities.FinancialTransaction{ID: id, JobID: "job-1", Type: typ, Amount: d(amount), PlatformFee: d(fee), Status: status}
}

func TestReconcile_DepositOnly(t *testing.T) {
	s, err := Reconcile("job-1", d(100000), []entities.FinancialTransaction{
		tx("t1", entities.TransactionTypeDeposit, 55000, 5000, entities.TransactionStatusCompleted),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.DepositNet.Equal(d(50000)) {
		t.Fatalf("expected deposit_net 50000, got %s", s.DepositNet)
	}
	if !s.Fee.Equal(d(5000)) {
		t.Fatalf("expected fee 5000, got %s", s.Fee)
	}
	if !s.BalanceDue.Equal(d(50000)) {
		t.Fatalf("expected balance_due 50000, got %s", s.BalanceDue)
	}
	if !s.TotalWithFee.Equal(d(55000)) || !s.TotalWithoutFee.Equal(d(50000)) {
		t.Fatalf("unexpected totals with=%s without=%s", s.TotalWithFee, s.TotalWithoutFee)
	}
	if s.Pattern.String() != "50/50" {
		t.Fatalf("expected 50/50, got %s", s.Pattern)
	}
	if !s.HasDeposit || s.HasIntermediate || s.HasFinal {
		t.Fatalf("unexpected flags: %+v", s)
	}
}

func TestReconcile_ThreePhasePattern(t *testing.T) {
	s, err := Reconcile("job-1", d(200000), []entities.FinancialTransaction{
		tx("t1", entities.TransactionTypeDeposit, 110000, 10000, entities.TransactionStatusCompleted),
		tx("t2", entities.TransactionTypeIntermediate, 60000, 0, entities.TransactionStatusCompleted),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.BalanceDue.Equal(d(40000)) {
		t.Fatalf("expected balance_due 40000, got %s", s.BalanceDue)
	}
	if s.Pattern.String() != "50/30/20" {
		t.Fatalf("expected 50/30/20, got %s", s.Pattern)
	}
}

func TestReconcile_PendingRows(t *testing.T) {
	s, err := Reconcile("job-1", d(200000), []entities.FinancialTransaction{
		tx("t1", entities.TransactionTypeDeposit, 110000, 10000, entities.TransactionStatusCompleted),
		tx("t2", entities.TransactionTypeIntermediate, 60000, 0, entities.TransactionStatusPending),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.PendingIntermediate {
		t.Fatalf("expected pending intermediate flag")
	}
	if s.HasIntermediate {
		t.Fatalf("pending row must not count as paid")
	}
	if s.Pattern.String() != "50/50" {
		t.Fatalf("pending intermediate must not switch the pattern, got %s", s.Pattern)
	}
	if !s.BalanceDue.Equal(d(100000)) {
		t.Fatalf("expected balance_due 100000, got %s", s.BalanceDue)
	}
}

func TestReconcile_DuplicateDepositsAreSummed(t *testing.T) {
	s, err := Reconcile("job-1", d(100000), []entities.FinancialTransaction{
		tx("t1", entities.TransactionTypeDeposit, 27500, 2500, entities.TransactionStatusCompleted),
		tx("t2", entities.TransactionTypeDeposit, 27500, 2500, entities.TransactionStatusCompleted),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.DepositNet.Equal(d(50000)) || !s.Fee.Equal(d(5000)) {
		t.Fatalf("expected summed deposit, got net=%s fee=%s", s.DepositNet, s.Fee)
	}
}

func TestReconcile_Inconsistencies(t *testing.T) {
	cases := []struct {
		name string
		txs  []entities.FinancialTransaction
	}{
		{
			name: "two completed final payments",
			txs: []entities.FinancialTransaction{
				tx("t1", entities.TransactionTypeDeposit, 55000, 5000, entities.TransactionStatusCompleted),
				tx("t2", entities.TransactionTypeFinalPayment, 25000, 0, entities.TransactionStatusCompleted),
				tx("t3", entities.TransactionTypeFinalPayment, 25000, 0, entities.TransactionStatusCompleted),
			},
		},
		{
			name: "negative balance",
			txs: []entities.FinancialTransaction{
				tx("t1", entities.TransactionTypeDeposit, 55000, 5000, entities.TransactionStatusCompleted),
				tx("t2", entities.TransactionTypeFinalPayment, 60000, 0, entities.TransactionStatusCompleted),
			},
		},
		{
			name: "fee above amount",
			txs:  []entities.FinancialTransaction{tx("t1", entities.TransactionTypeDeposit, 100, 500, entities.TransactionStatusCompleted)},
		},
		{
			name: "negative amount",
			txs:  []entities.FinancialTransaction{tx("t1", entities.TransactionTypeIntermediate, -5, 0, entities.TransactionStatusCompleted)},
		},
		{
			name: "foreign job",
			txs:  []entities.FinancialTransaction{{ID: "t1", JobID: "job-2", Type: entities.TransactionTypeDeposit, Status: entities.TransactionStatusCompleted}},
		},
		{
			name: "unknown type",
			txs:  []entities.FinancialTransaction{{ID: "t1", JobID: "job-1", Type: "refund", Status: entities.TransactionStatusCompleted}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Reconcile("job-1", d(100000), tc.txs)
			if !errors.Is(err, ErrInconsistent) {
				t.Fatalf("expected ErrInconsistent, got %v", err)
			}
			var ie *InconsistencyError
			if !errors.As(err, &ie) || ie.JobID != "job-1" {
				t.Fatalf("expected *InconsistencyError for job-1, got %#v", err)
			}
		})
	}
}

func TestReconcile_PendingFinalDuplicateIsTolerated(t *testing.T) {
	_, err := Reconcile("job-1", d(100000), []entities.FinancialTransaction{
		tx("t1", entities.TransactionTypeDeposit, 55000, 5000, entities.TransactionStatusCompleted),
		tx("t2", entities.TransactionTypeFinalPayment, 50000, 0, entities.TransactionStatusPending),
		tx("t3", entities.TransactionTypeFinalPayment, 50000, 0, entities.TransactionStatusCompleted),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcile_BalanceIsMonotonic(t *testing.T) {
	ledger := []entities.FinancialTransaction{
		tx("t1", entities.TransactionTypeDeposit, 110000, 10000, entities.TransactionStatusCompleted),
		tx("t2", entities.TransactionTypeIntermediate, 60000, 0, entities.TransactionStatusPending),
		tx("t3", entities.TransactionTypeIntermediate, 60000, 0, entities.TransactionStatusCompleted),
		tx("t4", entities.TransactionTypeFinalPayment, 40000, 0, entities.TransactionStatusCompleted),
	}

	prev := d(200000)
	for i := 0; i <= len(ledger); i++ {
		s, err := Reconcile("job-1", d(200000), ledger[:i])
		if err != nil {
			t.Fatalf("prefix %d: unexpected error: %v", i, err)
		}
		if s.BalanceDue.GreaterThan(prev) {
			t.Fatalf("prefix %d: balance increased from %s to %s", i, prev, s.BalanceDue)
		}
		if s.BalanceDue.IsNegative() {
			t.Fatalf("prefix %d: negative balance %s", i, s.BalanceDue)
		}
		prev = s.BalanceDue
	}
	if !prev.IsZero() {
		t.Fatalf("expected settled ledger, got balance %s", prev)
	}
}

func TestExpectedPhaseAmounts(t *testing.T) {
	dep := ExpectedDeposit(d(100000), decimal.RequireFromString("0.10"))
	if !dep.Net.Equal(d(50000)) || !dep.PlatformFee.Equal(d(5000)) || !dep.Gross().Equal(d(55000)) {
		t.Fatalf("unexpected deposit charge: %+v", dep)
	}

	mid := ExpectedIntermediate(d(200000))
	if !mid.Net.Equal(d(60000)) || !mid.PlatformFee.IsZero() {
		t.Fatalf("unexpected intermediate charge: %+v", mid)
	}

	fin := ExpectedFinal(entities.PaymentSummary{BalanceDue: d(40123)})
	if !fin.Gross().Equal(d(40123)) {
		t.Fatalf("final must equal the balance due, got %s", fin.Gross())
	}
}
