package engagement

import (
	"errors"
	"testing"

	"job_engagement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	customer = entities.Actor{Role: entities.ActorCustomer, ID: "cust-1"}
	company  = entities.Actor{Role: entities.ActorCompany, ID: "comp-1"}
	system   = entities.SystemActor
)

func amount(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func jobAt(status entities.JobStatus, quoted int64) entities.Job {
	return entities.Job{
		ID:          "job-1",
		CustomerID:  "cust-1",
		CompanyID:   "comp-1",
		Title:       "Paint the fence",
		QuotedPrice: amount(quoted),
		Status:      status,
	}
}

func completed(id string, typ entities.TransactionType, amt, fee int64) entities.FinancialTransaction {
	return entities.FinancialTransaction{
		ID: id, JobID: "job-1", Type: typ,
		Amount: amount(amt), PlatformFee: amount(fee),
		Status: entities.TransactionStatusCompleted,
	}
}

func pending(id string, typ entities.TransactionType, amt int64) entities.FinancialTransaction {
	tx := completed(id, typ, amt, 0)
	tx.Status = entities.TransactionStatusPending
	return tx
}

func mustOutcome(t *testing.T, o Outcome, err error, want entities.JobStatus) Outcome {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Job.Status != want {
		t.Fatalf("expected status %s, got %s", want, o.Job.Status)
	}
	return o
}

func mustReject(t *testing.T, err error, kind Kind) *Rejection {
	t.Helper()
	var r *Rejection
	if !errors.As(err, &r) {
		t.Fatalf("expected *Rejection of kind %s, got %v", kind, err)
	}
	if r.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, r.Kind, err)
	}
	return r
}
