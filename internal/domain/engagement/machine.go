// Package engagement is the job lifecycle state machine.
//
// Every operation takes a freshly read Snapshot, validates the request
// against the current status and the reconciled ledger, and returns the next
// job state with the notifications it raises. Nothing is persisted or sent
// here: the caller saves the job (guarded on Outcome.Previous) and
// dispatches Outcome.Intents.
package engagement

import (
	"slices"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/domain/ledger"
	"job_engagement/internal/domain/notification"
)

// DefaultMinReasonLength is the shortest accepted dispute reason, in characters.
const DefaultMinReasonLength = 10

// Snapshot is the authoritative state an operation is evaluated against.
type Snapshot struct {
	Job    entities.Job
	Ledger []entities.FinancialTransaction
}

// Outcome is the result of an accepted operation.
type Outcome struct {
	Op       string
	Job      entities.Job
	Previous entities.JobStatus
	Summary  entities.PaymentSummary
	Intents  []entities.NotificationIntent
}

// Changed reports whether the operation moved the job to another status.
func (o Outcome) Changed() bool {
	return o.Job.Status != o.Previous
}

type Machine struct {
	minReasonLength int
}

type Option func(*Machine)

// WithMinReasonLength overrides DefaultMinReasonLength. Values below 1 are ignored.
func WithMinReasonLength(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.minReasonLength = n
		}
	}
}

func NewMachine(opts ...Option) *Machine {
	m := &Machine{minReasonLength: DefaultMinReasonLength}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) MinReasonLength() int {
	return m.minReasonLength
}

// transition describes one operation. validate checks the payload and
// require checks job fields and the reconciled ledger; both run only once
// the status and actor are known to be acceptable.
type transition struct {
	op       string
	from     []entities.JobStatus
	to       entities.JobStatus
	actors   []entities.ActorRole
	validate func() error
	require  func(job entities.Job, s entities.PaymentSummary) error
	apply    func(job *entities.Job)
}

func (m *Machine) run(snap Snapshot, actor entities.Actor, t transition) (Outcome, error) {
	job := snap.Job

	summary, err := ledger.Reconcile(job.ID, job.QuotedPrice, snap.Ledger)
	if err != nil {
		return Outcome{}, &Rejection{Kind: KindLedgerInconsistency, Op: t.op, Status: job.Status, Message: err.Error(), Err: err}
	}

	reject := func(kind Kind, msg string) error {
		s := summary
		return &Rejection{Kind: kind, Op: t.op, Status: job.Status, Message: msg, Summary: &s}
	}

	if !job.Status.Valid() {
		return Outcome{}, reject(KindIllegalTransition, "unknown job status")
	}
	if !slices.Contains(t.from, job.Status) {
		return Outcome{}, reject(KindIllegalTransition, "not allowed from current status")
	}

	if kind, msg := checkActor(job, actor, t.actors); kind != KindUnknown {
		return Outcome{}, reject(kind, msg)
	}

	if t.validate != nil {
		if err := t.validate(); err != nil {
			return Outcome{}, reject(KindValidation, err.Error())
		}
	}
	if t.require != nil {
		if err := t.require(job, summary); err != nil {
			return Outcome{}, reject(KindPreconditionNotMet, err.Error())
		}
	}

	next := job
	if t.apply != nil {
		t.apply(&next)
	}
	next.Status = t.to

	// Quoting changes the price the ledger is measured against.
	if !next.QuotedPrice.Equal(job.QuotedPrice) {
		summary, err = ledger.Reconcile(next.ID, next.QuotedPrice, snap.Ledger)
		if err != nil {
			return Outcome{}, &Rejection{Kind: KindLedgerInconsistency, Op: t.op, Status: job.Status, Message: err.Error(), Err: err}
		}
	}

	return Outcome{
		Op:       t.op,
		Job:      next,
		Previous: job.Status,
		Summary:  summary,
		Intents:  notification.Map(job.Status, next.Status, actor.Role, next, summary),
	}, nil
}

func checkActor(job entities.Job, actor entities.Actor, allowed []entities.ActorRole) (Kind, string) {
	if !slices.Contains(allowed, actor.Role) {
		return KindForbidden, "operation not available to " + string(actor.Role)
	}

	switch actor.Role {
	case entities.ActorCustomer:
		if actor.ID == "" || actor.ID != job.CustomerID {
			return KindForbidden, "actor is not the job's customer"
		}
	case entities.ActorCompany:
		if !job.HasCompany() {
			return KindPreconditionNotMet, "no company selected for this job"
		}
		if actor.ID != job.CompanyID {
			return KindForbidden, "actor is not the job's company"
		}
	}
	return KindUnknown, ""
}

// Summarize reconciles a snapshot without applying any operation.
func Summarize(snap Snapshot) (entities.PaymentSummary, error) {
	s, err := ledger.Reconcile(snap.Job.ID, snap.Job.QuotedPrice, snap.Ledger)
	if err != nil {
		return entities.PaymentSummary{}, &Rejection{Kind: KindLedgerInconsistency, Op: "summarize", Status: snap.Job.Status, Message: err.Error(), Err: err}
	}
	return s, nil
}
