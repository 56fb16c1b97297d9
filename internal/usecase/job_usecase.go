package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job_engagement/internal/domain/engagement"
	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidJobInput   = errors.New("invalid job input")
	ErrInvalidActor      = errors.New("invalid actor")
	ErrJobStatusConflict = errors.New("job was modified concurrently")
)

// NewJobInput is what a customer provides when posting a job.
type NewJobInput struct {
	Title               string
	Description         string
	CompanyID           string
	RequiresOnsiteVisit bool
}

// TransitionResult is returned by every accepted operation.
type TransitionResult struct {
	Job     entities.Job
	Summary entities.PaymentSummary
	Intents []entities.NotificationIntent
}

// IJobUseCase exposes the job lifecycle.
//
// Each mutating method loads the job and its ledger, runs the state
// machine, saves the job guarded on the status it read, appends an audit
// event and dispatches notifications. Rejections from the machine are
// returned as *engagement.Rejection.
type IJobUseCase interface {
	CreateJob(ctx context.Context, actor entities.Actor, in NewJobInput) (entities.Job, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	GetPaymentSummary(ctx context.Context, jobID string) (entities.PaymentSummary, error)
	ListEvents(ctx context.Context, jobID string) ([]entities.JobEvent, error)

	SelectCompany(ctx context.Context, jobID string, actor entities.Actor, companyID string) (TransitionResult, error)
	RequestOnsiteFee(ctx context.Context, jobID string, actor entities.Actor, amount decimal.Decimal) (TransitionResult, error)
	ClaimOnsiteFeePaid(ctx context.Context, jobID string, actor entities.Actor, paidAt time.Time) (TransitionResult, error)
	ConfirmOnsiteFeeReceived(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error)
	DeclineOnsiteFee(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error)
	SubmitQuote(ctx context.Context, jobID string, actor entities.Actor, price decimal.Decimal) (TransitionResult, error)
	AcceptQuote(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error)
	DeclineQuote(ctx context.Context, jobID string, actor entities.Actor, reason string) (TransitionResult, error)
	RequestIntermediatePayment(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error)
	MarkWorkCompleted(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error)
	ApproveWork(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error)
	ReportIssue(ctx context.Context, jobID string, actor entities.Actor, reason string) (TransitionResult, error)
	MarkRectified(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error)

	// ConfirmPayment runs the system transition a newly completed ledger
	// row unlocks, if any.
	ConfirmPayment(ctx context.Context, jobID string, txType entities.TransactionType) (TransitionResult, error)
}

type JobUseCase struct {
	jobs       interfaces.IJobRepository
	txs        interfaces.ITransactionRepository
	events     interfaces.IJobEventRepository
	dispatcher interfaces.INotificationDispatcher
	machine    *engagement.Machine
	now        func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	txs interfaces.ITransactionRepository,
	events interfaces.IJobEventRepository,
	dispatcher interfaces.INotificationDispatcher,
	machine *engagement.Machine,
) *JobUseCase {
	if machine == nil {
		machine = engagement.NewMachine()
	}
	return &JobUseCase{
		jobs:       jobs,
		txs:        txs,
		events:     events,
		dispatcher: dispatcher,
		machine:    machine,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *JobUseCase) CreateJob(ctx context.Context, actor entities.Actor, in NewJobInput) (entities.Job, error) {
	if actor.Role != entities.ActorCustomer || strings.TrimSpace(actor.ID) == "" {
		return entities.Job{}, ErrInvalidActor
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	now := u.now()
	job := entities.Job{
		ID:                  uuid.NewString(),
		CustomerID:          strings.TrimSpace(actor.ID),
		CompanyID:           strings.TrimSpace(in.CompanyID),
		Title:               title,
		Description:         strings.TrimSpace(in.Description),
		RequiresOnsiteVisit: in.RequiresOnsiteVisit,
		QuotedPrice:         decimal.Zero,
		Status:              entities.JobStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		log.Printf("[job][usecase] create failed customer_id=%s err=%v", job.CustomerID, err)
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created job_id=%s customer_id=%s company_id=%q onsite=%t", created.ID, created.CustomerID, created.CompanyID, created.RequiresOnsiteVisit)
	return created, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) GetPaymentSummary(ctx context.Context, jobID string) (entities.PaymentSummary, error) {
	snap, err := u.load(ctx, jobID)
	if err != nil {
		return entities.PaymentSummary{}, err
	}
	s, err := engagement.Summarize(snap)
	if err != nil {
		alertIfInconsistent(snap.Job.ID, err)
		return entities.PaymentSummary{}, err
	}
	return s, nil
}

func (u *JobUseCase) ListEvents(ctx context.Context, jobID string) ([]entities.JobEvent, error) {
	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return u.events.ListByJobID(ctx, job.ID)
}

func (u *JobUseCase) SelectCompany(ctx context.Context, jobID string, actor entities.Actor, companyID string) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.SelectCompany(s, actor, companyID)
	})
}

func (u *JobUseCase) RequestOnsiteFee(ctx context.Context, jobID string, actor entities.Actor, amount decimal.Decimal) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.RequestOnsiteFee(s, actor, amount)
	})
}

// ClaimOnsiteFeePaid records the customer's word only. Nothing checks that
// money moved; the company's confirmation is the real gate.
func (u *JobUseCase) ClaimOnsiteFeePaid(ctx context.Context, jobID string, actor entities.Actor, paidAt time.Time) (TransitionResult, error) {
	if paidAt.IsZero() {
		paidAt = u.now()
	}
	res, err := u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.ClaimOnsiteFeePaid(s, actor, paidAt)
	})
	if err == nil {
		log.Printf("[job][usecase] onsite fee claimed unverified job_id=%s customer_id=%s paid_at=%s", res.Job.ID, actor.ID, paidAt.UTC().Format(time.RFC3339))
	}
	return res, err
}

func (u *JobUseCase) ConfirmOnsiteFeeReceived(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.ConfirmOnsiteFeeReceived(s, actor)
	})
}

func (u *JobUseCase) DeclineOnsiteFee(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.DeclineOnsiteFee(s, actor)
	})
}

func (u *JobUseCase) SubmitQuote(ctx context.Context, jobID string, actor entities.Actor, price decimal.Decimal) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.SubmitQuote(s, actor, price)
	})
}

func (u *JobUseCase) AcceptQuote(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.AcceptQuote(s, actor)
	})
}

func (u *JobUseCase) DeclineQuote(ctx context.Context, jobID string, actor entities.Actor, reason string) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.DeclineQuote(s, actor, reason)
	})
}

func (u *JobUseCase) RequestIntermediatePayment(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.RequestIntermediatePayment(s, actor)
	})
}

func (u *JobUseCase) MarkWorkCompleted(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.MarkWorkCompleted(s, actor)
	})
}

func (u *JobUseCase) ApproveWork(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.ApproveWork(s, actor)
	})
}

func (u *JobUseCase) ReportIssue(ctx context.Context, jobID string, actor entities.Actor, reason string) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.ReportIssue(s, actor, reason)
	})
}

func (u *JobUseCase) MarkRectified(ctx context.Context, jobID string, actor entities.Actor) (TransitionResult, error) {
	return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
		return u.machine.MarkRectified(s, actor)
	})
}

// ConfirmPayment is driven by the payment flow after a completed row is
// appended. A final payment unlocks nothing on its own: the customer still
// approves the work.
func (u *JobUseCase) ConfirmPayment(ctx context.Context, jobID string, txType entities.TransactionType) (TransitionResult, error) {
	actor := entities.SystemActor
	switch txType {
	case entities.TransactionTypeDeposit:
		return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
			return u.machine.ConfirmDepositReceived(s, actor)
		})
	case entities.TransactionTypeIntermediate:
		return u.transition(ctx, jobID, actor, func(s engagement.Snapshot) (engagement.Outcome, error) {
			return u.machine.ConfirmIntermediateReceived(s, actor)
		})
	case entities.TransactionTypeFinalPayment:
		snap, err := u.load(ctx, jobID)
		if err != nil {
			return TransitionResult{}, err
		}
		s, err := engagement.Summarize(snap)
		if err != nil {
			alertIfInconsistent(snap.Job.ID, err)
			return TransitionResult{}, err
		}
		return TransitionResult{Job: snap.Job, Summary: s}, nil
	}
	return TransitionResult{}, ErrInvalidPhase
}

func (u *JobUseCase) load(ctx context.Context, jobID string) (engagement.Snapshot, error) {
	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return engagement.Snapshot{}, err
	}
	txs, err := u.txs.ListByJobID(ctx, job.ID)
	if err != nil {
		log.Printf("[job][usecase] failed loading ledger job_id=%s err=%v", job.ID, err)
		return engagement.Snapshot{}, err
	}
	return engagement.Snapshot{Job: job, Ledger: txs}, nil
}

func (u *JobUseCase) transition(
	ctx context.Context,
	jobID string,
	actor entities.Actor,
	op func(engagement.Snapshot) (engagement.Outcome, error),
) (TransitionResult, error) {
	if !actor.Role.Valid() {
		return TransitionResult{}, ErrInvalidActor
	}
	snap, err := u.load(ctx, jobID)
	if err != nil {
		return TransitionResult{}, err
	}

	out, err := op(snap)
	if err != nil {
		alertIfInconsistent(snap.Job.ID, err)
		log.Printf("[job][usecase] transition rejected job_id=%s status=%s actor=%s err=%v", snap.Job.ID, snap.Job.Status, actor.Role, err)
		return TransitionResult{}, err
	}

	next := out.Job
	next.UpdatedAt = u.now()
	saved, err := u.jobs.Save(ctx, next, out.Previous)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			log.Printf("[job][usecase] status conflict job_id=%s expected=%s op=%s", next.ID, out.Previous, out.Op)
			return TransitionResult{}, ErrJobStatusConflict
		}
		log.Printf("[job][usecase] save failed job_id=%s op=%s err=%v", next.ID, out.Op, err)
		return TransitionResult{}, err
	}
	log.Printf("[job][usecase] transition job_id=%s op=%s from=%s to=%s actor=%s", saved.ID, out.Op, out.Previous, saved.Status, actor.Role)

	u.recordEvent(ctx, out, actor, saved.UpdatedAt)
	u.dispatch(ctx, saved.ID, out.Intents)

	return TransitionResult{Job: saved, Summary: out.Summary, Intents: out.Intents}, nil
}

// recordEvent runs after the job is saved; a failure here loses audit
// history but not state, so it is logged rather than returned.
func (u *JobUseCase) recordEvent(ctx context.Context, out engagement.Outcome, actor entities.Actor, at time.Time) {
	if u.events == nil {
		return
	}
	e := entities.JobEvent{
		ID:         uuid.NewString(),
		JobID:      out.Job.ID,
		Operation:  out.Op,
		FromStatus: out.Previous,
		ToStatus:   out.Job.Status,
		Actor:      actor,
		Reason:     eventReason(out.Job),
		OccurredAt: at,
	}
	if len(out.Intents) > 0 {
		e.Amount = out.Intents[0].Amount
	}
	if err := u.events.Append(ctx, e); err != nil {
		log.Printf("[job][usecase] audit append failed job_id=%s op=%s err=%v", e.JobID, e.Operation, err)
	}
}

func (u *JobUseCase) dispatch(ctx context.Context, jobID string, intents []entities.NotificationIntent) {
	if u.dispatcher == nil || len(intents) == 0 {
		return
	}
	if err := u.dispatcher.Dispatch(ctx, intents); err != nil {
		log.Printf("[job][usecase] notification dispatch failed job_id=%s intents=%d err=%v", jobID, len(intents), err)
	}
}

func eventReason(job entities.Job) string {
	switch job.Status {
	case entities.JobStatusWorkDisputed:
		return job.DisputeReason
	case entities.JobStatusDeclinedByCustomer, entities.JobStatusDeclinedByCompany:
		return job.DeclineReason
	}
	return ""
}

// alertIfInconsistent flags a corrupted ledger for operators. Such jobs
// are frozen until the ledger is repaired by hand.
func alertIfInconsistent(jobID string, err error) {
	if errors.Is(err, engagement.ErrLedgerInconsistency) {
		log.Printf("[alert][job][usecase] ledger inconsistency job_id=%s err=%v", jobID, err)
	}
}
