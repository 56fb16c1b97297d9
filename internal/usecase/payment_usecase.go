package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"job_engagement/internal/domain/engagement"
	"job_engagement/internal/domain/entities"
	"job_engagement/internal/domain/ledger"
	"job_engagement/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPhase                   = errors.New("invalid payment phase")
	ErrInvalidTransaction             = errors.New("invalid transaction")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentRejected                = errors.New("payment rejected by provider")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// DefaultPlatformFeeRate is charged on top of the deposit.
var DefaultPlatformFeeRate = decimal.RequireFromString("0.10")

// ParsePhase accepts the phase names used in payment URLs.
func ParsePhase(s string) (entities.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return entities.TransactionTypeDeposit, nil
	case "intermediate":
		return entities.TransactionTypeIntermediate, nil
	case "final", "final_payment":
		return entities.TransactionTypeFinalPayment, nil
	}
	return "", ErrInvalidPhase
}

// RecordTransactionInput is a payment confirmed outside the charge flow,
// e.g. by a provider callback.
type RecordTransactionInput struct {
	Type              entities.TransactionType
	Amount            decimal.Decimal
	PlatformFee       decimal.Decimal
	Status            entities.TransactionStatus
	ProviderPaymentID string
}

// PaymentResult is the ledger row written plus the state it led to.
type PaymentResult struct {
	Transaction entities.FinancialTransaction
	TransitionResult
}

// IPaymentUseCase is the payment confirmation flow: the only writer of
// ledger rows.
//
//   - PayPhase charges the customer for the next phase through the gateway.
//   - RecordTransaction appends a row confirmed elsewhere.
//
// Both confirm the matching transition once the row is completed.
type IPaymentUseCase interface {
	PayPhase(ctx context.Context, jobID string, actor entities.Actor, phase entities.TransactionType, mpPayload json.RawMessage) (PaymentResult, error)
	RecordTransaction(ctx context.Context, jobID string, in RecordTransactionInput) (PaymentResult, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.FinancialTransaction, error)
}

type PaymentUseCase struct {
	jobs    IJobUseCase
	txs     interfaces.ITransactionRepository
	gateway interfaces.IPaymentGateway
	machine *engagement.Machine
	feeRate decimal.Decimal
	// mock relaxes payload checks; the gateway still answers the charge.
	mock bool
	now  func() time.Time
}

// PaymentOption configures a PaymentUseCase.
type PaymentOption func(*PaymentUseCase)

// WithMockGateway marks the gateway as a mock, so charges go through
// without a payment method or payer.
func WithMockGateway(enabled bool) PaymentOption {
	return func(u *PaymentUseCase) { u.mock = enabled }
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	jobs IJobUseCase,
	txs interfaces.ITransactionRepository,
	gateway interfaces.IPaymentGateway,
	machine *engagement.Machine,
	feeRate decimal.Decimal,
	opts ...PaymentOption,
) *PaymentUseCase {
	if machine == nil {
		machine = engagement.NewMachine()
	}
	if feeRate.IsNegative() || feeRate.IsZero() {
		feeRate = DefaultPlatformFeeRate
	}
	u := &PaymentUseCase{
		jobs:    jobs,
		txs:     txs,
		gateway: gateway,
		machine: machine,
		feeRate: feeRate,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PaymentUseCase) PayPhase(ctx context.Context, jobID string, actor entities.Actor, phase entities.TransactionType, mpPayload json.RawMessage) (PaymentResult, error) {
	log.Printf("[payment][usecase] pay-phase start raw_job_id=%q phase=%s payload_len=%d", jobID, phase, len(mpPayload))
	mockMode := u.mock
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return PaymentResult{}, ErrInvalidJobID
	}
	if !phase.Valid() {
		return PaymentResult{}, ErrInvalidPhase
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload job_id=%s", jobID)
			return PaymentResult{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured job_id=%s", jobID)
		return PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	snap, err := u.snapshot(ctx, jobID)
	if err != nil {
		return PaymentResult{}, err
	}
	job := snap.Job
	if actor.Role != entities.ActorCustomer || actor.ID != job.CustomerID {
		return PaymentResult{}, &engagement.Rejection{
			Kind: engagement.KindForbidden, Op: "pay_" + string(phase), Status: job.Status,
			Message: "only the job's customer pays for it",
		}
	}

	charge, err := u.chargeFor(snap, phase)
	if err != nil {
		log.Printf("[payment][usecase] phase not payable job_id=%s phase=%s status=%s err=%v", jobID, phase, job.Status, err)
		return PaymentResult{}, err
	}
	log.Printf("[payment][usecase] charge computed job_id=%s phase=%s net=%s fee=%s", jobID, phase, charge.Net, charge.PlatformFee)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return PaymentResult{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id job_id=%s", jobID)
			return PaymentResult{}, ErrInvalidMPPayload
		}
		normalizeSandboxPayer(reqMap)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer job_id=%s", jobID)
			return PaymentResult{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Job %s %s", jobID, phase)
	}
	// The ledger, not the caller, decides what is charged.
	reqMap["external_reference"] = jobID
	reqMap["transaction_amount"] = charge.Gross().InexactFloat64()
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed job_id=%s mock=%t err=%v", jobID, mockMode, err)
		return PaymentResult{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success job_id=%s provider_payment_id=%s provider_status=%s", jobID, providerPaymentID, providerStatus)

	status, ok := transactionStatusFor(providerStatus)
	if !ok {
		log.Printf("[payment][usecase] payment not accepted job_id=%s provider_payment_id=%s provider_status=%s", jobID, providerPaymentID, providerStatus)
		return PaymentResult{}, ErrPaymentRejected
	}

	tx := entities.FinancialTransaction{
		ID:                uuid.NewString(),
		JobID:             jobID,
		Type:              phase,
		Amount:            charge.Gross(),
		PlatformFee:       charge.PlatformFee,
		Status:            status,
		ProviderPaymentID: providerPaymentID,
		CreatedAt:         u.now(),
	}
	created, err := u.txs.Append(ctx, tx)
	if err != nil {
		log.Printf("[payment][usecase] ledger append failed job_id=%s provider_payment_id=%s err=%v", jobID, providerPaymentID, err)
		return PaymentResult{}, err
	}

	res := PaymentResult{Transaction: created}
	if !created.IsCompleted() {
		res.Job = job
		res.Summary, err = engagement.Summarize(engagement.Snapshot{Job: job, Ledger: append(snap.Ledger, created)})
		return res, err
	}

	var tr TransitionResult
	if phase == entities.TransactionTypeFinalPayment {
		tr, err = u.jobs.ApproveWork(ctx, jobID, actor)
	} else {
		tr, err = u.jobs.ConfirmPayment(ctx, jobID, phase)
	}
	if err != nil {
		log.Printf("[payment][usecase] row recorded but transition failed job_id=%s tx_id=%s err=%v", jobID, created.ID, err)
		return res, err
	}
	res.TransitionResult = tr
	return res, nil
}

// chargeFor works out the amount owed for phase and checks it is payable,
// so nothing is charged that the machine would then refuse.
func (u *PaymentUseCase) chargeFor(snap engagement.Snapshot, phase entities.TransactionType) (ledger.PhaseCharge, error) {
	summary, err := engagement.Summarize(snap)
	if err != nil {
		return ledger.PhaseCharge{}, err
	}

	var charge ledger.PhaseCharge
	switch phase {
	case entities.TransactionTypeDeposit:
		charge = ledger.ExpectedDeposit(snap.Job.QuotedPrice, u.feeRate)
	case entities.TransactionTypeIntermediate:
		charge = ledger.ExpectedIntermediate(snap.Job.QuotedPrice)
	case entities.TransactionTypeFinalPayment:
		charge = ledger.ExpectedFinal(summary)
	}

	row := entities.FinancialTransaction{
		ID: "pending-charge", JobID: snap.Job.ID, Type: phase,
		Amount: charge.Gross(), PlatformFee: charge.PlatformFee,
		Status: entities.TransactionStatusCompleted,
	}
	if err := u.checkPayable(snap, row, "pay_"+string(phase)); err != nil {
		return ledger.PhaseCharge{}, err
	}
	for _, tx := range snap.Ledger {
		if tx.Type == phase && !tx.IsCompleted() {
			return ledger.PhaseCharge{}, notPayable(snap, summary, "pay_"+string(phase), "a payment for this phase is still pending")
		}
	}
	if !charge.Net.IsPositive() {
		return ledger.PhaseCharge{}, notPayable(snap, summary, "pay_"+string(phase), "nothing is due for this phase")
	}
	return charge, nil
}

// checkPayable dry-runs the transition a completed row would unlock
// against the ledger as it would look with row in it. A row for a phase
// the job is not at is refused with the machine's IllegalTransition.
// Only the final payment may settle the balance.
func (u *PaymentUseCase) checkPayable(snap engagement.Snapshot, row entities.FinancialTransaction, op string) error {
	summary, err := engagement.Summarize(snap)
	if err != nil {
		return err
	}

	settled := row
	settled.Status = entities.TransactionStatusCompleted
	after := snap
	after.Ledger = append(append([]entities.FinancialTransaction(nil), snap.Ledger...), settled)

	var o engagement.Outcome
	switch row.Type {
	case entities.TransactionTypeDeposit:
		o, err = u.machine.ConfirmDepositReceived(after, entities.SystemActor)
	case entities.TransactionTypeIntermediate:
		o, err = u.machine.ConfirmIntermediateReceived(after, entities.SystemActor)
	case entities.TransactionTypeFinalPayment:
		o, err = u.machine.ApproveWork(after, entities.Actor{Role: entities.ActorCustomer, ID: snap.Job.CustomerID})
	default:
		return ErrInvalidTransaction
	}
	if err != nil {
		return err
	}

	if row.Type != entities.TransactionTypeFinalPayment && !o.Summary.BalanceDue.IsPositive() {
		return notPayable(snap, summary, op, "only the final payment may settle the balance")
	}
	return nil
}

func notPayable(snap engagement.Snapshot, summary entities.PaymentSummary, op, msg string) error {
	return &engagement.Rejection{
		Kind: engagement.KindPreconditionNotMet, Op: op,
		Status: snap.Job.Status, Message: msg, Summary: &summary,
	}
}

func (u *PaymentUseCase) RecordTransaction(ctx context.Context, jobID string, in RecordTransactionInput) (PaymentResult, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return PaymentResult{}, ErrInvalidJobID
	}
	if !in.Type.Valid() || !in.Status.Valid() || !in.Amount.IsPositive() || in.PlatformFee.IsNegative() || in.PlatformFee.GreaterThan(in.Amount) {
		return PaymentResult{}, ErrInvalidTransaction
	}

	snap, err := u.snapshot(ctx, jobID)
	if err != nil {
		return PaymentResult{}, err
	}

	tx := entities.FinancialTransaction{
		ID:                uuid.NewString(),
		JobID:             jobID,
		Type:              in.Type,
		Amount:            in.Amount,
		PlatformFee:       in.PlatformFee,
		Status:            in.Status,
		ProviderPaymentID: strings.TrimSpace(in.ProviderPaymentID),
		CreatedAt:         u.now(),
	}

	if err := u.checkPayable(snap, tx, "record_"+string(tx.Type)); err != nil {
		log.Printf("[payment][usecase] transaction refused job_id=%s type=%s status=%s err=%v", jobID, tx.Type, snap.Job.Status, err)
		return PaymentResult{}, err
	}
	after := engagement.Snapshot{Job: snap.Job, Ledger: append(snap.Ledger, tx)}
	summary, err := engagement.Summarize(after)
	if err != nil {
		return PaymentResult{}, err
	}

	created, err := u.txs.Append(ctx, tx)
	if err != nil {
		log.Printf("[payment][usecase] ledger append failed job_id=%s err=%v", jobID, err)
		return PaymentResult{}, err
	}
	log.Printf("[payment][usecase] transaction recorded job_id=%s tx_id=%s type=%s status=%s", jobID, created.ID, created.Type, created.Status)

	res := PaymentResult{Transaction: created, TransitionResult: TransitionResult{Job: snap.Job, Summary: summary}}
	if !created.IsCompleted() || !unlocks(snap.Job.Status, created.Type) {
		return res, nil
	}

	tr, err := u.jobs.ConfirmPayment(ctx, jobID, created.Type)
	if err != nil {
		log.Printf("[payment][usecase] row recorded but confirmation failed job_id=%s tx_id=%s err=%v", jobID, created.ID, err)
		return res, err
	}
	res.TransitionResult = tr
	return res, nil
}

func (u *PaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.FinancialTransaction, error) {
	job, err := u.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return u.txs.ListByJobID(ctx, job.ID)
}

func (u *PaymentUseCase) snapshot(ctx context.Context, jobID string) (engagement.Snapshot, error) {
	job, err := u.jobs.GetJob(ctx, jobID)
	if err != nil {
		return engagement.Snapshot{}, err
	}
	txs, err := u.txs.ListByJobID(ctx, job.ID)
	if err != nil {
		return engagement.Snapshot{}, err
	}
	return engagement.Snapshot{Job: job, Ledger: txs}, nil
}

// unlocks reports whether a completed row of type t moves a job out of
// status s.
func unlocks(s entities.JobStatus, t entities.TransactionType) bool {
	switch t {
	case entities.TransactionTypeDeposit:
		return s == entities.JobStatusAwaitingPayment
	case entities.TransactionTypeIntermediate:
		return s == entities.JobStatusWorkOngoing
	}
	return false
}

// transactionStatusFor maps Mercado Pago payment statuses. Rejected and
// cancelled payments are not recorded at all.
func transactionStatusFor(providerStatus string) (entities.TransactionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized", "accredited":
		return entities.TransactionStatusCompleted, true
	case "pending", "in_process", "in_mediation", "":
		return entities.TransactionStatusPending, true
	}
	return "", false
}
