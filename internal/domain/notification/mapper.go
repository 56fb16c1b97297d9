// Package notification maps accepted job transitions to notification intents.
package notification

import (
	"job_engagement/internal/domain/entities"
	"job_engagement/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

type transitionKey struct {
	from  entities.JobStatus
	to    entities.JobStatus
	actor entities.ActorRole
}

type amountFunc func(job entities.Job, s entities.PaymentSummary) decimal.NullDecimal

type rule struct {
	category   entities.NotificationCategory
	recipients []entities.ActorRole
	amount     amountFunc
	withReason bool
}

var (
	toCustomer = []entities.ActorRole{entities.ActorCustomer}
	toCompany  = []entities.ActorRole{entities.ActorCompany}
	toBoth     = []entities.ActorRole{entities.ActorCustomer, entities.ActorCompany}
)

func known(v decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: v, Valid: true}
}

func quotedPrice(job entities.Job, _ entities.PaymentSummary) decimal.NullDecimal {
	return known(job.QuotedPrice)
}

func onsiteFee(job entities.Job, _ entities.PaymentSummary) decimal.NullDecimal {
	return job.OnsiteFeeAmount
}

func depositNet(_ entities.Job, s entities.PaymentSummary) decimal.NullDecimal {
	return known(s.DepositNet)
}

func expectedIntermediate(job entities.Job, _ entities.PaymentSummary) decimal.NullDecimal {
	return known(ledger.ExpectedIntermediate(job.QuotedPrice).Gross())
}

func intermediatePaid(_ entities.Job, s entities.PaymentSummary) decimal.NullDecimal {
	return known(s.Intermediate)
}

func balanceDue(_ entities.Job, s entities.PaymentSummary) decimal.NullDecimal {
	return known(s.BalanceDue)
}

func finalPaid(_ entities.Job, s entities.PaymentSummary) decimal.NullDecimal {
	return known(s.Final)
}

var rules = map[transitionKey]rule{
	{entities.JobStatusPending, entities.JobStatusPending, entities.ActorCustomer}: {
		category: entities.NotificationCompanySelected, recipients: toCompany,
	},
	{entities.JobStatusPending, entities.JobStatusOnsiteFeeRequested, entities.ActorCompany}: {
		category: entities.NotificationOnsiteFeeRequested, recipients: toCustomer, amount: onsiteFee,
	},
	{entities.JobStatusOnsiteFeeRequested, entities.JobStatusOnsiteFeePendingConfirmation, entities.ActorCustomer}: {
		category: entities.NotificationOnsiteFeeClaimed, recipients: toCompany, amount: onsiteFee,
	},
	{entities.JobStatusOnsiteFeePendingConfirmation, entities.JobStatusPending, entities.ActorCompany}: {
		category: entities.NotificationOnsiteFeeConfirmed, recipients: toCustomer, amount: onsiteFee,
	},
	{entities.JobStatusOnsiteFeeRequested, entities.JobStatusDeclined, entities.ActorCustomer}: {
		category: entities.NotificationOnsiteFeeDeclined, recipients: toCompany,
	},
	{entities.JobStatusPending, entities.JobStatusPriceSet, entities.ActorCompany}: {
		category: entities.NotificationQuoteSubmitted, recipients: toCustomer, amount: quotedPrice,
	},
	{entities.JobStatusPriceSet, entities.JobStatusAwaitingPayment, entities.ActorCustomer}: {
		category: entities.NotificationQuoteAccepted, recipients: toCompany, amount: quotedPrice,
	},
	{entities.JobStatusPriceSet, entities.JobStatusDeclinedByCustomer, entities.ActorCustomer}: {
		category: entities.NotificationQuoteDeclined, recipients: toCompany, withReason: true,
	},
	{entities.JobStatusPriceSet, entities.JobStatusDeclinedByCompany, entities.ActorCompany}: {
		category: entities.NotificationQuoteDeclined, recipients: toCustomer, withReason: true,
	},
	{entities.JobStatusAwaitingPayment, entities.JobStatusDepositPaid, entities.ActorSystem}: {
		category: entities.NotificationDepositReceived, recipients: toBoth, amount: depositNet,
	},
	{entities.JobStatusDepositPaid, entities.JobStatusWorkOngoing, entities.ActorCompany}: {
		category: entities.NotificationIntermediateRequested, recipients: toCustomer, amount: expectedIntermediate,
	},
	{entities.JobStatusWorkOngoing, entities.JobStatusIntermediatePaid, entities.ActorSystem}: {
		category: entities.NotificationIntermediateReceived, recipients: toBoth, amount: intermediatePaid,
	},
	{entities.JobStatusDepositPaid, entities.JobStatusWorkCompleted, entities.ActorCompany}: {
		category: entities.NotificationWorkCompleted, recipients: toCustomer, amount: balanceDue,
	},
	{entities.JobStatusIntermediatePaid, entities.JobStatusWorkCompleted, entities.ActorCompany}: {
		category: entities.NotificationWorkCompleted, recipients: toCustomer, amount: balanceDue,
	},
	{entities.JobStatusWorkCompleted, entities.JobStatusWorkDisputed, entities.ActorCustomer}: {
		category: entities.NotificationIssueReported, recipients: toCompany, withReason: true,
	},
	{entities.JobStatusWorkRectified, entities.JobStatusWorkDisputed, entities.ActorCustomer}: {
		category: entities.NotificationIssueReported, recipients: toCompany, withReason: true,
	},
	{entities.JobStatusWorkDisputed, entities.JobStatusWorkRectified, entities.ActorCompany}: {
		category: entities.NotificationWorkRectified, recipients: toCustomer,
	},
	{entities.JobStatusWorkCompleted, entities.JobStatusCompleted, entities.ActorCustomer}: {
		category: entities.NotificationJobCompleted, recipients: toCompany, amount: finalPaid,
	},
	{entities.JobStatusWorkRectified, entities.JobStatusCompleted, entities.ActorCustomer}: {
		category: entities.NotificationJobCompleted, recipients: toCompany, amount: finalPaid,
	},
}

// Map returns the intents raised by moving job from one status to another.
// job is the state after the transition. Unknown transitions raise nothing.
func Map(from, to entities.JobStatus, actor entities.ActorRole, job entities.Job, s entities.PaymentSummary) []entities.NotificationIntent {
	r, ok := rules[transitionKey{from: from, to: to, actor: actor}]
	if !ok {
		return nil
	}

	var amount decimal.NullDecimal
	if r.amount != nil {
		amount = r.amount(job, s)
	}
	reason := ""
	if r.withReason {
		reason = reasonFor(job, to)
	}

	out := make([]entities.NotificationIntent, 0, len(r.recipients))
	for _, role := range r.recipients {
		out = append(out, entities.NotificationIntent{
			RecipientRole: role,
			RecipientID:   recipientID(job, role),
			Category:      r.category,
			JobID:         job.ID,
			Amount:        amount,
			Reason:        reason,
		})
	}
	return out
}

func recipientID(job entities.Job, role entities.ActorRole) string {
	if role == entities.ActorCompany {
		return job.CompanyID
	}
	return job.CustomerID
}

func reasonFor(job entities.Job, to entities.JobStatus) string {
	if to == entities.JobStatusWorkDisputed {
		return job.DisputeReason
	}
	return job.DeclineReason
}
