package entities

import "github.com/shopspring/decimal"

type NotificationCategory string

const (
	NotificationCompanySelected       NotificationCategory = "company_selected"
	NotificationOnsiteFeeRequested    NotificationCategory = "onsite_fee_requested"
	NotificationOnsiteFeeClaimed      NotificationCategory = "onsite_fee_claimed"
	NotificationOnsiteFeeConfirmed    NotificationCategory = "onsite_fee_confirmed"
	NotificationOnsiteFeeDeclined     NotificationCategory = "onsite_fee_declined"
	NotificationQuoteSubmitted        NotificationCategory = "quote_submitted"
	NotificationQuoteAccepted         NotificationCategory = "quote_accepted"
	NotificationQuoteDeclined         NotificationCategory = "quote_declined"
	NotificationDepositReceived       NotificationCategory = "deposit_received"
	NotificationIntermediateRequested NotificationCategory = "intermediate_requested"
	NotificationIntermediateReceived  NotificationCategory = "intermediate_received"
	NotificationWorkCompleted         NotificationCategory = "work_completed"
	NotificationIssueReported         NotificationCategory = "issue_reported"
	NotificationWorkRectified         NotificationCategory = "work_rectified"
	NotificationJobCompleted          NotificationCategory = "job_completed"
)

// NotificationIntent describes a notification that has not been sent yet.
// It carries no timestamp; the dispatcher stamps it on delivery.
type NotificationIntent struct {
	RecipientRole ActorRole            `json:"recipient_role"`
	RecipientID   string               `json:"recipient_id"`
	Category      NotificationCategory `json:"category"`
	JobID         string               `json:"job_id"`
	Amount        decimal.NullDecimal  `json:"amount"`
	Reason        string               `json:"reason,omitempty"`
}
