package response

import (
	"time"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase"

	"github.com/shopspring/decimal"
)

// Amounts are rendered as decimal strings so no precision is lost in
// transit.

type JobResponse struct {
	JobID               string     `json:"job_id"`
	CustomerID          string     `json:"customer_id"`
	CompanyID           string     `json:"company_id,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	RequiresOnsiteVisit bool       `json:"requires_onsite_visit"`
	OnsiteFeeAmount     *string    `json:"onsite_fee_amount"`
	OnsiteFeePaid       bool       `json:"onsite_fee_paid"`
	OnsiteFeePaidAt     *time.Time `json:"onsite_fee_paid_at,omitempty"`
	QuotedPrice         string     `json:"quoted_price"`
	Status              string     `json:"status"`
	DisputeReason       string     `json:"dispute_reason,omitempty"`
	DeclineReason       string     `json:"decline_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		JobID:               j.ID,
		CustomerID:          j.CustomerID,
		CompanyID:           j.CompanyID,
		Title:               j.Title,
		Description:         j.Description,
		RequiresOnsiteVisit: j.RequiresOnsiteVisit,
		OnsiteFeeAmount:     nullAmount(j.OnsiteFeeAmount),
		OnsiteFeePaid:       j.OnsiteFeePaid,
		OnsiteFeePaidAt:     j.OnsiteFeePaidAt,
		QuotedPrice:         j.QuotedPrice.String(),
		Status:              string(j.Status),
		DisputeReason:       j.DisputeReason,
		DeclineReason:       j.DeclineReason,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

type PaymentPatternResponse struct {
	Label        string `json:"label"`
	Deposit      int    `json:"deposit"`
	Intermediate int    `json:"intermediate"`
	Final        int    `json:"final"`
}

type PaymentSummaryResponse struct {
	QuotedPrice         string                 `json:"quoted_price"`
	DepositNet          string                 `json:"deposit_net"`
	Fee                 string                 `json:"fee"`
	Intermediate        string                 `json:"intermediate"`
	Final               string                 `json:"final"`
	TotalWithFee        string                 `json:"total_with_fee"`
	TotalWithoutFee     string                 `json:"total_without_fee"`
	BalanceDue          string                 `json:"balance_due"`
	HasDeposit          bool                   `json:"has_deposit"`
	HasIntermediate     bool                   `json:"has_intermediate"`
	HasFinal            bool                   `json:"has_final"`
	PendingIntermediate bool                   `json:"pending_intermediate"`
	Pattern             PaymentPatternResponse `json:"pattern"`
}

func FromPaymentSummary(s entities.PaymentSummary) PaymentSummaryResponse {
	return PaymentSummaryResponse{
		QuotedPrice:         s.QuotedPrice.String(),
		DepositNet:          s.DepositNet.String(),
		Fee:                 s.Fee.String(),
		Intermediate:        s.Intermediate.String(),
		Final:               s.Final.String(),
		TotalWithFee:        s.TotalWithFee.String(),
		TotalWithoutFee:     s.TotalWithoutFee.String(),
		BalanceDue:          s.BalanceDue.String(),
		HasDeposit:          s.HasDeposit,
		HasIntermediate:     s.HasIntermediate,
		HasFinal:            s.HasFinal,
		PendingIntermediate: s.PendingIntermediate,
		Pattern: PaymentPatternResponse{
			Label:        s.Pattern.String(),
			Deposit:      s.Pattern.Deposit,
			Intermediate: s.Pattern.Intermediate,
			Final:        s.Pattern.Final,
		},
	}
}

type NotificationResponse struct {
	RecipientRole string  `json:"recipient_role"`
	RecipientID   string  `json:"recipient_id"`
	Category      string  `json:"category"`
	Amount        *string `json:"amount,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

// TransitionResponse is returned by every lifecycle operation.
type TransitionResponse struct {
	Job           JobResponse            `json:"job"`
	Summary       PaymentSummaryResponse `json:"payment_summary"`
	Notifications []NotificationResponse `json:"notifications"`
}

func FromTransition(r usecase.TransitionResult) TransitionResponse {
	out := TransitionResponse{
		Job:           FromJob(r.Job),
		Summary:       FromPaymentSummary(r.Summary),
		Notifications: make([]NotificationResponse, 0, len(r.Intents)),
	}
	for _, n := range r.Intents {
		out.Notifications = append(out.Notifications, NotificationResponse{
			RecipientRole: string(n.RecipientRole),
			RecipientID:   n.RecipientID,
			Category:      string(n.Category),
			Amount:        nullAmount(n.Amount),
			Reason:        n.Reason,
		})
	}
	return out
}

type EventResponse struct {
	EventID    string    `json:"event_id"`
	Operation  string    `json:"operation"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorRole  string    `json:"actor_role"`
	ActorID    string    `json:"actor_id"`
	Reason     string    `json:"reason,omitempty"`
	Amount     *string   `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func FromEvents(events []entities.JobEvent) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			EventID:    e.ID,
			Operation:  e.Operation,
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			ActorRole:  string(e.Actor.Role),
			ActorID:    e.Actor.ID,
			Reason:     e.Reason,
			Amount:     nullAmount(e.Amount),
			OccurredAt: e.OccurredAt,
		})
	}
	return out
}

func nullAmount(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
