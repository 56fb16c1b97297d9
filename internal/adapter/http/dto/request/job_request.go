package request

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateJobRequest is posted by a customer. company_id is optional; a job
// without one waits for selectCompany.
type CreateJobRequest struct {
	Title               string `json:"title" binding:"required,notblank"`
	Description         string `json:"description"`
	CompanyID           string `json:"company_id"`
	RequiresOnsiteVisit bool   `json:"requires_onsite_visit"`
}

type SelectCompanyRequest struct {
	CompanyID string `json:"company_id" binding:"required,notblank"`
}

type OnsiteFeeRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// ClaimOnsiteFeeRequest may omit paid_at, in which case the claim is
// stamped with the server time.
type ClaimOnsiteFeeRequest struct {
	PaidAt *time.Time `json:"paid_at"`
}

func (r ClaimOnsiteFeeRequest) ResolvePaidAt() time.Time {
	if r.PaidAt == nil {
		return time.Time{}
	}
	return r.PaidAt.UTC()
}

type QuoteRequest struct {
	Price *decimal.Decimal `json:"price" binding:"required"`
}

// DeclineRequest carries the optional reason a customer gives for turning
// a quote down.
type DeclineRequest struct {
	Reason string `json:"reason"`
}

func (r DeclineRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

// DisputeRequest must explain the issue; the minimum length is enforced by
// the job lifecycle, not here.
type DisputeRequest struct {
	Reason string `json:"reason" binding:"required,notblank"`
}
