package routes

import (
	"job_engagement/internal/adapter/http/handlers"
	"job_engagement/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs = "/jobs"
)

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("/:job_id", h.GetJob)
		jobs.GET("/:job_id/payment-summary", h.GetPaymentSummary)
		jobs.GET("/:job_id/events", h.ListEvents)
	}

	// Every change to a job is made by a known party.
	acting := rg.Group(PathJobs, middleware.RequireActor())
	{
		acting.POST("", h.CreateJob)
		acting.PATCH("/:job_id/company", h.SelectCompany)

		acting.PATCH("/:job_id/onsite-fee/request", h.RequestOnsiteFee)
		acting.PATCH("/:job_id/onsite-fee/claim", h.ClaimOnsiteFeePaid)
		acting.PATCH("/:job_id/onsite-fee/confirm", h.ConfirmOnsiteFeeReceived)
		acting.PATCH("/:job_id/onsite-fee/decline", h.DeclineOnsiteFee)

		acting.PATCH("/:job_id/quote", h.SubmitQuote)
		acting.PATCH("/:job_id/quote/accept", h.AcceptQuote)
		acting.PATCH("/:job_id/quote/decline", h.DeclineQuote)

		acting.PATCH("/:job_id/intermediate/request", h.RequestIntermediatePayment)

		acting.PATCH("/:job_id/work/complete", h.MarkWorkCompleted)
		acting.PATCH("/:job_id/work/approve", h.ApproveWork)
		acting.PATCH("/:job_id/work/dispute", h.ReportIssue)
		acting.PATCH("/:job_id/work/rectify", h.MarkRectified)
	}
}
