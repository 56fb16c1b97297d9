package handlers

import (
	"context"
	"log"
	"net/http"

	request "job_engagement/internal/adapter/http/dto/request"
	response "job_engagement/internal/adapter/http/dto/response"
	"job_engagement/internal/adapter/http/middleware"
	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase"

	"github.com/gin-gonic/gin"
)

// JobHandler exposes the job lifecycle. Every mutating route answers with
// the job, its payment summary and the notifications the change produced.
type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob godoc
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        X-Actor-Role  header  string                    true  "customer"
// @Param        X-Actor-ID    header  string                    true  "customer id"
// @Param        payload       body    request.CreateJobRequest  true  "job"
// @Success      201  {object}  response.JobResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[job][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), actor, usecase.NewJobInput{
		Title:               payload.Title,
		Description:         payload.Description,
		CompanyID:           payload.CompanyID,
		RequiresOnsiteVisit: payload.RequiresOnsiteVisit,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob godoc
// @Summary  Read a job
// @Tags     jobs
// @Produce  json
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.JobResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /jobs/{job_id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetPaymentSummary godoc
// @Summary  Reconciled payment summary of a job
// @Tags     jobs
// @Produce  json
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.PaymentSummaryResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError  "LEDGER_INCONSISTENCY"
// @Router   /jobs/{job_id}/payment-summary [get]
func (h *JobHandler) GetPaymentSummary(c *gin.Context) {
	summary, err := h.usecase.GetPaymentSummary(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(summary))
}

// ListEvents godoc
// @Summary  Audit log of a job
// @Tags     jobs
// @Produce  json
// @Param    job_id  path  string  true  "job id"
// @Success  200  {array}   response.EventResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /jobs/{job_id}/events [get]
func (h *JobHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEvents(events))
}

// @Summary  Select the company for a job
// @Tags     jobs
// @Param    job_id   path  string                        true  "job id"
// @Param    payload  body  request.SelectCompanyRequest  true  "company"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/company [patch]
func (h *JobHandler) SelectCompany(c *gin.Context) {
	var payload request.SelectCompanyRequest
	if !bindOrAbort(c, &payload) {
		return
	}
	h.patchTransition(c, "select_company", func(ctx context.Context, jobID string, actor entities.Actor) (usecase.TransitionResult, error) {
		return h.usecase.SelectCompany(ctx, jobID, actor, payload.CompanyID)
	})
}

// @Summary  Company asks for an onsite visit fee
// @Tags     onsite-fee
// @Param    job_id   path  string                    true  "job id"
// @Param    payload  body  request.OnsiteFeeRequest  true  "fee"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/onsite-fee/request [patch]
func (h *JobHandler) RequestOnsiteFee(c *gin.Context) {
	var payload request.OnsiteFeeRequest
	if !bindOrAbort(c, &payload) {
		return
	}
	h.patchTransition(c, "request_onsite_fee", func(ctx context.Context, jobID string, actor entities.Actor) (usecase.TransitionResult, error) {
		return h.usecase.RequestOnsiteFee(ctx, jobID, actor, *payload.Amount)
	})
}

// ClaimOnsiteFeePaid records the customer's claim. The body is optional.
//
// @Summary  Customer claims the onsite fee was paid
// @Tags     onsite-fee
// @Param    job_id   path  string                         true   "job id"
// @Param    payload  body  request.ClaimOnsiteFeeRequest  false  "paid at"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/onsite-fee/claim [patch]
func (h *JobHandler) ClaimOnsiteFeePaid(c *gin.Context) {
	var payload request.ClaimOnsiteFeeRequest
	if c.Request.ContentLength != 0 {
		if !bindOrAbort(c, &payload) {
			return
		}
	}
	h.patchTransition(c, "claim_onsite_fee_paid", func(ctx context.Context, jobID string, actor entities.Actor) (usecase.TransitionResult, error) {
		return h.usecase.ClaimOnsiteFeePaid(ctx, jobID, actor, payload.ResolvePaidAt())
	})
}

// @Summary  Company confirms the onsite fee was received
// @Tags     onsite-fee
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/onsite-fee/confirm [patch]
func (h *JobHandler) ConfirmOnsiteFeeReceived(c *gin.Context) {
	h.patchTransition(c, "confirm_onsite_fee_received", h.usecase.ConfirmOnsiteFeeReceived)
}

// @Summary  Customer declines the onsite fee
// @Tags     onsite-fee
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/onsite-fee/decline [patch]
func (h *JobHandler) DeclineOnsiteFee(c *gin.Context) {
	h.patchTransition(c, "decline_onsite_fee", h.usecase.DeclineOnsiteFee)
}

// @Summary  Company submits or revises a quote
// @Tags     quote
// @Param    job_id   path  string                true  "job id"
// @Param    payload  body  request.QuoteRequest  true  "price"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/quote [patch]
func (h *JobHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if !bindOrAbort(c, &payload) {
		return
	}
	h.patchTransition(c, "submit_quote", func(ctx context.Context, jobID string, actor entities.Actor) (usecase.TransitionResult, error) {
		return h.usecase.SubmitQuote(ctx, jobID, actor, *payload.Price)
	})
}

// @Summary  Customer accepts the quote
// @Tags     quote
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/quote/accept [patch]
func (h *JobHandler) AcceptQuote(c *gin.Context) {
	h.patchTransition(c, "accept_quote", h.usecase.AcceptQuote)
}

// @Summary  Customer or company declines the quote
// @Tags     quote
// @Param    job_id   path  string                  true   "job id"
// @Param    payload  body  request.DeclineRequest  false  "reason"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/quote/decline [patch]
func (h *JobHandler) DeclineQuote(c *gin.Context) {
	var payload request.DeclineRequest
	if c.Request.ContentLength != 0 {
		if !bindOrAbort(c, &payload) {
			return
		}
	}
	h.patchTransition(c, "decline_quote", func(ctx context.Context, jobID string, actor entities.Actor) (usecase.TransitionResult, error) {
		return h.usecase.DeclineQuote(ctx, jobID, actor, payload.ResolveReason())
	})
}

// @Summary  Company asks for the intermediate payment
// @Tags     work
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/intermediate/request [patch]
func (h *JobHandler) RequestIntermediatePayment(c *gin.Context) {
	h.patchTransition(c, "request_intermediate_payment", h.usecase.RequestIntermediatePayment)
}

// @Summary  Company marks the work completed
// @Tags     work
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/work/complete [patch]
func (h *JobHandler) MarkWorkCompleted(c *gin.Context) {
	h.patchTransition(c, "mark_work_completed", h.usecase.MarkWorkCompleted)
}

// ApproveWork only succeeds once the final payment has settled the
// balance; paying the final phase approves the work on its own.
//
// @Summary  Customer approves the work
// @Tags     work
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.TransitionResponse
// @Failure  412  {object}  pkg.HTTPError
// @Router   /jobs/{job_id}/work/approve [patch]
func (h *JobHandler) ApproveWork(c *gin.Context) {
	h.patchTransition(c, "approve_work", h.usecase.ApproveWork)
}

// @Summary  Customer reports an issue with the work
// @Tags     work
// @Param    job_id   path  string                  true  "job id"
// @Param    payload  body  request.DisputeRequest  true  "reason"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/work/dispute [patch]
func (h *JobHandler) ReportIssue(c *gin.Context) {
	var payload request.DisputeRequest
	if !bindOrAbort(c, &payload) {
		return
	}
	h.patchTransition(c, "report_issue", func(ctx context.Context, jobID string, actor entities.Actor) (usecase.TransitionResult, error) {
		return h.usecase.ReportIssue(ctx, jobID, actor, payload.Reason)
	})
}

// @Summary  Company marks the reported issue rectified
// @Tags     work
// @Param    job_id  path  string  true  "job id"
// @Success  200  {object}  response.TransitionResponse
// @Router   /jobs/{job_id}/work/rectify [patch]
func (h *JobHandler) MarkRectified(c *gin.Context) {
	h.patchTransition(c, "mark_rectified", h.usecase.MarkRectified)
}

func (h *JobHandler) patchTransition(
	c *gin.Context,
	op string,
	apply func(ctx context.Context, jobID string, actor entities.Actor) (usecase.TransitionResult, error),
) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	jobID := c.Param("job_id")

	res, err := apply(c.Request.Context(), jobID, actor)
	if err != nil {
		log.Printf("[job][handler] %s failed job_id=%s actor=%s:%s err=%v", op, jobID, actor.Role, actor.ID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] %s success job_id=%s status=%s", op, res.Job.ID, res.Job.Status)

	c.JSON(http.StatusOK, response.FromTransition(res))
}

func actorOrAbort(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.AbortWithStatusJSON(errActorMissing.HTTPStatus, errActorMissing.ToHTTPError())
	}
	return actor, ok
}

func bindOrAbort(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		log.Printf("[job][handler] invalid payload path=%s err=%v", c.FullPath(), err)
		c.AbortWithStatusJSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return false
	}
	return true
}
