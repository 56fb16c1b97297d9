package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "job_engagement/internal/adapter/http/dto/request"
	response "job_engagement/internal/adapter/http/dto/response"
	"job_engagement/internal/domain/entities"
	appconfig "job_engagement/internal/infrastructure/config"
	"job_engagement/internal/usecase"
	"job_engagement/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the payment confirmation routes: charging a phase
// through the provider and recording rows confirmed elsewhere.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PayPhase godoc
// @Summary      Charge the customer for a payment phase
// @Description  Charges deposit, intermediate or final payment through Mercado Pago. The amount is computed from the ledger; a completed charge confirms the transition it unlocks.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Actor-Role  header  string                  true  "customer"
// @Param        X-Actor-ID    header  string                  true  "customer id"
// @Param        job_id        path    string                  true  "job id"
// @Param        phase         path    string                  true  "deposit | intermediate | final"
// @Param        payload       body    request.PaymentRequest  true  "Mercado Pago payload"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      412  {object}  pkg.HTTPError
// @Router       /payments/{job_id}/{phase} [post]
func (h *PaymentHandler) PayPhase(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[payment][handler] pay start job_id=%s phase=%s", jobID, c.Param("phase"))
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	phase, err := usecase.ParsePhase(c.Param("phase"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if appconfig.PaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload job_id=%s err=%v", jobID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload job_id=%s err=%v", jobID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	res, err := h.usecase.PayPhase(c.Request.Context(), jobID, actor, phase, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] pay failed job_id=%s phase=%s err=%v", jobID, phase, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success job_id=%s tx_id=%s tx_status=%s job_status=%s", jobID, res.Transaction.ID, res.Transaction.Status, res.Job.Status)

	c.JSON(http.StatusOK, response.FromPayment(res))
}

// RecordTransaction godoc
// @Summary  Record a payment confirmed outside the charge flow
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    job_id   path  string                            true  "job id"
// @Param    payload  body  request.RecordTransactionRequest  true  "transaction"
// @Success  201  {object}  response.PaymentResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError  "LEDGER_INCONSISTENCY"
// @Router   /payments/{job_id}/transactions [post]
func (h *PaymentHandler) RecordTransaction(c *gin.Context) {
	jobID := c.Param("job_id")
	var payload request.RecordTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] record invalid payload job_id=%s err=%v", jobID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.RecordTransaction(c.Request.Context(), jobID, usecase.RecordTransactionInput{
		Type:              entities.TransactionType(payload.Type),
		Amount:            *payload.Amount,
		PlatformFee:       payload.ResolvePlatformFee(),
		Status:            entities.TransactionStatus(payload.Status),
		ProviderPaymentID: payload.ProviderPaymentID,
	})
	if err != nil {
		log.Printf("[payment][handler] record failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(res))
}

// ListTransactions godoc
// @Summary  List the payment ledger of a job
// @Tags     payments
// @Produce  json
// @Param    job_id  path  string  true  "job id"
// @Success  200  {array}   response.TransactionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /payments/{job_id} [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	jobID := c.Param("job_id")
	txs, err := h.usecase.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[payment][handler] list failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
