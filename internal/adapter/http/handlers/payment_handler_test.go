package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"job_engagement/internal/adapter/http/handlers/mocks"
	"job_engagement/internal/adapter/http/middleware"
	"job_engagement/internal/domain/engagement"
	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase"
	"job_engagement/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(uc usecase.IPaymentUseCase) *gin.Engine {
	h := NewPaymentHandler(uc)
	r := newTestRouter()
	r.GET("/v1/payments/:job_id", h.ListTransactions)
	r.POST("/v1/payments/:job_id/transactions", h.RecordTransaction)
	r.POST("/v1/payments/:job_id/:phase", middleware.RequireActor(), h.PayPhase)
	return r
}

func depositResult() usecase.PaymentResult {
	return usecase.PaymentResult{
		Transaction: entities.FinancialTransaction{
			ID: "tx-1", JobID: "job-1", Type: entities.TransactionTypeDeposit,
			Amount: decimal.RequireFromString("110000"), PlatformFee: decimal.RequireFromString("10000"),
			Status: entities.TransactionStatusCompleted,
		},
		TransitionResult: usecase.TransitionResult{
			Job: entities.Job{ID: "job-1", Status: entities.JobStatusDepositPaid},
		},
	}
}

func TestPaymentHandler_PayPhase(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("unknown phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newPaymentRouter(mocks.NewMockIPaymentUseCase(ctrl))

		expectCode(t, do(t, r, http.MethodPost, "/v1/payments/job-1/tip", &customer, `{}`), http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newPaymentRouter(mocks.NewMockIPaymentUseCase(ctrl))

		expectCode(t, do(t, r, http.MethodPost, "/v1/payments/job-1/deposit", &customer, `{`), http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("empty envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newPaymentRouter(mocks.NewMockIPaymentUseCase(ctrl))

		expectStatus(t, do(t, r, http.MethodPost, "/v1/payments/job-1/deposit", &customer, `{"mp_payload":null}`), http.StatusBadRequest)
	})

	t.Run("envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().PayPhase(gomock.Any(), "job-1", customer, entities.TransactionTypeDeposit, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.Actor, _ entities.TransactionType, payload json.RawMessage) (usecase.PaymentResult, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload %s", payload)
				}
				if _, wrapped := m["mp_payload"]; wrapped {
					t.Fatalf("envelope not unwrapped: %s", payload)
				}
				return depositResult(), nil
			})

		w := do(t, r, http.MethodPost, "/v1/payments/job-1/deposit", &customer, `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		expectStatus(t, w, http.StatusOK)
		body := decode(t, w)
		tx, _ := body["transaction"].(map[string]any)
		job, _ := body["job"].(map[string]any)
		if tx["amount"] != "110000" || tx["platform_fee"] != "10000" || job["status"] != "deposit_paid" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("final phase alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().PayPhase(gomock.Any(), "job-1", customer, entities.TransactionTypeFinalPayment, gomock.Any()).Return(usecase.PaymentResult{}, nil)
		expectStatus(t, do(t, r, http.MethodPost, "/v1/payments/job-1/final", &customer, `{"payment_method_id":"pix"}`), http.StatusOK)
	})

	t.Run("mock mode tolerates bad payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().PayPhase(gomock.Any(), "job-1", customer, entities.TransactionTypeDeposit, json.RawMessage("{}")).Return(depositResult(), nil)
		expectStatus(t, do(t, r, http.MethodPost, "/v1/payments/job-1/deposit", &customer, `{`), http.StatusOK)
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"rejected", usecase.ErrPaymentRejected, http.StatusPaymentRequired, "PAYMENT_REJECTED"},
		{"unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{"invalid users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest, "PAYMENT_PROVIDER_INVALID_USERS"},
		{"customer not found", usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{"not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE"},
		{"nothing due", &engagement.Rejection{Kind: engagement.KindPreconditionNotMet, Message: "nothing is due for this phase"}, http.StatusPreconditionFailed, "PRECONDITION_NOT_MET"},
		{"not the customer", &engagement.Rejection{Kind: engagement.KindForbidden, Message: "only the job's customer pays for it"}, http.StatusForbidden, "FORBIDDEN"},
		{"job not found", usecase.ErrJobNotFound, http.StatusNotFound, "JOB_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			r := newPaymentRouter(uc)

			uc.EXPECT().PayPhase(gomock.Any(), "job-1", customer, entities.TransactionTypeDeposit, gomock.Any()).Return(usecase.PaymentResult{}, tc.err)
			expectCode(t, do(t, r, http.MethodPost, "/v1/payments/job-1/deposit", &customer, `{"payment_method_id":"pix"}`), tc.status, tc.code)
		})
	}
}

func TestPaymentHandler_RecordTransaction(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newPaymentRouter(mocks.NewMockIPaymentUseCase(ctrl))

		expectCode(t, do(t, r, http.MethodPost, "/v1/payments/job-1/transactions", nil, `{"type":"tip","amount":"10","status":"completed"}`), http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().RecordTransaction(gomock.Any(), "job-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, in usecase.RecordTransactionInput) (usecase.PaymentResult, error) {
				if in.Type != entities.TransactionTypeDeposit || in.Status != entities.TransactionStatusCompleted {
					t.Fatalf("unexpected input %+v", in)
				}
				if !in.Amount.Equal(decimal.RequireFromString("55000")) || !in.PlatformFee.Equal(decimal.RequireFromString("5000")) {
					t.Fatalf("unexpected amounts %+v", in)
				}
				if in.ProviderPaymentID != "mp-1" {
					t.Fatalf("unexpected provider id %q", in.ProviderPaymentID)
				}
				return depositResult(), nil
			})

		w := do(t, r, http.MethodPost, "/v1/payments/job-1/transactions", nil, `{"type":"deposit","amount":"55000","platform_fee":"5000","status":"completed","provider_payment_id":"mp-1"}`)
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().RecordTransaction(gomock.Any(), "job-1", gomock.Any()).Return(usecase.PaymentResult{}, interfaces.ErrTransactionExists)
		expectCode(t, do(t, r, http.MethodPost, "/v1/payments/job-1/transactions", nil, `{"type":"final_payment","amount":"45000","status":"completed"}`), http.StatusConflict, "TRANSACTION_EXISTS")
	})

	t.Run("unreconcilable row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().RecordTransaction(gomock.Any(), "job-1", gomock.Any()).Return(usecase.PaymentResult{}, engagement.ErrLedgerInconsistency)
		expectCode(t, do(t, r, http.MethodPost, "/v1/payments/job-1/transactions", nil, `{"type":"final_payment","amount":"999999","status":"completed"}`), http.StatusInternalServerError, "LEDGER_INCONSISTENCY")
	})
}

func TestPaymentHandler_ListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := newPaymentRouter(uc)

	uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.FinancialTransaction{depositResult().Transaction}, nil)
	w := do(t, r, http.MethodGet, "/v1/payments/job-1", nil, "")
	expectStatus(t, w, http.StatusOK)

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0]["transaction_id"] != "tx-1" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	uc.EXPECT().ListByJobID(gomock.Any(), "nope").Return(nil, usecase.ErrJobNotFound)
	expectCode(t, do(t, r, http.MethodGet, "/v1/payments/nope", nil, ""), http.StatusNotFound, "JOB_NOT_FOUND")
}
