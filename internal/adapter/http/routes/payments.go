package routes

import (
	"job_engagement/internal/adapter/http/handlers"
	"job_engagement/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:job_id", h.ListTransactions)
		// Provider callbacks carry no actor headers.
		payments.POST("/:job_id/transactions", h.RecordTransaction)
		payments.POST("/:job_id/:phase", middleware.RequireActor(), h.PayPhase)
	}
}
