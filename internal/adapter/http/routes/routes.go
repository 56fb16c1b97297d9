package routes

import (
	"context"
	"log"

	_ "job_engagement/docs" // This will be auto-generated
	request "job_engagement/internal/adapter/http/dto/request"
	"job_engagement/internal/adapter/http/handlers"
	"job_engagement/internal/adapter/notification"
	repository2 "job_engagement/internal/adapter/persistence/repository"
	"job_engagement/internal/domain/engagement"
	"job_engagement/internal/infrastructure/cache"
	appconfig "job_engagement/internal/infrastructure/config"
	"job_engagement/internal/infrastructure/database"
	"job_engagement/internal/infrastructure/payments"
	"job_engagement/internal/usecase"
	"job_engagement/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg appconfig.Config) {
	request.RegisterValidators()

	jobHandler, paymentHandler := getHandlers(cfg)
	router := newRouter(jobHandler, paymentHandler)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getHandlers(cfg appconfig.Config) (*handlers.JobHandler, *handlers.PaymentHandler) {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB)

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	txRepo := repository2.NewTransactionDynamoRepository(ddb)
	eventRepo := repository2.NewJobEventDynamoRepository(ddb)

	dispatcher := notification.NewDispatcher(cache.ConnectRedis(ctx), cfg.NotificationsChannel)
	machine := engagement.NewMachine(engagement.WithMinReasonLength(cfg.DisputeReasonMinLength))

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, txRepo, eventRepo, dispatcher, machine)
	paymentUseCase := usecase.NewPaymentUseCase(jobUseCase, txRepo, paymentGateway, machine, cfg.PlatformFeeRate,
		usecase.WithMockGateway(cfg.Payments.Mock))

	return handlers.NewJobHandler(jobUseCase), handlers.NewPaymentHandler(paymentUseCase)
}

func newRouter(jobHandler *handlers.JobHandler, paymentHandler *handlers.PaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler)
	addPaymentRoutes(v1, paymentHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
