package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "fieldserve_costing/docs" // This will be auto-generated
	"fieldserve_costing/internal/adapter/http/handlers"
	repository2 "fieldserve_costing/internal/adapter/persistence/repository"
	"fieldserve_costing/internal/domain/costing"
	"fieldserve_costing/internal/infrastructure/database"
	"fieldserve_costing/internal/infrastructure/payments"
	"fieldserve_costing/internal/usecase"
	"fieldserve_costing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	ledgerRepo := repository2.NewCostLedgerDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)

	resolver := usecase.NewRevenueResolver(estimateRepo, invoiceRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	metricsUseCase := usecase.NewJobMetricsUseCase(jobRepo, ledgerRepo, resolver, thresholdsFromEnv(), time.Now)
	costEntryUseCase := usecase.NewCostEntryUseCase(ledgerRepo, jobRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, resolver)
	invoicePaymentUseCase := usecase.NewInvoicePaymentUseCase(invoiceRepo, paymentGateway)

	metricsHandler := handlers.NewJobMetricsHandler(metricsUseCase)
	costEntryHandler := handlers.NewCostEntryHandler(costEntryUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	invoicePaymentHandler := handlers.NewInvoicePaymentHandler(invoicePaymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCostingRoutes(v1, metricsHandler, costEntryHandler, jobHandler, invoicePaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// thresholdsFromEnv starts from the built-in defaults and applies any
// operator overrides. A malformed value keeps the default and logs.
func thresholdsFromEnv() costing.Thresholds {
	th := costing.DefaultThresholds()
	overrideFloat("BURN_OVERRUN_FACTOR", &th.BurnOverrunFactor)
	overrideFloat("FALLBACK_HORIZON_DAYS", &th.FallbackHorizonDays)
	overrideFloat("COST_OVERRUN_ALERT_PCT", &th.CostOverrunAlertPct)
	overrideFloat("LOW_MARGIN_ALERT_PCT", &th.LowMarginAlertPct)
	return th
}

func overrideFloat(envKey string, dst *float64) {
	raw := os.Getenv(envKey)
	if raw == "" {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("[routes] ignoring invalid %s=%q: %v", envKey, raw, err)
		return
	}
	*dst = v
}
