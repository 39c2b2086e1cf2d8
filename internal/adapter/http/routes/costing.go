package routes

import (
	"fieldserve_costing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs     = "/jobs"
	PathInvoices = "/invoices"
)

func addCostingRoutes(
	rg *gin.RouterGroup,
	metricsHandler *handlers.JobMetricsHandler,
	costEntryHandler *handlers.CostEntryHandler,
	jobHandler *handlers.JobHandler,
	invoicePaymentHandler *handlers.InvoicePaymentHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("/snapshots", metricsHandler.BatchSnapshots)
		jobs.POST("/contract-prices/populate", jobHandler.PopulateContractPrices)

		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.GET("/:job_id/snapshot", metricsHandler.GetSnapshot)
		jobs.PATCH("/:job_id/contract-price", jobHandler.UpdateContractPrice)

		jobs.GET("/:job_id/costs", costEntryHandler.ListCostEntries)
		jobs.POST("/:job_id/costs", costEntryHandler.CreateCostEntry)
		jobs.GET("/:job_id/costs/distribution", costEntryHandler.GetDistribution)
		jobs.PUT("/:job_id/costs/:cost_id", costEntryHandler.UpdateCostEntry)
		jobs.DELETE("/:job_id/costs/:cost_id", costEntryHandler.DeleteCostEntry)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/:invoice_id/payments", invoicePaymentHandler.RecordPayment)
	}
}
