package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handler "billing-dashboard-backend/internal/handlers"
	"billing-dashboard-backend/internal/repository"
	customers "billing-dashboard-backend/internal/services/customers"
	dashboard "billing-dashboard-backend/internal/services/dashboard"
	invoices "billing-dashboard-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db, log)
	customerRepo := repository.NewCustomerRepository(db, log)
	revenueRepo := repository.NewRevenueRepository(db, log)

	dashboardService := dashboard.NewService(invoiceRepo, customerRepo, revenueRepo, log)
	invoiceService := invoices.NewService(invoiceRepo, log)
	customerService := customers.NewService(customerRepo, log)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	customerHandler := handler.NewCustomerHandler(customerService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	dash := api.Group("/dashboard")
	dash.GET("/cards", dashboardHandler.GetCards)
	dash.GET("/revenue", dashboardHandler.GetRevenue)
	dash.GET("/latest-invoices", dashboardHandler.GetLatestInvoices)

	inv := api.Group("/invoices")
	{
		inv.GET("", invoiceHandler.ListInvoices)
		inv.GET("/pages", invoiceHandler.GetPages)
		inv.GET("/:id", invoiceHandler.GetInvoice)
	}

	cust := api.Group("/customers")
	{
		cust.GET("", customerHandler.ListCustomers)
		cust.GET("/table", customerHandler.GetCustomerTable)
	}
}
