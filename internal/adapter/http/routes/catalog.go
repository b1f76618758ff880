package routes

import (
	"ssx_solar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, productHandler *handlers.ProductHandler) {
	users := rg.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.ListByRole)
		users.GET("/:id", userHandler.GetByID)
	}

	products := rg.Group("/products")
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.ListActive)
		products.GET("/:id", productHandler.GetByID)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	rg.GET("/reports/service-requests.xlsx", reportHandler.ExportServiceRequests)
}
