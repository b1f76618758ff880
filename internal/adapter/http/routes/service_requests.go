package routes

import (
	"ssx_solar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceRequests = "/service-requests"
	PathClients         = "/clients"
	PathInstallers      = "/installers"
)

func addServiceRequestRoutes(rg *gin.RouterGroup, requestHandler *handlers.ServiceRequestHandler, lifecycleHandler *handlers.LifecycleHandler) {
	requests := rg.Group(PathServiceRequests)
	{
		requests.POST("", requestHandler.Create)
		requests.GET("", requestHandler.ListAll)
		requests.GET("/:id", requestHandler.GetByID)

		// Lifecycle transitions: each is a PATCH writing one field set.
		requests.PATCH("/:id/approve", lifecycleHandler.Approve)
		requests.PATCH("/:id/assign", lifecycleHandler.Assign)
		requests.PATCH("/:id/start", lifecycleHandler.Start)
		requests.PATCH("/:id/pause", lifecycleHandler.Pause)
		requests.PATCH("/:id/resume", lifecycleHandler.Resume)
		requests.PATCH("/:id/complete", lifecycleHandler.Complete)
		requests.PATCH("/:id/confirm", lifecycleHandler.Confirm)
		requests.PATCH("/:id/cancel", lifecycleHandler.Cancel)

		requests.POST("/:id/images", lifecycleHandler.UploadImage)
	}

	rg.GET(PathClients+"/:clientId"+PathServiceRequests, requestHandler.ListByClient)
	rg.GET(PathInstallers+"/:installerId"+PathServiceRequests, requestHandler.ListByInstaller)
}
