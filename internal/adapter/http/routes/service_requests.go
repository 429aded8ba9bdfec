package routes

import (
	"repairhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceRequests = "/service-requests"
)

func addServiceRequestRoutes(rg *gin.RouterGroup, h *handlers.ServiceRequestHandler) {
	requests := rg.Group(PathServiceRequests)
	{
		requests.POST("", h.Create)
		requests.GET("", h.List)
		requests.GET("/:id", h.Get)
		requests.PUT("/:id/item", h.UpdateItem)
		requests.DELETE("/:id", h.Delete)

		// Lifecycle actions; the usecase decides whether the caller may run them.
		requests.POST("/:id/estimate", h.ProvideEstimate)
		requests.POST("/:id/accept", h.AcceptEstimate)
		requests.POST("/:id/reject", h.RejectEstimate)
		requests.POST("/:id/start", h.StartService)
		requests.POST("/:id/complete", h.CompleteService)
		requests.POST("/:id/report", h.CreateReport)
	}
}
