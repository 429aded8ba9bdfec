package handlers

import (
	"context"
	"net/http"
	request "repairhub/internal/adapter/http/dto/request"
	response "repairhub/internal/adapter/http/dto/response"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceRequestHandler exposes the service-request lifecycle.
type ServiceRequestHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewServiceRequestHandler(uc usecase.ILifecycleUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// Create godoc
// @Summary  Open a service request
// @Tags     service-requests
// @Accept   json
// @Produce  json
// @Param    body body request.CreateServiceRequestRequest true "Item to repair"
// @Success  201 {object} response.ServiceRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests [post]
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}

	r, err := h.usecase.CreateRequest(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRequest(r))
}

// Get godoc
// @Summary  Get a service request
// @Tags     service-requests
// @Produce  json
// @Param    id path string true "Service request id"
// @Success  200 {object} response.ServiceRequestResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id} [get]
func (h *ServiceRequestHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	r, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// List godoc
// @Summary  List the caller's service requests
// @Tags     service-requests
// @Produce  json
// @Success  200 {array} response.ServiceRequestResponse
// @Security Bearer
// @Router   /service-requests [get]
func (h *ServiceRequestHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	rs, err := h.usecase.ListByCustomer(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(rs))
}

// UpdateItem godoc
// @Summary  Change the item of a pending or rejected request
// @Tags     service-requests
// @Accept   json
// @Produce  json
// @Param    id   path string              true "Service request id"
// @Param    body body request.ItemRequest true "Item"
// @Success  200 {object} response.ServiceRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id}/item [put]
func (h *ServiceRequestHandler) UpdateItem(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	r, err := h.usecase.UpdateItem(c.Request.Context(), actor, c.Param("id"), payload.ToItem())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// Delete godoc
// @Summary  Delete a pending or rejected request
// @Tags     service-requests
// @Param    id path string true "Service request id"
// @Success  204
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id} [delete]
func (h *ServiceRequestHandler) Delete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteRequest(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProvideEstimate godoc
// @Summary  Offer an estimate (technician)
// @Tags     lifecycle
// @Accept   json
// @Produce  json
// @Param    id   path string                  true "Service request id"
// @Param    body body request.EstimateRequest true "Estimate"
// @Success  200 {object} response.ServiceRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id}/estimate [post]
func (h *ServiceRequestHandler) ProvideEstimate(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	r, err := h.usecase.ProvideEstimate(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// AcceptEstimate godoc
// @Summary  Accept the estimate and pay it from the wallet (customer)
// @Tags     lifecycle
// @Produce  json
// @Param    id path string true "Service request id"
// @Success  200 {object} response.ServiceRequestResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id}/accept [post]
func (h *ServiceRequestHandler) AcceptEstimate(c *gin.Context) {
	h.transition(c, h.usecase.AcceptEstimate)
}

// RejectEstimate godoc
// @Summary  Reject the estimate (customer)
// @Tags     lifecycle
// @Produce  json
// @Param    id path string true "Service request id"
// @Success  200 {object} response.ServiceRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id}/reject [post]
func (h *ServiceRequestHandler) RejectEstimate(c *gin.Context) {
	h.transition(c, h.usecase.RejectEstimate)
}

// StartService godoc
// @Summary  Start the work (assigned technician)
// @Tags     lifecycle
// @Produce  json
// @Param    id path string true "Service request id"
// @Success  200 {object} response.ServiceRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id}/start [post]
func (h *ServiceRequestHandler) StartService(c *gin.Context) {
	h.transition(c, h.usecase.StartService)
}

// CompleteService godoc
// @Summary  Complete the work (assigned technician)
// @Tags     lifecycle
// @Produce  json
// @Param    id path string true "Service request id"
// @Success  200 {object} response.ServiceRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id}/complete [post]
func (h *ServiceRequestHandler) CompleteService(c *gin.Context) {
	h.transition(c, h.usecase.CompleteService)
}

// CreateReport godoc
// @Summary  Attach the repair report to a completed request
// @Tags     lifecycle
// @Accept   json
// @Produce  json
// @Param    id   path string                true "Service request id"
// @Param    body body request.ReportRequest true "Report"
// @Success  201 {object} response.ServiceRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-requests/{id}/report [post]
func (h *ServiceRequestHandler) CreateReport(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.ReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	r, err := h.usecase.CreateReport(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRequest(r))
}

func (h *ServiceRequestHandler) transition(
	c *gin.Context,
	op func(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error),
) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	r, err := op(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}
