package handlers

import (
	"errors"
	"net/http"

	request "ssx_solar/internal/adapter/http/dto/request"
	response "ssx_solar/internal/adapter/http/dto/response"
	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase"
	"ssx_solar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)
)

// ServiceRequestHandler handles creation and the role-scoped listings of
// service requests.

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// Create accepts the client portal's creation payload and answers with the
// stored record, including its backend-assigned id.
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateServiceRequestCommand{
		ClientID:      payload.ClientID,
		EquipmentType: entities.EquipmentType(payload.EquipmentType),
		ProductID:     payload.ProductID,
		Address:       payload.Address.ToAddress(),
		Notes:         payload.Notes,
		Priority:      entities.RequestPriority(payload.Priority),
	}

	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func (h *ServiceRequestHandler) ListAll(c *gin.Context) {
	records, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(records))
}

func (h *ServiceRequestHandler) ListByClient(c *gin.Context) {
	records, err := h.usecase.ListByClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(records))
}

func (h *ServiceRequestHandler) ListByInstaller(c *gin.Context) {
	records, err := h.usecase.ListByInstaller(c.Request.Context(), c.Param("installerId"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(records))
}

func (h *ServiceRequestHandler) GetByID(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidInstallerID),
		errors.Is(err, usecase.ErrInvalidEquipmentType),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrIncompleteAddress):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
