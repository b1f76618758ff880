package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	request "ssx_solar/internal/adapter/http/dto/request"
	response "ssx_solar/internal/adapter/http/dto/response"
	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase"
	"ssx_solar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLifecyclePayload = pkg.NewDomainErrorSimple("INVALID_LIFECYCLE_INPUT", "Invalid lifecycle payload", http.StatusBadRequest)
	errInvalidImageUpload      = pkg.NewDomainErrorSimple("INVALID_IMAGE_UPLOAD", "Invalid image upload", http.StatusBadRequest)
)

// LifecycleHandler exposes the status transition operations. Each route is a
// PATCH writing one specific field set; the use case validates the
// transition graph.

type LifecycleHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewLifecycleHandler(uc usecase.ILifecycleUseCase) *LifecycleHandler {
	return &LifecycleHandler{usecase: uc}
}

func (h *LifecycleHandler) Approve(c *gin.Context) {
	h.patchByID(c, h.usecase.Approve)
}

func (h *LifecycleHandler) Assign(c *gin.Context) {
	var payload request.AssignInstallerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLifecyclePayload.HTTPStatus, errInvalidLifecyclePayload.ToHTTPError())
		return
	}

	req, err := h.usecase.AssignInstaller(c.Request.Context(), c.Param("id"), payload.InstallerID)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func (h *LifecycleHandler) Start(c *gin.Context) {
	h.patchByID(c, h.usecase.Start)
}

func (h *LifecycleHandler) Pause(c *gin.Context) {
	h.patchByID(c, h.usecase.Pause)
}

func (h *LifecycleHandler) Resume(c *gin.Context) {
	h.patchByID(c, h.usecase.Resume)
}

func (h *LifecycleHandler) Complete(c *gin.Context) {
	var payload request.CompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLifecyclePayload.HTTPStatus, errInvalidLifecyclePayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.TechnicalNotes)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func (h *LifecycleHandler) Confirm(c *gin.Context) {
	var payload request.ConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLifecyclePayload.HTTPStatus, errInvalidLifecyclePayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Confirm(c.Request.Context(), c.Param("id"), payload.ClientID)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func (h *LifecycleHandler) Cancel(c *gin.Context) {
	h.patchByID(c, h.usecase.Cancel)
}

// UploadImage accepts a multipart "file" part and appends the stored image
// to the request.
func (h *LifecycleHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidImageUpload.HTTPStatus, errInvalidImageUpload.ToHTTPError())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidImageUpload.HTTPStatus, errInvalidImageUpload.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errInvalidImageUpload.HTTPStatus, errInvalidImageUpload.ToHTTPError())
		return
	}

	req, err := h.usecase.UploadImage(c.Request.Context(), c.Param("id"), fileHeader.Filename, data)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func (h *LifecycleHandler) patchByID(
	c *gin.Context,
	op func(ctx context.Context, id string) (entities.ServiceRequest, error),
) {
	req, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidInstallerID),
		errors.Is(err, usecase.ErrEmptyImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallerNotFound):
		return pkg.NewDomainErrorSimple("INSTALLER_NOT_FOUND", "Installer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotAnInstaller):
		return pkg.NewDomainErrorSimple("NOT_AN_INSTALLER", "User is not an installer", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotRequestOwner):
		return pkg.NewDomainErrorSimple("NOT_REQUEST_OWNER", "Request belongs to another client", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
