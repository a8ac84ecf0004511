package handlers

import (
	"errors"
	"net/http"

	request "truetickets/internal/adapter/http/dto/request"
	response "truetickets/internal/adapter/http/dto/response"
	"truetickets/internal/usecase"
	"truetickets/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAttachmentPayload = pkg.NewDomainErrorSimple("INVALID_ATTACHMENT_INPUT", "Invalid attachment payload", http.StatusBadRequest)

type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
}

func NewAttachmentHandler(uc usecase.IAttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{usecase: uc}
}

func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	var payload request.UploadAttachmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttachmentPayload.HTTPStatus, errInvalidAttachmentPayload.ToHTTPError())
		return
	}

	url, err := h.usecase.UploadAttachment(c.Request.Context(), payload.TicketID, payload.ImageData)
	if err != nil {
		respondAttachmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.UploadAttachmentResponse{
		TicketNumber: payload.TicketID,
		URL:          url,
	})
}

func respondAttachmentError(c *gin.Context, err error) {
	appErr := mapAttachmentError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAttachmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidImageData):
		return pkg.NewDomainError("INVALID_IMAGE_DATA", "image_data must be base64 or a data URL", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
