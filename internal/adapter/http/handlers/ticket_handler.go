package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "truetickets/internal/adapter/http/dto/request"
	response "truetickets/internal/adapter/http/dto/response"
	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase"
	"truetickets/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTicketPayload = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)
	errInvalidTicketNumber  = pkg.NewDomainErrorSimple("INVALID_TICKET_NUMBER", "ticket_number must be a positive integer", http.StatusBadRequest)
	errMissingSearchParam   = pkg.NewDomainErrorSimple("MISSING_SEARCH_PARAM", "Provide exactly one of: number, ticket_number_last_3_digits, subject_query, customer_id, get_recent", http.StatusBadRequest)
)

// TicketHandler handles HTTP requests for tickets. GET dispatches on
// the first recognized query parameter, matching the frontend's
// single-endpoint search contract.
type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

func (h *TicketHandler) GetTickets(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case c.Query("number") != "":
		number, ok := parseTicketNumber(c, c.Query("number"))
		if !ok {
			return
		}
		t, err := h.usecase.GetByNumber(ctx, number)
		if err != nil {
			respondTicketError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromTicket(t))

	case c.Query("ticket_number_last_3_digits") != "":
		suffix, err := strconv.ParseInt(c.Query("ticket_number_last_3_digits"), 10, 64)
		if err != nil || suffix < 0 || suffix > 999 {
			appErr := pkg.NewDomainErrorSimple("INVALID_SUFFIX", "ticket_number_last_3_digits must be 0-999", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		tickets, err := h.usecase.SearchBySuffix(ctx, suffix)
		if err != nil {
			respondTicketError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromTickets(tickets))

	case c.Query("subject_query") != "":
		tickets, err := h.usecase.SearchBySubject(ctx, c.Query("subject_query"))
		if err != nil {
			respondTicketError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromTickets(tickets))

	case c.Query("customer_id") != "":
		tickets, err := h.usecase.GetByCustomer(ctx, c.Query("customer_id"))
		if err != nil {
			respondTicketError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromTickets(tickets))

	case c.Request.URL.Query().Has("get_recent"):
		h.getRecent(c)

	default:
		c.JSON(errMissingSearchParam.HTTPStatus, errMissingSearchParam.ToHTTPError())
	}
}

func (h *TicketHandler) getRecent(c *gin.Context) {
	ctx := c.Request.Context()

	device := c.Query("device")
	statusParam := c.Query("status")
	if device == "" && statusParam == "" {
		tickets, err := h.usecase.Recent(ctx)
		if err != nil {
			respondTicketError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromTickets(tickets))
		return
	}

	var statuses []entities.TicketStatus
	for _, s := range strings.Split(statusParam, "|") {
		if s != "" {
			statuses = append(statuses, entities.TicketStatus(s))
		}
	}
	tickets, err := h.usecase.RecentFiltered(ctx, entities.Device(device), statuses)
	if err != nil {
		respondTicketError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.TicketCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, payload.Subject, payload.Password, payload.ItemsLeft, entities.Device(payload.Device))
	if err != nil {
		respondTicketError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	number, ok := parseTicketNumber(c, c.Query("number"))
	if !ok {
		return
	}

	var payload request.TicketUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Update(c.Request.Context(), number, payload.ToUpdate()); err != nil {
		respondTicketError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_number": number})
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	number, ok := parseTicketNumber(c, c.Query("ticket_number"))
	if !ok {
		return
	}

	var payload request.TicketCommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	if err := h.usecase.AddComment(c.Request.Context(), number, payload.CommentBody, payload.TechName); err != nil {
		respondTicketError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_number": number})
}

func parseTicketNumber(c *gin.Context, raw string) (int64, bool) {
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || number <= 0 {
		c.JSON(errInvalidTicketNumber.HTTPStatus, errInvalidTicketNumber.ToHTTPError())
		return 0, false
	}
	return number, true
}

func respondTicketError(c *gin.Context, err error) {
	appErr := mapTicketError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDevice), errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrNoFieldsToUpdate), errors.Is(err, usecase.ErrEmptySearchQuery):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResolvedWithItems):
		return pkg.NewDomainErrorSimple("RESOLVED_TICKET_LOCKED", "Resolved tickets with line items can only change status through refund", http.StatusConflict)
	case errors.Is(err, usecase.ErrTicketConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Ticket state changed during processing", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartialBatchResult):
		return pkg.NewDomainErrorSimple("PARTIAL_BATCH", "The store returned a partial batch", http.StatusServiceUnavailable).
			WithSuggestion("Retry the request")
	case errors.Is(err, usecase.ErrDataIntegrity), errors.Is(err, usecase.ErrCounterNotInitialized):
		return pkg.NewDomainError("DATA_INTEGRITY_ERROR", "Data integrity error", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
