package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "truetickets/internal/adapter/http/dto/request"
	response "truetickets/internal/adapter/http/dto/response"
	"truetickets/internal/usecase"
	"truetickets/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOperationsPayload = pkg.NewDomainErrorSimple("INVALID_OPERATIONS_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingUserNameParam     = pkg.NewDomainErrorSimple("MISSING_USER_NAME", "user_name is required", http.StatusBadRequest)
)

// OperationsHandler exposes the shop-operations endpoints: timeclock,
// wages, revenue, purchases, store config and the payment lifecycle.
type OperationsHandler struct {
	usecase usecase.IOperationsUseCase
}

func NewOperationsHandler(uc usecase.IOperationsUseCase) *OperationsHandler {
	return &OperationsHandler{usecase: uc}
}

func (h *OperationsHandler) Clock(c *gin.Context) {
	var payload request.ClockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOperationsPayload.HTTPStatus, errInvalidOperationsPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.ClockInOut(c.Request.Context(), payload.UserName, *payload.ClockingIn)
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClockState(state))
}

func (h *OperationsHandler) ClockStatus(c *gin.Context) {
	user := c.Query("user_name")
	if user == "" {
		c.JSON(errMissingUserNameParam.HTTPStatus, errMissingUserNameParam.ToHTTPError())
		return
	}

	state, err := h.usecase.ClockStatus(c.Request.Context(), user)
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClockState(state))
}

func (h *OperationsHandler) GetClockLogs(c *gin.Context) {
	start, ok := parseEpochParam(c, "start")
	if !ok {
		return
	}
	end, ok := parseEpochParam(c, "end")
	if !ok {
		return
	}

	logs, err := h.usecase.GetClockLogs(c.Request.Context(), start, end)
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClockLogs(logs))
}

func (h *OperationsHandler) UpdateClockLogs(c *gin.Context) {
	var payload request.ClockLogsUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOperationsPayload.HTTPStatus, errInvalidOperationsPayload.ToHTTPError())
		return
	}

	err := h.usecase.UpdateClockLogs(c.Request.Context(), payload.UserName, payload.StartOfDay, payload.EndOfDay, payload.ToSegments())
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_name": payload.UserName})
}

func (h *OperationsHandler) UpdateWage(c *gin.Context) {
	var payload request.WageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOperationsPayload.HTTPStatus, errInvalidOperationsPayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateWage(c.Request.Context(), payload.UserName, payload.WageCents); err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_name": payload.UserName})
}

func (h *OperationsHandler) Revenue(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	tickets, err := h.usecase.MonthlyRevenue(c.Request.Context(), year, month)
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

func (h *OperationsHandler) GetPurchases(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	purchases, err := h.usecase.GetPurchases(c.Request.Context(), year, month)
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}

func (h *OperationsHandler) PutPurchases(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	var payload request.PurchasesPutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOperationsPayload.HTTPStatus, errInvalidOperationsPayload.ToHTTPError())
		return
	}

	if err := h.usecase.PutPurchases(c.Request.Context(), year, month, payload.ToItems()); err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"month_year": fmt.Sprintf("%04d-%02d", year, month)})
}

func (h *OperationsHandler) TakePayment(c *gin.Context) {
	number, tech, ok := parsePaymentParams(c)
	if !ok {
		return
	}

	totalPaidCents, err := h.usecase.TakePayment(c.Request.Context(), number, tech)
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PaymentResponse{
		Success:        true,
		Message:        "Payment taken",
		TicketNumber:   number,
		TotalPaidCents: totalPaidCents,
	})
}

func (h *OperationsHandler) RefundPayment(c *gin.Context) {
	number, tech, ok := parsePaymentParams(c)
	if !ok {
		return
	}

	if err := h.usecase.RefundPayment(c.Request.Context(), number, tech); err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PaymentResponse{
		Success:      true,
		Message:      "Payment refunded",
		TicketNumber: number,
	})
}

func (h *OperationsHandler) DontFix(c *gin.Context) {
	number, tech, ok := parsePaymentParams(c)
	if !ok {
		return
	}

	if err := h.usecase.DontFix(c.Request.Context(), number, tech); err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PaymentResponse{
		Success:      true,
		Message:      "Ticket marked don't fix",
		TicketNumber: number,
	})
}

func (h *OperationsHandler) GetStoreConfig(c *gin.Context) {
	sc, err := h.usecase.GetStoreConfig(c.Request.Context())
	if err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStoreConfig(sc))
}

func (h *OperationsHandler) PutStoreConfig(c *gin.Context) {
	var payload request.StoreConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOperationsPayload.HTTPStatus, errInvalidOperationsPayload.ToHTTPError())
		return
	}

	if err := h.usecase.PutStoreConfig(c.Request.Context(), payload.ToStoreConfig()); err != nil {
		respondOperationsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func parsePaymentParams(c *gin.Context) (int64, string, bool) {
	number, ok := parseTicketNumber(c, c.Query("ticket_number"))
	if !ok {
		return 0, "", false
	}
	tech := c.Query("tech_name")
	if tech == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_TECH_NAME", "tech_name is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, "", false
	}
	return number, tech, true
}

func parseEpochParam(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_TIME_PARAM", name+" must be a unix timestamp", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return v, true
}

func parseMonthParams(c *gin.Context) (int, int, bool) {
	year, yerr := strconv.Atoi(c.Query("year"))
	month, merr := strconv.Atoi(c.Query("month"))
	if yerr != nil || merr != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_MONTH_PARAM", "year and month must be integers", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, 0, false
	}
	return year, month, true
}

func respondOperationsError(c *gin.Context, err error) {
	appErr := mapOperationsError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOperationsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreConfigMissing):
		return pkg.NewDomainErrorSimple("STORE_CONFIG_NOT_FOUND", "Store config not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotResolved), errors.Is(err, usecase.ErrNoLineItems),
		errors.Is(err, usecase.ErrInvalidTimeRange), errors.Is(err, usecase.ErrInvalidMonth),
		errors.Is(err, usecase.ErrMissingUserName):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyResolved):
		return pkg.NewDomainErrorSimple("CONFLICT", "Ticket is already resolved", http.StatusConflict).
			WithSuggestion("Refund the payment before changing the ticket")
	case errors.Is(err, usecase.ErrClockStateRace):
		return pkg.NewDomainErrorSimple("CONFLICT", "Clock state changed during processing", http.StatusConflict).
			WithSuggestion("Refresh the clock status and retry")
	case errors.Is(err, usecase.ErrPaymentConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Ticket state changed during processing", http.StatusConflict).
			WithSuggestion("Reload the ticket and retry")
	case errors.Is(err, usecase.ErrPartialBatchResult):
		return pkg.NewDomainErrorSimple("PARTIAL_BATCH", "The store returned a partial batch", http.StatusServiceUnavailable).
			WithSuggestion("Retry the request")
	case errors.Is(err, usecase.ErrDataIntegrity):
		return pkg.NewDomainError("DATA_INTEGRITY_ERROR", "Data integrity error", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
