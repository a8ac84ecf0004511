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

var (
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
	errMissingCustomerParam   = pkg.NewDomainErrorSimple("MISSING_CUSTOMER_PARAM", "Provide exactly one of: phone_number, query, id", http.StatusBadRequest)
	errMissingCustomerID      = pkg.NewDomainErrorSimple("MISSING_CUSTOMER_ID", "customer_id is required", http.StatusBadRequest)
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case c.Query("phone_number") != "":
		customers, err := h.usecase.GetByPhone(ctx, c.Query("phone_number"))
		if err != nil {
			respondCustomerError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromCustomers(customers))

	case c.Query("query") != "":
		customers, err := h.usecase.SearchByName(ctx, c.Query("query"))
		if err != nil {
			respondCustomerError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromCustomers(customers))

	case c.Query("id") != "":
		customer, err := h.usecase.GetByID(ctx, c.Query("id"))
		if err != nil {
			respondCustomerError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromCustomer(customer))

	default:
		c.JSON(errMissingCustomerParam.HTTPStatus, errMissingCustomerParam.ToHTTPError())
	}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.FullName, payload.Email, payload.Phones())
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id := c.Query("customer_id")
	if id == "" {
		c.JSON(errMissingCustomerID.HTTPStatus, errMissingCustomerID.ToHTTPError())
		return
	}

	var payload request.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Update(c.Request.Context(), id, payload.ToUpdate()); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": id})
}

func respondCustomerError(c *gin.Context, err error) {
	appErr := mapCustomerError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingFullName), errors.Is(err, usecase.ErrMissingPhoneNumbers),
		errors.Is(err, usecase.ErrNoFieldsToUpdate), errors.Is(err, usecase.ErrEmptySearchQuery):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerIDCollision):
		return pkg.NewDomainErrorSimple("CONFLICT", "Customer ID collision", http.StatusConflict).
			WithSuggestion("Retry the request")
	case errors.Is(err, usecase.ErrPartialBatchResult):
		return pkg.NewDomainErrorSimple("PARTIAL_BATCH", "The store returned a partial batch", http.StatusServiceUnavailable).
			WithSuggestion("Retry the request")
	case errors.Is(err, usecase.ErrDataIntegrity):
		return pkg.NewDomainError("DATA_INTEGRITY_ERROR", "Data integrity error", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
