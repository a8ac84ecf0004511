package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "truetickets/internal/adapter/http/dto/response"
	"truetickets/internal/usecase"
	"truetickets/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMigrationParams = pkg.NewDomainErrorSimple("INVALID_MIGRATION_PARAMS", "latest_ticket_number and count must be positive integers", http.StatusBadRequest)

type MigrationHandler struct {
	usecase usecase.IMigrationUseCase
}

func NewMigrationHandler(uc usecase.IMigrationUseCase) *MigrationHandler {
	return &MigrationHandler{usecase: uc}
}

func (h *MigrationHandler) MigrateTickets(c *gin.Context) {
	latest, lerr := strconv.ParseInt(c.Query("latest_ticket_number"), 10, 64)
	count, cerr := strconv.ParseInt(c.Query("count"), 10, 64)
	if lerr != nil || cerr != nil || latest <= 0 || count <= 0 {
		c.JSON(errInvalidMigrationParams.HTTPStatus, errInvalidMigrationParams.ToHTTPError())
		return
	}

	migrated, err := h.usecase.MigrateTickets(c.Request.Context(), latest, count)
	if err != nil {
		respondMigrationError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MigrationResponse{
		MigratedCount:       migrated,
		HighestTicketNumber: latest,
	})
}

func respondMigrationError(c *gin.Context, err error) {
	appErr := mapMigrationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapMigrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMigrationCountTooLarge):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCounterRollback):
		// The counter is never lowered; a rerun against an older range
		// imports fine but cannot move the counter backwards.
		return pkg.NewDomainError("COUNTER_NOT_RAISED", "Ticket counter is already past this batch", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("MIGRATION_FAILED", "Migration failed", err, http.StatusInternalServerError).
			WithSuggestion("Already-imported tickets are kept; rerun with an adjusted range")
	}
}
