package handlers

import (
	"net/http"

	response "truetickets/internal/adapter/http/dto/response"
	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase"
	"truetickets/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

var errMissingQueryParam = pkg.NewDomainErrorSimple("MISSING_QUERY", "query is required", http.StatusBadRequest)

// SearchHandler serves the combined search box: one query fanned out
// to ticket subjects and customer names in parallel.
type SearchHandler struct {
	tickets   usecase.ITicketUseCase
	customers usecase.ICustomerUseCase
}

func NewSearchHandler(tickets usecase.ITicketUseCase, customers usecase.ICustomerUseCase) *SearchHandler {
	return &SearchHandler{tickets: tickets, customers: customers}
}

func (h *SearchHandler) QueryAll(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(errMissingQueryParam.HTTPStatus, errMissingQueryParam.ToHTTPError())
		return
	}

	var (
		tickets   []entities.Ticket
		customers []entities.Customer
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		tickets, err = h.tickets.SearchBySubject(ctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = h.customers.SearchByName(ctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.QueryAllResponse{
		Tickets:   response.FromTickets(tickets),
		Customers: response.FromCustomers(customers),
	})
}
