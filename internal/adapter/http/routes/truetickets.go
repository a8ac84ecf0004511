package routes

import (
	"net/http"

	"truetickets/internal/adapter/http/handlers"
	"truetickets/pkg"

	"github.com/gin-gonic/gin"
)

var errUnknownRoute = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Unknown route or method", http.StatusMethodNotAllowed)

func methodNotAllowed(c *gin.Context) {
	c.JSON(errUnknownRoute.HTTPStatus, errUnknownRoute.ToHTTPError())
}

func addTicketRoutes(rg *gin.RouterGroup, th *handlers.TicketHandler, ah *handlers.AttachmentHandler, sh *handlers.SearchHandler) {
	rg.GET("/tickets", th.GetTickets)
	rg.POST("/tickets", th.CreateTicket)
	rg.PUT("/tickets", th.UpdateTicket)
	rg.POST("/tickets/comment", th.AddComment)

	rg.GET("/query_all", sh.QueryAll)
	rg.POST("/upload-attachment", ah.UploadAttachment)
}

func addCustomerRoutes(rg *gin.RouterGroup, ch *handlers.CustomerHandler) {
	rg.GET("/customers", ch.GetCustomers)
	rg.POST("/customers", ch.CreateCustomer)
	rg.PUT("/customers", ch.UpdateCustomer)
}

func addOperationsRoutes(rg *gin.RouterGroup, oh *handlers.OperationsHandler) {
	rg.POST("/clock", oh.Clock)
	rg.GET("/clock-status", oh.ClockStatus)

	rg.POST("/take-payment", oh.TakePayment)
	rg.POST("/refund-payment", oh.RefundPayment)
	rg.POST("/dont-fix", oh.DontFix)

	rg.GET("/store-config", oh.GetStoreConfig)

	manager := rg.Group("", requireManager())
	manager.GET("/clock-logs", oh.GetClockLogs)
	manager.PUT("/clock-logs", oh.UpdateClockLogs)
	manager.PUT("/wage", oh.UpdateWage)
	manager.GET("/revenue", oh.Revenue)
	manager.GET("/purchases", oh.GetPurchases)
	manager.PUT("/purchases", oh.PutPurchases)
	manager.PUT("/store-config", oh.PutStoreConfig)
}

func addMigrationRoutes(rg *gin.RouterGroup, mh *handlers.MigrationHandler) {
	manager := rg.Group("", requireManager())
	manager.GET("/migrate-tickets", mh.MigrateTickets)
}
