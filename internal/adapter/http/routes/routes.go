package routes

import (
	"log"
	"strconv"

	_ "truetickets/docs" // generated swagger spec
	"truetickets/internal/adapter/http/handlers"
	"truetickets/internal/adapter/persistence/repository"
	"truetickets/internal/infrastructure/database"
	"truetickets/internal/infrastructure/storage"
	"truetickets/internal/infrastructure/upstream"
	"truetickets/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ticketRepo := repository.NewTicketDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	opsRepo := repository.NewOperationsDynamoRepository(ddb)
	counterRepo := repository.NewCounterDynamoRepository(ddb)

	blob := storage.NewS3BlobStorage()
	upstreamClient := upstream.NewRepairShoprClient()

	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, customerRepo, counterRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	operationsUseCase := usecase.NewOperationsUseCase(opsRepo, ticketRepo, customerRepo)
	attachmentUseCase := usecase.NewAttachmentUseCase(blob, ticketRepo)
	migrationUseCase := usecase.NewMigrationUseCase(upstreamClient, blob, ticketRepo, counterRepo)

	ticketHandler := handlers.NewTicketHandler(ticketUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	operationsHandler := handlers.NewOperationsHandler(operationsUseCase)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentUseCase)
	migrationHandler := handlers.NewMigrationHandler(migrationUseCase)
	searchHandler := handlers.NewSearchHandler(ticketUseCase, customerUseCase)

	// The gateway forwards requests both with and without its stage
	// prefix, so every route registers under all three roots.
	for _, g := range []*gin.RouterGroup{&router.RouterGroup, router.Group("/Prod"), router.Group("/prod")} {
		addPingRoutes(g)
		addTicketRoutes(g, ticketHandler, attachmentHandler, searchHandler)
		addCustomerRoutes(g, customerHandler)
		addOperationsRoutes(g, operationsHandler)
		addMigrationRoutes(g, migrationHandler)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	router.HandleMethodNotAllowed = true
	router.NoRoute(methodNotAllowed)
	router.NoMethod(methodNotAllowed)
}
