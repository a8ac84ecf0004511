package main

import (
	_ "truetickets/docs"
	"truetickets/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           TrueTickets API
// @version         1.0
// @description     Repair-shop ticketing and point-of-sale backend (DynamoDB).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
