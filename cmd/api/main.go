package main

import (
	"log"

	_ "studio_pricing/docs"
	"studio_pricing/internal/adapter/http/routes"
	"studio_pricing/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Studio Pricing API
// @version         1.0
// @description     Pricing estimator and quote back-office backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	routes.Run()
}
