package main

import (
	_ "job_engagement/docs"
	"job_engagement/internal/adapter/http/routes"
	"job_engagement/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Job Engagement API
// @version         1.0
// @description     Job lifecycle and staged payments between customers and companies, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.Load())
}
