package main

import (
	_ "kanalsepet/docs"
	"kanalsepet/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Kanal Sepet API
// @version         1.0
// @description     Order sheet and add-to-cart service for the duct part configurator.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
