package main

import (
	_ "ssx_solar/docs"
	"ssx_solar/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SSX Solar Field-Service API
// @version         1.0
// @description     Service-request lifecycle API for solar/gas water-heater installations (clients, installers, admins) backed by DynamoDB with an in-memory mock backend for offline development.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
