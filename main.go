// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"go-storefront/controllers"
	"go-storefront/repository"
	"go-storefront/routes"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	db := utils.Database(client)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Controllers
	c := routes.Controllers{
		Auth:    controllers.NewAuthController(userRepo),
		Admin:   controllers.NewAdminController(adminRepo),
		Product: controllers.NewProductController(productRepo),
		Cart:    controllers.NewCartController(cartRepo, productRepo),
		Order:   controllers.NewOrderController(orderRepo, cartRepo, productRepo, emailService),
		Contact: controllers.NewContactController(contactRepo, emailService),
	}

	// Set up the router and register routes
	router := mux.NewRouter()
	routes.RegisterRoutes(router, c, userRepo, adminRepo)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
