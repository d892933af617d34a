// Seeds the initial admin account. Safe to run repeatedly: an existing
// admin with the same username is left untouched.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	admins := repository.NewAdminRepository(utils.Database(client))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := admins.FindByUsername(ctx, username); err == nil {
		log.Println("Admin user already exists")
		return
	} else if err != mongo.ErrNoDocuments {
		log.Fatalf("Failed to check existing admin: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin, err := admins.Create(ctx, &models.Admin{
		Username: username,
		Password: string(hashed),
		Email:    email,
	})
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin user created: %s (%s)", admin.Username, admin.Email)
}
