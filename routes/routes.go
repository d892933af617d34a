// routes/routes.go
package routes

import (
	"net/http"

	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/gorilla/mux"
)

// Controllers bundles every resource controller for registration.
type Controllers struct {
	Auth    *controllers.AuthController
	Admin   *controllers.AdminController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Contact *controllers.ContactController
}

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(router *mux.Router, c Controllers, users repository.UserRepository, admins repository.AdminRepository) {
	protect := middleware.Protect(users)
	adminProtect := middleware.AdminProtect(admins)

	api := router.PathPrefix("/api").Subrouter()

	// Auth routes
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", c.Auth.Register).Methods("POST")
	auth.HandleFunc("/login", c.Auth.Login).Methods("POST")

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(protect)
	authProtected.HandleFunc("/me", c.Auth.GetMe).Methods("GET")
	authProtected.HandleFunc("/profile", c.Auth.UpdateProfile).Methods("PUT")

	// Admin routes
	api.HandleFunc("/admin/login", c.Admin.Login).Methods("POST")

	adminOnly := api.PathPrefix("/admin").Subrouter()
	adminOnly.Use(adminProtect)
	adminOnly.HandleFunc("/me", c.Admin.GetMe).Methods("GET")

	// Product routes: admin subpaths registered before the public
	// {id} route so they are not shadowed by it
	productAdmin := api.PathPrefix("/products/admin").Subrouter()
	productAdmin.Use(adminProtect)
	productAdmin.HandleFunc("/all", c.Product.GetProductsForAdmin).Methods("GET")

	api.HandleFunc("/products", c.Product.GetProducts).Methods("GET")
	api.HandleFunc("/products/{id}", c.Product.GetProductByID).Methods("GET")

	productWrite := api.PathPrefix("/products").Subrouter()
	productWrite.Use(adminProtect)
	productWrite.HandleFunc("", c.Product.CreateProduct).Methods("POST")
	productWrite.HandleFunc("/{id}", c.Product.UpdateProduct).Methods("PUT")
	productWrite.HandleFunc("/{id}", c.Product.DeleteProduct).Methods("DELETE")

	// Cart routes
	cart := api.PathPrefix("/cart").Subrouter()
	cart.Use(protect)
	cart.HandleFunc("", c.Cart.GetCart).Methods("GET")
	cart.HandleFunc("/add", c.Cart.AddToCart).Methods("POST")
	cart.HandleFunc("/update", c.Cart.UpdateCartItem).Methods("PUT")
	cart.HandleFunc("/item/{productId}", c.Cart.RemoveFromCart).Methods("DELETE")
	cart.HandleFunc("/clear", c.Cart.ClearCart).Methods("DELETE")

	// Order routes
	orderAdmin := api.PathPrefix("/orders/admin").Subrouter()
	orderAdmin.Use(adminProtect)
	orderAdmin.HandleFunc("/all", c.Order.GetAllOrders).Methods("GET")

	orderStatus := api.PathPrefix("/orders").Subrouter()
	orderStatus.Use(adminProtect)
	orderStatus.HandleFunc("/{id}/status", c.Order.UpdateOrderStatus).Methods("PUT")

	order := api.PathPrefix("/orders").Subrouter()
	order.Use(protect)
	order.HandleFunc("", c.Order.CreateOrder).Methods("POST")
	order.HandleFunc("/my-orders", c.Order.GetMyOrders).Methods("GET")
	order.HandleFunc("/{id}", c.Order.GetOrderByID).Methods("GET")

	// Contact routes
	api.HandleFunc("/contact", c.Contact.CreateContact).Methods("POST")

	contactAdmin := api.PathPrefix("/contact/admin").Subrouter()
	contactAdmin.Use(adminProtect)
	contactAdmin.HandleFunc("", c.Contact.GetAllContacts).Methods("GET")
	contactAdmin.HandleFunc("/{id}", c.Contact.GetContactByID).Methods("GET")
	contactAdmin.HandleFunc("/{id}/read", c.Contact.MarkContactRead).Methods("PUT")
	contactAdmin.HandleFunc("/{id}", c.Contact.DeleteContact).Methods("DELETE")

	// Uploaded files are served statically under /uploads/
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(utils.UploadDir()))))
}
