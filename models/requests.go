package models

// Request DTOs decoded and validated at the controller boundary.

type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty"`
	Location    string `json:"location" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest uses pointers so absent fields are left
// untouched by the patch.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
}

type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" validate:"min=0"`
	Stock       int     `json:"stock" validate:"min=0"`
	Category    string  `json:"category"`
	Featured    bool    `json:"featured"`
}

type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Stock       *int     `json:"stock" validate:"omitempty,min=0"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
	Featured    *bool    `json:"featured"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type OrderItemRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

type BillingDetailsRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Province      string `json:"province" validate:"required"`
	District      string `json:"district" validate:"required"`
	City          string `json:"city" validate:"required"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required"`
	Notes         string `json:"notes"`
}

type CreateOrderRequest struct {
	Items          []OrderItemRequest    `json:"items" validate:"required,min=1,dive"`
	BillingDetails BillingDetailsRequest `json:"billingDetails" validate:"required"`
	PaymentMethod  string                `json:"paymentMethod"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateContactRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Subject     string `json:"subject"`
	Message     string `json:"message" validate:"required"`
}
