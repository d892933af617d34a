package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	apperrors "go-storefront/errors"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultPaymentMethod = "cod"

// OrderController handles checkout and order management.
type OrderController struct {
	Orders   repository.OrderRepository
	Carts    repository.CartRepository
	Products repository.ProductRepository
	Email    *utils.EmailService
	Validate *validator.Validate
}

func NewOrderController(orders repository.OrderRepository, carts repository.CartRepository, products repository.ProductRepository, email *utils.EmailService) *OrderController {
	return &OrderController{
		Orders:   orders,
		Carts:    carts,
		Products: products,
		Email:    email,
		Validate: validator.New(),
	}
}

// CreateOrder turns the submitted items into an immutable order.
// Prices are captured from the live products at this moment and never
// recomputed afterwards. The user's cart is cleared best-effort once
// the order exists: a failed clear is logged, not surfaced, because
// the order is already durable.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	var req models.CreateOrderRequest
	if !decodeAndValidate(w, r, &req, oc.Validate) {
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	var totalAmount float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			utils.WriteError(w, apperrors.InvalidArgument(fmt.Sprintf("Invalid product id %s", item.Product)))
			return
		}

		product, err := oc.Products.FindByID(ctx, productID)
		if err != nil {
			utils.WriteError(w, apperrors.NotFound(fmt.Sprintf("Product %s not found", item.Product)))
			return
		}

		totalAmount += product.Price * float64(item.Quantity)

		orderItems = append(orderItems, models.OrderItem{
			Product:  models.RefTo(product.ID),
			Quantity: item.Quantity,
			Price:    product.Price,
		})
	}

	// free shipping policy
	shippingCost := 0.0

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	order, err := oc.Orders.Create(ctx, &models.Order{
		UserID: user.ID,
		Items:  orderItems,
		BillingDetails: models.BillingDetails{
			FirstName:     req.BillingDetails.FirstName,
			LastName:      req.BillingDetails.LastName,
			Email:         req.BillingDetails.Email,
			Phone:         req.BillingDetails.Phone,
			Province:      req.BillingDetails.Province,
			District:      req.BillingDetails.District,
			City:          req.BillingDetails.City,
			StreetAddress: req.BillingDetails.StreetAddress,
			ZipCode:       req.BillingDetails.ZipCode,
			Notes:         req.BillingDetails.Notes,
		},
		TotalAmount:   totalAmount + shippingCost,
		ShippingCost:  shippingCost,
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusPending,
	})
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to create order").WithError(err))
		return
	}

	if _, err := oc.Carts.Clear(ctx, user.ID); err != nil {
		slog.Error("failed to clear cart after order creation",
			"userId", user.ID.Hex(), "orderId", order.ID.Hex(), "error", err)
	}

	go func(email string, order *models.Order) {
		if err := oc.Email.SendOrderConfirmationEmail(email, order); err != nil {
			slog.Error("failed to send order confirmation", "orderId", order.ID.Hex(), "error", err)
		}
	}(order.BillingDetails.Email, order)

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"order": order,
	})
}

// GetMyOrders lists the authenticated user's orders, newest first.
func (oc *OrderController) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	orders, err := oc.Orders.FindByUserID(ctx, user.ID)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to retrieve orders").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"count":  len(orders),
		"orders": orders,
	})
}

// GetOrderByID returns one order, owner only.
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid order ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	order, err := oc.Orders.FindByID(ctx, orderID)
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Order not found"))
		return
	}

	if order.UserID != user.ID {
		utils.WriteError(w, apperrors.Forbidden("Not authorized to access this order"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"order": order,
	})
}

// GetAllOrders lists every order for the back office.
func (oc *OrderController) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	orders, err := oc.Orders.FindAll(ctx)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to retrieve orders").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"count":  len(orders),
		"orders": orders,
	})
}

// UpdateOrderStatus moves an order along the fulfilment state machine.
// The requested status must be a recognized value and a legal
// transition from the current one.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if !decodeAndValidate(w, r, &req, oc.Validate) {
		return
	}

	status, ok := models.ParseOrderStatus(req.Status)
	if !ok {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid status"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	order, err := oc.Orders.FindByID(ctx, orderID)
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Order not found"))
		return
	}

	if !order.Status.CanTransitionTo(status) {
		utils.WriteError(w, apperrors.InvalidArgument(
			fmt.Sprintf("Cannot change status from %s to %s", order.Status, status)))
		return
	}

	updated, err := oc.Orders.Update(ctx, orderID, bson.M{"status": status})
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to update order status").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"order": updated,
	})
}
