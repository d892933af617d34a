package controllers

import (
	"errors"
	"net/http"

	apperrors "go-storefront/errors"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartController handles the authenticated user's shopping cart. Every
// mutation rewrites the whole item list; carts are small and single-
// owner so the read-modify-write shape is acceptable here.
type CartController struct {
	Carts    repository.CartRepository
	Products repository.ProductRepository
	Validate *validator.Validate
}

func NewCartController(carts repository.CartRepository, products repository.ProductRepository) *CartController {
	return &CartController{
		Carts:    carts,
		Products: products,
		Validate: validator.New(),
	}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	cart, err := cc.Carts.FindByUserID(ctx, user.ID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		cart, err = cc.Carts.Create(ctx, &models.Cart{UserID: user.ID})
	}
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to fetch cart").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart": cart,
	})
}

// AddToCart appends a new line item. A product already present in the
// cart is rejected: one line per product, quantities change through
// the update endpoint.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	var req models.AddToCartRequest
	if !decodeAndValidate(w, r, &req, cc.Validate) {
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid product ID"))
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	if _, err := cc.Products.FindByID(ctx, productID); err != nil {
		utils.WriteError(w, apperrors.NotFound("Product not found"))
		return
	}

	newItem := models.CartItem{Product: models.RefTo(productID), Quantity: quantity}

	cart, err := cc.Carts.FindByUserID(ctx, user.ID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		cart, err = cc.Carts.UpdateItems(ctx, user.ID, []models.CartItem{newItem})
		if err != nil {
			utils.WriteError(w, apperrors.Database("Failed to create cart").WithError(err))
			return
		}

		utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"cart": cart})

		return
	}
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to fetch cart").WithError(err))
		return
	}

	if cart.FindItem(productID) != -1 {
		utils.WriteError(w, apperrors.Conflict("This product is already in your cart"))
		return
	}

	cart, err = cc.Carts.UpdateItems(ctx, user.ID, append(cart.Items, newItem))
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to update cart").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart": cart,
	})
}

// UpdateCartItem replaces the quantity of one line item.
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	var req models.UpdateCartItemRequest
	if !decodeAndValidate(w, r, &req, cc.Validate) {
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid product ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	cart, err := cc.Carts.FindByUserID(ctx, user.ID)
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Cart not found"))
		return
	}

	idx := cart.FindItem(productID)
	if idx == -1 {
		utils.WriteError(w, apperrors.NotFound("Item not found in cart"))
		return
	}

	cart.Items[idx].Quantity = req.Quantity

	cart, err = cc.Carts.UpdateItems(ctx, user.ID, cart.Items)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to update cart").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart": cart,
	})
}

// RemoveFromCart drops the line item referencing the product in the
// path; removing an absent product is a no-op rewrite.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	productID, err := primitive.ObjectIDFromHex(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid product ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	cart, err := cc.Carts.FindByUserID(ctx, user.ID)
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Cart not found"))
		return
	}

	remaining := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product.ProductID() != productID {
			remaining = append(remaining, item)
		}
	}

	cart, err = cc.Carts.UpdateItems(ctx, user.ID, remaining)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to update cart").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart": cart,
	})
}

// ClearCart empties the item list; the cart document itself survives.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	cart, err := cc.Carts.Clear(ctx, user.ID)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to clear cart").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart": cart,
	})
}
