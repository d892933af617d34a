package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func authedRequest(method, url string, body []byte) (*http.Request, *models.User) {
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	user := &models.User{ID: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com"}
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)

	return req.WithContext(ctx), user
}

func setupCartTest() (*mocks.CartRepository, *mocks.ProductRepository, *controllers.CartController) {
	carts := new(mocks.CartRepository)
	products := new(mocks.ProductRepository)

	return carts, products, controllers.NewCartController(carts, products)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAddToCart(t *testing.T) {
	t.Run("adds a single line item with the requested quantity", func(t *testing.T) {
		carts, products, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{
			"productId": productID.Hex(),
			"quantity":  3,
		})
		req, user := authedRequest("POST", "/api/cart/add", payload)
		rec := httptest.NewRecorder()

		product := &models.Product{ID: productID, Title: "Brass Lamp", Price: 500}
		products.On("FindByID", mock.Anything, productID).Return(product, nil).Once()
		carts.On("FindByUserID", mock.Anything, user.ID).Return(nil, mongo.ErrNoDocuments).Once()

		expectedItems := []models.CartItem{{Product: models.RefTo(productID), Quantity: 3}}
		carts.On("UpdateItems", mock.Anything, user.ID, expectedItems).
			Return(&models.Cart{UserID: user.ID, Items: expectedItems}, nil).Once()

		cc.AddToCart(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeEnvelope(t, rec)
		assert.Equal(t, true, body["success"])

		cart := body["cart"].(map[string]interface{})
		items := cart["items"].([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, float64(3), items[0].(map[string]interface{})["quantity"])

		carts.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	t.Run("defaults quantity to one", func(t *testing.T) {
		carts, products, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{"productId": productID.Hex()})
		req, user := authedRequest("POST", "/api/cart/add", payload)
		rec := httptest.NewRecorder()

		products.On("FindByID", mock.Anything, productID).
			Return(&models.Product{ID: productID}, nil).Once()
		carts.On("FindByUserID", mock.Anything, user.ID).
			Return(&models.Cart{UserID: user.ID, Items: []models.CartItem{}}, nil).Once()

		expectedItems := []models.CartItem{{Product: models.RefTo(productID), Quantity: 1}}
		carts.On("UpdateItems", mock.Anything, user.ID, expectedItems).
			Return(&models.Cart{UserID: user.ID, Items: expectedItems}, nil).Once()

		cc.AddToCart(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		carts.AssertExpectations(t)
	})

	t.Run("rejects a product already in the cart without touching it", func(t *testing.T) {
		carts, products, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{"productId": productID.Hex()})
		req, user := authedRequest("POST", "/api/cart/add", payload)
		rec := httptest.NewRecorder()

		products.On("FindByID", mock.Anything, productID).
			Return(&models.Product{ID: productID}, nil).Once()
		carts.On("FindByUserID", mock.Anything, user.ID).
			Return(&models.Cart{
				UserID: user.ID,
				Items:  []models.CartItem{{Product: models.RefTo(productID), Quantity: 2}},
			}, nil).Once()

		cc.AddToCart(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)

		body := decodeEnvelope(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "already in your cart")

		// no write happened
		carts.AssertNotCalled(t, "UpdateItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("detects duplicates even when the stored reference is expanded", func(t *testing.T) {
		carts, products, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{"productId": productID.Hex()})
		req, user := authedRequest("POST", "/api/cart/add", payload)
		rec := httptest.NewRecorder()

		products.On("FindByID", mock.Anything, productID).
			Return(&models.Product{ID: productID}, nil).Once()
		carts.On("FindByUserID", mock.Anything, user.ID).
			Return(&models.Cart{
				UserID: user.ID,
				Items: []models.CartItem{{
					Product:  models.RefExpanded(&models.Product{ID: productID, Title: "Brass Lamp"}),
					Quantity: 1,
				}},
			}, nil).Once()

		cc.AddToCart(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("fails with 404 for an unknown product", func(t *testing.T) {
		carts, products, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{"productId": productID.Hex()})
		req, _ := authedRequest("POST", "/api/cart/add", payload)
		rec := httptest.NewRecorder()

		products.On("FindByID", mock.Anything, productID).
			Return(nil, mongo.ErrNoDocuments).Once()

		cc.AddToCart(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		carts.AssertNotCalled(t, "UpdateItems", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateCartItem(t *testing.T) {
	t.Run("replaces the quantity of the matching line", func(t *testing.T) {
		carts, _, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{
			"productId": productID.Hex(),
			"quantity":  5,
		})
		req, user := authedRequest("PUT", "/api/cart/update", payload)
		rec := httptest.NewRecorder()

		carts.On("FindByUserID", mock.Anything, user.ID).
			Return(&models.Cart{
				UserID: user.ID,
				Items: []models.CartItem{{
					Product:  models.RefExpanded(&models.Product{ID: productID}),
					Quantity: 1,
				}},
			}, nil).Once()

		carts.On("UpdateItems", mock.Anything, user.ID, mock.MatchedBy(func(items []models.CartItem) bool {
			return len(items) == 1 && items[0].Quantity == 5 && items[0].Product.ProductID() == productID
		})).Return(&models.Cart{UserID: user.ID}, nil).Once()

		cc.UpdateCartItem(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		carts.AssertExpectations(t)
	})

	t.Run("rejects a zero quantity without writing", func(t *testing.T) {
		carts, _, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{
			"productId": productID.Hex(),
			"quantity":  0,
		})
		req, _ := authedRequest("PUT", "/api/cart/update", payload)
		rec := httptest.NewRecorder()

		cc.UpdateCartItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		carts.AssertNotCalled(t, "UpdateItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects a negative quantity", func(t *testing.T) {
		carts, _, cc := setupCartTest()
		productID := primitive.NewObjectID()

		payload, _ := json.Marshal(map[string]interface{}{
			"productId": productID.Hex(),
			"quantity":  -2,
		})
		req, _ := authedRequest("PUT", "/api/cart/update", payload)
		rec := httptest.NewRecorder()

		cc.UpdateCartItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		carts.AssertNotCalled(t, "UpdateItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("404s when the item is not in the cart", func(t *testing.T) {
		carts, _, cc := setupCartTest()

		payload, _ := json.Marshal(map[string]interface{}{
			"productId": primitive.NewObjectID().Hex(),
			"quantity":  2,
		})
		req, user := authedRequest("PUT", "/api/cart/update", payload)
		rec := httptest.NewRecorder()

		carts.On("FindByUserID", mock.Anything, user.ID).
			Return(&models.Cart{UserID: user.ID, Items: []models.CartItem{}}, nil).Once()

		cc.UpdateCartItem(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetCart(t *testing.T) {
	t.Run("creates an empty cart on first access", func(t *testing.T) {
		carts, _, cc := setupCartTest()

		req, user := authedRequest("GET", "/api/cart", nil)
		rec := httptest.NewRecorder()

		carts.On("FindByUserID", mock.Anything, user.ID).
			Return(nil, mongo.ErrNoDocuments).Once()
		carts.On("Create", mock.Anything, mock.MatchedBy(func(cart *models.Cart) bool {
			return cart.UserID == user.ID
		})).Return(&models.Cart{UserID: user.ID, Items: []models.CartItem{}}, nil).Once()

		cc.GetCart(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		carts.AssertExpectations(t)
	})

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		_, _, cc := setupCartTest()

		req := httptest.NewRequest("GET", "/api/cart", nil)
		rec := httptest.NewRecorder()

		cc.GetCart(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
