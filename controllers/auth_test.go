package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/controllers"
	"go-storefront/models"
	"go-storefront/repository/mocks"
	"go-storefront/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.JwtKey = []byte("test-secret")
}

func jsonRequest(method, url string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func TestRegister(t *testing.T) {
	t.Run("creates the user and returns a usable token", func(t *testing.T) {
		users := new(mocks.UserRepository)
		ac := controllers.NewAuthController(users)

		users.On("FindByEmail", mock.Anything, "asha@example.com").
			Return(nil, mongo.ErrNoDocuments).Once()

		userID := primitive.NewObjectID()
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			// the stored password is a hash, never the plaintext
			return u.Email == "asha@example.com" && u.Password != "hunter22hunter22"
		})).Return(&models.User{ID: userID, Name: "Asha", Email: "asha@example.com"}, nil).Once()

		rec := httptest.NewRecorder()
		ac.Register(rec, jsonRequest("POST", "/api/auth/register", map[string]string{
			"name":     "Asha",
			"email":    "asha@example.com",
			"password": "hunter22hunter22",
		}))

		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeEnvelope(t, rec)
		assert.Equal(t, true, body["success"])

		claims, err := utils.ParseToken(body["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, userID.Hex(), claims.ID)

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "asha@example.com", user["email"])
		assert.NotContains(t, user, "password")

		users.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		users := new(mocks.UserRepository)
		ac := controllers.NewAuthController(users)

		users.On("FindByEmail", mock.Anything, "asha@example.com").
			Return(&models.User{Email: "asha@example.com"}, nil).Once()

		rec := httptest.NewRecorder()
		ac.Register(rec, jsonRequest("POST", "/api/auth/register", map[string]string{
			"name":     "Asha",
			"email":    "asha@example.com",
			"password": "hunter22hunter22",
		}))

		assert.Equal(t, http.StatusConflict, rec.Code)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		ac := controllers.NewAuthController(users)

		rec := httptest.NewRecorder()
		ac.Register(rec, jsonRequest("POST", "/api/auth/register", map[string]string{
			"name":     "Asha",
			"email":    "asha@example.com",
			"password": "short",
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22hunter22"), bcrypt.MinCost)
	stored := &models.User{ID: primitive.NewObjectID(), Email: "asha@example.com", Password: string(hash)}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		users := new(mocks.UserRepository)
		ac := controllers.NewAuthController(users)

		users.On("FindByEmail", mock.Anything, "asha@example.com").Return(stored, nil).Once()

		rec := httptest.NewRecorder()
		ac.Login(rec, jsonRequest("POST", "/api/auth/login", map[string]string{
			"email":    "asha@example.com",
			"password": "hunter22hunter22",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeEnvelope(t, rec)
		claims, err := utils.ParseToken(body["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, stored.ID.Hex(), claims.ID)
	})

	t.Run("responds identically for a wrong password and an unknown email", func(t *testing.T) {
		users := new(mocks.UserRepository)
		ac := controllers.NewAuthController(users)

		users.On("FindByEmail", mock.Anything, "asha@example.com").Return(stored, nil).Once()
		users.On("FindByEmail", mock.Anything, "nobody@example.com").
			Return(nil, mongo.ErrNoDocuments).Once()

		wrongPass := httptest.NewRecorder()
		ac.Login(wrongPass, jsonRequest("POST", "/api/auth/login", map[string]string{
			"email":    "asha@example.com",
			"password": "not-the-password",
		}))

		unknownEmail := httptest.NewRecorder()
		ac.Login(unknownEmail, jsonRequest("POST", "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "hunter22hunter22",
		}))

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("patches only the fields present", func(t *testing.T) {
		users := new(mocks.UserRepository)
		ac := controllers.NewAuthController(users)

		req, user := authedRequest("PUT", "/api/auth/profile", mustJSON(map[string]string{
			"location": "Pokhara",
		}))

		users.On("Update", mock.Anything, user.ID, bson.M{"location": "Pokhara"}).
			Return(&models.User{ID: user.ID, Name: user.Name, Location: "Pokhara"}, nil).Once()

		rec := httptest.NewRecorder()
		ac.UpdateProfile(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		users.AssertExpectations(t)
	})
}

func mustJSON(v interface{}) []byte {
	b, _ := json.Marshal(v)
	return b
}
