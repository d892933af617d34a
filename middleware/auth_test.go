package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository/mocks"
	"go-storefront/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	utils.JwtKey = []byte("test-secret")
}

func protectedHandler(t *testing.T, sawUser **models.User) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		require.True(t, ok)
		*sawUser = user
		w.WriteHeader(http.StatusOK)
	})
}

func TestProtect(t *testing.T) {
	t.Run("attaches the user named by a valid token", func(t *testing.T) {
		users := new(mocks.UserRepository)
		userID := primitive.NewObjectID()
		users.On("FindByID", mock.Anything, userID).
			Return(&models.User{ID: userID, Email: "asha@example.com"}, nil).Once()

		token, err := utils.GenerateToken(userID.Hex())
		require.NoError(t, err)

		var sawUser *models.User
		handler := middleware.Protect(users)(protectedHandler(t, &sawUser))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, sawUser)
		assert.Equal(t, userID, sawUser.ID)
	})

	t.Run("rejects a missing Authorization header", func(t *testing.T) {
		users := new(mocks.UserRepository)

		var sawUser *models.User
		handler := middleware.Protect(users)(protectedHandler(t, &sawUser))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, sawUser)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		users := new(mocks.UserRepository)

		var sawUser *models.User
		handler := middleware.Protect(users)(protectedHandler(t, &sawUser))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Token abc123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		users := new(mocks.UserRepository)

		var sawUser *models.User
		handler := middleware.Protect(users)(protectedHandler(t, &sawUser))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token for a deleted user", func(t *testing.T) {
		users := new(mocks.UserRepository)
		userID := primitive.NewObjectID()
		users.On("FindByID", mock.Anything, userID).
			Return(nil, mongo.ErrNoDocuments).Once()

		token, err := utils.GenerateToken(userID.Hex())
		require.NoError(t, err)

		var sawUser *models.User
		handler := middleware.Protect(users)(protectedHandler(t, &sawUser))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, sawUser)
	})
}

func TestAdminProtect(t *testing.T) {
	t.Run("a user token does not grant admin access", func(t *testing.T) {
		admins := new(mocks.AdminRepository)
		userID := primitive.NewObjectID()

		// no admin document exists for this id
		admins.On("FindByID", mock.Anything, userID).
			Return(nil, mongo.ErrNoDocuments).Once()

		token, err := utils.GenerateToken(userID.Hex())
		require.NoError(t, err)

		called := false
		handler := middleware.AdminProtect(admins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("attaches the admin named by a valid token", func(t *testing.T) {
		admins := new(mocks.AdminRepository)
		adminID := primitive.NewObjectID()
		admins.On("FindByID", mock.Anything, adminID).
			Return(&models.Admin{ID: adminID, Username: "admin"}, nil).Once()

		token, err := utils.GenerateToken(adminID.Hex())
		require.NoError(t, err)

		var sawAdmin *models.Admin
		handler := middleware.AdminProtect(admins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := middleware.AdminFromContext(r.Context())
			require.True(t, ok)
			sawAdmin = admin
		}))

		req := httptest.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.NotNil(t, sawAdmin)
		assert.Equal(t, "admin", sawAdmin.Username)
	})
}
