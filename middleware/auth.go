package middleware

import (
	"context"
	"net/http"
	"strings"

	apperrors "go-storefront/errors"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Key type for context
type contextKey string

const (
	UserContextKey  = contextKey("user")
	AdminContextKey = contextKey("admin")
)

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

// Protect verifies the bearer token, loads the user it names and
// attaches it to the request context. A token whose user no longer
// exists is rejected the same as an invalid one.
func Protect(users repository.UserRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
				return
			}

			claims, err := utils.ParseToken(tokenStr)
			if err != nil {
				utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
				return
			}

			userID, err := primitive.ObjectIDFromHex(claims.ID)
			if err != nil {
				utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				utils.WriteError(w, apperrors.Unauthorized("User not found"))
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminProtect is the admin variant of Protect, resolving the token
// against the admins collection.
func AdminProtect(admins repository.AdminRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
				return
			}

			claims, err := utils.ParseToken(tokenStr)
			if err != nil {
				utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
				return
			}

			adminID, err := primitive.ObjectIDFromHex(claims.ID)
			if err != nil {
				utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
				return
			}

			admin, err := admins.FindByID(r.Context(), adminID)
			if err != nil {
				utils.WriteError(w, apperrors.Unauthorized("Admin not found"))
				return
			}

			ctx := context.WithValue(r.Context(), AdminContextKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user set by Protect.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)

	return user, ok
}

// AdminFromContext extracts the authenticated admin set by AdminProtect.
func AdminFromContext(ctx context.Context) (*models.Admin, bool) {
	admin, ok := ctx.Value(AdminContextKey).(*models.Admin)

	return admin, ok
}
