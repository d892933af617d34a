package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "go-storefront/errors"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles user registration, login and profile.
type AuthController struct {
	Users    repository.UserRepository
	Validate *validator.Validate
}

func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{
		Users:    users,
		Validate: validator.New(),
	}
}

// Register creates a user account and returns a fresh token.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeAndValidate(w, r, &req, ac.Validate) {
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	_, err := ac.Users.FindByEmail(ctx, req.Email)
	if err == nil {
		utils.WriteError(w, apperrors.Conflict("User already exists with this email"))
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.WriteError(w, apperrors.Database("Failed to check existing user").WithError(err))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteError(w, apperrors.Internal("Failed to hash password").WithError(err))
		return
	}

	user, err := ac.Users.Create(ctx, &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashedPassword),
		DateOfBirth: req.DateOfBirth,
		Location:    req.Location,
	})
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to create user").WithError(err))
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.WriteError(w, apperrors.Internal("Failed to generate token").WithError(err))
		return
	}

	slog.Info("user registered", "userId", user.ID.Hex())
	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}

// Login verifies credentials and issues a token.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeAndValidate(w, r, &req, ac.Validate) {
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	user, err := ac.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		utils.WriteError(w, apperrors.Unauthorized("Invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.WriteError(w, apperrors.Unauthorized("Invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.WriteError(w, apperrors.Internal("Failed to generate token").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}

// GetMe returns the authenticated user's profile.
func (ac *AuthController) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"user": user.Public(),
	})
}

// UpdateProfile applies a partial profile update. The request may be
// JSON, or multipart when an avatar file is attached; either way only
// the fields present are patched.
func (ac *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	patch := bson.M{}

	if isMultipart(r) {
		path, err := utils.SaveUploadedFile(r, "avatar", "avatars", 2<<20)
		if err != nil {
			utils.WriteError(w, err)
			return
		}

		if path != "" {
			patch["avatar"] = path
		} else if v := r.FormValue("avatar"); v != "" {
			// external URL or existing path, passed through unchanged
			patch["avatar"] = v
		}

		for _, field := range []string{"name", "email", "location", "phone"} {
			if v := r.FormValue(field); v != "" {
				patch[field] = v
			}
		}
	} else {
		var req models.UpdateProfileRequest
		if !decodeAndValidate(w, r, &req, ac.Validate) {
			return
		}

		if req.Name != nil {
			patch["name"] = *req.Name
		}
		if req.Email != nil {
			patch["email"] = *req.Email
		}
		if req.Location != nil {
			patch["location"] = *req.Location
		}
		if req.Phone != nil {
			patch["phone"] = *req.Phone
		}
		if req.Avatar != nil {
			patch["avatar"] = *req.Avatar
		}
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	updated, err := ac.Users.Update(ctx, user.ID, patch)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to update profile").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"user": updated.Public(),
	})
}
