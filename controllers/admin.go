package controllers

import (
	"net/http"

	apperrors "go-storefront/errors"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AdminController handles back-office authentication.
type AdminController struct {
	Admins   repository.AdminRepository
	Validate *validator.Validate
}

func NewAdminController(admins repository.AdminRepository) *AdminController {
	return &AdminController{
		Admins:   admins,
		Validate: validator.New(),
	}
}

func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if !decodeAndValidate(w, r, &req, ac.Validate) {
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	admin, err := ac.Admins.FindByUsername(ctx, req.Username)
	if err != nil {
		utils.WriteError(w, apperrors.Unauthorized("Invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.WriteError(w, apperrors.Unauthorized("Invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(admin.ID.Hex())
	if err != nil {
		utils.WriteError(w, apperrors.Internal("Failed to generate token").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"admin": map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

func (ac *AdminController) GetMe(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		utils.WriteError(w, apperrors.Unauthorized("Not authorized to access this route"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"admin": map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}
