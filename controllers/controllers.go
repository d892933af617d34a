package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	apperrors "go-storefront/errors"
	"go-storefront/utils"

	"github.com/go-playground/validator/v10"
)

const dbTimeout = 10 * time.Second

// dbContext bounds database work for one handler invocation.
func dbContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), dbTimeout)
}

// decodeAndValidate parses the JSON body into dest and runs the
// validator; on failure it writes the error response and returns
// false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dest interface{}, validate *validator.Validate) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid request body"))
		return false
	}

	if err := validate.Struct(dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.WriteValidationError(w, verrs)
		} else {
			utils.WriteError(w, apperrors.InvalidArgument("Invalid request body"))
		}

		return false
	}

	return true
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseFormBool(v string) bool {
	return v == "true" || v == "1"
}
