package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "go-storefront/errors"

	"github.com/go-playground/validator/v10"
)

// WriteJSON writes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes the {success:true, ...payload} envelope with the
// payload keys merged at the top level.
func WriteSuccess(w http.ResponseWriter, statusCode int, payload map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}

	WriteJSON(w, statusCode, body)
}

// WriteError translates err into the {success:false, message} envelope.
// Unrecognized errors become a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Server error"

	if appErr, ok := apperrors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		message = appErr.Message
	}

	WriteJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// WriteValidationError flattens validator failures into one message,
// the way the request validators report them.
func WriteValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	var msg string

	for i, err := range errs {
		if i > 0 {
			msg += ", "
		}

		switch err.Tag() {
		case "required":
			msg += fmt.Sprintf("%s is required", err.Field())
		case "email":
			msg += fmt.Sprintf("%s must be a valid email", err.Field())
		case "min":
			msg += fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		default:
			msg += fmt.Sprintf("%s is invalid", err.Field())
		}
	}

	WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": msg,
	})
}
