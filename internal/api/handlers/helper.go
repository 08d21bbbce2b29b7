package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/api/middleware"
	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// decodeBody decodes the request body, writing the error response itself
// on failure. Use parseAndValidate when the target carries validate tags.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, apperrors.BadRequestError(err.Error()))
		return err
	}

	return nil
}

// parseAndValidate decodes the request body and runs struct validation,
// writing the error response itself on failure.
func parseAndValidate(w http.ResponseWriter, r *http.Request, dest any, validate *validator.Validate) bool {

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, apperrors.BadRequestError(err.Error()))
		return false
	}

	if err := utils.ValidateStruct(validate, dest); err != nil {

		var validationErrs validator.ValidationErrors

		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, apperrors.BadRequestError(err.Error()))

		return false
	}

	return true
}

// pathID parses a numeric {id} path value, writing the error response
// itself when the value is missing or not a number.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {

	raw := r.PathValue(name)

	if raw == "" {
		response.Error(w, apperrors.BadRequestError(name+" is required"))
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)

	if err != nil {
		response.Error(w, apperrors.BadRequestError(name+" must be a number"))
		return 0, false
	}

	return id, true
}

// sessionEntry fetches the signed-in session, writing the 401 response
// itself when the request is anonymous.
func sessionEntry(w http.ResponseWriter, r *http.Request) (*middleware.SessionEntry, bool) {

	entry, ok := middleware.EntryFromContext(r.Context())

	if !ok || entry.Session == nil {
		response.Error(w, apperrors.UnauthorizedError("Please sign in to continue"))
		return nil, false
	}

	return entry, true
}
