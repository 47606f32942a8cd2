package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jobhunt/backend/internal/apperrors"
	"github.com/jobhunt/backend/internal/logger"
	log "github.com/sirupsen/logrus"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)

	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.CodeValidation:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.CodeForbidden:
		status = http.StatusForbidden
	}

	if appErr.Code == apperrors.CodeInternal {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).Errorf("request failed: %v", err)
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Field:   appErr.Field,
	}})
}

// validationError converts the first struct-validation failure into a
// field-scoped app error.
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		field := strings.ToLower(fieldErrors[0].Field())
		return apperrors.Validation(field, "field is missing or invalid")
	}
	return apperrors.Validation("body", "invalid payload")
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Validation("body", "invalid json")
	}
	return nil
}
