package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/metrics"
)

type ErrorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

type ResultResponse struct {
	Result bool `json:"result"`
}

// WriteError answers every failure with 400. Errors outside the taxonomy are
// reported under their Go type name.
func WriteError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Result: false}

	if appErr, ok := apperror.As(err); ok {
		resp.ErrorType = string(appErr.Kind)
		resp.ErrorMessage = appErr.Message
	} else {
		resp.ErrorType = strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
		resp.ErrorMessage = err.Error()
		logrus.WithError(err).WithField("error_type", resp.ErrorType).Error("unexpected error")
	}

	metrics.ErrorsByKind.WithLabelValues(resp.ErrorType).Inc()
	writeSuccess(w, resp, http.StatusBadRequest)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Warn("failed to encode response")
	}
}

// validationError flattens validator output into one InvalidInputError.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}

	return apperror.Wrap(apperror.KindInvalidInput, strings.Join(messages, "; "), err)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	return nil
}
