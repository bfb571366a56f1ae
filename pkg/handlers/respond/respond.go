// Package respond writes JSON responses and maps service errors to HTTP
// statuses for every handler package.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/savings"
)

var statuses = map[string]int{
	"validation_error":       http.StatusBadRequest,
	"not_found":              http.StatusNotFound,
	"forbidden":              http.StatusForbidden,
	"insufficient_funds":     http.StatusUnprocessableEntity,
	"insufficient_savings":   http.StatusUnprocessableEntity,
	"contribution_too_large": http.StatusUnprocessableEntity,
	"not_eligible":           http.StatusUnprocessableEntity,
	"already_redeemed":       http.StatusConflict,
	"state_conflict":         http.StatusConflict,
	"already_recorded":       http.StatusConflict,
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// NoContent writes an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, api.ErrorResponse{Error: api.ErrorDetail{Code: code, Message: message}})
}

// Error renders err. Business rule failures keep their message; anything
// else is logged and reported as an opaque internal error.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code := savings.Code(err)
	status, ok := statuses[code]
	if !ok {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, code, "internal error")
		return
	}
	writeError(w, status, code, err.Error())
}

// BadRequest reports malformed input that never reached the service.
func BadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "validation_error", message)
}

// ParamError is the error handler for path and query parameter binding.
func ParamError(w http.ResponseWriter, r *http.Request, err error) {
	BadRequest(w, err.Error())
}

// Decode reads a JSON request body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	empty, err := decode(r, v)
	if err != nil {
		return err
	}
	if empty {
		return errors.New("request body is empty")
	}
	return nil
}

// DecodeOptional is Decode for endpoints where the body may be omitted.
// An empty body, chunked or not, leaves v untouched.
func DecodeOptional(r *http.Request, v any) error {
	_, err := decode(r, v)
	return err
}

func decode(r *http.Request, v any) (empty bool, err error) {
	if r.Body == nil {
		return true, nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, fmt.Errorf("invalid request body: %w", err)
	}
	return false, nil
}
