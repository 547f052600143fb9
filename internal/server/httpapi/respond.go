// Package httpapi exposes the BlogSpace REST surface: JSON handlers, the
// bearer-token middleware, and the chi router wiring them under /api.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkrasnovs/blogspace/internal/common"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the shared sentinel errors to HTTP statuses. Anything
// unrecognized is reported as an internal error without leaking detail.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid input."})
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Invalid credentials."})
	case errors.Is(err, common.ErrorForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Detail: "You do not have permission to perform this action."})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not found."})
	case errors.Is(err, common.ErrorAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Detail: "A user with that username already exists."})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal server error."})
	}
}
