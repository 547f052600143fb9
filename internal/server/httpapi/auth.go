package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkrasnovs/blogspace/internal/common"
	"github.com/dkrasnovs/blogspace/internal/server/users"
)

// UserService defines the account operations required by the HTTP handlers.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*users.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByID(ctx context.Context, id string) (*users.User, error)
}

// AuthHandler handles registration, the token endpoint, and identity
// resolution.
type AuthHandler struct {
	UserService UserService
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access string `json:"access"`
}

type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Signup registers a new account. A taken username is reported with 409 and
// a detail message the client shows verbatim.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Username == "" || req.Password == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{Username: user.Username, Email: user.Email})
}

// Token exchanges credentials for an access token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Username == "" || req.Password == "" {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Access: token})
}

// CurrentUser resolves the identity behind the bearer token installed by
// BearerAuth.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Username: user.Username, Email: user.Email})
}
