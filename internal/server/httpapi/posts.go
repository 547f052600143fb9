package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dkrasnovs/blogspace/internal/common"
	"github.com/dkrasnovs/blogspace/internal/server/posts"
)

// PostService defines the post operations required by the HTTP handlers.
type PostService interface {
	List(ctx context.Context) ([]posts.Post, error)
	GetByID(ctx context.Context, id string) (*posts.Post, error)
	Create(ctx context.Context, userID, title, content string) (*posts.Post, error)
	Update(ctx context.Context, id, userID, title, content string) error
	Delete(ctx context.Context, id, userID string) error
}

// PostHandler handles the public listing and detail endpoints and the
// authenticated write endpoints.
type PostHandler struct {
	PostService PostService
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

func toPostResponse(p *posts.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		Username:  p.Username,
	}
}

// List serves every published post, newest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.PostService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]postResponse, 0, len(result))
	for i := range result {
		resp = append(resp, toPostResponse(&result[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	post, err := h.PostService.Create(r.Context(), GetUserIDFromContext(r.Context()), req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	err := h.PostService.Update(r.Context(), chi.URLParam(r, "id"), GetUserIDFromContext(r.Context()), req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.PostService.Delete(r.Context(), chi.URLParam(r, "id"), GetUserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
