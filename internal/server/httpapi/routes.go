package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter constructs the HTTP handler serving the BlogSpace API.
//
// Routes (all under /api):
//
//	POST /signup/            → AuthHandler.Signup
//	POST /token/             → AuthHandler.Token
//	GET  /user/              → AuthHandler.CurrentUser   (bearer)
//	GET  /posts/             → PostHandler.List
//	GET  /posts/{id}         → PostHandler.Get
//	POST /posts/create/      → PostHandler.Create        (bearer)
//	PUT  /posts/{id}/edit/   → PostHandler.Update        (bearer)
//	DELETE /posts/{id}/delete/ → PostHandler.Delete      (bearer)
//
// Reads are public; everything that writes, and identity resolution, sits
// behind BearerAuth.
func NewRouter(
	authHandler *AuthHandler,
	postHandler *PostHandler,
	secretKey []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/signup/", authHandler.Signup)
		r.Post("/token/", authHandler.Token)
		r.Get("/posts/", postHandler.List)
		r.Get("/posts/{id}", postHandler.Get)

		// Protected group: requires a valid access token
		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(secretKey))

			r.Get("/user/", authHandler.CurrentUser)
			r.Post("/posts/create/", postHandler.Create)
			r.Put("/posts/{id}/edit/", postHandler.Update)
			r.Delete("/posts/{id}/delete/", postHandler.Delete)
		})
	})

	return r
}
