// Package api implements the BlogSpace remote API accessor: JSON over HTTP
// with bearer-token authorization on the endpoints that require it.
package api

import (
	"context"

	"github.com/dkrasnovs/blogspace/internal/client/models"
)

// Client is the remote API surface the client application depends on.
//
// Methods that mutate posts and CurrentUser require a bearer token, set via
// SetToken or as a side effect of Login. All methods honor context
// cancellation.
type Client interface {
	// SetToken installs the bearer credential used on authenticated calls.
	// An empty string clears it.
	SetToken(token string)

	// Login exchanges credentials for an access token. The token is returned
	// and also installed on the client.
	Login(ctx context.Context, username, password string) (string, error)

	// Signup registers a new account. A rejected registration surfaces the
	// server's detail message via *StatusError.
	Signup(ctx context.Context, username, email, password string) error

	// CurrentUser resolves the identity behind the installed token.
	CurrentUser(ctx context.Context) (*models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, title, content string) error
	UpdatePost(ctx context.Context, id, title, content string) error
	DeletePost(ctx context.Context, id string) error
}
