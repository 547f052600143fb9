package posts

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, post *Post) (*Post, error)

	// Update and Delete are scoped to the owning user: a row that exists but
	// belongs to someone else surfaces as common.ErrorForbidden, a missing
	// row as common.ErrorNotFound.
	Update(ctx context.Context, id, userID, title, content string) error
	Delete(ctx context.Context, id, userID string) error
}
