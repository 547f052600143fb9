package db

import (
	"context"
	"database/sql"

	"github.com/dkrasnovs/blogspace/internal/server/posts"
	"github.com/dkrasnovs/blogspace/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Posts() posts.Repository
}
