package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkrasnovs/blogspace/internal/common"
	"github.com/dkrasnovs/blogspace/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

// Create inserts a new account. The uniqueness check and the insert run in
// one transaction so two concurrent signups for the same name cannot both
// pass the check.
func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		var exists bool
		query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
		if err := tx.QueryRowContext(ctx, query, user.Username).Scan(&exists); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		user.ID = uuid.NewString()
		query =
			`INSERT INTO users (id, username, email, password_hash)
			 VALUES ($1, $2, $3, $4)
			 RETURNING created_at
			 `
		if err := tx.QueryRowContext(ctx, query,
			user.ID, user.Username, user.Email, user.PasswordHash).Scan(&user.CreatedAt); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at FROM users
		 WHERE username = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at FROM users
		 WHERE id = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}
