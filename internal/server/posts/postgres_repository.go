package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkrasnovs/blogspace/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Post, error) {
	query :=
		`SELECT p.id, p.user_id, p.title, p.content, p.created_at, u.username
		 FROM posts p JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.Username); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Post, error) {
	query :=
		`SELECT p.id, p.user_id, p.title, p.content, p.created_at, u.username
		 FROM posts p JOIN users u ON u.id = p.user_id
		 WHERE p.id = $1
		 `

	p := &Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.Username)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *Post) (*Post, error) {

	post.ID = uuid.NewString()
	query :=
		`INSERT INTO posts (id, user_id, title, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.UserID, post.Title, post.Content).Scan(&post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return post, nil
}

// Update writes only when the row belongs to userID. A zero rows-affected
// result is disambiguated with an existence check.
func (r *PostgresRepository) Update(ctx context.Context, id, userID, title, content string) error {
	query :=
		`UPDATE posts SET title = $1, content = $2
		 WHERE id = $3 AND user_id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, title, content, id, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %v", err)
	}
	if affected == 0 {
		return r.missingOrForeign(ctx, id)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM posts WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %v", err)
	}
	if affected == 0 {
		return r.missingOrForeign(ctx, id)
	}

	return nil
}

func (r *PostgresRepository) missingOrForeign(ctx context.Context, id string) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if exists {
		return common.ErrorForbidden
	}
	return common.ErrorNotFound
}
