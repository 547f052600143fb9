package posts

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dkrasnovs/blogspace/internal/common"
)

const maxTitleLen = 255

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validate mirrors the client-side rules; the API is the authority even
// when a client skips its own checks.
func validate(title, content string) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLen {
		return common.ErrorValidation
	}
	if strings.TrimSpace(content) == "" {
		return common.ErrorValidation
	}
	return nil
}

// validateID rejects ids that cannot be post keys. Without this check a
// malformed id reaches Postgres, fails the uuid cast there, and surfaces as
// an internal error instead of a miss.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Post, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return post, nil
}

func (s *Service) Create(ctx context.Context, userID, title, content string) (*Post, error) {
	if err := validate(title, content); err != nil {
		return nil, err
	}

	post := &Post{
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	post, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return post, nil
}

func (s *Service) Update(ctx context.Context, id, userID, title, content string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validate(title, content); err != nil {
		return err
	}

	err := s.repo.Update(ctx, id, userID, title, content)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorForbidden) {
			return err
		}
		return common.ErrorInternal
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if err := validateID(id); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorForbidden) {
			return err
		}
		return common.ErrorInternal
	}
	return nil
}
