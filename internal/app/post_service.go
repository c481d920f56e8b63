package app

import (
	"context"

	"userboard/internal/model"
	"userboard/internal/pkg/objectid"
	"userboard/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID  string
	Title   string
	Content string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create validates that the owner exists at request time; nothing enforces
// the reference afterwards outside the cascading delete path.
func (s *PostService) Create(ctx context.Context, input CreatePostInput) (string, error) {
	ownerID, err := objectid.Parse(input.UserID)
	if err != nil {
		return "", ErrInvalidID
	}

	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	post := &model.Post{
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return "", err
	}
	return objectid.Render(post.ID), nil
}

func (s *PostService) Get(ctx context.Context, postID string) (*PostView, error) {
	id, err := objectid.Parse(postID)
	if err != nil {
		return nil, ErrInvalidID
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	view := NewPostView(post)
	return &view, nil
}

func (s *PostService) ListByUser(ctx context.Context, userID string) ([]PostView, error) {
	id, err := objectid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPostViews(posts), nil
}

func (s *PostService) Update(ctx context.Context, postID, title, content string) error {
	id, err := objectid.Parse(postID)
	if err != nil {
		return ErrInvalidID
	}

	matched, err := s.postRepo.Update(ctx, id, title, content)
	if err != nil {
		return err
	}
	if !matched {
		return ErrPostNotFound
	}
	return nil
}

func (s *PostService) Delete(ctx context.Context, postID string) error {
	id, err := objectid.Parse(postID)
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}
