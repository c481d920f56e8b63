package app

import (
	"context"
	"errors"
	"strings"

	"userboard/internal/model"
	"userboard/internal/pkg/objectid"
	"userboard/internal/pkg/password"
	"userboard/internal/repository"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidID         = errors.New("invalid identifier")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
)

type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UserDetails struct {
	UserInfo UserView   `json:"user_info"`
	Posts    []PostView `json:"posts"`
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (string, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return "", ErrInvalidInput
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailExists
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique email index closes the window between the existence
		// check above and this insert.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return "", ErrEmailExists
		}
		return "", err
	}
	return objectid.Render(user.ID), nil
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !password.Verify(input.Password, user.Password) {
		return "", ErrInvalidCredential
	}
	return objectid.Render(user.ID), nil
}

func (s *UserService) LinkID(ctx context.Context, userID, linkedID string) error {
	id, err := objectid.Parse(userID)
	if err != nil {
		return ErrInvalidID
	}
	if strings.TrimSpace(linkedID) == "" {
		return ErrInvalidInput
	}

	matched, err := s.userRepo.SetLinkedID(ctx, id, linkedID)
	if err != nil {
		return err
	}
	if !matched {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) Details(ctx context.Context, userID string) (*UserDetails, error) {
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

	return &UserDetails{
		UserInfo: NewUserView(user),
		Posts:    NewPostViews(posts),
	}, nil
}

// Delete removes the user and every post referencing it. Posts go first: a
// failure between the two deletes leaves a user with no posts, never
// orphaned posts referencing a deleted user.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	id, err := objectid.Parse(userID)
	if err != nil {
		return ErrInvalidID
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err := s.postRepo.DeleteByUserID(ctx, id); err != nil {
		return err
	}
	if _, err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
