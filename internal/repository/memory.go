package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"userboard/internal/model"
)

// MemoryUserRepository is an in-memory UserRepository used by tests in
// place of a running Mongo instance. It mirrors the unique email index by
// rejecting duplicate emails with ErrDuplicateKey.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (r *MemoryUserRepository) SetLinkedID(_ context.Context, id primitive.ObjectID, linkedID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return false, nil
	}
	user.LinkedID = linkedID
	return true, nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// MemoryPostRepository is the in-memory counterpart of the posts
// collection.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]*model.Post
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{posts: make(map[primitive.ObjectID]*model.Post)}
}

func (r *MemoryPostRepository) Create(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = primitive.NewObjectID()
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *MemoryPostRepository) GetByID(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	found := *post
	return &found, nil
}

func (r *MemoryPostRepository) ListByUserID(_ context.Context, userID primitive.ObjectID) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var posts []*model.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			found := *post
			posts = append(posts, &found)
		}
	}
	return posts, nil
}

func (r *MemoryPostRepository) Update(_ context.Context, id primitive.ObjectID, title, content string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return false, nil
	}
	post.Title = title
	post.Content = content
	return true, nil
}

func (r *MemoryPostRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

func (r *MemoryPostRepository) DeleteByUserID(_ context.Context, userID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, post := range r.posts {
		if post.UserID == userID {
			delete(r.posts, id)
			deleted++
		}
	}
	return deleted, nil
}
