package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"userboard/internal/app"
	"userboard/internal/repository"
)

func newPostService(t *testing.T) (*app.PostService, string) {
	t.Helper()
	userRepo := repository.NewMemoryUserRepository()
	postRepo := repository.NewMemoryPostRepository()
	userSvc := app.NewUserService(userRepo, postRepo)
	ownerID := register(t, userSvc, "owner@example.com")
	return app.NewPostService(postRepo, userRepo), ownerID
}

func TestCreatePostRequiresExistingUser(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.Create(context.Background(), app.CreatePostInput{
		UserID:  primitive.NewObjectID().Hex(),
		Title:   "title",
		Content: "content",
	})
	assert.ErrorIs(t, err, app.ErrUserNotFound)
}

func TestCreatePostMalformedUserID(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.Create(context.Background(), app.CreatePostInput{
		UserID:  "not-an-id",
		Title:   "title",
		Content: "content",
	})
	assert.ErrorIs(t, err, app.ErrInvalidID)
}

func TestPostRoundTrip(t *testing.T) {
	svc, ownerID := newPostService(t)
	ctx := context.Background()

	postID, err := svc.Create(ctx, app.CreatePostInput{
		UserID:  ownerID,
		Title:   "first post",
		Content: "hello world",
	})
	require.NoError(t, err)

	post, err := svc.Get(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	assert.Equal(t, ownerID, post.UserID)
	assert.Equal(t, "first post", post.Title)
	assert.Equal(t, "hello world", post.Content)
}

func TestUpdatePostKeepsIdentity(t *testing.T) {
	svc, ownerID := newPostService(t)
	ctx := context.Background()

	postID, err := svc.Create(ctx, app.CreatePostInput{
		UserID:  ownerID,
		Title:   "before",
		Content: "old content",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, postID, "after", "new content"))

	post, err := svc.Get(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	assert.Equal(t, ownerID, post.UserID)
	assert.Equal(t, "after", post.Title)
	assert.Equal(t, "new content", post.Content)
}

func TestUpdateMissingPost(t *testing.T) {
	svc, _ := newPostService(t)

	err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), "t", "c")
	assert.ErrorIs(t, err, app.ErrPostNotFound)
}

func TestGetMissingPost(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, app.ErrPostNotFound)
}

func TestGetMalformedPostID(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.Get(context.Background(), "12345")
	assert.ErrorIs(t, err, app.ErrInvalidID)
}

func TestDeletePost(t *testing.T) {
	svc, ownerID := newPostService(t)
	ctx := context.Background()

	postID, err := svc.Create(ctx, app.CreatePostInput{
		UserID:  ownerID,
		Title:   "title",
		Content: "content",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, postID))

	_, err = svc.Get(ctx, postID)
	assert.ErrorIs(t, err, app.ErrPostNotFound)

	err = svc.Delete(ctx, postID)
	assert.ErrorIs(t, err, app.ErrPostNotFound)
}

func TestListByUser(t *testing.T) {
	svc, ownerID := newPostService(t)
	ctx := context.Background()

	posts, err := svc.ListByUser(ctx, ownerID)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	_, err = svc.Create(ctx, app.CreatePostInput{
		UserID:  ownerID,
		Title:   "title",
		Content: "content",
	})
	require.NoError(t, err)

	posts, err = svc.ListByUser(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, ownerID, posts[0].UserID)
}

func TestListByUserMissingUser(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.ListByUser(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, app.ErrUserNotFound)
}
