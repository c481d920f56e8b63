package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"userboard/internal/model"
)

const postCollection = "posts"

// PostRepository defines the post data operations. Update touches only
// title and content; user_id and _id are immutable once written.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, title, content string) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type postRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{coll: db.Collection(postCollection)}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	result, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("insert post failed: %w", err)
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *postRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Post, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("query posts by user id failed: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts failed: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, id primitive.ObjectID, title, content string) (bool, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": title, "content": content}},
	)
	if err != nil {
		return false, fmt.Errorf("update post failed: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *postRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete post failed: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *postRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("delete posts by user id failed: %w", err)
	}
	return result.DeletedCount, nil
}
