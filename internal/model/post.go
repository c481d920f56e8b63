package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a document in the posts collection. UserID references the owning
// user's _id; it is validated at creation time and immutable afterwards.
type Post struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
}
