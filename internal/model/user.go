package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a document in the users collection. Password holds the bcrypt
// digest, never the plaintext. LinkedID stays absent until set via the
// link-id operation.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	LinkedID string             `bson:"linked_id,omitempty" json:"linked_id,omitempty"`
}
