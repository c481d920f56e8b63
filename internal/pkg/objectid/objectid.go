// Package objectid converts between the hex string form of a document
// identifier used at the API boundary and the driver's native ObjectID.
// Every identifier arriving from outside must pass through Parse before it
// reaches a repository.
package objectid

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalid = errors.New("invalid object id")

func Parse(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalid
	}
	return id, nil
}

func Render(id primitive.ObjectID) string {
	return id.Hex()
}
