package mongodb

import (
	"errors"

	apperrors "medizone/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// parseObjectID converts a hex path/body id into an ObjectID, mapping bad
// input to a bad-request error rather than an upstream failure.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.BadRequest(errInvalidObjectID)
	}
	return oid, nil
}

// insertedHex extracts the hex form of an InsertOne result id.
func insertedHex(result *mongo.InsertOneResult) (string, error) {
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New(errUnexpectedInsertID)
	}
	return oid.Hex(), nil
}
