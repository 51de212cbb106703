package mongodb

import (
	"context"
	"errors"
	"fmt"

	"medizone/internal/domain/user"
	apperrors "medizone/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (string, error) {
	result, err := r.db.Collection(collUsers).InsertOne(ctx, u)
	if err != nil {
		if isDuplicateKey(err) {
			return "", apperrors.Conflict(errUserEmailExists)
		}
		return "", fmt.Errorf(errFailedInsertFmt, collUsers, err)
	}

	return insertedHex(result)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u := &user.User{}
	err := r.db.Collection(collUsers).FindOne(ctx, bson.M{fieldEmail: email}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Absent users surface as nil, not an error. Callers decide
			// whether that is a null response or an authorization failure.
			return nil, nil
		}
		return nil, fmt.Errorf(errFailedFindFmt, collUsers, err)
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	cursor, err := r.db.Collection(collUsers).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collUsers, err)
	}

	users := []user.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collUsers, err)
	}

	return users, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(collUsers).UpdateOne(
		ctx,
		bson.M{fieldID: oid},
		bson.M{opSet: bson.M{fieldRole: role}},
	)
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateFmt, collUsers, err)
	}

	return result.ModifiedCount, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, input user.UpdateProfileInput) (int64, error) {
	set := bson.M{}
	if input.Name != nil {
		set[fieldName] = *input.Name
	}
	if input.Role != nil {
		set[fieldRole] = *input.Role
	}
	if input.Photo != nil {
		set[fieldPhoto] = *input.Photo
	}

	if len(set) == 0 {
		return 0, nil
	}

	result, err := r.db.Collection(collUsers).UpdateOne(
		ctx,
		bson.M{fieldEmail: email},
		bson.M{opSet: set},
	)
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateFmt, collUsers, err)
	}

	return result.ModifiedCount, nil
}
