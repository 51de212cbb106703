package mongodb

import (
	"context"
	"fmt"

	"medizone/internal/domain/cart"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartRepository struct {
	db *DB
}

func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Add(ctx context.Context, item *cart.Item) (string, error) {
	result, err := r.db.Collection(collCarts).InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf(errFailedInsertFmt, collCarts, err)
	}

	return insertedHex(result)
}

func (r *CartRepository) List(ctx context.Context) ([]cart.Item, error) {
	return r.find(ctx, bson.M{})
}

func (r *CartRepository) ListByBuyer(ctx context.Context, email string) ([]cart.Item, error) {
	return r.find(ctx, bson.M{fieldBuyerEmail: email})
}

func (r *CartRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(collCarts).DeleteOne(ctx, bson.M{fieldID: oid})
	if err != nil {
		return 0, fmt.Errorf(errFailedDeleteFmt, collCarts, err)
	}

	return result.DeletedCount, nil
}

// DeleteByIDs removes the purchased items after a payment is recorded.
// Malformed ids in the list are skipped rather than failing the whole batch.
func (r *CartRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	if len(oids) == 0 {
		return 0, nil
	}

	result, err := r.db.Collection(collCarts).DeleteMany(ctx, bson.M{fieldID: bson.M{opIn: oids}})
	if err != nil {
		return 0, fmt.Errorf(errFailedDeleteFmt, collCarts, err)
	}

	return result.DeletedCount, nil
}

func (r *CartRepository) find(ctx context.Context, filter bson.M) ([]cart.Item, error) {
	cursor, err := r.db.Collection(collCarts).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collCarts, err)
	}

	items := []cart.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collCarts, err)
	}

	return items, nil
}
