package mongodb

import (
	"context"
	"fmt"

	"medizone/internal/domain/advert"

	"go.mongodb.org/mongo-driver/bson"
)

type AdvertRepository struct {
	db *DB
}

func NewAdvertRepository(db *DB) *AdvertRepository {
	return &AdvertRepository{db: db}
}

func (r *AdvertRepository) Create(ctx context.Context, ad *advert.Advertisement) (string, error) {
	result, err := r.db.Collection(collAdvertisements).InsertOne(ctx, ad)
	if err != nil {
		return "", fmt.Errorf(errFailedInsertFmt, collAdvertisements, err)
	}

	return insertedHex(result)
}

func (r *AdvertRepository) List(ctx context.Context) ([]advert.Advertisement, error) {
	return r.find(ctx, bson.M{})
}

func (r *AdvertRepository) ListBySeller(ctx context.Context, email string) ([]advert.Advertisement, error) {
	return r.find(ctx, bson.M{fieldSellerEmail: email})
}

func (r *AdvertRepository) SetSlide(ctx context.Context, id string, slide bool) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(collAdvertisements).UpdateOne(
		ctx,
		bson.M{fieldID: oid},
		bson.M{opSet: bson.M{fieldSlide: slide}},
	)
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateFmt, collAdvertisements, err)
	}

	return result.ModifiedCount, nil
}

func (r *AdvertRepository) find(ctx context.Context, filter bson.M) ([]advert.Advertisement, error) {
	cursor, err := r.db.Collection(collAdvertisements).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collAdvertisements, err)
	}

	ads := []advert.Advertisement{}
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collAdvertisements, err)
	}

	return ads, nil
}
