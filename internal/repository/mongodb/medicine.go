package mongodb

import (
	"context"
	"fmt"

	"medizone/internal/domain/medicine"

	"go.mongodb.org/mongo-driver/bson"
)

type MedicineRepository struct {
	db *DB
}

func NewMedicineRepository(db *DB) *MedicineRepository {
	return &MedicineRepository{db: db}
}

func (r *MedicineRepository) Create(ctx context.Context, m *medicine.Medicine) (string, error) {
	result, err := r.db.Collection(collMedicines).InsertOne(ctx, m)
	if err != nil {
		return "", fmt.Errorf(errFailedInsertFmt, collMedicines, err)
	}

	return insertedHex(result)
}

func (r *MedicineRepository) List(ctx context.Context) ([]medicine.Medicine, error) {
	return r.find(ctx, bson.M{})
}

func (r *MedicineRepository) ListByCategory(ctx context.Context, category string) ([]medicine.Medicine, error) {
	filter := bson.M{}
	if category != "" {
		filter[fieldCategory] = category
	}
	return r.find(ctx, filter)
}

func (r *MedicineRepository) ListBySeller(ctx context.Context, email string) ([]medicine.Medicine, error) {
	return r.find(ctx, bson.M{fieldSellerEmail: email})
}

func (r *MedicineRepository) ListDiscounted(ctx context.Context) ([]medicine.Medicine, error) {
	return r.find(ctx, bson.M{fieldDiscount: bson.M{opGt: 0}})
}

func (r *MedicineRepository) find(ctx context.Context, filter bson.M) ([]medicine.Medicine, error) {
	cursor, err := r.db.Collection(collMedicines).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collMedicines, err)
	}

	medicines := []medicine.Medicine{}
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collMedicines, err)
	}

	return medicines, nil
}
