package mongodb

import (
	"context"
	"fmt"

	"medizone/internal/domain/payment"

	"go.mongodb.org/mongo-driver/bson"
)

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (string, error) {
	result, err := r.db.Collection(collPayments).InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf(errFailedInsertFmt, collPayments, err)
	}

	return insertedHex(result)
}

func (r *PaymentRepository) List(ctx context.Context) ([]payment.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *PaymentRepository) ListByBuyer(ctx context.Context, email string) ([]payment.Payment, error) {
	return r.find(ctx, bson.M{fieldBuyerEmail: email})
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(collPayments).UpdateOne(
		ctx,
		bson.M{fieldID: oid},
		bson.M{opSet: bson.M{fieldStatus: payment.StatusPaid}},
	)
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateFmt, collPayments, err)
	}

	return result.ModifiedCount, nil
}

func (r *PaymentRepository) find(ctx context.Context, filter bson.M) ([]payment.Payment, error) {
	cursor, err := r.db.Collection(collPayments).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collPayments, err)
	}

	payments := []payment.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collPayments, err)
	}

	return payments, nil
}
