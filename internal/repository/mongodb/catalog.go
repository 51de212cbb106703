package mongodb

import (
	"context"
	"fmt"

	"medizone/internal/domain/catalog"

	"go.mongodb.org/mongo-driver/bson"
)

type SliderRepository struct {
	db *DB
}

func NewSliderRepository(db *DB) *SliderRepository {
	return &SliderRepository{db: db}
}

func (r *SliderRepository) Create(ctx context.Context, s *catalog.Slider) (string, error) {
	result, err := r.db.Collection(collSliders).InsertOne(ctx, s)
	if err != nil {
		return "", fmt.Errorf(errFailedInsertFmt, collSliders, err)
	}

	return insertedHex(result)
}

func (r *SliderRepository) List(ctx context.Context) ([]catalog.Slider, error) {
	cursor, err := r.db.Collection(collSliders).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collSliders, err)
	}

	sliders := []catalog.Slider{}
	if err := cursor.All(ctx, &sliders); err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collSliders, err)
	}

	return sliders, nil
}

func (r *SliderRepository) Update(ctx context.Context, id string, input catalog.UpdateSliderInput) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if input.Title != nil {
		set[fieldTitle] = *input.Title
	}
	if input.Image != nil {
		set[fieldImage] = *input.Image
	}
	if input.Description != nil {
		set[fieldDescription] = *input.Description
	}
	if input.Active != nil {
		set[fieldActive] = *input.Active
	}

	if len(set) == 0 {
		return 0, nil
	}

	result, err := r.db.Collection(collSliders).UpdateOne(ctx, bson.M{fieldID: oid}, bson.M{opSet: set})
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateFmt, collSliders, err)
	}

	return result.ModifiedCount, nil
}

func (r *SliderRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(collSliders).DeleteOne(ctx, bson.M{fieldID: oid})
	if err != nil {
		return 0, fmt.Errorf(errFailedDeleteFmt, collSliders, err)
	}

	return result.DeletedCount, nil
}

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, cat *catalog.Category) (string, error) {
	result, err := r.db.Collection(collCategories).InsertOne(ctx, cat)
	if err != nil {
		return "", fmt.Errorf(errFailedInsertFmt, collCategories, err)
	}

	return insertedHex(result)
}

func (r *CategoryRepository) List(ctx context.Context) ([]catalog.Category, error) {
	cursor, err := r.db.Collection(collCategories).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collCategories, err)
	}

	categories := []catalog.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf(errFailedFindFmt, collCategories, err)
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, input catalog.UpdateCategoryInput) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if input.Name != nil {
		set[fieldName] = *input.Name
	}
	if input.Image != nil {
		set[fieldImage] = *input.Image
	}

	if len(set) == 0 {
		return 0, nil
	}

	result, err := r.db.Collection(collCategories).UpdateOne(ctx, bson.M{fieldID: oid}, bson.M{opSet: set})
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateFmt, collCategories, err)
	}

	return result.ModifiedCount, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(collCategories).DeleteOne(ctx, bson.M{fieldID: oid})
	if err != nil {
		return 0, fmt.Errorf(errFailedDeleteFmt, collCategories, err)
	}

	return result.DeletedCount, nil
}
