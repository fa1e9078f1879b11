package repository

import (
	"context"
	"errors"

	"github.com/medisupply/medisupply/internal/adapters/mongo/document"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		collection: db.Collection(collectionName),
	}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		return nil, parseError(err)
	}

	return &entity, nil
}

func (r *BaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {

	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var entities []T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, parseError(err)
	}

	return entities, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {

	_, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		return parseError(err)
	}

	return nil
}

func (r *BaseRepository[T]) Replace(ctx context.Context, id string, entity *T) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, entity)
	if err != nil {
		return parseError(err)
	}

	if result.MatchedCount == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}

	return nil
}

// Upsert replaces by id, inserting when absent. Re-running the same
// projection is a no-op rather than a duplicate.
func (r *BaseRepository[T]) Upsert(ctx context.Context, id string, entity *T) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, entity,
		options.Replace().SetUpsert(true))
	if err != nil {
		return parseError(err)
	}

	return nil
}

func (r *BaseRepository[T]) UpdateMany(ctx context.Context, filter, update bson.M) error {
	_, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": update})
	if err != nil {
		return parseError(err)
	}

	return nil
}

func (r *BaseRepository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, parseError(err)
	}

	return count, nil
}

func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return parseError(err)
	}

	if result.DeletedCount == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}

	return nil
}

func parseError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	return err
}
