// Package store provides the generic Mongo repository shared by every
// resource handler: one parametrized set of collection operations instead
// of per-resource copies.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

const opTimeout = 10 * time.Second

type Store[T any] struct {
	coll *mongo.Collection
}

func New[T any](coll *mongo.Collection) *Store[T] {
	return &Store[T]{coll: coll}
}

func (s *Store[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Store[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *Store[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc T
	err := s.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Exists reports whether any document matches the filter.
func (s *Store[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	_, err := s.FindOne(ctx, filter)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List applies the filter with skip/limit pagination and returns the
// matching page together with its pagination metadata.
func (s *Store[T]) List(ctx context.Context, filter bson.M, page, limit int) ([]T, Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	page, limit = normalizePage(page, limit)
	skip := int64((page - 1) * limit)

	opts := options.Find().SetSkip(skip).SetLimit(int64(limit))
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, Pagination{}, err
	}

	docs := make([]T, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, Pagination{}, err
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	return docs, NewPagination(page, limit, total), nil
}

// UpdateByID applies a partial $set and returns the updated document.
func (s *Store[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Push appends a value to an array field of one document.
func (s *Store[T]) Push(ctx context.Context, id primitive.ObjectID, field string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
