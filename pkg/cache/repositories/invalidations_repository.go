package cacherepositories

import (
	"context"
	"errors"

	dbconnections "github.com/thebartekbanach/imfilter/pkg/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type invalidationRepository struct {
	conn dbconnections.CacheDBConnection
}

var _ InvalidationsRepository = (*invalidationRepository)(nil)

func NewInvalidationsRepository(conn dbconnections.CacheDBConnection) InvalidationsRepository {
	return &invalidationRepository{conn}
}

func (r *invalidationRepository) CreateInvalidation(ctx context.Context, invalidation InvalidationModel) error {
	if invalidation.InvalidationDate.IsZero() {
		return ErrInvalidationDateRequired
	}

	coll := r.conn.Collection("invalidations")
	_, err := coll.InsertOne(ctx, invalidation)
	return err
}

func (r *invalidationRepository) GetLatestInvalidation(ctx context.Context) (InvalidationModel, error) {
	coll := r.conn.Collection("invalidations")
	opts := options.FindOne().SetSort(bson.D{{Key: "invalidationDate", Value: -1}})
	result := coll.FindOne(ctx, bson.D{}, opts)

	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return InvalidationModel{}, ErrNoInvalidations
		}

		return InvalidationModel{}, result.Err()
	}

	var invalidation InvalidationModel
	err := result.Decode(&invalidation)
	return invalidation, err
}

var (
	ErrInvalidationDateRequired = errors.New("invalidation date is required")
	ErrNoInvalidations          = errors.New("no invalidations were done yet")
)
