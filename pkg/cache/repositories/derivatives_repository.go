package cacherepositories

import (
	"context"
	"errors"
	"regexp"

	dbconnections "github.com/thebartekbanach/imfilter/pkg/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const cachedDerivativesCollection = "cachedDerivatives"

type cachedDerivativesRepository struct {
	conn dbconnections.CacheDBConnection
}

var _ CachedDerivativesRepository = (*cachedDerivativesRepository)(nil)

func NewCachedDerivativesRepository(conn dbconnections.CacheDBConnection) CachedDerivativesRepository {
	return &cachedDerivativesRepository{conn}
}

func (repo *cachedDerivativesRepository) CreateCachedDerivativeInfo(ctx context.Context, info CachedDerivativeModel) error {
	collection := repo.conn.Collection(cachedDerivativesCollection)

	err := collection.FindOne(ctx, bson.M{"signature": info.Signature}).Err()
	if err == nil {
		return ErrCachedDerivativeAlreadyExists
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = collection.InsertOne(ctx, info)
	return err
}

func (repo *cachedDerivativesRepository) DeleteCachedDerivativeInfo(ctx context.Context, signature string) error {
	collection := repo.conn.Collection(cachedDerivativesCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"signature": signature})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrCachedDerivativeNotFound
	}

	return nil
}

func (repo *cachedDerivativesRepository) GetCachedDerivativeInfo(ctx context.Context, signature string) (CachedDerivativeModel, error) {
	collection := repo.conn.Collection(cachedDerivativesCollection)

	var info CachedDerivativeModel
	if err := collection.FindOne(ctx, bson.M{"signature": signature}).Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return CachedDerivativeModel{}, ErrCachedDerivativeNotFound
		}

		return CachedDerivativeModel{}, err
	}

	return info, nil
}

func (repo *cachedDerivativesRepository) FindCachedDerivatives(ctx context.Context, pathPrefix string, filters []string) ([]CachedDerivativeModel, error) {
	collection := repo.conn.Collection(cachedDerivativesCollection)

	query := bson.M{}
	if pathPrefix != "" {
		query["sourcePath"] = bson.M{"$regex": "^" + regexp.QuoteMeta(pathPrefix)}
	}
	if len(filters) > 0 {
		query["filter"] = bson.M{"$in": filters}
	}

	cursor, err := collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	infos := []CachedDerivativeModel{}
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, err
	}

	return infos, nil
}

var (
	ErrCachedDerivativeNotFound      = errors.New("cached derivative not found")
	ErrCachedDerivativeAlreadyExists = errors.New("cached derivative already exists")
)
