package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"properties_service/domain"
)

const (
	DATABASE   = "realestate"
	COLLECTION = "properties"
)

type PropertyMongoDBStore struct {
	properties *mongo.Collection
	tracer     trace.Tracer
}

func NewPropertyMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.PropertyStore {
	properties := client.Database(DATABASE).Collection(COLLECTION)
	return &PropertyMongoDBStore{
		properties: properties,
		tracer:     tracer,
	}
}

func (store *PropertyMongoDBStore) Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	ctx, span := store.tracer.Start(ctx, "PropertyMongoDBStore.Search")
	defer span.End()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(domain.SearchLimit)

	cursor, err := store.properties.Find(ctx, searchQuery(filter), findOptions)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	return decode(ctx, cursor)
}

func (store *PropertyMongoDBStore) Get(ctx context.Context, id string) (*domain.Property, error) {
	ctx, span := store.tracer.Start(ctx, "PropertyMongoDBStore.Get")
	defer span.End()

	var property domain.Property
	err := store.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &property, nil
}

func (store *PropertyMongoDBStore) Insert(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	ctx, span := store.tracer.Start(ctx, "PropertyMongoDBStore.Insert")
	defer span.End()

	if property.ID == "" {
		property.ID = domain.NewPropertyID()
	}
	_, err := store.properties.InsertOne(ctx, property)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return property, nil
}

func (store *PropertyMongoDBStore) DeleteAll(ctx context.Context) (int64, error) {
	ctx, span := store.tracer.Start(ctx, "PropertyMongoDBStore.DeleteAll")
	defer span.End()

	result, err := store.properties.DeleteMany(ctx, bson.M{})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return result.DeletedCount, nil
}

// searchQuery renders the filter as one bson condition per axis,
// conjoined with $and. Unavailable listings are excluded on every
// query, availability is not a filter option.
func searchQuery(filter domain.PropertyFilter) bson.M {
	conditions := []bson.M{availableCondition()}
	if filter.Name != "" {
		conditions = append(conditions, substringCondition("name", filter.Name))
	}
	if filter.Address != "" {
		conditions = append(conditions, substringCondition("addressProperty", filter.Address))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, minPriceCondition(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, maxPriceCondition(*filter.MaxPrice))
	}
	return bson.M{"$and": conditions}
}

func availableCondition() bson.M {
	return bson.M{"isAvailable": true}
}

func substringCondition(field string, value string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}
}

// Either price axis may clear the lower bound; a document missing the
// field fails the comparison on that axis.
func minPriceCondition(min float64) bson.M {
	return bson.M{"$or": []bson.M{
		{"priceProperty": bson.M{"$gte": min}},
		{"rentProperty": bson.M{"$gte": min}},
	}}
}

// The upper bound guards each axis for presence: a missing price must
// not pass as "below max".
func maxPriceCondition(max float64) bson.M {
	return bson.M{"$or": []bson.M{
		{"priceProperty": bson.M{"$exists": true, "$lte": max}},
		{"rentProperty": bson.M{"$exists": true, "$lte": max}},
	}}
}

func decode(ctx context.Context, cursor *mongo.Cursor) (properties []*domain.Property, err error) {
	for cursor.Next(ctx) {
		var property domain.Property
		err = cursor.Decode(&property)
		if err != nil {
			return
		}
		properties = append(properties, &property)
	}
	err = cursor.Err()
	return
}
